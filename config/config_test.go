package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDataEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DSN", "postgres://u:p@localhost/gallery")
	t.Setenv("STORAGE_ENDPOINT", "https://storage.example.com")
	t.Setenv("STORAGE_ACCESS_KEY", "key")
	t.Setenv("STORAGE_SECRET_KEY", "secret")
	t.Setenv("STORAGE_PUBLIC_URL", "https://cdn.example.com/images")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "images", cfg.Storage.Bucket)
	assert.Equal(t, 5*time.Minute, cfg.Redis.GalleryTTL)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestDataConfigured(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.DataConfigured(), "bare environment must mean degraded mode")

	setDataEnv(t)
	cfg, err = Load()
	require.NoError(t, err)
	assert.True(t, cfg.DataConfigured())
}

func TestDataConfigured_PartialSettings(t *testing.T) {
	setDataEnv(t)
	t.Setenv("STORAGE_ACCESS_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.DataConfigured())
}

func TestAllowedOrigins_Split(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://baubuilds.hu, https://www.baubuilds.hu")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"https://baubuilds.hu", "https://www.baubuilds.hu"},
		cfg.Server.AllowedOrigins)
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("GALLERY_CACHE_TTL", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.Redis.GalleryTTL)
}
