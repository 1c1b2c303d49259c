package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey_Format(t *testing.T) {
	key := ObjectKey("proj-1", "Kitchen Photo.JPG")

	require.True(t, strings.HasPrefix(key, "projects/proj-1/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"), "extension must be preserved lowercased, got %s", key)

	name := strings.TrimPrefix(key, "projects/proj-1/")
	assert.NotContains(t, name, "/", "filename must be a single segment")
	assert.Contains(t, name, "-", "token and timestamp are dash-joined")
}

func TestObjectKey_CollisionResistant(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		key := ObjectKey("p1", "a.jpg")
		require.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}

func TestObjectKey_NoExtension(t *testing.T) {
	key := ObjectKey("p1", "clipboard-image")
	assert.False(t, strings.HasSuffix(key, "."))
	assert.NotContains(t, strings.TrimPrefix(key, "projects/p1/"), ".")
}

func TestKeyFromURL(t *testing.T) {
	url := "https://cdn.example.com/images/projects/p1/abc123-170000.jpg"
	assert.Equal(t, "projects/p1/abc123-170000.jpg", KeyFromURL("p1", url))
}

func TestProjectIDFromKey(t *testing.T) {
	assert.Equal(t, "p1", ProjectIDFromKey("projects/p1/abc.jpg"))
	assert.Equal(t, "", ProjectIDFromKey("other/p1/abc.jpg"))
	assert.Equal(t, "", ProjectIDFromKey("projects/dangling-no-slash"))
}
