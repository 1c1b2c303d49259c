package bootstrap

import (
	"context"

	"github.com/bau-builds/gallery-api/config"
	"github.com/bau-builds/gallery-api/internal/storage"
)

// OpenObjectStore builds the S3 client for the photo bucket.
func OpenObjectStore(ctx context.Context, cfg config.StorageConfig) (*storage.S3Store, error) {
	return storage.NewS3Store(ctx, cfg)
}
