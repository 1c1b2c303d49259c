package storage

import "context"

// ObjectStore is the object-side half of the remote data gateway: a bucket
// of publicly served binaries addressed by key. Implementations never
// partially succeed within one call, but a sequence of calls carries no
// transaction.
type ObjectStore interface {
	// Upload stores data under key. The object becomes publicly readable.
	Upload(ctx context.Context, key string, data []byte, contentType string) error

	// PublicURL returns the externally resolvable address of key. It does
	// not verify the object exists.
	PublicURL(key string) string

	// Remove deletes the given keys in bulk. Missing keys are not an error.
	Remove(ctx context.Context, keys []string) error

	// ListKeys returns every key under prefix.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}
