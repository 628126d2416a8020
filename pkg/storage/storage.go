// Package storage provides the blob store used for product images.
// It defines a System interface for storage operations and includes a filesystem
// implementation suitable for development and single-node deployments.
package storage

import (
	"context"

	"github.com/JaimeStill/product-admin/pkg/lifecycle"
)

// System defines the blob storage operations.
// Keys are slash-separated relative paths such as "{owner}/{timestamp}".
type System interface {
	// Store saves data at the specified key. If the key already exists,
	// its contents are overwritten. Parent directories are created as needed.
	// Returns ErrInvalidKey if the key is empty or contains path traversal.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns the data stored at the specified key.
	// Returns ErrNotFound if the key does not exist.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// URL returns the public address of the blob stored at key.
	// The address changes whenever the blob is overwritten.
	// Returns ErrNotFound if the key does not exist.
	URL(ctx context.Context, key string) (string, error)

	// Start registers lifecycle hooks with the coordinator.
	// For filesystem storage, this creates the base directory.
	Start(lc *lifecycle.Coordinator) error
}
