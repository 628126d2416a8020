package products

import (
	"context"
	"time"

	"github.com/JaimeStill/product-admin/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the product lifecycle operations for a single owner's catalog.
// Implementations upload pending image payloads to blob storage before
// writing the record to the document store.
type System interface {
	// Create uploads the draft's pending image, if any, and inserts the record.
	Create(ctx context.Context, ownerID string, draft Draft) (*Product, error)

	// Update writes draft over existing. The image path of existing is kept
	// and a changed image is uploaded to it before the write.
	Update(ctx context.Context, ownerID string, existing Product, draft Draft) (*Product, error)

	// Remove deletes the record. The image blob is left in place.
	Remove(ctx context.Context, ownerID string, item Product) error

	List(ctx context.Context, ownerID string) ([]Product, error)
	Find(ctx context.Context, ownerID string, id uuid.UUID) (*Product, error)
	Search(ctx context.Context, ownerID string, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Product], error)
	Profit(ctx context.Context, ownerID string) (*Summary, error)
}

// Option configures a System.
type Option func(*workflow)

// WithMaxImageSize limits decoded image payloads to n bytes.
func WithMaxImageSize(n int64) Option {
	return func(w *workflow) {
		w.maxImageSize = n
	}
}

// WithClock replaces the time source used to derive image paths.
func WithClock(now func() time.Time) Option {
	return func(w *workflow) {
		w.now = now
	}
}
