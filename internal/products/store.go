package products

import (
	"context"
	"time"

	"github.com/JaimeStill/product-admin/pkg/pagination"
	"github.com/google/uuid"
)

// Store is the document store holding product records.
// Implementations assign ID, CreatedAt and UpdatedAt, and scope every
// call to the owner. Errors are ErrNotFound, ErrConflict, ErrValidation
// or an underlying failure.
type Store interface {
	Insert(ctx context.Context, p Product) (*Product, error)

	// Update writes the mutable fields of p if the stored record still
	// carries version as its UpdatedAt. Returns ErrConflict otherwise.
	Update(ctx context.Context, p Product, version time.Time) (*Product, error)

	// Delete removes the record. Deleting an absent record is not an error.
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error

	Find(ctx context.Context, ownerID string, id uuid.UUID) (*Product, error)

	// List returns every matching record, newest first.
	List(ctx context.Context, ownerID string, filters Filters) ([]Product, error)

	Search(ctx context.Context, ownerID string, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Product], error)
}
