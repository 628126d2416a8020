package products

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/product-admin/pkg/pagination"
	"github.com/JaimeStill/product-admin/pkg/storage"
	"github.com/google/uuid"
)

type workflow struct {
	store        Store
	blobs        storage.System
	logger       *slog.Logger
	maxImageSize int64
	now          func() time.Time
}

// New creates the product workflow over a document store and blob storage.
func New(store Store, blobs storage.System, logger *slog.Logger, opts ...Option) System {
	w := &workflow{
		store:  store,
		blobs:  blobs,
		logger: logger.With("system", "products"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *workflow) Create(ctx context.Context, ownerID string, draft Draft) (*Product, error) {
	if err := ValidateOwner(ownerID); err != nil {
		return nil, err
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	if draft.Image.URL != "" && !IsPayload(draft.Image.URL) {
		return nil, fmt.Errorf("%w: image url must be a data: payload or empty", ErrValidation)
	}

	path := draft.Image.Path
	if path == "" {
		path = DerivePath(ownerID, w.now())
	} else if err := ValidatePath(ownerID, path); err != nil {
		return nil, err
	}

	url := ""
	if draft.Image.URL != "" {
		var err error
		url, err = w.upload(ctx, path, draft.Image.URL)
		if err != nil {
			return nil, err
		}
	}

	created, err := w.store.Insert(ctx, Product{
		OwnerID:   ownerID,
		Name:      draft.Name,
		Price:     draft.Price,
		SoldUnits: draft.SoldUnits,
		Image:     Image{Path: path, URL: url},
	})
	if err != nil {
		if url != "" {
			w.logger.Warn("orphaned image after failed insert", "owner_id", ownerID, "path", path, "error", err)
		}
		return nil, storeError("insert", err)
	}

	w.logger.Info("product created", "owner_id", ownerID, "id", created.ID, "path", path)
	return created, nil
}

func (w *workflow) Update(ctx context.Context, ownerID string, existing Product, draft Draft) (*Product, error) {
	if err := ValidateOwner(ownerID); err != nil {
		return nil, err
	}
	if existing.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	if draft.UpdatedAt != nil && !draft.UpdatedAt.Equal(existing.UpdatedAt) {
		return nil, fmt.Errorf("%w: draft version %s, stored version %s",
			ErrConflict,
			draft.UpdatedAt.Format(time.RFC3339Nano),
			existing.UpdatedAt.Format(time.RFC3339Nano),
		)
	}

	url := existing.Image.URL
	switch {
	case draft.Image.URL == existing.Image.URL:
		// unchanged, no upload
	case draft.Image.URL == "":
		url = ""
	case IsPayload(draft.Image.URL):
		uploaded, err := w.upload(ctx, existing.Image.Path, draft.Image.URL)
		if err != nil {
			return nil, err
		}
		url = uploaded
	default:
		return nil, fmt.Errorf("%w: image url must be unchanged, a data: payload, or empty", ErrValidation)
	}

	next := existing
	next.Name = draft.Name
	next.Price = draft.Price
	next.SoldUnits = draft.SoldUnits
	next.Image.URL = url

	updated, err := w.store.Update(ctx, next, existing.UpdatedAt)
	if err != nil {
		return nil, storeError("update", err)
	}

	w.logger.Info("product updated", "owner_id", ownerID, "id", updated.ID)
	return updated, nil
}

func (w *workflow) Remove(ctx context.Context, ownerID string, item Product) error {
	if err := ValidateOwner(ownerID); err != nil {
		return err
	}

	if err := w.store.Delete(ctx, ownerID, item.ID); err != nil {
		return storeError("delete", err)
	}

	w.logger.Info("product removed", "owner_id", ownerID, "id", item.ID)
	if item.Image.URL != "" {
		w.logger.Warn("image blob orphaned by removal", "owner_id", ownerID, "path", item.Image.Path)
	}
	return nil
}

func (w *workflow) List(ctx context.Context, ownerID string) ([]Product, error) {
	if err := ValidateOwner(ownerID); err != nil {
		return nil, err
	}

	items, err := w.store.List(ctx, ownerID, Filters{})
	if err != nil {
		return nil, storeError("list", err)
	}
	return items, nil
}

func (w *workflow) Find(ctx context.Context, ownerID string, id uuid.UUID) (*Product, error) {
	if err := ValidateOwner(ownerID); err != nil {
		return nil, err
	}

	p, err := w.store.Find(ctx, ownerID, id)
	if err != nil {
		return nil, storeError("find", err)
	}
	return p, nil
}

func (w *workflow) Search(ctx context.Context, ownerID string, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Product], error) {
	if err := ValidateOwner(ownerID); err != nil {
		return nil, err
	}

	result, err := w.store.Search(ctx, ownerID, page, filters)
	if err != nil {
		return nil, storeError("search", err)
	}
	return result, nil
}

func (w *workflow) Profit(ctx context.Context, ownerID string) (*Summary, error) {
	items, err := w.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return NewSummary(items), nil
}

func (w *workflow) upload(ctx context.Context, path, raw string) (string, error) {
	p, err := decodePayload(raw, w.maxImageSize)
	if err != nil {
		return "", err
	}

	if err := w.blobs.Store(ctx, path, p.data); err != nil {
		return "", fmt.Errorf("%w: store %s: %v", ErrUpload, path, err)
	}

	url, err := w.blobs.URL(ctx, path)
	if err != nil {
		return "", fmt.Errorf("%w: resolve %s: %v", ErrUpload, path, err)
	}

	w.logger.Debug("image uploaded", "path", path, "media_type", p.mediaType, "size", len(p.data))
	return url, nil
}

// storeError passes domain errors through and wraps anything else as a persistence failure.
func storeError(op string, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) || errors.Is(err, ErrValidation) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrPersistence, op, err)
}
