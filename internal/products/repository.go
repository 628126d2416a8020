package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/product-admin/pkg/pagination"
	"github.com/JaimeStill/product-admin/pkg/query"
	"github.com/JaimeStill/product-admin/pkg/repository"
	"github.com/google/uuid"
)

type pgStore struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// NewStore creates a PostgreSQL-backed product store.
func NewStore(db *sql.DB, logger *slog.Logger, pagination pagination.Config) Store {
	return &pgStore{
		db:         db,
		logger:     logger.With("store", "products"),
		pagination: pagination,
	}
}

func (s *pgStore) Insert(ctx context.Context, p Product) (*Product, error) {
	q := `INSERT INTO products (owner_id, name, price, sold_units, image_path, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		` + returning

	created, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (Product, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			p.OwnerID, p.Name, p.Price, p.SoldUnits, p.Image.Path, p.Image.URL,
		}, scanProduct)
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	return &created, nil
}

func (s *pgStore) Update(ctx context.Context, p Product, version time.Time) (*Product, error) {
	q := `UPDATE products
		SET name = $1, price = $2, sold_units = $3, image_url = $4, updated_at = NOW()
		WHERE owner_id = $5 AND id = $6 AND updated_at = $7
		` + returning

	updated, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (Product, error) {
		updated, err := repository.QueryOne(ctx, tx, q, []any{
			p.Name, p.Price, p.SoldUnits, p.Image.URL, p.OwnerID, p.ID, version,
		}, scanProduct)

		if errors.Is(err, sql.ErrNoRows) {
			var exists bool
			check := `SELECT EXISTS (SELECT 1 FROM products WHERE owner_id = $1 AND id = $2)`
			if err := tx.QueryRowContext(ctx, check, p.OwnerID, p.ID).Scan(&exists); err != nil {
				return updated, err
			}
			if exists {
				return updated, ErrConflict
			}
		}
		return updated, err
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	return &updated, nil
}

func (s *pgStore) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	q := `DELETE FROM products WHERE owner_id = $1 AND id = $2`

	result, err := s.db.ExecContext(ctx, q, ownerID, id)
	if err != nil {
		return mapStoreError(err)
	}

	if n, _ := result.RowsAffected(); n == 0 {
		s.logger.Debug("delete matched no record", "owner_id", ownerID, "id", id)
	}
	return nil
}

func (s *pgStore) Find(ctx context.Context, ownerID string, id uuid.UUID) (*Product, error) {
	q, args := query.
		NewBuilder(projection).
		WhereEquals("OwnerId", ownerID).
		BuildSingle("Id", id)

	p, err := repository.QueryOne(ctx, s.db, q, args, scanProduct)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return &p, nil
}

func (s *pgStore) List(ctx context.Context, ownerID string, filters Filters) ([]Product, error) {
	qb := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("OwnerId", ownerID)

	filters.Apply(qb)

	q, args := qb.BuildList()
	items, err := repository.QueryMany(ctx, s.db, q, args, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	return items, nil
}

func (s *pgStore) Search(ctx context.Context, ownerID string, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Product], error) {
	page.Normalize(s.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("OwnerId", ownerID)

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := s.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, s.db, pageSQL, pageArgs, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func mapStoreError(err error) error {
	if repository.IsCheckViolation(err) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return repository.MapError(err, ErrNotFound, ErrConflict)
}
