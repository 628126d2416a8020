// Package products manages per-owner product records and their images.
// A record lives in the document store and its image lives in blob storage;
// the workflow in this package keeps the two consistent across writes.
package products

import (
	"fmt"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	minNameLength = 4
	priceScale    = 2
)

// maxPrice is the exclusive bound of the NUMERIC(12,2) price column.
var maxPrice = decimal.New(1, 10)

// Image references a product image. Path is the stable blob key and URL is
// either the served address of the blob, a pending data: payload, or empty.
type Image struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// Product is a persisted product record.
type Product struct {
	ID        uuid.UUID       `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	SoldUnits int             `json:"sold_units"`
	Image     Image           `json:"image"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Profit is the product's price multiplied by units sold.
func (p Product) Profit() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.SoldUnits)))
}

// Draft carries client-supplied product fields for create and update.
// UpdatedAt, when set on update, must match the stored version.
type Draft struct {
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	SoldUnits int             `json:"sold_units"`
	Image     Image           `json:"image"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

// Validate checks the field rules shared by create and update.
func (d Draft) Validate() error {
	if utf8.RuneCountInString(d.Name) < minNameLength {
		return fmt.Errorf("%w: name must contain at least %d characters", ErrValidation, minNameLength)
	}
	if d.Price.IsNegative() {
		return fmt.Errorf("%w: price must be at least 0", ErrValidation)
	}
	if d.Price.GreaterThanOrEqual(maxPrice) {
		return fmt.Errorf("%w: price must be less than %s", ErrValidation, maxPrice)
	}
	if !d.Price.Equal(d.Price.Round(priceScale)) {
		return fmt.Errorf("%w: price allows at most %d decimal places", ErrValidation, priceScale)
	}
	if d.SoldUnits < 0 {
		return fmt.Errorf("%w: sold_units must be at least 0", ErrValidation)
	}
	return nil
}

// ValidateOwner rejects owner ids that cannot form a blob key prefix.
func ValidateOwner(ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return fmt.Errorf("%w: owner id required", ErrValidation)
	}
	if strings.ContainsAny(ownerID, `/\`) || ownerID == "." || ownerID == ".." {
		return fmt.Errorf("%w: invalid owner id %q", ErrValidation, ownerID)
	}
	return nil
}

// ValidatePath accepts only keys of the form "{owner}/{name}" where name is a
// single clean segment, so a key can never resolve outside the owner's prefix.
func ValidatePath(ownerID, key string) error {
	name, ok := strings.CutPrefix(key, ownerID+"/")
	if !ok {
		return fmt.Errorf("%w: image path must start with %q", ErrValidation, ownerID+"/")
	}
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || path.Clean(key) != key {
		return fmt.Errorf("%w: invalid image path %q", ErrValidation, key)
	}
	return nil
}

// DerivePath returns the default image key for an owner at the given instant.
func DerivePath(ownerID string, at time.Time) string {
	return fmt.Sprintf("%s/%d", ownerID, at.UnixMilli())
}
