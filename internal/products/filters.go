package products

import (
	"fmt"
	"net/url"

	"github.com/JaimeStill/product-admin/pkg/query"
	"github.com/shopspring/decimal"
)

// Filters contains optional criteria for product queries.
type Filters struct {
	Name  *string
	Price *decimal.Decimal
}

// FiltersFromQuery extracts product filters from URL query parameters.
func FiltersFromQuery(values url.Values) (Filters, error) {
	var f Filters

	if n := values.Get("name"); n != "" {
		f.Name = &n
	}

	if p := values.Get("price"); p != "" {
		price, err := decimal.NewFromString(p)
		if err != nil {
			return f, fmt.Errorf("%w: invalid price filter %q", ErrValidation, p)
		}
		f.Price = &price
	}

	return f, nil
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("Name", f.Name)
	if f.Price != nil {
		b.WhereEquals("Price", *f.Price)
	}
	return b
}
