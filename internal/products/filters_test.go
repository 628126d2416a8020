package products_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/product-admin/internal/products"
	"github.com/JaimeStill/product-admin/pkg/query"
)

func TestFiltersFromQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantName  string
		wantPrice string
		wantErr   bool
	}{
		{"empty", "", "", "", false},
		{"name", "name=mug", "mug", "", false},
		{"price", "price=10.50", "", "10.5", false},
		{"both", "name=mug&price=3", "mug", "3", false},
		{"bad price", "price=ten", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			f, err := products.FiltersFromQuery(values)

			if tt.wantErr {
				if !errors.Is(err, products.ErrValidation) {
					t.Errorf("FiltersFromQuery() error = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FiltersFromQuery() failed: %v", err)
			}

			if (f.Name != nil) != (tt.wantName != "") || (f.Name != nil && *f.Name != tt.wantName) {
				t.Errorf("Name = %v, want %q", f.Name, tt.wantName)
			}
			if (f.Price != nil) != (tt.wantPrice != "") || (f.Price != nil && f.Price.String() != tt.wantPrice) {
				t.Errorf("Price = %v, want %q", f.Price, tt.wantPrice)
			}
		})
	}
}

func TestFiltersApply(t *testing.T) {
	proj := query.NewProjectionMap("public", "products", "p").
		Project("name", "Name").
		Project("price", "Price")

	values, _ := url.ParseQuery("name=mug&price=4")
	f, err := products.FiltersFromQuery(values)
	if err != nil {
		t.Fatalf("FiltersFromQuery() failed: %v", err)
	}

	sql, args := f.Apply(query.NewBuilder(proj)).BuildCount()

	if !strings.Contains(sql, "p.name ILIKE") || !strings.Contains(sql, "p.price = ") {
		t.Errorf("BuildCount() sql = %q", sql)
	}
	if len(args) != 2 {
		t.Errorf("args = %v, want 2 values", args)
	}
}
