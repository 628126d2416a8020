package query_test

import (
	"testing"

	"github.com/JaimeStill/product-admin/pkg/query"
)

func TestProjectionMap_Table(t *testing.T) {
	pm := query.NewProjectionMap("public", "products", "p")

	if pm.Alias() != "p" {
		t.Errorf("Alias() = %q, want %q", pm.Alias(), "p")
	}
	if pm.Table() != "public.products p" {
		t.Errorf("Table() = %q, want %q", pm.Table(), "public.products p")
	}
}

func TestProjectionMap_Column(t *testing.T) {
	pm := newTestProjection()

	if col := pm.Column("Price"); col != "p.price" {
		t.Errorf("Column(Price) = %q, want p.price", col)
	}
	if col := pm.Column("Unknown"); col != "Unknown" {
		t.Errorf("Column(Unknown) = %q, want input returned", col)
	}
	if pm.Has("Unknown") {
		t.Error("Has(Unknown) = true, want false")
	}
}

func TestProjectionMap_ColumnsPreserveOrder(t *testing.T) {
	pm := newTestProjection()

	if got := pm.Columns(); got != "p.id, p.owner_id, p.name, p.price" {
		t.Errorf("Columns() = %q", got)
	}

	list := pm.ColumnList()
	list[0] = "mutated"
	if pm.ColumnList()[0] != "p.id" {
		t.Error("ColumnList() exposes internal slice")
	}
}
