package query_test

import (
	"reflect"
	"testing"

	"github.com/JaimeStill/product-admin/pkg/query"
)

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		input string
		want  []query.SortField
	}{
		{"", nil},
		{"Name", []query.SortField{{Field: "Name"}}},
		{"-Price", []query.SortField{{Field: "Price", Descending: true}}},
		{" -Price , Name ,,-", []query.SortField{
			{Field: "Price", Descending: true},
			{Field: "Name"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if len(tt.want) == 0 && len(got) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSortFields(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
