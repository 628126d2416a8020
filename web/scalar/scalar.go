// Package scalar serves interactive API documentation with the Scalar
// reference viewer, pointed at the API module's generated OpenAPI document.
package scalar

import (
	"bytes"
	_ "embed"
	"net/http"

	"github.com/JaimeStill/product-admin/pkg/module"
)

//go:embed index.html
var indexHTML []byte

// Handler writes the viewer page with specURL as its document source.
func Handler(specURL string) http.HandlerFunc {
	page := bytes.ReplaceAll(indexHTML, []byte("{{SPEC_URL}}"), []byte(specURL))

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(page)
	}
}

// NewModule mounts the viewer at prefix.
func NewModule(prefix, specURL string) *module.Module {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", Handler(specURL))
	return module.New(prefix, mux)
}
