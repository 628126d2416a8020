package module_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/product-admin/pkg/module"
)

func TestRouter_FallbackToNative(t *testing.T) {
	r := module.NewRouter()
	r.HandleNative("GET /healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("healthy"))
	})
	r.Mount(module.New("/api", pathEcho()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	body, _ := io.ReadAll(w.Result().Body)
	if string(body) != "healthy" {
		t.Errorf("body = %q, want healthy", body)
	}
}

func TestRouter_UnmatchedPath(t *testing.T) {
	r := module.NewRouter()
	r.Mount(module.New("/api", pathEcho()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/apiary", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestRouter_PathNormalization(t *testing.T) {
	r := module.NewRouter()
	r.Mount(module.New("/api", pathEcho()))

	tests := []struct {
		name       string
		inputPath  string
		wantPath   string
		wantStatus int
	}{
		{"strips trailing slash", "/api/users/", "/users", http.StatusOK},
		{"unchanged", "/api/users", "/users", http.StatusOK},
		{"root not mounted", "/", "", http.StatusNotFound},
		{"module root with slash", "/api/", "/", http.StatusOK},
		{"deep trailing slash", "/api/users/u1/products/", "/users/u1/products", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.inputPath, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				body, _ := io.ReadAll(w.Result().Body)
				if string(body) != tt.wantPath {
					t.Errorf("path = %q, want %q", body, tt.wantPath)
				}
			}
		})
	}
}
