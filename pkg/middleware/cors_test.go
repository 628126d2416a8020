package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/product-admin/pkg/middleware"
)

const origin = "http://localhost:5173"

func serveCORS(cfg *middleware.CORSConfig, method, reqOrigin string) (*httptest.ResponseRecorder, bool) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(method, "/", nil)
	if reqOrigin != "" {
		req.Header.Set("Origin", reqOrigin)
	}
	w := httptest.NewRecorder()

	middleware.CORS(cfg)(handler).ServeHTTP(w, req)
	return w, called
}

func TestCORS_Disabled(t *testing.T) {
	w, _ := serveCORS(&middleware.CORSConfig{Enabled: false, Origins: []string{origin}}, http.MethodGet, origin)

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("CORS headers set while disabled")
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	cfg := &middleware.CORSConfig{
		Enabled:          true,
		Origins:          []string{origin},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           600,
	}

	w, called := serveCORS(cfg, http.MethodGet, origin)

	if !called {
		t.Error("handler not called")
	}

	want := map[string]string{
		"Access-Control-Allow-Origin":      origin,
		"Access-Control-Allow-Methods":     "GET, POST",
		"Access-Control-Allow-Headers":     "Content-Type",
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Max-Age":           "600",
	}
	for k, v := range want {
		if got := w.Header().Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	w, called := serveCORS(&middleware.CORSConfig{Enabled: true, Origins: []string{origin}}, http.MethodGet, "http://evil.example")

	if !called {
		t.Error("handler not called")
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("CORS headers set for disallowed origin")
	}
}

func TestCORS_Preflight(t *testing.T) {
	w, called := serveCORS(&middleware.CORSConfig{Enabled: true, Origins: []string{origin}}, http.MethodOptions, origin)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if called {
		t.Error("handler called for preflight")
	}
}
