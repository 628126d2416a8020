package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/product-admin/internal/config"
	"github.com/JaimeStill/product-admin/internal/infrastructure"
	"github.com/JaimeStill/product-admin/pkg/lifecycle"
)

func testInfra(t *testing.T) (*infrastructure.Infrastructure, *config.Config) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.BasePath = t.TempDir()
	cfg.Logging.Level = "error"
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	infra, err := infrastructure.New(cfg)
	if err != nil {
		t.Fatalf("infrastructure.New() failed: %v", err)
	}
	return infra, cfg
}

func TestRouter_Health(t *testing.T) {
	infra, cfg := testInfra(t)

	router := buildRouter(infra)
	modules, err := NewModules(infra, cfg)
	if err != nil {
		t.Fatalf("NewModules() failed: %v", err)
	}
	modules.Mount(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("healthz status = %d, want 200", rec.Code)
	}

	for _, path := range []string{"/api/openapi.json", "/scalar", "/scalar/"} {
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, rec.Code)
		}
	}
}

func TestReadiness(t *testing.T) {
	lc := lifecycle.New()
	handler := readiness(lc)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status before startup = %d, want 503", rec.Code)
	}

	lc.WaitForStartup()

	rec = httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status after startup = %d, want 200", rec.Code)
	}
}
