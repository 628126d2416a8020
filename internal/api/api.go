// Package api assembles the product API module: domain systems, routes,
// the generated OpenAPI document and the module middleware.
package api

import (
	"net/http"

	"github.com/JaimeStill/product-admin/internal/config"
	"github.com/JaimeStill/product-admin/internal/infrastructure"
	"github.com/JaimeStill/product-admin/pkg/middleware"
	"github.com/JaimeStill/product-admin/pkg/module"
	"github.com/JaimeStill/product-admin/pkg/openapi"
)

// NewModule builds the API module mounted at cfg.API.BasePath.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime, cfg)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)
	for _, url := range cfg.API.OpenAPI.Servers {
		spec.AddServer(url)
	}

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain, cfg)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
