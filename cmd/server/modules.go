package main

import (
	"net/http"

	"github.com/JaimeStill/product-admin/internal/api"
	"github.com/JaimeStill/product-admin/internal/config"
	"github.com/JaimeStill/product-admin/internal/infrastructure"
	"github.com/JaimeStill/product-admin/pkg/lifecycle"
	"github.com/JaimeStill/product-admin/pkg/middleware"
	"github.com/JaimeStill/product-admin/pkg/module"
	"github.com/JaimeStill/product-admin/web/scalar"
)

type Modules struct {
	API    *module.Module
	Scalar *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	scalarModule := scalar.NewModule("/scalar", cfg.API.SpecURL())
	scalarModule.Use(middleware.Logger(infra.Logger.With("module", "scalar")))

	return &Modules{
		API:    apiModule,
		Scalar: scalarModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.Scalar)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", readiness(infra.Lifecycle))

	return router
}

func readiness(rc lifecycle.ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !rc.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}
