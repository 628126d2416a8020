package api

import (
	"net/http"

	"github.com/JaimeStill/product-admin/internal/config"
	"github.com/JaimeStill/product-admin/internal/products"
	"github.com/JaimeStill/product-admin/pkg/openapi"
	"github.com/JaimeStill/product-admin/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) {
	productsHandler := products.NewHandler(domain.Products, runtime.Logger, runtime.Pagination, cfg.Storage.MaxUploadSizeBytes())
	blobsHandler := NewBlobHandler(runtime.Storage, runtime.Logger)

	routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		productsHandler.Routes(),
		blobsHandler.Routes(),
	)
}
