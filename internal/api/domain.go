package api

import (
	"github.com/JaimeStill/product-admin/internal/config"
	"github.com/JaimeStill/product-admin/internal/products"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Products products.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime, cfg *config.Config) *Domain {
	store := products.NewStore(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Products: products.New(
			store,
			runtime.Storage,
			runtime.Logger,
			products.WithMaxImageSize(cfg.Storage.MaxUploadSizeBytes()),
		),
	}
}
