package products

import (
	"github.com/JaimeStill/product-admin/pkg/query"
	"github.com/JaimeStill/product-admin/pkg/repository"
)

var projection = query.NewProjectionMap("public", "products", "p").
	Project("id", "Id").
	Project("owner_id", "OwnerId").
	Project("name", "Name").
	Project("price", "Price").
	Project("sold_units", "SoldUnits").
	Project("image_path", "ImagePath").
	Project("image_url", "ImageUrl").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

const returning = `RETURNING id, owner_id, name, price, sold_units, image_path, image_url, created_at, updated_at`

func scanProduct(s repository.Scanner) (Product, error) {
	var p Product
	err := s.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Price,
		&p.SoldUnits,
		&p.Image.Path,
		&p.Image.URL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
