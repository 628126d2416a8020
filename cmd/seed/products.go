package main

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/JaimeStill/product-admin/internal/products"
	"github.com/JaimeStill/product-admin/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:embed seeds/*.json
var seedFiles embed.FS

func init() {
	registerSeeder(&ProductSeeder{})
}

// ProductSeed is one catalog entry. Slug keeps the generated id stable across runs.
type ProductSeed struct {
	Slug      string          `json:"slug"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	SoldUnits int             `json:"sold_units"`
}

// ProductSeedData represents the JSON structure for product seed files.
type ProductSeedData struct {
	Owner    string        `json:"owner"`
	Products []ProductSeed `json:"products"`
}

// ProductSeeder implements Seeder for demo catalog products.
type ProductSeeder struct {
	file  string
	owner string
}

func (s *ProductSeeder) Name() string {
	return "products"
}

func (s *ProductSeeder) Description() string {
	return "Seeds a demo product catalog for one owner"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *ProductSeeder) SetFile(path string) {
	s.file = path
}

// SetOwner replaces the owner named in the seed data.
func (s *ProductSeeder) SetOwner(owner string) {
	s.owner = owner
}

// Seed upserts every product at its derived id so repeated runs replace
// rather than duplicate.
func (s *ProductSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.loadSeedData()
	if err != nil {
		return err
	}

	for i, p := range data.Products {
		draft := products.Draft{Name: p.Name, Price: p.Price, SoldUnits: p.SoldUnits}
		if err := draft.Validate(); err != nil {
			return fmt.Errorf("product %s: %w", p.Slug, err)
		}

		if err := s.saveProduct(ctx, tx, data.Owner, i, p); err != nil {
			return fmt.Errorf("save product %s: %w", p.Slug, err)
		}
	}

	return nil
}

func (s *ProductSeeder) loadSeedData() (*ProductSeedData, error) {
	var content []byte
	var err error

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/products.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data ProductSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	if s.owner != "" {
		data.Owner = s.owner
	}
	if err := products.ValidateOwner(data.Owner); err != nil {
		return nil, err
	}

	return &data, nil
}

// seedID derives a stable id per owner and slug.
func seedID(owner, slug string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("product-admin/"+owner+"/"+slug))
}

func (s *ProductSeeder) saveProduct(ctx context.Context, tx *sql.Tx, owner string, index int, p ProductSeed) error {
	const query = `
		INSERT INTO products (id, owner_id, name, price, sold_units, image_path, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, '', NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			sold_units = EXCLUDED.sold_units,
			updated_at = NOW()`

	path := fmt.Sprintf("%s/seed-%d", owner, index)
	return repository.ExecExpectOne(ctx, tx, query, seedID(owner, p.Slug), owner, p.Name, p.Price, p.SoldUnits, path)
}
