// Package main is the seed command. It populates the product catalog with
// demo data through registered seeders.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/JaimeStill/product-admin/pkg/repository"
)

// Seeder writes one domain's demo data inside a caller-owned transaction.
type Seeder interface {
	Name() string
	Description() string
	Seed(ctx context.Context, tx *sql.Tx) error
}

var seeders = map[string]Seeder{}

// registerSeeder is called from init in each seeder file.
func registerSeeder(s Seeder) {
	seeders[s.Name()] = s
}

func getSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// listSeeders returns the registry ordered by name.
func listSeeders() []Seeder {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	slices.Sort(names)

	result := make([]Seeder, 0, len(names))
	for _, name := range names {
		result = append(result, seeders[name])
	}
	return result
}

func runSeeder(ctx context.Context, db *sql.DB, name string) error {
	seeder, ok := getSeeder(name)
	if !ok {
		return fmt.Errorf("seeder not found: %s", name)
	}
	return seedAll(ctx, db, []Seeder{seeder})
}

func runAllSeeders(ctx context.Context, db *sql.DB) error {
	return seedAll(ctx, db, listSeeders())
}

// seedAll commits only if every seeder succeeds.
func seedAll(ctx context.Context, db *sql.DB, list []Seeder) error {
	_, err := repository.WithTx(ctx, db, func(tx *sql.Tx) (struct{}, error) {
		for _, s := range list {
			if err := s.Seed(ctx, tx); err != nil {
				return struct{}{}, fmt.Errorf("seed %s: %w", s.Name(), err)
			}
		}
		return struct{}{}, nil
	})
	return err
}
