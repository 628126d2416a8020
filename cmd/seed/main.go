package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/JaimeStill/product-admin/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var (
		all     = flag.Bool("all", false, "Run all seeders")
		catalog = flag.Bool("products", false, "Seed products")
		owner   = flag.String("owner", "", "Owner id for seeded products (overrides the seed file)")
		file    = flag.String("file", "", "External seed file (overrides embedded)")
		list    = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	db, err := sql.Open("pgx", cfg.Database.Dsn())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if seeder, ok := getSeeder("products"); ok {
		ps := seeder.(*ProductSeeder)
		ps.SetFile(*file)
		ps.SetOwner(*owner)
	}

	switch {
	case *all:
		if err := runAllSeeders(ctx, db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("all seeders completed successfully")

	case *catalog:
		if err := runSeeder(ctx, db, "products"); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("products seeded successfully")

	default:
		fmt.Println("usage: seed [-all|-products] [-owner <id>] [-file <path>] [-list]")
		flag.PrintDefaults()
	}
}
