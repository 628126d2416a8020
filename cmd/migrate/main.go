package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/JaimeStill/product-admin/internal/config"
	"github.com/JaimeStill/product-admin/internal/migrations"
	"github.com/JaimeStill/product-admin/pkg/logging"
)

func main() {
	var (
		up      = flag.Bool("up", false, "Apply all pending migrations")
		down    = flag.Int("down", 0, "Revert the given number of migrations")
		version = flag.Bool("version", false, "Print the applied schema version")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	logger := logging.New(&cfg.Logging).With("system", "migrations")

	switch {
	case *up:
		if err := migrations.Up(&cfg.Database, logger); err != nil {
			log.Fatalf("migrate up failed: %v", err)
		}

	case *down > 0:
		if err := migrations.Down(&cfg.Database, logger, *down); err != nil {
			log.Fatalf("migrate down failed: %v", err)
		}

	case *version:
		v, dirty, err := migrations.Version(&cfg.Database, logger)
		if err != nil {
			log.Fatalf("read version failed: %v", err)
		}
		fmt.Printf("version %d (dirty: %t)\n", v, dirty)

	default:
		fmt.Fprintln(os.Stderr, "usage: migrate [-up|-down <n>|-version]")
		flag.PrintDefaults()
		os.Exit(2)
	}
}
