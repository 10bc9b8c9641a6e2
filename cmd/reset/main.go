package main

import (
	"context"
	"flag"
	"log"

	"github.com/osse101/PackSim_Go/internal/bootstrap"
	"github.com/osse101/PackSim_Go/internal/config"
)

// reset wipes the persisted collection and stats for the configured variant
// and store backend, restoring the starting coins.
func main() {
	yes := flag.Bool("yes", false, "confirm the reset")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if !*yes {
		log.Printf("This deletes the %s collection stored in the %s backend.", cfg.Variant, cfg.StoreBackend)
		log.Fatal("Re-run with -yes to confirm.")
	}

	ctx := context.Background()

	store, codec, err := bootstrap.SetupStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	svc, err := bootstrap.SetupCollection(ctx, cfg, store, codec, nil)
	if err != nil {
		log.Fatalf("Failed to load collection: %v", err)
	}

	if err := svc.Reset(ctx); err != nil {
		log.Fatalf("Failed to reset collection: %v", err)
	}

	stats := svc.Stats(ctx)
	log.Printf("✅ Collection reset complete! Coins: %d", stats.Coins)
}
