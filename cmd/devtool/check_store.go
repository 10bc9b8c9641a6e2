package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PackSim_Go/internal/bootstrap"
	"github.com/osse101/PackSim_Go/internal/config"
)

const storeCheckTimeout = 10 * time.Second

type CheckStoreCommand struct{}

func (c *CheckStoreCommand) Name() string { return "check-store" }

func (c *CheckStoreCommand) Description() string {
	return "Open the configured store backend and ping it"
}

func (c *CheckStoreCommand) Run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Checking %s store...", cfg.StoreBackend))

	ctx, cancel := context.WithTimeout(context.Background(), storeCheckTimeout)
	defer cancel()

	start := time.Now()
	store, codec, err := bootstrap.SetupStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("store unavailable: %w", err)
	}
	defer store.Close()

	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("store ping failed: %w", err)
	}

	PrintSuccess("Store ready (codec %s, %v)", codec.Name(), time.Since(start).Round(time.Millisecond))
	return nil
}
