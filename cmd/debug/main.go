package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/osse101/PackSim_Go/internal/bootstrap"
	"github.com/osse101/PackSim_Go/internal/config"
	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/storage"
	"github.com/osse101/PackSim_Go/internal/utils"
)

// export is the layout written by -out
type export struct {
	Backend string                      `json:"backend"`
	Codec   string                      `json:"codec"`
	Stats   map[string]domain.UserStats `json:"stats"`
	Items   map[string][]domain.Item    `json:"items"`
}

// debug dumps the raw persisted collection state of every variant, decoded
// with the configured codec. -out additionally writes it as JSON.
func main() {
	out := flag.String("out", "", "write the decoded state to this JSON file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	store, codec, err := bootstrap.SetupStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	fmt.Printf("Backend: %s, codec: %s\n", cfg.StoreBackend, codec.Name())
	dumped := export{
		Backend: cfg.StoreBackend,
		Codec:   codec.Name(),
		Stats:   make(map[string]domain.UserStats),
		Items:   make(map[string][]domain.Item),
	}

	for _, key := range []string{domain.StorageKeyStatsCatalog, domain.StorageKeyStatsPokeBox} {
		fmt.Printf("--- %s ---\n", key)
		var stats domain.UserStats
		if !dump(ctx, store, codec, key, &stats) {
			continue
		}
		fmt.Printf("Packs: %d, Caught: %d, Rare: %d, Coins: %d\n",
			stats.PacksOpened, stats.ItemsCaught, stats.RareCount, stats.Coins)
		dumped.Stats[key] = stats
	}

	for _, key := range []string{domain.StorageKeyCollected, domain.StorageKeyInventory} {
		fmt.Printf("--- %s ---\n", key)
		var items []domain.Item
		if !dump(ctx, store, codec, key, &items) {
			continue
		}
		for _, it := range items {
			fmt.Printf("ID: %s, Name: %s, Rarity: %s, Shiny: %t, Qty: %d, CP: %d\n",
				it.ID, it.Name, it.Rarity, it.Shiny, it.Quantity, it.CombatPower)
		}
		fmt.Printf("Total: %d\n", len(items))
		dumped.Items[key] = items
	}

	if *out != "" {
		if err := utils.SaveJSON(*out, dumped); err != nil {
			log.Fatalf("Failed to write %s: %v", *out, err)
		}
		fmt.Printf("Wrote %s\n", *out)
	}
}

func dump(ctx context.Context, store storage.Store, codec storage.Codec, key string, v interface{}) bool {
	data, err := store.Get(ctx, key)
	if errors.Is(err, domain.ErrKeyNotFound) {
		fmt.Println("(empty)")
		return false
	}
	if err != nil {
		log.Printf("Failed to read %s: %v", key, err)
		return false
	}
	if err := codec.Unmarshal(data, v); err != nil {
		log.Printf("Failed to decode %s (%d bytes): %v", key, len(data), err)
		return false
	}
	return true
}
