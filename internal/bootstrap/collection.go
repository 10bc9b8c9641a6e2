package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/PackSim_Go/internal/collection"
	"github.com/osse101/PackSim_Go/internal/config"
	"github.com/osse101/PackSim_Go/internal/creature"
	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/event"
	"github.com/osse101/PackSim_Go/internal/reveal"
	"github.com/osse101/PackSim_Go/internal/storage"
)

// SetupStore opens the configured backend and codec.
func SetupStore(ctx context.Context, cfg *config.Config) (storage.Store, storage.Codec, error) {
	codec, err := storage.NewCodec(cfg.StoreCodec)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateCodec, err)
	}

	store, err := storage.Open(ctx, cfg.StorageConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}

	slog.Info(LogMsgStoreReady, "backend", cfg.StoreBackend, "codec", codec.Name())
	return store, codec, nil
}

// SetupCollection wires the creature source and reveal generator for the
// configured variant and restores the collection from store.
func SetupCollection(ctx context.Context, cfg *config.Config, store storage.Store, codec storage.Codec, pub event.Publisher) (collection.Service, error) {
	deps := collection.Deps{
		Store:  store,
		Codec:  codec,
		Events: pub,
	}

	revealOpts := []reveal.Option{}
	if pub != nil {
		revealOpts = append(revealOpts, reveal.WithFailureHandler(collection.RevealFailurePublisher(pub)))
	}

	switch cfg.Variant {
	case domain.VariantCatalog:
		catalog, err := creature.LoadCatalog(ctx, cfg.CatalogSource, cfg.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
		}
		deps.Catalog = catalog
		deps.Source = catalog
		deps.Generator = reveal.NewCatalogGenerator(catalog, revealOpts...)
		slog.Info(LogMsgUsingCatalog, "source", cfg.CatalogSource, "entries", catalog.Len())

	default:
		client := creature.NewPokeAPIClient(creature.ClientConfig{
			BaseURL:   cfg.PokeAPIBaseURL,
			Timeout:   cfg.PokeAPITimeout,
			CacheSize: cfg.CreatureCacheSize,
			CacheTTL:  cfg.CreatureCacheTTL,
		})
		gen, err := reveal.NewSourceGenerator(client, reveal.SourceConfig{
			RarityPolicy: cfg.RarityPolicy,
			ShinyChance:  cfg.ShinyChance,
			MaxID:        cfg.PokeAPIMaxID,
		}, revealOpts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedNewGenerator, err)
		}
		deps.Source = client
		deps.Generator = gen
		slog.Info(LogMsgUsingPokeAPI,
			"base_url", cfg.PokeAPIBaseURL,
			"max_id", cfg.PokeAPIMaxID,
			"rarity_policy", cfg.RarityPolicy)
	}

	svc, err := collection.NewService(ctx, collection.Config{
		Variant:       cfg.Variant,
		PackSize:      cfg.PackSize,
		PackCost:      cfg.PackCost,
		StartingCoins: cfg.StartingCoins,
	}, deps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedNewCollection, err)
	}

	stats := svc.Stats(ctx)
	slog.Info(LogMsgCollectionReady,
		"variant", cfg.Variant,
		"coins", stats.Coins,
		"packs_opened", stats.PacksOpened,
		"items", stats.ItemsCaught)
	return svc, nil
}
