// Package collection is the application state of one collector: every
// purchase, reveal and sell goes through a Service so the ledger, the
// economy counters and the persisted copy change together.
package collection

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/PackSim_Go/internal/creature"
	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/event"
	"github.com/osse101/PackSim_Go/internal/ledger"
	"github.com/osse101/PackSim_Go/internal/logger"
	"github.com/osse101/PackSim_Go/internal/reveal"
	"github.com/osse101/PackSim_Go/internal/stats"
	"github.com/osse101/PackSim_Go/internal/storage"
)

// Service defines the collection operations exposed to the HTTP layer
type Service interface {
	OpenPack(ctx context.Context) (*domain.PackResult, error)
	Inventory(ctx context.Context, filter domain.InventoryFilter) domain.InventoryView
	Duplicates(ctx context.Context) []domain.Item
	Sell(ctx context.Context, itemID string) (*domain.SellResult, error)
	SellAllDuplicates(ctx context.Context) (*domain.SellResult, error)
	Stats(ctx context.Context) domain.UserStats
	Profile(ctx context.Context) domain.Profile
	Creature(ctx context.Context, name string) (*domain.Creature, error)
	Catalog(ctx context.Context) []domain.CatalogEntry
	Types(ctx context.Context) []domain.TypeBadge
	Reset(ctx context.Context) error
}

// Config holds the economy settings of a collection
type Config struct {
	Variant       string `validate:"oneof=catalog pokebox"`
	PackSize      int    `validate:"min=1,max=20"`
	PackCost      int    `validate:"gte=0"`
	StartingCoins int    `validate:"gte=0"`
}

// Deps are the collaborators of a Service. Catalog may be nil for the
// pokebox variant; Events may be nil to publish nothing.
type Deps struct {
	Generator reveal.Generator
	Source    creature.Source
	Catalog   *creature.Catalog
	Store     storage.Store
	Codec     storage.Codec
	Events    event.Publisher
}

type service struct {
	// writeMu serializes mutations; mu guards ledger and tracker and is
	// never held across a reveal.
	writeMu sync.Mutex
	mu      sync.Mutex

	cfg      Config
	itemsKey string
	statsKey string

	ledger  *ledger.Ledger
	tracker *stats.Tracker

	gen     reveal.Generator
	source  creature.Source
	catalog *creature.Catalog
	store   storage.Store
	codec   storage.Codec
	events  event.Publisher
}

// NewService builds the collection for the configured variant and restores
// its persisted state.
func NewService(ctx context.Context, cfg Config, deps Deps, opts ...ledger.Option) (Service, error) {
	var (
		policy             ledger.Policy
		itemsKey, statsKey string
	)
	switch cfg.Variant {
	case domain.VariantCatalog:
		policy, itemsKey, statsKey = ledger.PolicyMerge, domain.StorageKeyCollected, domain.StorageKeyStatsCatalog
	case domain.VariantPokeBox:
		policy, itemsKey, statsKey = ledger.PolicyAppend, domain.StorageKeyInventory, domain.StorageKeyStatsPokeBox
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedVariant, cfg.Variant)
	}
	if cfg.PackSize < 1 || cfg.PackSize > domain.MaxPackSize {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidPackSize, cfg.PackSize)
	}
	if cfg.PackCost < 0 || cfg.StartingCoins < 0 {
		return nil, fmt.Errorf("%w: negative pack cost or starting coins", domain.ErrInvalidInput)
	}
	if deps.Generator == nil || deps.Store == nil {
		return nil, fmt.Errorf("%w: generator and store are required", domain.ErrInvalidInput)
	}
	if deps.Codec == nil {
		deps.Codec = storage.JSONCodec{}
	}

	s := &service{
		cfg:      cfg,
		itemsKey: itemsKey,
		statsKey: statsKey,
		ledger:   ledger.New(policy, opts...),
		tracker:  stats.NewTracker(domain.UserStats{Coins: cfg.StartingCoins}, cfg.PackCost),
		gen:      deps.Generator,
		source:   deps.Source,
		catalog:  deps.Catalog,
		store:    deps.Store,
		codec:    deps.Codec,
		events:   deps.Events,
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// OpenPack charges one pack, reveals it and records every revealed item.
// Units the creature source could not deliver are simply missing from the
// result; the price is still paid. Once charged, the pack is revealed and
// saved even if ctx is cancelled.
func (s *service) OpenPack(ctx context.Context) (*domain.PackResult, error) {
	log := logger.FromContext(ctx)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	snap := s.snapshot()
	if err := s.tracker.Purchase(); err != nil {
		s.mu.Unlock()
		log.Info(LogMsgPurchaseRejected, LogFieldCoins, snap.stats.Coins, LogFieldError, err)
		return nil, err
	}
	s.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	revealed, err := s.gen.Reveal(ctx, s.cfg.PackSize)

	s.mu.Lock()
	if err != nil {
		s.restore(snap)
		s.mu.Unlock()
		return nil, fmt.Errorf("%s: %w", ErrMsgRevealFailed, err)
	}

	result := &domain.PackResult{
		Items:     make([]domain.Item, 0, len(revealed)),
		Requested: s.cfg.PackSize,
		CoinsPaid: s.tracker.PackCost(),
	}
	events := make([]event.Event, 0, len(revealed)+1)
	for _, it := range revealed {
		d := s.ledger.Add(it)
		s.tracker.RecordAdd(d)
		result.RareCount += d.RareCopies()

		shown := d.Item
		shown.JustDuplicated = d.Merged
		result.Items = append(result.Items, shown)
		events = append(events, event.NewItemRevealedEvent(d.Item, d.Merged))
	}

	if err := s.persist(ctx, snap); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	result.Stats = s.tracker.Stats()
	events = append(events, event.NewPackOpenedEvent(result.Requested, len(result.Items), result.RareCount, result.CoinsPaid, result.Stats.Coins))
	s.mu.Unlock()

	log.Info(LogMsgPackOpened,
		LogFieldRevealed, len(result.Items),
		LogFieldRareCount, result.RareCount,
		LogFieldCoins, result.Stats.Coins)
	s.publish(ctx, events...)
	return result, nil
}

// Inventory returns the filtered view with the unfiltered total.
func (s *service) Inventory(_ context.Context, filter domain.InventoryFilter) domain.InventoryView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.View(filter)
}

// Duplicates returns the sellable surplus.
func (s *service) Duplicates(_ context.Context) []domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Duplicates()
}

// Sell sells the entry with itemID. An unknown id is a no-op with Sold=false.
func (s *service) Sell(ctx context.Context, itemID string) (*domain.SellResult, error) {
	log := logger.FromContext(ctx)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	snap := s.snapshot()

	d, ok := s.ledger.Sell(itemID, domain.Item.SalvageValue)
	if !ok {
		result := &domain.SellResult{Stats: s.tracker.Stats()}
		s.mu.Unlock()
		log.Info(LogMsgSellUnknownItem, LogFieldItemID, itemID)
		return result, nil
	}
	s.tracker.RecordSell(d)

	if err := s.persist(ctx, snap); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	result := &domain.SellResult{Sold: true, Copies: d.Copies, Value: d.Value, Stats: s.tracker.Stats()}
	s.mu.Unlock()

	log.Info(LogMsgItemSold, LogFieldItemID, d.Item.ID, LogFieldItemName, d.Item.Name, LogFieldValue, d.Value)
	s.publish(ctx, event.NewItemSoldEvent(d.Item, d.Copies, d.Value))
	return result, nil
}

// SellAllDuplicates sells every duplicate in one step.
func (s *service) SellAllDuplicates(ctx context.Context) (*domain.SellResult, error) {
	log := logger.FromContext(ctx)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	snap := s.snapshot()

	deltas := s.ledger.SellAllDuplicates(domain.Item.SalvageValue)
	if len(deltas) == 0 {
		result := &domain.SellResult{Stats: s.tracker.Stats()}
		s.mu.Unlock()
		return result, nil
	}

	result := &domain.SellResult{Sold: true}
	events := make([]event.Event, 0, len(deltas))
	for _, d := range deltas {
		s.tracker.RecordSell(d)
		result.Copies += d.Copies
		result.Value += d.Value
		events = append(events, event.NewItemSoldEvent(d.Item, d.Copies, d.Value))
	}

	if err := s.persist(ctx, snap); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	result.Stats = s.tracker.Stats()
	s.mu.Unlock()

	log.Info(LogMsgDuplicatesSold, LogFieldItems, result.Copies, LogFieldValue, result.Value)
	s.publish(ctx, events...)
	return result, nil
}

// Stats returns the current counters.
func (s *service) Stats(_ context.Context) domain.UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Stats()
}

// Profile returns the derived profile view.
func (s *service) Profile(_ context.Context) domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stats.BuildProfile(s.tracker.Stats(), s.ledger.Items())
}

// Creature looks up the detail view of a creature by name.
func (s *service) Creature(ctx context.Context, name string) (*domain.Creature, error) {
	if s.source == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCreatureNotFound, name)
	}
	cr, err := s.source.FetchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgLookupFailed, name, err)
	}
	return cr, nil
}

// Catalog returns the local catalog entries, empty without a catalog.
func (s *service) Catalog(_ context.Context) []domain.CatalogEntry {
	if s.catalog == nil {
		return []domain.CatalogEntry{}
	}
	return s.catalog.Entries()
}

// Types returns the type colour table, flagging types present in the collection.
func (s *service) Types(_ context.Context) []domain.TypeBadge {
	s.mu.Lock()
	owned := s.ledger.Types()
	s.mu.Unlock()

	ownedSet := make(map[string]bool, len(owned))
	for _, t := range owned {
		ownedSet[t] = true
	}

	badges := make([]domain.TypeBadge, 0, len(domain.TypeColors)+len(owned))
	for name, color := range domain.TypeColors {
		badges = append(badges, domain.TypeBadge{Name: name, Color: color, Owned: ownedSet[name]})
	}
	for _, t := range owned {
		if _, known := domain.TypeColors[t]; !known {
			badges = append(badges, domain.TypeBadge{Name: t, Color: domain.DefaultTypeColor, Owned: true})
		}
	}
	sort.Slice(badges, func(i, j int) bool { return badges[i].Name < badges[j].Name })
	return badges
}

// Reset discards the collection and restores the starting coins. The other
// variant's persisted state is left alone.
func (s *service) Reset(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{s.itemsKey, s.statsKey} {
		if err := s.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
		}
	}
	s.ledger.Load(nil)
	s.tracker.Restore(domain.UserStats{Coins: s.cfg.StartingCoins})

	logger.FromContext(ctx).Info(LogMsgCollectionReset, LogFieldVariant, s.cfg.Variant)
	return nil
}

func (s *service) publish(ctx context.Context, events ...event.Event) {
	if s.events == nil {
		return
	}
	for _, evt := range events {
		if err := s.events.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, LogFieldError, err)
		}
	}
}

// RevealFailurePublisher reports dropped pack units on the event bus.
func RevealFailurePublisher(pub event.Publisher) reveal.FailureHandler {
	return func(ctx context.Context, creatureID int, err error) {
		if pubErr := pub.Publish(ctx, event.NewRevealFailedEvent(creatureID, err)); pubErr != nil {
			logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.RevealFailed, LogFieldError, pubErr)
		}
	}
}
