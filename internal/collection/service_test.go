package collection

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PackSim_Go/internal/creature"
	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/event"
	"github.com/osse101/PackSim_Go/internal/ledger"
	"github.com/osse101/PackSim_Go/internal/reveal"
	"github.com/osse101/PackSim_Go/internal/storage"
)

// =============================================================================
// Test doubles
// =============================================================================

// scriptedGenerator returns one scripted batch per call, repeating the last.
type scriptedGenerator struct {
	mu      sync.Mutex
	batches [][]domain.Item
	calls   int
	err     error
}

func (g *scriptedGenerator) Reveal(_ context.Context, packSize int) ([]domain.Item, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	i := g.calls
	if i >= len(g.batches) {
		i = len(g.batches) - 1
	}
	g.calls++
	return append([]domain.Item(nil), g.batches[i]...), nil
}

// fakeSource serves "Mon N" creatures and fails the ids in failing.
type fakeSource struct {
	failing map[int]error
}

func (f *fakeSource) FetchByID(_ context.Context, id int) (*domain.Creature, error) {
	if err, ok := f.failing[id]; ok {
		return nil, err
	}
	return &domain.Creature{
		ID:          id,
		Name:        fmt.Sprintf("mon-%d", id),
		DisplayName: fmt.Sprintf("Mon %d", id),
		Image:       "std.png",
		ShinyImage:  "shiny.png",
		Types:       []string{"electric"},
	}, nil
}

func (f *fakeSource) FetchByName(_ context.Context, name string) (*domain.Creature, error) {
	if name == "pikachu" {
		return &domain.Creature{ID: 25, Name: "pikachu", Abilities: []string{"static"}, BaseStats: map[string]int{"speed": 90}}, nil
	}
	return nil, domain.ErrCreatureNotFound
}

// gatedSource holds every fetch until release is closed, like a slow upstream.
// A fetch whose context is done by then fails the way an aborted HTTP call does.
type gatedSource struct {
	fakeSource
	started chan int
	release chan struct{}
}

func newGatedSource(units int) *gatedSource {
	return &gatedSource{started: make(chan int, units), release: make(chan struct{})}
}

func (g *gatedSource) FetchByID(ctx context.Context, id int) (*domain.Creature, error) {
	g.started <- id
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, ctx.Err())
	case <-g.release:
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, ctx.Err())
	}
	return g.fakeSource.FetchByID(ctx, id)
}

func newGatedPokebox(t *testing.T, source *gatedSource, packSize int) Service {
	t.Helper()
	gen, err := reveal.NewSourceGenerator(source, reveal.SourceConfig{RarityPolicy: domain.RarityPolicyTiered, MaxID: 300},
		reveal.WithRand(constRand(0)))
	require.NoError(t, err)
	return newPokeboxService(t, pokeboxConfig(1000, 100, packSize), gen, storage.NewMemoryStore(), nil)
}

// flakyStore fails writes while failWrites is set.
type flakyStore struct {
	*storage.MemoryStore
	mu         sync.Mutex
	failWrites bool
	failReads  bool
}

func (s *flakyStore) setFailWrites(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = v
}

func (s *flakyStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	fail := s.failReads
	s.mu.Unlock()
	if fail {
		return nil, errors.New("connection refused")
	}
	return s.MemoryStore.Get(ctx, key)
}

func (s *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	fail := s.failWrites
	s.mu.Unlock()
	if fail {
		return errors.New("disk full")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

// recordingBus captures published events.
type recordingBus struct {
	mu     sync.Mutex
	events []event.Event
}

func (b *recordingBus) Publish(_ context.Context, e event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
	return nil
}

func (b *recordingBus) types() []event.Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]event.Type, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Type)
	}
	return out
}

func constRand(v float64) func() float64 {
	return func() float64 { return v }
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("item-%d", n)
	}
}

func apiItem(name string, shiny bool, cp int) domain.Item {
	return domain.Item{Name: name, Shiny: shiny, CombatPower: cp, Types: []string{"fire"}}
}

func pokeboxConfig(coins, cost, size int) Config {
	return Config{Variant: domain.VariantPokeBox, PackSize: size, PackCost: cost, StartingCoins: coins}
}

func newPokeboxService(t *testing.T, cfg Config, gen reveal.Generator, store storage.Store, bus event.Publisher) Service {
	t.Helper()
	svc, err := NewService(context.Background(), cfg, Deps{
		Generator: gen,
		Source:    &fakeSource{},
		Store:     store,
		Events:    bus,
	}, ledger.WithIDGenerator(sequentialIDs()))
	require.NoError(t, err)
	return svc
}

// =============================================================================
// Construction
// =============================================================================

func TestNewService_Validation(t *testing.T) {
	gen := &scriptedGenerator{batches: [][]domain.Item{{}}}
	store := storage.NewMemoryStore()

	tests := []struct {
		name    string
		cfg     Config
		deps    Deps
		wantErr error
	}{
		{"unknown variant", Config{Variant: "deluxe", PackSize: 1}, Deps{Generator: gen, Store: store}, domain.ErrUnsupportedVariant},
		{"zero pack size", Config{Variant: domain.VariantPokeBox, PackSize: 0}, Deps{Generator: gen, Store: store}, domain.ErrInvalidPackSize},
		{"oversized pack", Config{Variant: domain.VariantPokeBox, PackSize: domain.MaxPackSize + 1}, Deps{Generator: gen, Store: store}, domain.ErrInvalidPackSize},
		{"negative cost", Config{Variant: domain.VariantCatalog, PackSize: 1, PackCost: -1}, Deps{Generator: gen, Store: store}, domain.ErrInvalidInput},
		{"missing store", Config{Variant: domain.VariantCatalog, PackSize: 1}, Deps{Generator: gen}, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(context.Background(), tt.cfg, tt.deps)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewService_UnreadableStoreIsFatal(t *testing.T) {
	store := &flakyStore{MemoryStore: storage.NewMemoryStore(), failReads: true}
	_, err := NewService(context.Background(), pokeboxConfig(100, 10, 1), Deps{
		Generator: &scriptedGenerator{batches: [][]domain.Item{{}}},
		Store:     store,
	})
	assert.Error(t, err)
}

// =============================================================================
// OpenPack
// =============================================================================

func TestOpenPack_ForcedShinyScenario(t *testing.T) {
	gen, err := reveal.NewSourceGenerator(&fakeSource{}, reveal.SourceConfig{
		RarityPolicy: domain.RarityPolicyShiny,
		ShinyChance:  domain.DefaultShinyChance,
	}, reveal.WithRand(constRand(0)))
	require.NoError(t, err)

	svc := newPokeboxService(t, pokeboxConfig(10, 10, 1), gen, storage.NewMemoryStore(), nil)

	result, err := svc.OpenPack(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	item := result.Items[0]
	assert.True(t, item.Shiny)
	assert.Equal(t, "shiny.png", item.Image)
	assert.Equal(t, domain.MinCombatPower, item.CombatPower)
	assert.Equal(t, 1, result.RareCount)
	assert.True(t, result.AmazingPull())

	assert.Equal(t, domain.UserStats{PacksOpened: 1, ItemsCaught: 1, RareCount: 1, Coins: 0}, svc.Stats(context.Background()))

	_, err = svc.OpenPack(context.Background())
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds, "coins are exhausted")
}

func TestOpenPack_InsufficientFundsChangesNothing(t *testing.T) {
	bus := &recordingBus{}
	gen := &scriptedGenerator{batches: [][]domain.Item{{apiItem("Mon", false, 500)}}}
	svc := newPokeboxService(t, pokeboxConfig(99, 100, 1), gen, storage.NewMemoryStore(), bus)

	_, err := svc.OpenPack(context.Background())
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	assert.Equal(t, domain.UserStats{Coins: 99}, svc.Stats(context.Background()))
	assert.Zero(t, svc.Inventory(context.Background(), domain.InventoryFilter{}).Total)
	assert.Zero(t, gen.calls, "no reveal without payment")
	assert.Empty(t, bus.types())
}

func TestOpenPack_PartialRevealStillCharges(t *testing.T) {
	bus := &recordingBus{}
	source := &fakeSource{failing: map[int]error{1: domain.ErrSourceUnavailable}}
	gen, err := reveal.NewSourceGenerator(source, reveal.SourceConfig{RarityPolicy: domain.RarityPolicyTiered, MaxID: 300},
		reveal.WithRand(constRand(0)),
		reveal.WithFailureHandler(RevealFailurePublisher(bus)))
	require.NoError(t, err)

	svc := newPokeboxService(t, pokeboxConfig(1000, 100, 3), gen, storage.NewMemoryStore(), bus)

	result, err := svc.OpenPack(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Items, "every unit rolled id 1, which fails")
	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, 900, result.Stats.Coins)
	assert.Equal(t, 1, result.Stats.PacksOpened)

	types := bus.types()
	assert.Equal(t, 3, countType(types, event.RevealFailed))
	assert.Equal(t, 1, countType(types, event.PackOpened))
}

func TestOpenPack_GeneratorErrorRefunds(t *testing.T) {
	gen := &scriptedGenerator{err: domain.ErrEmptyCatalog}
	svc := newPokeboxService(t, pokeboxConfig(100, 100, 1), gen, storage.NewMemoryStore(), nil)

	_, err := svc.OpenPack(context.Background())
	require.ErrorIs(t, err, domain.ErrEmptyCatalog)
	assert.Equal(t, domain.UserStats{Coins: 100}, svc.Stats(context.Background()))
}

func TestOpenPack_CatalogVariantMergesDuplicates(t *testing.T) {
	bus := &recordingBus{}
	catalog := creature.DefaultCatalog()
	svc, err := NewService(context.Background(),
		Config{Variant: domain.VariantCatalog, PackSize: 1, PackCost: 0, StartingCoins: 0},
		Deps{
			Generator: reveal.NewCatalogGenerator(catalog, reveal.WithRand(constRand(0))),
			Source:    catalog,
			Catalog:   catalog,
			Store:     storage.NewMemoryStore(),
			Events:    bus,
		})
	require.NoError(t, err)
	ctx := context.Background()

	first, err := svc.OpenPack(ctx)
	require.NoError(t, err)
	second, err := svc.OpenPack(ctx)
	require.NoError(t, err)

	assert.False(t, first.Items[0].JustDuplicated)
	assert.True(t, second.Items[0].JustDuplicated)
	assert.Equal(t, 2, second.Items[0].Quantity)

	view := svc.Inventory(ctx, domain.InventoryFilter{})
	require.Equal(t, 1, view.Total)
	assert.Equal(t, "1", view.Items[0].ID)
	assert.Equal(t, 2, view.Items[0].Quantity)

	assert.Equal(t, 2, svc.Stats(ctx).ItemsCaught)
	assert.Equal(t, 1, countType(bus.types(), event.ItemDuplicated))
	assert.Len(t, svc.Catalog(ctx), 4)
}

func TestOpenPack_ConcurrentCallsAreSerialized(t *testing.T) {
	gen := &scriptedGenerator{batches: [][]domain.Item{{apiItem("Mon", false, 200), apiItem("Mon", true, 300)}}}
	svc := newPokeboxService(t, pokeboxConfig(1000, 50, 2), gen, storage.NewMemoryStore(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.OpenPack(context.Background())
		}()
	}
	wg.Wait()

	st := svc.Stats(context.Background())
	assert.Equal(t, 20, st.PacksOpened, "1000 coins buy exactly 20 packs at 50")
	assert.Equal(t, 0, st.Coins)
	assert.Equal(t, 40, st.ItemsCaught)
	assert.Equal(t, 20, st.RareCount)
}

func TestOpenPack_CancelledCallerStillGetsPaidPack(t *testing.T) {
	source := newGatedSource(3)
	svc := newGatedPokebox(t, source, 3)

	ctx, cancel := context.WithCancel(context.Background())
	type outcome struct {
		result *domain.PackResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		r, err := svc.OpenPack(ctx)
		done <- outcome{r, err}
	}()

	for i := 0; i < 3; i++ {
		<-source.started
	}
	cancel()
	close(source.release)

	got := <-done
	require.NoError(t, got.err)
	assert.Len(t, got.result.Items, 3, "a charged pack is revealed in full")
	assert.Equal(t, 900, got.result.Stats.Coins)
	assert.Equal(t, 3, svc.Inventory(context.Background(), domain.InventoryFilter{}).Total)
}

func TestOpenPack_ReadsDoNotWaitForReveal(t *testing.T) {
	source := newGatedSource(2)
	svc := newGatedPokebox(t, source, 2)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := svc.OpenPack(ctx)
		done <- err
	}()
	<-source.started

	reads := make(chan domain.UserStats, 1)
	go func() {
		_ = svc.Inventory(ctx, domain.InventoryFilter{})
		_ = svc.Duplicates(ctx)
		reads <- svc.Stats(ctx)
	}()

	select {
	case st := <-reads:
		assert.Equal(t, 900, st.Coins, "the pack is paid before it is revealed")
	case <-time.After(2 * time.Second):
		t.Fatal("reads blocked behind an in-flight reveal")
	}

	close(source.release)
	require.NoError(t, <-done)
	assert.Equal(t, 2, svc.Inventory(ctx, domain.InventoryFilter{}).Total)
}

// =============================================================================
// Selling
// =============================================================================

func TestSell(t *testing.T) {
	bus := &recordingBus{}
	gen := &scriptedGenerator{batches: [][]domain.Item{{apiItem("Charmander", true, 505), apiItem("Bulbasaur", false, 100)}}}
	svc := newPokeboxService(t, pokeboxConfig(100, 100, 2), gen, storage.NewMemoryStore(), bus)
	ctx := context.Background()

	_, err := svc.OpenPack(ctx)
	require.NoError(t, err)

	t.Run("unknown id is a no-op", func(t *testing.T) {
		result, err := svc.Sell(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, result.Sold)
		assert.Equal(t, 0, result.Stats.Coins)
		assert.Equal(t, 2, result.Stats.ItemsCaught)
	})

	t.Run("known id pays salvage", func(t *testing.T) {
		result, err := svc.Sell(ctx, "item-1")
		require.NoError(t, err)
		assert.True(t, result.Sold)
		assert.Equal(t, 101, result.Value, "floor(505 * 0.2)")
		assert.Equal(t, domain.UserStats{PacksOpened: 1, ItemsCaught: 1, RareCount: 0, Coins: 101}, result.Stats)
		assert.Equal(t, 1, svc.Inventory(ctx, domain.InventoryFilter{}).Total)
	})

	assert.Equal(t, 1, countType(bus.types(), event.ItemSold))
}

func TestSellAllDuplicates_PokeBox(t *testing.T) {
	gen := &scriptedGenerator{batches: [][]domain.Item{{
		apiItem("Pikachu", false, 100),
		apiItem("pikachu", true, 600),
		apiItem("Eevee", false, 250),
		apiItem("Pikachu", false, 1099),
		apiItem("Eevee", false, 300),
	}}}
	svc := newPokeboxService(t, pokeboxConfig(100, 100, 5), gen, storage.NewMemoryStore(), nil)
	ctx := context.Background()

	_, err := svc.OpenPack(ctx)
	require.NoError(t, err)
	require.Len(t, svc.Duplicates(ctx), 3)

	result, err := svc.SellAllDuplicates(ctx)
	require.NoError(t, err)
	assert.True(t, result.Sold)
	assert.Equal(t, 3, result.Copies)
	assert.Equal(t, 120+219+60, result.Value)

	view := svc.Inventory(ctx, domain.InventoryFilter{})
	names := map[string]int{}
	for _, it := range view.Items {
		names[it.Name]++
	}
	assert.Equal(t, map[string]int{"Pikachu": 1, "Eevee": 1}, names)
	assert.Empty(t, svc.Duplicates(ctx))

	st := svc.Stats(ctx)
	assert.Equal(t, 2, st.ItemsCaught)
	assert.Equal(t, 0, st.RareCount, "the shiny duplicate was sold")
	assert.Equal(t, result.Value, st.Coins)

	again, err := svc.SellAllDuplicates(ctx)
	require.NoError(t, err)
	assert.False(t, again.Sold)
}

func TestCoinConservation(t *testing.T) {
	gen := &scriptedGenerator{batches: [][]domain.Item{{apiItem("A", false, 400), apiItem("A", false, 800)}}}
	svc := newPokeboxService(t, pokeboxConfig(300, 100, 2), gen, storage.NewMemoryStore(), nil)
	ctx := context.Background()

	spent, earned := 0, 0
	for i := 0; i < 3; i++ {
		r, err := svc.OpenPack(ctx)
		require.NoError(t, err)
		spent += r.CoinsPaid
	}
	r, err := svc.SellAllDuplicates(ctx)
	require.NoError(t, err)
	earned += r.Value

	view := svc.Inventory(ctx, domain.InventoryFilter{})
	require.Len(t, view.Items, 1)
	s, err := svc.Sell(ctx, view.Items[0].ID)
	require.NoError(t, err)
	earned += s.Value

	assert.Equal(t, 300-spent+earned, svc.Stats(ctx).Coins)
	assert.Equal(t, 0, svc.Stats(ctx).ItemsCaught)
}

// =============================================================================
// Persistence
// =============================================================================

func TestPersistence_RoundTrip(t *testing.T) {
	for _, codecName := range []string{storage.CodecJSON, storage.CodecMsgpack} {
		t.Run(codecName, func(t *testing.T) {
			codec, err := storage.NewCodec(codecName)
			require.NoError(t, err)
			store := storage.NewMemoryStore()
			ctx := context.Background()

			gen := &scriptedGenerator{batches: [][]domain.Item{{apiItem("Mon", true, 777), apiItem("Mon", false, 150)}}}
			deps := Deps{Generator: gen, Store: store, Codec: codec}
			svc, err := NewService(ctx, pokeboxConfig(500, 100, 2), deps)
			require.NoError(t, err)

			_, err = svc.OpenPack(ctx)
			require.NoError(t, err)
			_, err = svc.OpenPack(ctx)
			require.NoError(t, err)
			_, err = svc.SellAllDuplicates(ctx)
			require.NoError(t, err)

			before := svc.Inventory(ctx, domain.InventoryFilter{})
			beforeStats := svc.Stats(ctx)

			reloaded, err := NewService(ctx, pokeboxConfig(500, 100, 2), deps)
			require.NoError(t, err)

			after := reloaded.Inventory(ctx, domain.InventoryFilter{})
			require.Equal(t, before.Total, after.Total)
			for i := range before.Items {
				assert.Equal(t, before.Items[i].ID, after.Items[i].ID)
				assert.Equal(t, before.Items[i].Name, after.Items[i].Name)
				assert.Equal(t, before.Items[i].Shiny, after.Items[i].Shiny)
				assert.Equal(t, before.Items[i].CombatPower, after.Items[i].CombatPower)
			}
			assert.Equal(t, beforeStats, reloaded.Stats(ctx))
		})
	}
}

func TestLoad_CorruptStateStartsEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, domain.StorageKeyInventory, []byte("{not json")))
	require.NoError(t, store.Set(ctx, domain.StorageKeyStatsPokeBox, []byte("[]")))

	svc := newPokeboxService(t, pokeboxConfig(1000, 100, 1), &scriptedGenerator{batches: [][]domain.Item{{}}}, store, nil)

	assert.Zero(t, svc.Inventory(ctx, domain.InventoryFilter{}).Total)
	assert.Equal(t, domain.UserStats{Coins: 1000}, svc.Stats(ctx))
}

func TestLoad_MissingStatsAreRecomputed(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, domain.StorageKeyCollected,
		[]byte(`[{"id":"2","catalog_id":2,"name":"Aquanix","rarity":"rare","quantity":3,"combat_power":400},
		         {"id":"1","catalog_id":1,"name":"Flameling","rarity":"common","quantity":1,"combat_power":200}]`)))

	catalog := creature.DefaultCatalog()
	svc, err := NewService(ctx,
		Config{Variant: domain.VariantCatalog, PackSize: 1, StartingCoins: 50},
		Deps{Generator: reveal.NewCatalogGenerator(catalog), Catalog: catalog, Store: store})
	require.NoError(t, err)

	assert.Equal(t, domain.UserStats{PacksOpened: 0, ItemsCaught: 4, RareCount: 3, Coins: 50}, svc.Stats(ctx))
}

func TestStoreWriteFailureRollsBack(t *testing.T) {
	store := &flakyStore{MemoryStore: storage.NewMemoryStore()}
	bus := &recordingBus{}
	gen := &scriptedGenerator{batches: [][]domain.Item{{apiItem("Mon", false, 500), apiItem("Mon", false, 500)}}}
	svc := newPokeboxService(t, pokeboxConfig(1000, 100, 2), gen, store, bus)
	ctx := context.Background()

	_, err := svc.OpenPack(ctx)
	require.NoError(t, err)
	before := svc.Stats(ctx)
	eventsBefore := len(bus.types())

	store.setFailWrites(true)

	_, err = svc.OpenPack(ctx)
	assert.ErrorIs(t, err, domain.ErrStoreWrite)
	_, err = svc.SellAllDuplicates(ctx)
	assert.ErrorIs(t, err, domain.ErrStoreWrite)
	_, err = svc.Sell(ctx, "item-1")
	assert.ErrorIs(t, err, domain.ErrStoreWrite)

	assert.Equal(t, before, svc.Stats(ctx))
	assert.Equal(t, 2, svc.Inventory(ctx, domain.InventoryFilter{}).Total)
	assert.Len(t, bus.types(), eventsBefore, "failed mutations publish nothing")

	store.setFailWrites(false)
	result, err := svc.Sell(ctx, "item-1")
	require.NoError(t, err)
	assert.True(t, result.Sold)
}

func TestReset(t *testing.T) {
	store := storage.NewMemoryStore()
	gen := &scriptedGenerator{batches: [][]domain.Item{{apiItem("Mon", false, 500)}}}
	svc := newPokeboxService(t, pokeboxConfig(1000, 100, 1), gen, store, nil)
	ctx := context.Background()

	_, err := svc.OpenPack(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Reset(ctx))

	assert.Equal(t, domain.UserStats{Coins: 1000}, svc.Stats(ctx))
	_, err = store.Get(ctx, domain.StorageKeyInventory)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestVariantsKeepSeparateStats(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	catalog := creature.DefaultCatalog()
	catalogCfg := Config{Variant: domain.VariantCatalog, PackSize: 1, PackCost: 100, StartingCoins: 1000}
	newCatalog := func() Service {
		svc, err := NewService(ctx, catalogCfg, Deps{
			Generator: reveal.NewCatalogGenerator(catalog, reveal.WithRand(constRand(0))),
			Catalog:   catalog,
			Store:     store,
		})
		require.NoError(t, err)
		return svc
	}

	cat := newCatalog()
	for i := 0; i < 3; i++ {
		_, err := cat.OpenPack(ctx)
		require.NoError(t, err)
	}
	catStats := cat.Stats(ctx)
	require.Equal(t, 3, catStats.PacksOpened)

	gen := &scriptedGenerator{batches: [][]domain.Item{{apiItem("Mon", false, 500)}}}
	box := newPokeboxService(t, pokeboxConfig(500, 50, 1), gen, store, nil)
	assert.Equal(t, domain.UserStats{Coins: 500}, box.Stats(ctx), "a fresh variant starts from its own starting coins")

	_, err := box.OpenPack(ctx)
	require.NoError(t, err)
	require.NoError(t, box.Reset(ctx))

	assert.Equal(t, catStats, newCatalog().Stats(ctx), "resetting one variant leaves the other intact")
	_, err = store.Get(ctx, domain.StorageKeyStatsCatalog)
	assert.NoError(t, err)
	_, err = store.Get(ctx, domain.StorageKeyStatsPokeBox)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

// =============================================================================
// Read models
// =============================================================================

func TestProfileAndTypes(t *testing.T) {
	gen := &scriptedGenerator{batches: [][]domain.Item{{
		{Name: "Sparky", Types: []string{"electric", "cosmic"}, Shiny: true, CombatPower: 300},
	}}}
	svc := newPokeboxService(t, pokeboxConfig(1000, 100, 1), gen, storage.NewMemoryStore(), nil)
	ctx := context.Background()

	_, err := svc.OpenPack(ctx)
	require.NoError(t, err)

	profile := svc.Profile(ctx)
	assert.Equal(t, 1, profile.Level)
	assert.Equal(t, 60, profile.Progress, "10 xp per pack + 50 per rare")
	require.Len(t, profile.History, 1)
	assert.True(t, profile.Achievements[0].Unlocked)

	badges := svc.Types(ctx)
	byName := map[string]domain.TypeBadge{}
	for _, b := range badges {
		byName[b.Name] = b
	}
	assert.True(t, byName["electric"].Owned)
	assert.Equal(t, "#fc3", byName["electric"].Color)
	assert.False(t, byName["water"].Owned)
	assert.Equal(t, domain.DefaultTypeColor, byName["cosmic"].Color)
	assert.True(t, byName["cosmic"].Owned)
	assert.Len(t, badges, len(domain.TypeColors)+1)
}

func TestCreature(t *testing.T) {
	svc := newPokeboxService(t, pokeboxConfig(0, 0, 1), &scriptedGenerator{batches: [][]domain.Item{{}}}, storage.NewMemoryStore(), nil)
	ctx := context.Background()

	cr, err := svc.Creature(ctx, "pikachu")
	require.NoError(t, err)
	assert.Equal(t, []string{"static"}, cr.Abilities)

	_, err = svc.Creature(ctx, "missingno")
	assert.ErrorIs(t, err, domain.ErrCreatureNotFound)
	assert.Empty(t, svc.Catalog(ctx))
}

func countType(types []event.Type, want event.Type) int {
	n := 0
	for _, t := range types {
		if t == want {
			n++
		}
	}
	return n
}
