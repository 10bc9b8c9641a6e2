package reveal

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PackSim_Go/internal/creature"
	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/testing/leaktest"
	"github.com/osse101/PackSim_Go/mocks"
)

// fakeSource serves creatures by id and fails ids listed in failing.
type fakeSource struct {
	failing map[int]error
	calls   atomic.Int32
	delay   time.Duration
}

func (f *fakeSource) FetchByID(_ context.Context, id int) (*domain.Creature, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if err, ok := f.failing[id]; ok {
		return nil, err
	}
	return &domain.Creature{
		ID:          id,
		Name:        fmt.Sprintf("mon-%d", id),
		DisplayName: fmt.Sprintf("Mon %d", id),
		Image:       fmt.Sprintf("https://img/%d.png", id),
		ShinyImage:  fmt.Sprintf("https://img/shiny/%d.png", id),
		Types:       []string{"normal"},
		Height:      7,
		Weight:      69,
	}, nil
}

func (f *fakeSource) FetchByName(ctx context.Context, name string) (*domain.Creature, error) {
	return nil, domain.ErrCreatureNotFound
}

// constRand always returns v.
func constRand(v float64) func() float64 {
	return func() float64 { return v }
}

// seqRand returns values in order, then repeats the last one.
func seqRand(values ...float64) func() float64 {
	var mu sync.Mutex
	i := 0
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

func fixedClock() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestCatalogGenerator_ExactPackSize(t *testing.T) {
	gen := NewCatalogGenerator(creature.DefaultCatalog())

	for _, size := range []int{1, 5, domain.MaxPackSize} {
		t.Run(fmt.Sprintf("size %d", size), func(t *testing.T) {
			items, err := gen.Reveal(context.Background(), size)
			require.NoError(t, err)
			assert.Len(t, items, size)
			for _, it := range items {
				assert.True(t, it.Rarity.IsValid())
				assert.GreaterOrEqual(t, it.CombatPower, domain.MinCombatPower)
				assert.LessOrEqual(t, it.CombatPower, domain.MaxCombatPower)
				assert.Equal(t, fmt.Sprint(it.CatalogID), it.ID, "catalog ids are stable")
			}
		})
	}
}

func TestGenerators_RejectInvalidPackSize(t *testing.T) {
	src, err := NewSourceGenerator(&fakeSource{}, SourceConfig{RarityPolicy: domain.RarityPolicyTiered})
	require.NoError(t, err)

	gens := map[string]Generator{
		"catalog": NewCatalogGenerator(creature.DefaultCatalog()),
		"source":  src,
	}
	for name, gen := range gens {
		for _, size := range []int{0, -1, domain.MaxPackSize + 1} {
			t.Run(fmt.Sprintf("%s/%d", name, size), func(t *testing.T) {
				items, err := gen.Reveal(context.Background(), size)
				assert.Nil(t, items)
				assert.ErrorIs(t, err, domain.ErrInvalidPackSize)
			})
		}
	}
}

func TestCatalogGenerator_WeightedSelection(t *testing.T) {
	// Default catalog weights: 60 | 25 | 10 | 5 -> cumulative 60, 85, 95, 100.
	tests := []struct {
		roll     float64
		expected string
	}{
		{0.0, "Flameling"},
		{0.599, "Flameling"},
		{0.60, "Aquanix"},
		{0.849, "Aquanix"},
		{0.85, "Voltazor"},
		{0.949, "Voltazor"},
		{0.95, "Mystarion"},
		{0.999, "Mystarion"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.roll), func(t *testing.T) {
			gen := NewCatalogGenerator(creature.DefaultCatalog(), WithRand(constRand(tt.roll)))
			items, err := gen.Reveal(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, items[0].Name)
		})
	}
}

func TestCatalogGenerator_FrequencyConverges(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping frequency test in short mode")
	}
	rng := rand.New(rand.NewSource(42))
	gen := NewCatalogGenerator(creature.DefaultCatalog(), WithRand(rng.Float64))

	const draws = 100000
	counts := map[domain.Rarity]int{}
	for i := 0; i < draws/domain.MaxPackSize; i++ {
		items, err := gen.Reveal(context.Background(), domain.MaxPackSize)
		require.NoError(t, err)
		for _, it := range items {
			counts[it.Rarity]++
		}
	}

	expected := map[domain.Rarity]float64{
		domain.RarityCommon:    0.60,
		domain.RarityRare:      0.25,
		domain.RarityEpic:      0.10,
		domain.RarityLegendary: 0.05,
	}
	for r, p := range expected {
		assert.InDelta(t, p, float64(counts[r])/draws, 0.01, "rarity %s", r)
	}
}

func TestTierForRoll(t *testing.T) {
	tests := []struct {
		roll     float64
		expected domain.Rarity
	}{
		{0.0, domain.RarityLegendary},
		{0.0199, domain.RarityLegendary},
		{0.02, domain.RarityEpic},
		{0.0799, domain.RarityEpic},
		{0.08, domain.RarityRare},
		{0.1999, domain.RarityRare},
		{0.20, domain.RarityUncommon},
		{0.3999, domain.RarityUncommon},
		{0.40, domain.RarityCommon},
		{0.9999, domain.RarityCommon},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, TierForRoll(tt.roll), "roll %v", tt.roll)
	}
}

func TestTierForRoll_FrequencyConverges(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping frequency test in short mode")
	}
	rng := rand.New(rand.NewSource(7))

	const draws = 100000
	counts := map[domain.Rarity]int{}
	for i := 0; i < draws; i++ {
		counts[TierForRoll(rng.Float64())]++
	}

	expected := map[domain.Rarity]float64{
		domain.RarityLegendary: 0.02,
		domain.RarityEpic:      0.06,
		domain.RarityRare:      0.12,
		domain.RarityUncommon:  0.20,
		domain.RarityCommon:    0.60,
	}
	for r, p := range expected {
		assert.InDelta(t, p, float64(counts[r])/draws, 0.01, "rarity %s", r)
	}
}

func TestSourceGenerator_TieredPack(t *testing.T) {
	src := &fakeSource{}
	gen, err := NewSourceGenerator(src, SourceConfig{RarityPolicy: domain.RarityPolicyTiered, MaxID: 300},
		WithRand(seqRand(
			0.0, 0.01, 0.0, // id 1, legendary, cp 100
			0.5, 0.5, 0.9999999, // id 151, common, cp 1099
		)),
		WithClock(fixedClock))
	require.NoError(t, err)

	items, err := gen.Reveal(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 1, items[0].CatalogID)
	assert.Equal(t, "Mon 1", items[0].Name)
	assert.Equal(t, domain.RarityLegendary, items[0].Rarity)
	assert.Equal(t, 100, items[0].CombatPower)
	assert.False(t, items[0].Shiny)
	assert.Equal(t, "https://img/1.png", items[0].Image)
	assert.Equal(t, fixedClock(), items[0].RevealedAt)
	assert.Equal(t, 7, items[0].Height)
	assert.Empty(t, items[0].ID, "ids are assigned by the ledger")

	assert.Equal(t, 151, items[1].CatalogID)
	assert.Equal(t, domain.RarityCommon, items[1].Rarity)
	assert.Equal(t, 1099, items[1].CombatPower)
}

func TestSourceGenerator_ShinyPolicy(t *testing.T) {
	tests := []struct {
		name      string
		attrRoll  float64
		wantShiny bool
		wantImage string
	}{
		{"forced shiny", 0.0, true, "https://img/shiny/1.png"},
		{"just under chance", 0.0999, true, "https://img/shiny/1.png"},
		{"at chance is plain", 0.10, false, "https://img/1.png"},
		{"plain", 0.7, false, "https://img/1.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewSourceGenerator(&fakeSource{},
				SourceConfig{RarityPolicy: domain.RarityPolicyShiny, ShinyChance: domain.DefaultShinyChance},
				WithRand(seqRand(0.0, tt.attrRoll, 0.0)))
			require.NoError(t, err)

			items, err := gen.Reveal(context.Background(), 1)
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, tt.wantShiny, items[0].Shiny)
			assert.Equal(t, tt.wantImage, items[0].Image)
			assert.Empty(t, items[0].Rarity, "shiny policy leaves rarity unset")
		})
	}
}

func TestSourceGenerator_ShinyFallsBackToStandardImage(t *testing.T) {
	gen, err := NewSourceGenerator(sourceFunc(func(id int) (*domain.Creature, error) {
		return &domain.Creature{ID: id, Name: "plain", Image: "std.png"}, nil
	}), SourceConfig{RarityPolicy: domain.RarityPolicyShiny, ShinyChance: 1}, WithRand(constRand(0)))
	require.NoError(t, err)

	items, err := gen.Reveal(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, items[0].Shiny)
	assert.Equal(t, "std.png", items[0].Image)
	assert.Equal(t, "plain", items[0].Name, "falls back to the raw name")
}

func TestSourceGenerator_PartialFailureDropsUnits(t *testing.T) {
	src := &fakeSource{failing: map[int]error{
		1:   fmt.Errorf("wrap: %w", domain.ErrSourceUnavailable),
		151: domain.ErrMalformedCreature,
	}}

	var failed sync.Map
	gen, err := NewSourceGenerator(src, SourceConfig{RarityPolicy: domain.RarityPolicyTiered, MaxID: 300},
		WithRand(seqRand(
			0.0, 0.5, 0.5, // id 1 fails
			0.5, 0.5, 0.5, // id 151 fails
			0.999, 0.5, 0.5, // id 300 ok
		)),
		WithFailureHandler(func(_ context.Context, id int, err error) {
			failed.Store(id, err)
		}))
	require.NoError(t, err)

	items, err := gen.Reveal(context.Background(), 3)
	require.NoError(t, err, "a failed unit never fails the batch")
	require.Len(t, items, 1)
	assert.Equal(t, 300, items[0].CatalogID)
	assert.Equal(t, int32(3), src.calls.Load(), "no retries")

	_, ok1 := failed.Load(1)
	_, ok151 := failed.Load(151)
	assert.True(t, ok1)
	assert.True(t, ok151)
}

func TestSourceGenerator_FetchesPlannedIDs(t *testing.T) {
	src := mocks.NewMockCreatureSource(t)
	src.On("FetchByID", mock.Anything, 1).Return(&domain.Creature{ID: 1, Name: "bulbasaur", Types: []string{"grass", "poison"}}, nil).Once()
	src.On("FetchByID", mock.Anything, 10).Return(nil, fmt.Errorf("%w: id 10", domain.ErrCreatureNotFound)).Once()

	var failedID atomic.Int32
	gen, err := NewSourceGenerator(src, SourceConfig{RarityPolicy: domain.RarityPolicyTiered, MaxID: 10},
		WithRand(seqRand(
			0.0, 0.5, 0.5, // id 1
			0.95, 0.5, 0.5, // id 10, not found
		)),
		WithFailureHandler(func(_ context.Context, id int, _ error) {
			failedID.Store(int32(id))
		}))
	require.NoError(t, err)

	items, err := gen.Reveal(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "bulbasaur", items[0].Name)
	assert.Equal(t, []string{"grass", "poison"}, items[0].Types)
	assert.Equal(t, int32(10), failedID.Load())
	src.AssertNotCalled(t, "FetchByName", mock.Anything, mock.Anything)
}

func TestSourceGenerator_AllUnitsFail(t *testing.T) {
	gen, err := NewSourceGenerator(sourceFunc(func(int) (*domain.Creature, error) {
		return nil, domain.ErrSourceUnavailable
	}), SourceConfig{RarityPolicy: domain.RarityPolicyTiered})
	require.NoError(t, err)

	items, err := gen.Reveal(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSourceGenerator_FetchesConcurrentlyWithoutLeaks(t *testing.T) {
	src := &fakeSource{delay: 50 * time.Millisecond}
	gen, err := NewSourceGenerator(src, SourceConfig{RarityPolicy: domain.RarityPolicyTiered})
	require.NoError(t, err)

	leaktest.CheckNoGoroutineLeak(t, func() {
		start := time.Now()
		items, err := gen.Reveal(context.Background(), 10)
		require.NoError(t, err)
		assert.Len(t, items, 10)
		assert.Less(t, time.Since(start), 400*time.Millisecond, "units are fetched in parallel")
	})
}

func TestNewSourceGenerator_Validation(t *testing.T) {
	_, err := NewSourceGenerator(&fakeSource{}, SourceConfig{RarityPolicy: "sparkly"})
	assert.ErrorIs(t, err, domain.ErrUnsupportedPolicy)

	_, err = NewSourceGenerator(&fakeSource{}, SourceConfig{RarityPolicy: domain.RarityPolicyShiny, ShinyChance: 1.5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

type sourceFunc func(id int) (*domain.Creature, error)

func (f sourceFunc) FetchByID(_ context.Context, id int) (*domain.Creature, error) { return f(id) }
func (f sourceFunc) FetchByName(context.Context, string) (*domain.Creature, error) {
	return nil, domain.ErrCreatureNotFound
}
