// Package reveal turns a pack purchase into revealed items.
package reveal

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/osse101/PackSim_Go/internal/creature"
	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/logger"
	"github.com/osse101/PackSim_Go/internal/utils"
)

// Generator produces the items of one pack. It never mutates collection state.
type Generator interface {
	// Reveal returns up to packSize items. Units whose creature could not be
	// fetched are omitted, so fewer items than requested is a valid result.
	Reveal(ctx context.Context, packSize int) ([]domain.Item, error)
}

// FailureHandler observes a dropped reveal unit. It may be called concurrently.
type FailureHandler func(ctx context.Context, creatureID int, err error)

// Option customises a generator.
type Option func(*options)

type options struct {
	rnd       func() float64
	now       func() time.Time
	onFailure FailureHandler
}

// WithRand injects the random source. It must return values in [0, 1).
func WithRand(rnd func() float64) Option {
	return func(o *options) { o.rnd = rnd }
}

// WithClock injects the clock used for revealed_at.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithFailureHandler registers a callback for dropped units.
func WithFailureHandler(h FailureHandler) Option {
	return func(o *options) { o.onFailure = h }
}

func buildOptions(opts []Option) options {
	o := options{rnd: utils.RandomFloat, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func rollCombatPower(roll float64) int {
	return utils.IntFromRoll(roll, domain.MinCombatPower, domain.MaxCombatPower)
}

func validatePackSize(packSize int) error {
	if packSize < 1 || packSize > domain.MaxPackSize {
		return fmt.Errorf("%w: %d", domain.ErrInvalidPackSize, packSize)
	}
	return nil
}

// ============================================================================
// Catalog loot box
// ============================================================================

type catalogGenerator struct {
	pool *weightedPool
	opts options
}

// NewCatalogGenerator draws from the local catalog through a weighted pool.
// No network is involved, so every unit always succeeds.
func NewCatalogGenerator(c *creature.Catalog, opts ...Option) Generator {
	return &catalogGenerator{
		pool: newWeightedPool(c),
		opts: buildOptions(opts),
	}
}

func (g *catalogGenerator) Reveal(ctx context.Context, packSize int) ([]domain.Item, error) {
	if err := validatePackSize(packSize); err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, packSize)
	for i := 0; i < packSize; i++ {
		e := g.pool.selectEntry(g.opts.rnd())
		items = append(items, domain.Item{
			ID:          strconv.Itoa(e.ID),
			CatalogID:   e.ID,
			Name:        e.Name,
			Image:       e.Image,
			Types:       append([]string(nil), e.Types...),
			Rarity:      e.Rarity,
			CombatPower: rollCombatPower(g.opts.rnd()),
			RevealedAt:  g.opts.now(),
		})
	}

	logger.FromContext(ctx).Debug(LogMsgPackRevealed, LogFieldRequested, packSize, LogFieldRevealed, len(items))
	return items, nil
}

// ============================================================================
// External creature source
// ============================================================================

// SourceConfig configures a generator backed by a creature.Source.
type SourceConfig struct {
	RarityPolicy string  // domain.RarityPolicyTiered or domain.RarityPolicyShiny
	ShinyChance  float64 // shiny policy only
	MaxID        int     // ids are drawn uniformly from [1, MaxID]
}

type sourceGenerator struct {
	source creature.Source
	cfg    SourceConfig
	opts   options
}

// NewSourceGenerator draws random creature ids and fetches them concurrently.
func NewSourceGenerator(source creature.Source, cfg SourceConfig, opts ...Option) (Generator, error) {
	switch cfg.RarityPolicy {
	case domain.RarityPolicyTiered, domain.RarityPolicyShiny:
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedPolicy, cfg.RarityPolicy)
	}
	if cfg.MaxID < 1 {
		cfg.MaxID = creature.DefaultMaxID
	}
	if cfg.ShinyChance < 0 || cfg.ShinyChance > 1 {
		return nil, fmt.Errorf("%w: shiny chance %v", domain.ErrInvalidInput, cfg.ShinyChance)
	}
	return &sourceGenerator{source: source, cfg: cfg, opts: buildOptions(opts)}, nil
}

// unitPlan holds every random draw of one unit, taken before any fetch starts
// so the injected random source is only touched from the calling goroutine.
type unitPlan struct {
	creatureID  int
	attrRoll    float64
	combatPower int
}

func (g *sourceGenerator) Reveal(ctx context.Context, packSize int) ([]domain.Item, error) {
	if err := validatePackSize(packSize); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	plans := make([]unitPlan, packSize)
	for i := range plans {
		plans[i] = unitPlan{
			creatureID:  utils.IntFromRoll(g.opts.rnd(), 1, g.cfg.MaxID),
			attrRoll:    g.opts.rnd(),
			combatPower: rollCombatPower(g.opts.rnd()),
		}
	}

	// One slot per unit keeps pack order stable regardless of completion order.
	slots := make([]*domain.Item, packSize)
	var wg sync.WaitGroup
	for i := range plans {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := plans[i]
			cr, err := g.source.FetchByID(ctx, p.creatureID)
			if err != nil {
				if creature.IsSkippable(err) {
					log.Warn(LogMsgUnitFailed, LogFieldCreatureID, p.creatureID, LogFieldError, err)
				} else {
					log.Warn(LogMsgUnitAborted, LogFieldCreatureID, p.creatureID, LogFieldError, err)
				}
				if g.opts.onFailure != nil {
					g.opts.onFailure(ctx, p.creatureID, err)
				}
				return
			}
			item := g.buildItem(cr, p)
			slots[i] = &item
		}(i)
	}
	wg.Wait()

	items := make([]domain.Item, 0, packSize)
	for _, s := range slots {
		if s != nil {
			items = append(items, *s)
		}
	}

	if len(items) < packSize {
		log.Warn(LogMsgPartialReveal, LogFieldRequested, packSize, LogFieldRevealed, len(items))
	} else {
		log.Debug(LogMsgPackRevealed, LogFieldRequested, packSize, LogFieldRevealed, len(items))
	}
	return items, nil
}

func (g *sourceGenerator) buildItem(cr *domain.Creature, p unitPlan) domain.Item {
	item := domain.Item{
		CatalogID:   cr.ID,
		Name:        cr.DisplayName,
		Image:       cr.Image,
		Types:       append([]string(nil), cr.Types...),
		CombatPower: p.combatPower,
		Height:      cr.Height,
		Weight:      cr.Weight,
		RevealedAt:  g.opts.now(),
	}
	if item.Name == "" {
		item.Name = cr.Name
	}

	switch g.cfg.RarityPolicy {
	case domain.RarityPolicyShiny:
		item.Shiny = IsShinyRoll(p.attrRoll, g.cfg.ShinyChance)
		if item.Shiny && cr.ShinyImage != "" {
			item.Image = cr.ShinyImage
		}
	default:
		item.Rarity = TierForRoll(p.attrRoll)
	}
	return item
}
