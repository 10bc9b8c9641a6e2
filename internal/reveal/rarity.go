package reveal

import (
	"github.com/osse101/PackSim_Go/internal/creature"
	"github.com/osse101/PackSim_Go/internal/domain"
)

// tierThreshold maps a roll ceiling to a rarity tier.
type tierThreshold struct {
	threshold float64
	rarity    domain.Rarity
}

// tierThresholds is ordered from rarest (lowest roll) to most common.
var tierThresholds = []tierThreshold{
	{TierLegendaryThreshold, domain.RarityLegendary},
	{TierEpicThreshold, domain.RarityEpic},
	{TierRareThreshold, domain.RarityRare},
	{TierUncommonThreshold, domain.RarityUncommon},
}

// TierForRoll maps a roll in [0, 1) onto a rarity tier.
func TierForRoll(roll float64) domain.Rarity {
	for _, tt := range tierThresholds {
		if roll < tt.threshold {
			return tt.rarity
		}
	}
	return domain.RarityCommon
}

// IsShinyRoll reports whether roll lands inside the shiny chance.
func IsShinyRoll(roll, chance float64) bool {
	return roll < chance
}

// WeightFor returns the loot box pool weight of a rarity.
func WeightFor(r domain.Rarity) int {
	switch r {
	case domain.RarityLegendary:
		return WeightLegendary
	case domain.RarityEpic:
		return WeightEpic
	case domain.RarityRare:
		return WeightRare
	case domain.RarityUncommon:
		return WeightUncommon
	default:
		return WeightCommon
	}
}

// poolEntry is one catalog entry with its running weight total.
type poolEntry struct {
	entry       domain.CatalogEntry
	cumulWeight int // cumulative weight up to and including this entry
}

// weightedPool draws catalog entries proportionally to their rarity weight.
type weightedPool struct {
	entries     []poolEntry
	totalWeight int
}

func newWeightedPool(c *creature.Catalog) *weightedPool {
	p := &weightedPool{entries: make([]poolEntry, 0, c.Len())}
	for _, e := range c.Entries() {
		p.totalWeight += WeightFor(e.Rarity)
		p.entries = append(p.entries, poolEntry{entry: e, cumulWeight: p.totalWeight})
	}
	return p
}

// selectEntry returns the entry chosen by a weighted roll in [0, totalWeight).
func (p *weightedPool) selectEntry(rnd float64) domain.CatalogEntry {
	roll := int(rnd * float64(p.totalWeight))
	lo, hi := 0, len(p.entries)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if p.entries[mid].cumulWeight <= roll {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return p.entries[lo].entry
}
