// Package stats tracks the economy counters and derives the profile read model.
package stats

import (
	"fmt"

	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/ledger"
)

// Tracker owns the UserStats counters. Like the ledger it is not safe for
// concurrent use and is driven by the collection service in lockstep with
// ledger operations.
type Tracker struct {
	stats    domain.UserStats
	packCost int
}

// NewTracker creates a tracker seeded with persisted or recomputed stats.
func NewTracker(initial domain.UserStats, packCost int) *Tracker {
	return &Tracker{stats: initial, packCost: packCost}
}

// Stats returns the current counters.
func (t *Tracker) Stats() domain.UserStats {
	return t.stats
}

// Restore replaces the counters, used for rollback after a failed persist.
func (t *Tracker) Restore(s domain.UserStats) {
	t.stats = s
}

// PackCost returns the configured pack price.
func (t *Tracker) PackCost() int {
	return t.packCost
}

// CanAfford reports whether a pack purchase would be accepted.
func (t *Tracker) CanAfford() bool {
	return t.stats.Coins >= t.packCost
}

// Purchase charges one pack. It changes nothing when coins are short.
func (t *Tracker) Purchase() error {
	if !t.CanAfford() {
		return fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, t.stats.Coins, t.packCost)
	}
	t.stats.Coins -= t.packCost
	t.stats.PacksOpened++
	return nil
}

// RecordAdd applies a ledger add.
func (t *Tracker) RecordAdd(d ledger.Delta) {
	t.stats.ItemsCaught += d.Copies
	t.stats.RareCount += d.RareCopies()
}

// RecordSell applies a ledger sell.
func (t *Tracker) RecordSell(d ledger.Delta) {
	t.stats.Coins += d.Value
	t.stats.ItemsCaught = nonNegative(t.stats.ItemsCaught - d.Copies)
	t.stats.RareCount = nonNegative(t.stats.RareCount - d.RareCopies())
}

// Recompute rebuilds counters from the ledger contents. It is only used at
// load time when no persisted stats exist; packs opened cannot be recovered
// from the ledger and starts at zero.
func Recompute(items []domain.Item, coins int) domain.UserStats {
	s := domain.UserStats{Coins: coins}
	for _, it := range items {
		copies := 1
		if it.Quantity > 1 {
			copies = it.Quantity
		}
		s.ItemsCaught += copies
		if it.IsRare() {
			s.RareCount += copies
		}
	}
	return s
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
