// Package ledger holds the owned-item list and its reconciliation rules.
//
// A Ledger is not safe for concurrent use; the collection service owns one
// and serializes every access.
package ledger

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/PackSim_Go/internal/domain"
)

// Delta describes the effect of one ledger operation.
type Delta struct {
	Item   domain.Item // entry after an add, or the sold entry
	Copies int         // copies added or removed
	Merged bool        // add folded into an existing entry
	Value  int         // coins paid out, sells only
}

// RareCopies returns how many of the affected copies count as rare.
func (d Delta) RareCopies() int {
	if d.Item.IsRare() {
		return d.Copies
	}
	return 0
}

// Pricer returns the coins paid for one copy of an item. The ledger never
// prices items itself; callers pass their salvage rule.
type Pricer func(domain.Item) int

// Option customises a Ledger.
type Option func(*Ledger)

// WithClock injects the clock used for the duplicate flash.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIDGenerator injects the id synthesizer of the append policy.
func WithIDGenerator(newID func() string) Option {
	return func(l *Ledger) { l.newID = newID }
}

// Ledger is the ordered list of owned items.
type Ledger struct {
	policy Policy
	items  []domain.Item
	flash  map[string]time.Time // merge policy: id -> flag expiry
	now    func() time.Time
	newID  func() string
}

// New creates an empty ledger with the given policy.
func New(policy Policy, opts ...Option) *Ledger {
	l := &Ledger{
		policy: policy,
		flash:  make(map[string]time.Time),
		now:    time.Now,
		newID:  NewItemID,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewItemID synthesizes a unique, time-ordered item id.
func NewItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Policy returns the reconciliation policy.
func (l *Ledger) Policy() Policy {
	return l.policy
}

// Load replaces the ledger contents, normalising entries the policy requires.
// Under the merge policy repeated ids fold into the first entry, summing
// their quantities, so each id appears once.
func (l *Ledger) Load(items []domain.Item) {
	l.items = make([]domain.Item, 0, len(items))
	l.flash = make(map[string]time.Time)
	index := make(map[string]int, len(items))
	for _, it := range items {
		switch l.policy {
		case PolicyMerge:
			if it.ID == "" {
				it.ID = strconv.Itoa(it.CatalogID)
			}
			if it.Quantity < 1 {
				it.Quantity = 1
			}
			if i, ok := index[it.ID]; ok {
				l.items[i].Quantity += it.Quantity
				continue
			}
		default:
			if _, dup := index[it.ID]; it.ID == "" || dup {
				it.ID = l.newID()
			}
			it.Quantity = 0
		}
		index[it.ID] = len(l.items)
		l.items = append(l.items, it)
	}
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.items)
}

// Items returns a copy of every entry in ledger order.
func (l *Ledger) Items() []domain.Item {
	out := make([]domain.Item, len(l.items))
	copy(out, l.items)
	return out
}

// Add records one revealed item.
func (l *Ledger) Add(item domain.Item) Delta {
	if l.policy == PolicyMerge {
		return l.addMerge(item)
	}

	item.ID = l.newID()
	item.Quantity = 0
	l.items = append(l.items, item)
	return Delta{Item: item, Copies: 1}
}

func (l *Ledger) addMerge(item domain.Item) Delta {
	if item.ID == "" {
		item.ID = strconv.Itoa(item.CatalogID)
	}
	if i := l.indexOf(item.ID); i >= 0 {
		l.items[i].Quantity++
		l.flash[item.ID] = l.now().Add(domain.DuplicateFlashDuration)
		return Delta{Item: l.items[i], Copies: 1, Merged: true}
	}

	item.Quantity = 1
	l.items = append(l.items, item)
	return Delta{Item: item, Copies: 1}
}

// Sell removes exactly the entry with id, paying price per copy. Under the
// merge policy the whole entry goes, every copy included. Unknown ids are a
// no-op.
func (l *Ledger) Sell(id string, price Pricer) (Delta, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return Delta{}, false
	}

	item := l.items[i]
	copies := l.copies(item)
	l.items = append(l.items[:i], l.items[i+1:]...)
	delete(l.flash, id)

	return Delta{Item: item, Copies: copies, Value: price(item) * copies}, true
}

// Duplicates returns the sellable surplus.
//
// Append policy: every entry after the first of its name group, in ledger
// order. Merge policy: every entry holding more than one copy, with Quantity
// set to the surplus count.
func (l *Ledger) Duplicates() []domain.Item {
	var out []domain.Item
	if l.policy == PolicyMerge {
		for _, it := range l.items {
			if it.Quantity > 1 {
				it.Quantity--
				out = append(out, it)
			}
		}
		return out
	}

	seen := make(map[string]bool)
	for _, it := range l.items {
		key := nameKey(it.Name)
		if seen[key] {
			out = append(out, it)
			continue
		}
		seen[key] = true
	}
	return out
}

// SellAllDuplicates sells the whole surplus, leaving one entry (or one copy)
// per creature, paying price per copy. It returns one delta per sold entry or
// reduced entry.
func (l *Ledger) SellAllDuplicates(price Pricer) []Delta {
	var deltas []Delta
	if l.policy == PolicyMerge {
		for i := range l.items {
			surplus := l.items[i].Quantity - 1
			if surplus < 1 {
				continue
			}
			l.items[i].Quantity = 1
			sold := l.items[i]
			sold.Quantity = surplus
			deltas = append(deltas, Delta{Item: sold, Copies: surplus, Value: price(sold) * surplus})
		}
		return deltas
	}

	seen := make(map[string]bool)
	kept := l.items[:0]
	for _, it := range l.items {
		key := nameKey(it.Name)
		if seen[key] {
			deltas = append(deltas, Delta{Item: it, Copies: 1, Value: price(it)})
			continue
		}
		seen[key] = true
		kept = append(kept, it)
	}
	// Clear the tail so dropped items do not linger in the backing array.
	for i := len(kept); i < len(l.items); i++ {
		l.items[i] = domain.Item{}
	}
	l.items = kept
	return deltas
}

// IsJustDuplicated reports whether id was merged within the flash window.
func (l *Ledger) IsJustDuplicated(id string) bool {
	exp, ok := l.flash[id]
	if !ok {
		return false
	}
	if !l.now().Before(exp) {
		delete(l.flash, id)
		return false
	}
	return true
}

// Snapshot captures the ledger for rollback.
type Snapshot struct {
	items []domain.Item
	flash map[string]time.Time
}

// Snapshot returns a deep enough copy to restore after a failed persist.
func (l *Ledger) Snapshot() Snapshot {
	s := Snapshot{
		items: l.Items(),
		flash: make(map[string]time.Time, len(l.flash)),
	}
	for k, v := range l.flash {
		s.flash[k] = v
	}
	return s
}

// Restore rolls the ledger back to s.
func (l *Ledger) Restore(s Snapshot) {
	l.items = s.items
	l.flash = s.flash
}

func (l *Ledger) indexOf(id string) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) copies(it domain.Item) int {
	if l.policy == PolicyMerge && it.Quantity > 0 {
		return it.Quantity
	}
	return 1
}
