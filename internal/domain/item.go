package domain

import (
	"time"

	"golang.org/x/text/cases"
)

// Item is a revealed or owned creature.
//
// Exactly one of Rarity or Shiny is meaningful for a given deployment:
// the tiered and weighted-pool policies set Rarity, the shiny policy sets
// Shiny and leaves Rarity empty.
type Item struct {
	ID          string    `json:"id" msgpack:"id"`
	CatalogID   int       `json:"catalog_id" msgpack:"catalog_id"`
	Name        string    `json:"name" msgpack:"name"`
	Image       string    `json:"image" msgpack:"image"`
	Types       []string  `json:"types" msgpack:"types"`
	Rarity      Rarity    `json:"rarity,omitempty" msgpack:"rarity,omitempty"`
	Shiny       bool      `json:"shiny,omitempty" msgpack:"shiny,omitempty"`
	Quantity    int       `json:"quantity,omitempty" msgpack:"quantity,omitempty"` // merge policy only
	CombatPower int       `json:"combat_power" msgpack:"combat_power"`
	Height      int       `json:"height,omitempty" msgpack:"height,omitempty"`
	Weight      int       `json:"weight,omitempty" msgpack:"weight,omitempty"`
	RevealedAt  time.Time `json:"revealed_at" msgpack:"revealed_at"`

	// JustDuplicated is a read-side flag, never persisted.
	JustDuplicated bool `json:"just_duplicated,omitempty" msgpack:"-"`
}

// IsRare reports whether the item counts toward the rare tally.
func (i Item) IsRare() bool {
	return i.Shiny || i.Rarity.IsRare()
}

// HasType reports whether the item carries the given type tag, ignoring case.
func (i Item) HasType(t string) bool {
	fold := cases.Fold()
	t = fold.String(t)
	for _, it := range i.Types {
		if fold.String(it) == t {
			return true
		}
	}
	return false
}

// SalvageValue is the coin amount paid when one copy of the item is sold.
func (i Item) SalvageValue() int {
	return i.CombatPower * SalvageRatePercent / 100
}

// Rarity is the five-level rarity tier of an item.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rarities lists every tier from most to least common.
var Rarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
}

// IsValid reports whether r is one of the five tiers.
func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// IsRare reports whether the tier counts as rare (rare, epic or legendary).
func (r Rarity) IsRare() bool {
	return r == RarityRare || r == RarityEpic || r == RarityLegendary
}

// CatalogEntry is one creature of the fixed local catalog.
type CatalogEntry struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Image  string   `json:"image"`
	Types  []string `json:"types,omitempty"`
	Rarity Rarity   `json:"rarity"`
}

// Creature is the detail record returned by the external creature source.
type Creature struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	DisplayName string         `json:"display_name"`
	Image       string         `json:"image"`
	ShinyImage  string         `json:"shiny_image,omitempty"`
	Types       []string       `json:"types"`
	Height      int            `json:"height"`
	Weight      int            `json:"weight"`
	Abilities   []string       `json:"abilities,omitempty"`
	BaseStats   map[string]int `json:"base_stats,omitempty"`
}
