package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_IsRare(t *testing.T) {
	tests := []struct {
		name     string
		item     Item
		expected bool
	}{
		{"common", Item{Rarity: RarityCommon}, false},
		{"uncommon", Item{Rarity: RarityUncommon}, false},
		{"rare", Item{Rarity: RarityRare}, true},
		{"epic", Item{Rarity: RarityEpic}, true},
		{"legendary", Item{Rarity: RarityLegendary}, true},
		{"shiny without tier", Item{Shiny: true}, true},
		{"plain without tier", Item{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.item.IsRare())
		})
	}
}

func TestItem_SalvageValue(t *testing.T) {
	assert.Equal(t, 20, Item{CombatPower: 100}.SalvageValue())
	assert.Equal(t, 219, Item{CombatPower: 1099}.SalvageValue())
	assert.Equal(t, 101, Item{CombatPower: 509}.SalvageValue(), "floors fractional coins")
}

func TestItem_HasType(t *testing.T) {
	item := Item{Types: []string{"grass", "poison"}}
	assert.True(t, item.HasType("poison"))
	assert.False(t, item.HasType("fire"))
	assert.True(t, item.HasType("Poison"), "tags match regardless of case")
}

func TestRarity_IsValid(t *testing.T) {
	for _, r := range Rarities {
		assert.True(t, r.IsValid(), string(r))
	}
	assert.False(t, Rarity("mythic").IsValid())
	assert.False(t, Rarity("").IsValid())
}

func TestTypeColor(t *testing.T) {
	assert.Equal(t, "#f42", TypeColor("fire"))
	assert.Equal(t, DefaultTypeColor, TypeColor("shadow"))
}

func TestInventoryFilter_IsEmpty(t *testing.T) {
	shiny := true
	assert.True(t, InventoryFilter{}.IsEmpty())
	assert.False(t, InventoryFilter{Shiny: &shiny}.IsEmpty())
	assert.False(t, InventoryFilter{Name: "pika"}.IsEmpty())
}
