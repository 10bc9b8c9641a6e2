package domain

import "time"

// Product variants. Each variant fixes one reconciliation policy.
const (
	VariantCatalog = "catalog" // merge-by-catalog-id, local catalog, weighted pool
	VariantPokeBox = "pokebox" // append-always, external creature source
)

// Rarity policies for the pokebox variant.
const (
	RarityPolicyTiered = "tiered"
	RarityPolicyShiny  = "shiny"
)

// Economy constants
const (
	// SalvageRatePercent is the share of combat power paid back on a sell.
	SalvageRatePercent = 20

	MinCombatPower = 100
	MaxCombatPower = 1099

	DefaultStartingCoins = 1000
	DefaultPackCost      = 100
	DefaultPackSize      = 5
	MaxPackSize          = 20

	DefaultShinyChance = 0.10
)

// DuplicateFlashDuration is how long a merged duplicate stays flagged.
const DuplicateFlashDuration = time.Second

// Storage keys for the persisted collection.
const (
	StorageKeyCollected    = "collected" // catalog variant ledger
	StorageKeyInventory    = "inventory" // pokebox variant ledger
	StorageKeyStatsCatalog = "stats:catalog"
	StorageKeyStatsPokeBox = "stats:pokebox"
)
