package reveal

// ============================================================================
// Tier Thresholds
// ============================================================================

// TierLegendaryThreshold defines the maximum roll (<2%) for LEGENDARY.
const TierLegendaryThreshold = 0.02

// TierEpicThreshold defines the maximum roll (<8%) for EPIC.
const TierEpicThreshold = 0.08

// TierRareThreshold defines the maximum roll (<20%) for RARE.
const TierRareThreshold = 0.20

// TierUncommonThreshold defines the maximum roll (<40%) for UNCOMMON.
// Anything above is COMMON.
const TierUncommonThreshold = 0.40

// ============================================================================
// Weighted Pool
// ============================================================================

// Per-entry pool weights by rarity for the catalog loot box.
const (
	WeightCommon    = 60
	WeightUncommon  = 40
	WeightRare      = 25
	WeightEpic      = 10
	WeightLegendary = 5
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnitFailed    = "Reveal unit failed, dropping it"
	LogMsgUnitAborted   = "Reveal unit aborted"
	LogMsgPackRevealed  = "Pack revealed"
	LogMsgPartialReveal = "Pack revealed with missing units"
)

// Log field keys for structured logging
const (
	LogFieldCreatureID = "creature_id"
	LogFieldRequested  = "requested"
	LogFieldRevealed   = "revealed"
	LogFieldError      = "error"
)
