package stats

// ============================================================================
// Level Formula
// ============================================================================

// Experience contributed per opened pack and per rare copy owned.
const (
	XPPerPack  = 10
	XPPerRare  = 50
	XPPerLevel = 100
)

// ============================================================================
// Achievements
// ============================================================================

// Achievement keys
const (
	AchievementFirstSteps = "first_steps"
	AchievementCollector  = "collector"
	AchievementPackMaster = "pack_master"
	AchievementRareHunter = "rare_hunter"
)

// Achievement targets
const (
	FirstStepsPacks = 1
	CollectorCaught = 10
	PackMasterPacks = 25
	RareHunterRares = 5
)
