package stats

import (
	"sort"

	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/utils"
)

func experience(s domain.UserStats) int {
	return s.PacksOpened*XPPerPack + s.RareCount*XPPerRare
}

// Level derives the collector level: floor(xp / 100) + 1.
func Level(s domain.UserStats) int {
	return experience(s)/XPPerLevel + 1
}

// Progress is the percentage towards the next level.
func Progress(s domain.UserStats) int {
	return experience(s) % XPPerLevel * 100 / XPPerLevel
}

type achievementDef struct {
	key         string
	name        string
	description string
	target      int
	value       func(domain.UserStats) int
}

var achievementDefs = []achievementDef{
	{AchievementFirstSteps, "First Steps", "Open your first pack", FirstStepsPacks,
		func(s domain.UserStats) int { return s.PacksOpened }},
	{AchievementCollector, "Collector", "Catch 10 creatures", CollectorCaught,
		func(s domain.UserStats) int { return s.ItemsCaught }},
	{AchievementPackMaster, "Pack Master", "Open 25 packs", PackMasterPacks,
		func(s domain.UserStats) int { return s.PacksOpened }},
	{AchievementRareHunter, "Rare Hunter", "Own 5 rare creatures", RareHunterRares,
		func(s domain.UserStats) int { return s.RareCount }},
}

// Achievements derives every achievement from the counters.
func Achievements(s domain.UserStats) []domain.Achievement {
	out := make([]domain.Achievement, 0, len(achievementDefs))
	for _, def := range achievementDefs {
		v := def.value(s)
		out = append(out, domain.Achievement{
			Key:         def.key,
			Name:        def.name,
			Description: def.description,
			Unlocked:    v >= def.target,
			Progress:    utils.CappedPercent(v, def.target),
		})
	}
	return out
}

// BuildProfile assembles the profile view. History is newest-first.
func BuildProfile(s domain.UserStats, items []domain.Item) domain.Profile {
	history := make([]domain.Item, len(items))
	copy(history, items)
	// Ledger order is reveal order, so reversing before the stable sort keeps
	// same-timestamp items newest-first too.
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].RevealedAt.After(history[j].RevealedAt)
	})

	return domain.Profile{
		Stats:        s,
		Level:        Level(s),
		Progress:     Progress(s),
		Achievements: Achievements(s),
		History:      history,
	}
}
