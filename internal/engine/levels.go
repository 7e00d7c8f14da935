package engine

import "math"

const (
	// LevelBaseXP is the XP required to advance past level 1.
	LevelBaseXP = 100.0

	// LevelGrowthRate makes each level cost ~50% more than the previous one.
	LevelGrowthRate = 1.5
)

// ThresholdForLevel returns the XP required to advance past the given level:
// floor(100 * 1.5^(level-1)). Strictly increasing in level. Callers must pass
// the current level, not the target level, when deciding whether to level up.
func ThresholdForLevel(level int) int {
	return int(math.Floor(LevelBaseXP * math.Pow(LevelGrowthRate, float64(level-1))))
}
