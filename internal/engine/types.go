package engine

import "strings"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// DefaultDifficulty is used when stored input is missing/invalid.
const DefaultDifficulty Difficulty = DifficultyEasy

// rewardByDifficulty maps difficulty to the XP awarded on completion.
var rewardByDifficulty = map[Difficulty]int{
	DifficultyEasy:   30,
	DifficultyMedium: 60,
	DifficultyHard:   100,
}

// RewardXP returns the XP awarded for completing a task of the given
// difficulty. Unknown difficulties fall back to the easy reward.
func RewardXP(d Difficulty) int {
	if xp, ok := rewardByDifficulty[d]; ok {
		return xp
	}
	return rewardByDifficulty[DefaultDifficulty]
}

func parseStoredDifficulty(s string) Difficulty {
	d := Difficulty(strings.TrimSpace(strings.ToLower(s)))
	if d.IsValid() {
		return d
	}
	return DefaultDifficulty
}
