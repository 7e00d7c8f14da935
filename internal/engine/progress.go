package engine

import (
	"time"

	"github.com/i2bric/TaskHero/internal/storage"
)

type AwardResult struct {
	LeveledUp    bool
	LevelsGained int
	FinalLevel   int
}

// AwardExperience adds amount to the profile and settles level-ups by
// repeated threshold subtraction. One large award can gain several levels in
// a single call. Post condition: 0 <= experience < ThresholdForLevel(level).
func AwardExperience(p *storage.Profile, amount int) AwardResult {
	p.Experience += amount

	gained := 0
	for need := ThresholdForLevel(p.Level); p.Experience >= need; need = ThresholdForLevel(p.Level) {
		p.Experience -= need
		p.Level++
		gained++
	}

	return AwardResult{
		LeveledUp:    gained > 0,
		LevelsGained: gained,
		FinalLevel:   p.Level,
	}
}

// UpdateStreak applies the calendar-date streak rule at the completion
// instant. It is driven by the wall-clock date the completion runs, not the
// task's deadline.
//
//   - first ever completion: streak starts at 1
//   - already completed something today: streak stays flat
//   - last completion was yesterday: streak continues (+1)
//   - gap of two or more days: streak resets to 1
func UpdateStreak(p *storage.Profile, now time.Time) {
	today := now.Format(storage.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(storage.DateLayout)

	switch {
	case p.LastCompletedDate == nil:
		p.CurrentStreak = 1
	case *p.LastCompletedDate == today:
		// Same-day repeat completion.
	case *p.LastCompletedDate == yesterday:
		p.CurrentStreak++
	default:
		p.CurrentStreak = 1
	}

	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	p.LastCompletedDate = &today
}
