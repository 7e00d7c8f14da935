package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i2bric/TaskHero/internal/storage"
)

func TestAwardExperienceNoLevelUp(t *testing.T) {
	p := &storage.Profile{Level: 1}

	res := AwardExperience(p, 30)

	assert.False(t, res.LeveledUp)
	assert.Equal(t, 0, res.LevelsGained)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 30, p.Experience)
}

func TestAwardExperienceExactThreshold(t *testing.T) {
	p := &storage.Profile{Level: 1}

	res := AwardExperience(p, ThresholdForLevel(1))

	assert.True(t, res.LeveledUp)
	assert.Equal(t, 1, res.LevelsGained)
	assert.Equal(t, 2, res.FinalLevel)
	assert.Equal(t, 0, p.Experience)
}

func TestAwardExperienceTwoLevels(t *testing.T) {
	p := &storage.Profile{Level: 1}

	res := AwardExperience(p, ThresholdForLevel(1)+ThresholdForLevel(2))

	assert.Equal(t, 2, res.LevelsGained)
	assert.Equal(t, 3, res.FinalLevel)
	assert.Equal(t, 0, p.Experience)
}

func TestAwardExperienceLargeJump(t *testing.T) {
	p := &storage.Profile{Level: 1}

	res := AwardExperience(p, 1000)

	// 1000 clears levels 1-4 (100+150+225+337) with 188 left over.
	assert.Equal(t, 4, res.LevelsGained)
	assert.Equal(t, 5, res.FinalLevel)
	assert.Equal(t, 188, p.Experience)
}

func TestAwardExperienceInvariant(t *testing.T) {
	p := &storage.Profile{Level: 1}
	for _, amount := range []int{1, 29, 30, 60, 99, 100, 101, 999, 5000} {
		AwardExperience(p, amount)
		require.GreaterOrEqual(t, p.Experience, 0)
		require.Less(t, p.Experience, ThresholdForLevel(p.Level), "after +%d", amount)
	}
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStreakFirstCompletion(t *testing.T) {
	p := &storage.Profile{}

	UpdateStreak(p, day("2026-03-01 09:00"))

	assert.Equal(t, 1, p.CurrentStreak)
	assert.Equal(t, 1, p.LongestStreak)
	require.NotNil(t, p.LastCompletedDate)
	assert.Equal(t, "2026-03-01", *p.LastCompletedDate)
}

func TestStreakSameDayStaysFlat(t *testing.T) {
	p := &storage.Profile{}

	UpdateStreak(p, day("2026-03-01 09:00"))
	UpdateStreak(p, day("2026-03-01 22:00"))

	assert.Equal(t, 1, p.CurrentStreak)
}

func TestStreakNextDayIncrements(t *testing.T) {
	p := &storage.Profile{}

	UpdateStreak(p, day("2026-03-01 09:00"))
	UpdateStreak(p, day("2026-03-02 23:59"))

	assert.Equal(t, 2, p.CurrentStreak)
	assert.Equal(t, 2, p.LongestStreak)
}

func TestStreakGapResets(t *testing.T) {
	p := &storage.Profile{}

	UpdateStreak(p, day("2026-03-01 09:00"))
	UpdateStreak(p, day("2026-03-02 09:00"))
	UpdateStreak(p, day("2026-03-05 09:00"))

	assert.Equal(t, 1, p.CurrentStreak)
	// Longest streak never decreases.
	assert.Equal(t, 2, p.LongestStreak)
}
