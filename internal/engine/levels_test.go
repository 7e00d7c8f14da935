package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThresholdForLevel(t *testing.T) {
	assert.Equal(t, 100, ThresholdForLevel(1))
	assert.Equal(t, 150, ThresholdForLevel(2))
	assert.Equal(t, 225, ThresholdForLevel(3))
	assert.Equal(t, 337, ThresholdForLevel(4))
}

func TestThresholdStrictlyIncreasing(t *testing.T) {
	for level := 1; level < 60; level++ {
		assert.Greater(t, ThresholdForLevel(level+1), ThresholdForLevel(level), "level %d", level)
	}
}

func TestRewardXP(t *testing.T) {
	assert.Equal(t, 30, RewardXP(DifficultyEasy))
	assert.Equal(t, 60, RewardXP(DifficultyMedium))
	assert.Equal(t, 100, RewardXP(DifficultyHard))
	assert.Equal(t, 30, RewardXP(Difficulty("nonsense")))
}

func TestTitleForLevel(t *testing.T) {
	assert.Equal(t, "Rookie Hero", TitleForLevel(1).Name)
	assert.Equal(t, "Rookie Hero", TitleForLevel(2).Name)
	assert.Equal(t, "Novice Adventurer", TitleForLevel(3).Name)
	assert.Equal(t, "Elite Champion", TitleForLevel(9).Name)
	assert.Equal(t, "Veteran Warrior", TitleForLevel(10).Name)
	assert.Equal(t, "Veteran Warrior", TitleForLevel(50).Name)
	assert.Equal(t, "Supreme Existence", TitleForLevel(1000).Name)
}

func TestTitlePrestigeMonotone(t *testing.T) {
	prev := TitleForLevel(1).MinLevel
	for level := 1; level <= 1200; level++ {
		cur := TitleForLevel(level).MinLevel
		assert.GreaterOrEqual(t, cur, prev, "level %d", level)
		prev = cur
	}
}
