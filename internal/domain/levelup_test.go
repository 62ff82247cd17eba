package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLevelUp_Milestone(t *testing.T) {
	tier := ClassifyLevelUp(4, 5, nil)
	assert.Equal(t, TierMilestone, tier)
}

func TestClassifyLevelUp_Jackpot(t *testing.T) {
	tier := ClassifyLevelUp(9, 10, nil)
	assert.Equal(t, TierJackpot, tier)
}

func TestClassifyLevelUp_JackpotBeatsMilestone(t *testing.T) {
	// 20 is divisible by both 10 and 5; jackpot wins.
	tier := ClassifyLevelUp(19, 20, nil)
	assert.Equal(t, TierJackpot, tier)
}

func TestClassifyLevelUp_NormalWithoutRoll(t *testing.T) {
	tier := ClassifyLevelUp(1, 2, nil)
	assert.Equal(t, TierNormal, tier)
}

func TestClassifyLevelUp_RandomJackpotRoll(t *testing.T) {
	won := ClassifyLevelUp(1, 2, func() float64 { return 0.0 })
	assert.Equal(t, TierJackpot, won)

	lost := ClassifyLevelUp(1, 2, func() float64 { return 0.5 })
	assert.Equal(t, TierNormal, lost)

	edge := ClassifyLevelUp(1, 2, func() float64 { return JackpotChance })
	assert.Equal(t, TierNormal, edge, "roll must be strictly below the chance")
}

func TestClassifyLevelUp_NoTransition(t *testing.T) {
	assert.Equal(t, TierNormal, ClassifyLevelUp(5, 5, func() float64 { return 0.0 }))
	assert.Equal(t, TierNormal, ClassifyLevelUp(10, 9, nil))
}
