package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerProgress_LevelMath(t *testing.T) {
	p := PlayerProgress{TotalXP: 2450}
	assert.Equal(t, 2, p.Level())
	assert.Equal(t, 450, p.XPIntoCurrentLevel())
	assert.Equal(t, 550, p.XPToNextLevel())
}

func TestPlayerProgress_LevelUncapped(t *testing.T) {
	p := PlayerProgress{TotalXP: 250_000}
	assert.Equal(t, 250, p.Level(), "curve has no cap")
}

func TestPlayerProgress_ZeroXP(t *testing.T) {
	var p PlayerProgress
	assert.Equal(t, 0, p.Level())
	assert.Equal(t, 0, p.XPIntoCurrentLevel())
	assert.Equal(t, XPPerLevel, p.XPToNextLevel())
}

func TestGrantXP_CreditsBothTotals(t *testing.T) {
	p := PlayerProgress{TotalXP: 100, TodayXP: 40}
	p.GrantXP(35)
	assert.Equal(t, 135, p.TotalXP)
	assert.Equal(t, 75, p.TodayXP)
}

func TestGrantXP_IgnoresNonPositive(t *testing.T) {
	p := PlayerProgress{TotalXP: 100}
	p.GrantXP(0)
	p.GrantXP(-10)
	assert.Equal(t, 100, p.TotalXP)
}

func TestQuestInstance_Advance(t *testing.T) {
	q := QuestInstance{Status: StatusPending, Target: 3}

	assert.False(t, q.Advance(1))
	assert.Equal(t, StatusInProgress, q.Status)
	assert.Equal(t, 1, q.Progress)

	assert.False(t, q.Advance(1))
	assert.True(t, q.Advance(1), "third increment should complete")
	assert.Equal(t, StatusCompleted, q.Status)
	assert.Equal(t, 3, q.Progress)

	assert.False(t, q.Advance(1), "completed instance never advances again")
	assert.Equal(t, 3, q.Progress)
}

func TestQuestInstance_AdvanceClampsOvershoot(t *testing.T) {
	q := QuestInstance{Status: StatusPending, Target: 2}
	assert.True(t, q.Advance(5))
	assert.Equal(t, 2, q.Progress, "progress clamps to target")
}

func TestQuestInstance_ForceComplete(t *testing.T) {
	q := QuestInstance{Status: StatusPending, Target: 4, Progress: 1}
	assert.True(t, q.ForceComplete())
	assert.Equal(t, StatusCompleted, q.Status)
	assert.Equal(t, 4, q.Progress)
	assert.False(t, q.ForceComplete(), "second call is a no-op")
}
