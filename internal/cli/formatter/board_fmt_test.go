package formatter

import (
	"testing"

	"github.com/Statusnone420/weeklyquest/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatBoard_ShowsDailyAndWeeklySections(t *testing.T) {
	v := BoardView{
		Daily: []QuestRow{
			{Ref: "d1", Title: "Clock In", Category: domain.CategoryFocus,
				Difficulty: domain.DifficultySmall, Status: domain.StatusCompleted,
				Progress: 1, Target: 1, RewardXP: 20, ChestEligible: true},
			{Ref: "d2", Title: "Tide Turner", Category: domain.CategoryHydration,
				Difficulty: domain.DifficultyMedium, Status: domain.StatusPending,
				Progress: 0, Target: 1, RewardXP: 35},
		},
		Weekly: []QuestRow{
			{Ref: "w1", Title: "Ten Strong", Category: domain.CategoryFocus,
				Difficulty: domain.DifficultyBig, Status: domain.StatusInProgress,
				Progress: 4, Target: 10, RewardXP: 100},
		},
	}

	out := FormatBoard(v)
	assert.Contains(t, out, "Clock In")
	assert.Contains(t, out, "Tide Turner")
	assert.Contains(t, out, "Ten Strong")
	assert.Contains(t, out, "d1")
	assert.Contains(t, out, "w1")
	assert.Contains(t, out, "4/10")
	assert.Contains(t, out, "+100")
}

func TestFormatBoard_ChestReadyHint(t *testing.T) {
	v := BoardView{
		Daily: []QuestRow{
			{Ref: "d1", Title: "Clock In", Status: domain.StatusCompleted,
				Progress: 1, Target: 1, ChestEligible: true},
		},
		DailyChestReady: true,
	}
	out := FormatBoard(v)
	assert.Contains(t, out, "chest is ready")
}

func TestFormatBoard_ChestAlreadyClaimed(t *testing.T) {
	v := BoardView{
		Daily: []QuestRow{
			{Ref: "d1", Title: "Clock In", Status: domain.StatusCompleted,
				Progress: 1, Target: 1, ChestEligible: true},
		},
		DailyChestReady: false,
		RerollUsedToday: true,
	}
	out := FormatBoard(v)
	assert.Contains(t, out, "already claimed")
	assert.Contains(t, out, "Reroll used")
}

func TestFormatBoard_EmptySections(t *testing.T) {
	out := FormatBoard(BoardView{})
	assert.Contains(t, out, "Nothing here yet.")
}
