package formatter

import (
	"testing"

	"github.com/Statusnone420/weeklyquest/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatPlayer_ShowsLevelAndXP(t *testing.T) {
	out := FormatPlayer(PlayerView{
		Level:       2,
		TotalXP:     2450,
		XPIntoLevel: 450,
		XPToNext:    550,
		XPPerLevel:  1000,
		TodayXP:     120,
	})
	assert.Contains(t, out, "450 XP")
	assert.Contains(t, out, "550 XP")
	assert.Contains(t, out, "2450 XP")
	assert.Contains(t, out, "+120 XP")
}

func TestFormatPlayer_ChestAndRerollHints(t *testing.T) {
	out := FormatPlayer(PlayerView{XPPerLevel: 1000, DailyChestReady: true, RerollUsedToday: true})
	assert.Contains(t, out, "chest is ready")
	assert.Contains(t, out, "Reroll used")
}

func TestLevelUpBanner_Tiers(t *testing.T) {
	assert.Contains(t, LevelUpBanner(domain.TierJackpot, 10), "JACKPOT")
	assert.Contains(t, LevelUpBanner(domain.TierMilestone, 5), "Milestone")
	assert.Contains(t, LevelUpBanner(domain.TierNormal, 3), "Level up")
	assert.Empty(t, LevelUpBanner(domain.LevelUpTier("unknown"), 3))
}
