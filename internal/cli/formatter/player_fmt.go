package formatter

import (
	"fmt"
	"strings"

	"github.com/Statusnone420/weeklyquest/internal/domain"
)

const levelBarWidth = 20

// PlayerView is the player progress summary shown by the status command.
type PlayerView struct {
	Level           int
	TotalXP         int
	XPIntoLevel     int
	XPToNext        int
	XPPerLevel      int
	TodayXP         int
	DailyChestReady bool
	RerollUsedToday bool
}

// FormatPlayer formats the player summary into a styled CLI string.
func FormatPlayer(v PlayerView) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n\n",
		Dim("Level"),
		StyleHeader.Render(fmt.Sprintf("%d", v.Level))))

	pct := 0.0
	if v.XPPerLevel > 0 {
		pct = float64(v.XPIntoLevel) / float64(v.XPPerLevel)
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Next "), RenderProgress(pct, levelBarWidth)))
	b.WriteString(fmt.Sprintf("      %s into this level, %s to go\n\n",
		Bold(fmt.Sprintf("%d XP", v.XPIntoLevel)),
		StylePurple.Render(fmt.Sprintf("%d XP", v.XPToNext))))

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Total"), Bold(fmt.Sprintf("%d XP", v.TotalXP))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Today"), StyleGreen.Render(fmt.Sprintf("+%d XP", v.TodayXP))))

	if v.DailyChestReady {
		b.WriteString("\n" + StyleYellow.Render("★ Daily chest is ready") + "\n")
	}
	if v.RerollUsedToday {
		b.WriteString(Dim("Reroll used for today.") + "\n")
	}

	return RenderBox("Status", b.String())
}

// LevelUpBanner renders the celebration line for a level-up tier.
func LevelUpBanner(tier domain.LevelUpTier, level int) string {
	switch tier {
	case domain.TierJackpot:
		return StyleYellow.Render(fmt.Sprintf("🎰 JACKPOT! Level %d!", level))
	case domain.TierMilestone:
		return StylePurple.Render(fmt.Sprintf("★ Milestone! Level %d!", level))
	case domain.TierNormal:
		return StyleGreen.Render(fmt.Sprintf("Level up! Now level %d.", level))
	default:
		return ""
	}
}
