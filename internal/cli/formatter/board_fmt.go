package formatter

import (
	"fmt"
	"strings"

	"github.com/Statusnone420/weeklyquest/internal/domain"
)

// QuestRow is one quest instance joined with its definition, ready to print.
type QuestRow struct {
	Ref           string
	Title         string
	Subtitle      string
	Category      domain.QuestCategory
	Difficulty    domain.Difficulty
	Status        domain.QuestStatus
	Progress      int
	Target        int
	RewardXP      int
	ChestEligible bool
}

// BoardView is the full quest board for the current day and week.
type BoardView struct {
	Daily           []QuestRow
	Weekly          []QuestRow
	DailyChestReady bool
	RerollUsedToday bool
}

// FormatBoard formats the quest board into a styled CLI dashboard string.
func FormatBoard(v BoardView) string {
	var b strings.Builder

	b.WriteString(questTable("Today", v.Daily, true))
	b.WriteString("\n")
	b.WriteString(questTable("This Week", v.Weekly, false))

	b.WriteString("\n")
	if v.DailyChestReady {
		b.WriteString(StyleYellow.Render("★ Daily chest is ready, claim it with 'chest'") + "\n")
	} else if allEligibleDone(v.Daily) {
		b.WriteString(Dim("Daily chest already claimed today.") + "\n")
	}
	if v.RerollUsedToday {
		b.WriteString(Dim("Reroll used for today.") + "\n")
	}

	return RenderBox("Quest Board", b.String())
}

func questTable(title string, rows []QuestRow, daily bool) string {
	var b strings.Builder
	b.WriteString(Header(title) + "\n")

	if len(rows) == 0 {
		b.WriteString(Dim("Nothing here yet.") + "\n")
		return b.String()
	}

	headers := []string{"REF", "QUEST", "CATEGORY", "TIER", "PROGRESS", "XP", "STATUS"}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		title := Bold(r.Title)
		if r.Status == domain.StatusCompleted {
			title = Dim(r.Title)
		}
		if daily && r.ChestEligible {
			title += " " + StyleYellow.Render("★")
		}
		table = append(table, []string{
			StyleGreen.Render(r.Ref),
			title,
			CategoryBadge(r.Category),
			DifficultyTag(r.Difficulty),
			RenderCount(r.Progress, r.Target),
			StylePurple.Render(fmt.Sprintf("+%d", r.RewardXP)),
			QuestStatusPill(r.Status),
		})
	}
	b.WriteString(RenderTable(headers, table))
	return b.String()
}

func allEligibleDone(rows []QuestRow) bool {
	eligible := 0
	for _, r := range rows {
		if !r.ChestEligible {
			continue
		}
		eligible++
		if r.Status != domain.StatusCompleted {
			return false
		}
	}
	return eligible > 0
}
