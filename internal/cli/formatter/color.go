package formatter

import (
	"fmt"
	"strings"

	"github.com/Statusnone420/weeklyquest/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryStyle returns the lipgloss style for a quest category.
func CategoryStyle(cat domain.QuestCategory) lipgloss.Style {
	switch cat {
	case domain.CategoryFocus:
		return StyleBlue
	case domain.CategoryHydration:
		return StyleGreen
	case domain.CategoryHPCore:
		return StyleRed
	case domain.CategoryChores:
		return StyleYellow
	case domain.CategoryMeta:
		return StylePurple
	default:
		return StyleDim
	}
}

// CategoryBadge returns a short colored category label like "FOCUS".
func CategoryBadge(cat domain.QuestCategory) string {
	labels := map[domain.QuestCategory]string{
		domain.CategoryFocus:     "FOCUS",
		domain.CategoryHydration: "WATER",
		domain.CategoryHPCore:    "CARE",
		domain.CategoryChores:    "CHORES",
		domain.CategoryMeta:      "META",
	}
	label, ok := labels[cat]
	if !ok {
		label = strings.ToUpper(string(cat))
	}
	return CategoryStyle(cat).Render(label)
}

// DifficultyTag returns a colored tier marker such as "◆◆ medium".
func DifficultyTag(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyTiny:
		return StyleDim.Render("◆ tiny")
	case domain.DifficultySmall:
		return StyleGreen.Render("◆◆ small")
	case domain.DifficultyMedium:
		return StyleYellow.Render("◆◆◆ medium")
	case domain.DifficultyBig:
		return StyleRed.Render("◆◆◆◆ big")
	default:
		return StyleDim.Render(string(d))
	}
}

// QuestStatusPill returns a colored status indicator for a quest instance.
func QuestStatusPill(status domain.QuestStatus) string {
	switch status {
	case domain.StatusPending:
		return StyleDim.Render("○ Pending")
	case domain.StatusInProgress:
		return StyleYellow.Render("◐ Active")
	case domain.StatusCompleted:
		return StyleGreen.Render("✔ Done")
	case domain.StatusFailed:
		return StyleRed.Render("✖ Failed")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
