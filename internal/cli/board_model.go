package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Statusnone420/weeklyquest/internal/cli/formatter"
	"github.com/Statusnone420/weeklyquest/internal/domain"
	"github.com/Statusnone420/weeklyquest/internal/engine"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type boardSection int

const (
	sectionDaily boardSection = iota
	sectionWeekly
)

type boardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Switch   key.Binding
	Complete key.Binding
	Reroll   key.Binding
	Chest    key.Binding
	Refresh  key.Binding
	Quit     key.Binding
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Complete, k.Reroll, k.Chest, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Complete, k.Reroll, k.Chest},
		{k.Refresh, k.Quit},
	}
}

func defaultBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Switch:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "daily/weekly")),
		Complete: key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("c", "complete")),
		Reroll:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reroll")),
		Chest:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "claim chest")),
		Refresh:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "refresh")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardModel is the interactive quest board. All engine calls are
// synchronous; the model re-snapshots after every action.
type boardModel struct {
	app     *App
	snap    domain.Snapshot
	section boardSection
	cursor  int
	status  string
	keys    boardKeyMap
	help    help.Model
	width   int
}

func newBoardModel(app *App) *boardModel {
	return &boardModel{
		app:  app,
		snap: app.Quests.Snapshot(),
		keys: defaultBoardKeyMap(),
		help: help.New(),
	}
}

func (m *boardModel) Init() tea.Cmd {
	return nil
}

func (m *boardModel) current() []domain.QuestInstance {
	if m.section == sectionWeekly {
		return m.snap.Weekly
	}
	return m.snap.Daily
}

func (m *boardModel) clampCursor() {
	if n := len(m.current()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *boardModel) refresh(ctx context.Context) {
	m.noteErr(m.app.Quests.ApplyRolloverIfNeeded(ctx, m.app.now()))
	m.snap = m.app.Quests.Snapshot()
	m.clampCursor()
}

// noteErr records an action outcome in the status line. Persistence warnings
// are shown but never abort the TUI.
func (m *boardModel) noteErr(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, engine.ErrPersist) {
		m.status = formatter.StyleYellow.Render(fmt.Sprintf("WARNING: %v", err))
		return
	}
	m.status = formatter.StyleRed.Render(fmt.Sprintf("Error: %v", err))
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		ctx := context.Background()
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.current())-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Switch):
			if m.section == sectionDaily {
				m.section = sectionWeekly
			} else {
				m.section = sectionDaily
			}
			m.clampCursor()

		case key.Matches(msg, m.keys.Complete):
			m.completeSelected(ctx)

		case key.Matches(msg, m.keys.Reroll):
			m.rerollSelected(ctx)

		case key.Matches(msg, m.keys.Chest):
			m.claimChest(ctx)

		case key.Matches(msg, m.keys.Refresh):
			m.status = ""
			m.refresh(ctx)
		}
	}
	return m, nil
}

func (m *boardModel) completeSelected(ctx context.Context) {
	set := m.current()
	if m.cursor >= len(set) {
		return
	}
	q := set[m.cursor]
	if q.Completed() {
		m.status = formatter.Dim("Already completed.")
		return
	}

	before := m.snap.Player
	m.noteErr(m.app.markCompleted(ctx, q.ID))
	m.snap = m.app.Quests.Snapshot()

	gained := m.snap.Player.TotalXP - before.TotalXP
	line := fmt.Sprintf("%s Completed %s %s",
		formatter.StyleGreen.Render("✔"),
		formatter.Bold(defTitle(m.app, q.DefinitionID)),
		formatter.StylePurple.Render(fmt.Sprintf("+%d XP", gained)))
	if banner := m.app.levelUpLine(before, m.snap.Player); banner != "" {
		line += "  " + banner
	}
	m.status = line
}

func (m *boardModel) rerollSelected(ctx context.Context) {
	if m.section != sectionDaily {
		m.status = formatter.Dim("Only daily quests can be rerolled.")
		return
	}
	set := m.current()
	if m.cursor >= len(set) {
		return
	}
	q := set[m.cursor]

	m.noteErr(m.app.Quests.Reroll(ctx, q.ID))
	m.snap = m.app.Quests.Snapshot()

	next := findInstance(m.snap, q.ID)
	if next == nil || next.DefinitionID == q.DefinitionID {
		m.status = formatter.Dim("No reroll available.")
		return
	}
	m.status = fmt.Sprintf("%s Rerolled %s %s %s",
		formatter.StyleGreen.Render("⟳"),
		formatter.Dim(defTitle(m.app, q.DefinitionID)),
		formatter.Dim("→"),
		formatter.Bold(defTitle(m.app, next.DefinitionID)))
}

func (m *boardModel) claimChest(ctx context.Context) {
	if !m.snap.DailyChestReady {
		m.status = formatter.Dim("No chest to claim yet.")
		return
	}
	m.noteErr(m.app.Quests.ClaimChest(ctx))
	m.snap = m.app.Quests.Snapshot()
	m.status = formatter.StyleYellow.Render("★ Daily chest claimed!")
}

func (m *boardModel) View() string {
	var b strings.Builder

	p := m.snap.Player
	b.WriteString(fmt.Sprintf("\n  %s %s  %s %s  %s\n\n",
		formatter.Dim("Level"),
		formatter.StyleHeader.Render(fmt.Sprintf("%d", p.Level())),
		formatter.Dim("Today"),
		formatter.StyleGreen.Render(fmt.Sprintf("+%d XP", p.TodayXP)),
		formatter.RenderProgress(float64(p.XPIntoCurrentLevel())/float64(domain.XPPerLevel), 16)))

	b.WriteString(m.renderSection("Today", m.snap.Daily, sectionDaily))
	b.WriteString("\n")
	b.WriteString(m.renderSection("This Week", m.snap.Weekly, sectionWeekly))

	if m.snap.DailyChestReady {
		b.WriteString("\n  " + formatter.StyleYellow.Render("★ Daily chest ready, press g to claim") + "\n")
	}
	if m.status != "" {
		b.WriteString("\n  " + m.status + "\n")
	}

	b.WriteString("\n  " + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m *boardModel) renderSection(title string, set []domain.QuestInstance, section boardSection) string {
	var b strings.Builder

	header := formatter.StyleHeader.Render(strings.ToUpper(title))
	if m.section != section {
		header = formatter.Dim(strings.ToUpper(title))
	}
	b.WriteString("  " + header + "\n")

	for i, q := range set {
		cursor := "  "
		if m.section == section && i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}

		title := defTitle(m.app, q.DefinitionID)
		name := formatter.StyleFg.Render(title)
		if q.Completed() {
			name = formatter.Dim(title)
		}

		star := " "
		if section == sectionDaily && q.CountsForDailyChest {
			star = formatter.StyleYellow.Render("★")
		}

		var badge, tier string
		if def, ok := m.app.Quests.Definition(q.DefinitionID); ok {
			badge = formatter.CategoryBadge(def.Category)
			tier = formatter.DifficultyTag(def.Difficulty)
		}

		b.WriteString(fmt.Sprintf("  %s%s %s  %s %s %s %s\n",
			cursor,
			star,
			name,
			formatter.RenderCount(q.Progress, q.Target),
			badge,
			tier,
			formatter.QuestStatusPill(q.Status)))
	}
	if len(set) == 0 {
		b.WriteString("  " + formatter.Dim("Nothing here yet.") + "\n")
	}
	return b.String()
}
