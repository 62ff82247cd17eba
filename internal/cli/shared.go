package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/Statusnone420/weeklyquest/internal/catalog"
	"github.com/Statusnone420/weeklyquest/internal/cli/formatter"
	"github.com/Statusnone420/weeklyquest/internal/domain"
	"github.com/Statusnone420/weeklyquest/internal/engine"
)

// eveningCutoffHour splits the day for early/late check-in quests.
const eveningCutoffHour = 18

func (app *App) now() time.Time {
	if app.Now != nil {
		return app.Now()
	}
	return time.Now()
}

func (app *App) afterCutoff() bool {
	return app.now().Hour() >= eveningCutoffHour
}

func (app *App) roll() float64 {
	if app.Roll != nil {
		return app.Roll()
	}
	return rand.Float64()
}

// warnPersist downgrades a durability warning from the engine to a stderr
// note. The mutation already happened in memory; failing the command would
// just confuse the user.
func warnPersist(errOut io.Writer, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, engine.ErrPersist) {
		fmt.Fprintln(errOut, formatter.StyleYellow.Render(fmt.Sprintf("WARNING: %v", err)))
		return nil
	}
	return err
}

// report sends one gameplay event, then checks whether every daily core
// quest is now complete and, if so, emits the derived core-completed signal.
// The bonus quest guards itself, so re-emitting is harmless.
func (app *App) report(ctx context.Context, kind domain.EventKind, payload domain.EventPayload) error {
	if err := app.Quests.Report(ctx, kind, payload); err != nil {
		return err
	}
	if kind == domain.EventDailyCoreCompleted || !app.dailyCoreDone() {
		return nil
	}
	return app.Quests.Report(ctx, domain.EventDailyCoreCompleted, domain.EventPayload{})
}

// markCompleted routes manual completion through the same derived-signal
// check as event reporting.
func (app *App) markCompleted(ctx context.Context, instanceID string) error {
	if err := app.Quests.MarkCompleted(ctx, instanceID); err != nil {
		return err
	}
	if !app.dailyCoreDone() {
		return nil
	}
	return app.Quests.Report(ctx, domain.EventDailyCoreCompleted, domain.EventPayload{})
}

func (app *App) dailyCoreDone() bool {
	core := 0
	for _, q := range app.Quests.Snapshot().Daily {
		def, ok := app.Quests.Definition(q.DefinitionID)
		if !ok || def.Type != domain.TypeDailyCore {
			continue
		}
		core++
		if !q.Completed() {
			return false
		}
	}
	return core > 0
}

// levelUpLine compares player progress before and after a mutation and
// renders a celebration banner when a level boundary was crossed.
func (app *App) levelUpLine(before, after domain.PlayerProgress) string {
	if after.Level() <= before.Level() {
		return ""
	}
	tier := domain.ClassifyLevelUp(before.Level(), after.Level(), app.roll)
	return formatter.LevelUpBanner(tier, after.Level())
}

// resolveInstanceID turns a board reference like "d2" or "w1", or a unique
// instance id prefix, into a concrete instance id.
func resolveInstanceID(snap domain.Snapshot, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("empty quest reference")
	}

	lower := strings.ToLower(ref)
	if len(lower) >= 2 {
		if n, err := strconv.Atoi(lower[1:]); err == nil && n >= 1 {
			switch lower[0] {
			case 'd':
				if n <= len(snap.Daily) {
					return snap.Daily[n-1].ID, nil
				}
				return "", fmt.Errorf("no daily quest %q on the board", ref)
			case 'w':
				if n <= len(snap.Weekly) {
					return snap.Weekly[n-1].ID, nil
				}
				return "", fmt.Errorf("no weekly quest %q on the board", ref)
			}
		}
	}

	var match string
	for _, q := range snap.Daily {
		if strings.HasPrefix(q.ID, ref) {
			if match != "" && match != q.ID {
				return "", fmt.Errorf("quest reference %q is ambiguous", ref)
			}
			match = q.ID
		}
	}
	for _, q := range snap.Weekly {
		if strings.HasPrefix(q.ID, ref) {
			if match != "" && match != q.ID {
				return "", fmt.Errorf("quest reference %q is ambiguous", ref)
			}
			match = q.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no quest matches %q", ref)
	}
	return match, nil
}

// boardView joins the current snapshot with catalog definitions into the
// printable board.
func (app *App) boardView() formatter.BoardView {
	snap := app.Quests.Snapshot()
	return formatter.BoardView{
		Daily:           app.questRows(snap.Daily, "d"),
		Weekly:          app.questRows(snap.Weekly, "w"),
		DailyChestReady: snap.DailyChestReady,
		RerollUsedToday: snap.RerollUsedToday,
	}
}

func (app *App) questRows(set []domain.QuestInstance, refPrefix string) []formatter.QuestRow {
	rows := make([]formatter.QuestRow, 0, len(set))
	for i, q := range set {
		row := formatter.QuestRow{
			Ref:           fmt.Sprintf("%s%d", refPrefix, i+1),
			Title:         q.DefinitionID,
			Status:        q.Status,
			Progress:      q.Progress,
			Target:        q.Target,
			ChestEligible: q.CountsForDailyChest,
		}
		if def, ok := app.Quests.Definition(q.DefinitionID); ok {
			row.Title = def.Title
			row.Subtitle = def.Subtitle
			row.Category = def.Category
			row.Difficulty = def.Difficulty
			row.RewardXP = catalog.RewardXP(def)
		}
		rows = append(rows, row)
	}
	return rows
}

func (app *App) playerView() formatter.PlayerView {
	snap := app.Quests.Snapshot()
	return formatter.PlayerView{
		Level:           snap.Player.Level(),
		TotalXP:         snap.Player.TotalXP,
		XPIntoLevel:     snap.Player.XPIntoCurrentLevel(),
		XPToNext:        snap.Player.XPToNextLevel(),
		XPPerLevel:      domain.XPPerLevel,
		TodayXP:         snap.Player.TodayXP,
		DailyChestReady: snap.DailyChestReady,
		RerollUsedToday: snap.RerollUsedToday,
	}
}
