package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/Statusnone420/weeklyquest/internal/catalog"
	"github.com/Statusnone420/weeklyquest/internal/db"
	"github.com/Statusnone420/weeklyquest/internal/domain"
	"github.com/Statusnone420/weeklyquest/internal/engine"
	"github.com/Statusnone420/weeklyquest/internal/store"
	"github.com/Statusnone420/weeklyquest/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Tuesday morning, well before the evening cutoff.
var testNow = time.Date(2025, 4, 8, 9, 0, 0, 0, time.UTC)

func subCatalog(t *testing.T, ids ...string) *catalog.Catalog {
	t.Helper()
	full := catalog.Default()
	var defs []domain.QuestDefinition
	for _, id := range ids {
		d, ok := full.Get(id)
		require.True(t, ok, "unknown catalog id %s", id)
		defs = append(defs, d)
	}
	return catalog.New(defs)
}

// newTestApp wires a real engine over an in-memory database behind the CLI,
// with a pinned clock and deterministic level-up rolls.
func newTestApp(t *testing.T, cat *catalog.Catalog) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	st := store.NewStateStore(store.NewSQLiteKV(database))
	eng, err := engine.New(context.Background(), cat, st,
		db.NewSQLiteUnitOfWork(database), testutil.FixedClock(testNow), domain.Settings{})
	require.NoError(t, err)

	return &App{
		Quests:        eng,
		Now:           testutil.FixedClock(testNow),
		IsInteractive: func() bool { return false },
		Roll:          func() float64 { return 0.99 },
	}
}

// rerollTestCatalog holds three interchangeable chores quests; the daily set
// picks two, leaving exactly one reroll candidate.
func rerollTestCatalog() *catalog.Catalog {
	mk := func(id string) domain.QuestDefinition {
		return domain.QuestDefinition{
			ID: id, Type: domain.TypeDailyCore, Category: domain.CategoryChores,
			Difficulty: domain.DifficultySmall, Title: "Chore " + id, Target: 2,
		}
	}
	return catalog.New([]domain.QuestDefinition{mk("chore_a"), mk("chore_b"), mk("chore_c")})
}

// runCommand executes one CLI invocation and returns its combined output.
func runCommand(t *testing.T, app *App, args ...string) string {
	t.Helper()
	out, err := tryCommand(app, args...)
	require.NoError(t, err)
	return out
}

func tryCommand(app *App, args ...string) (string, error) {
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	err := root.Execute()
	return buf.String(), err
}
