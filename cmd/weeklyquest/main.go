package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Statusnone420/weeklyquest/internal/catalog"
	"github.com/Statusnone420/weeklyquest/internal/cli"
	"github.com/Statusnone420/weeklyquest/internal/db"
	"github.com/Statusnone420/weeklyquest/internal/domain"
	"github.com/Statusnone420/weeklyquest/internal/engine"
	"github.com/Statusnone420/weeklyquest/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.weeklyquest/weeklyquest.db
	dbPath := os.Getenv("WEEKLYQUEST_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".weeklyquest", "weeklyquest.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Optional suppressed category, e.g. WEEKLYQUEST_SUPPRESS=chores_work
	settings := domain.Settings{
		SuppressedCategory: domain.QuestCategory(os.Getenv("WEEKLYQUEST_SUPPRESS")),
	}

	// Wire the progress ledger over the KV state store
	st := store.NewStateStore(store.NewSQLiteKV(database))
	uow := db.NewSQLiteUnitOfWork(database)
	eng, err := engine.New(context.Background(), catalog.Default(), st, uow, time.Now, settings)
	if err != nil {
		return fmt.Errorf("loading quest state: %w", err)
	}

	app := &cli.App{
		Quests: eng,
		Now:    time.Now,
	}

	// Detect interactive terminal for the log form and board TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
