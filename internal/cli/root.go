package cli

import (
	"time"

	"github.com/spf13/cobra"
)

// App holds the quest service plus environment probes used by CLI commands.
type App struct {
	Quests QuestService

	// Now supplies the wall clock; defaults to time.Now when nil.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal, enabling the
	// interactive log form and the board TUI.
	IsInteractive func() bool

	// Roll supplies randomness for level-up tier classification; defaults
	// to math/rand when nil.
	Roll func() float64
}

// NewRootCmd creates the top-level "weeklyquest" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "weeklyquest",
		Short: "Daily and weekly self-care quest board",
	}

	root.AddCommand(
		newQuestsCmd(app),
		newStatusCmd(app),
		newLogCmd(app),
		newCompleteCmd(app),
		newRerollCmd(app),
		newChestCmd(app),
		newBoardCmd(app),
	)

	return root
}
