package cli

import (
	"context"
	"fmt"

	"github.com/Statusnone420/weeklyquest/internal/cli/formatter"
	"github.com/Statusnone420/weeklyquest/internal/domain"
	"github.com/spf13/cobra"
)

func newRerollCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reroll <ref>",
		Short: "Swap a daily quest for another of the same shape (once per day)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := warnPersist(cmd.ErrOrStderr(), app.Quests.ApplyRolloverIfNeeded(ctx, app.now())); err != nil {
				return err
			}

			before := app.Quests.Snapshot()
			id, err := resolveInstanceID(before, args[0])
			if err != nil {
				return err
			}
			if err := warnPersist(cmd.ErrOrStderr(), app.Quests.Reroll(ctx, id)); err != nil {
				return err
			}
			after := app.Quests.Snapshot()

			out := cmd.OutOrStdout()
			prev := findInstance(before, id)
			next := findInstance(after, id)
			if prev == nil || next == nil || prev.DefinitionID == next.DefinitionID {
				if before.RerollUsedToday {
					fmt.Fprintln(out, formatter.Dim("Reroll already used today."))
				} else {
					fmt.Fprintln(out, formatter.Dim("No reroll available for that quest."))
				}
				return nil
			}

			fmt.Fprintf(out, "%s Rerolled %s %s %s\n",
				formatter.StyleGreen.Render("⟳"),
				formatter.Dim(defTitle(app, prev.DefinitionID)),
				formatter.Dim("→"),
				formatter.Bold(defTitle(app, next.DefinitionID)))
			return nil
		},
	}
}

func defTitle(app *App, definitionID string) string {
	if def, ok := app.Quests.Definition(definitionID); ok {
		return def.Title
	}
	return definitionID
}

func findInstance(snap domain.Snapshot, id string) *domain.QuestInstance {
	for i := range snap.Daily {
		if snap.Daily[i].ID == id {
			return &snap.Daily[i]
		}
	}
	for i := range snap.Weekly {
		if snap.Weekly[i].ID == id {
			return &snap.Weekly[i]
		}
	}
	return nil
}
