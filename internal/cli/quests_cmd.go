package cli

import (
	"context"
	"fmt"

	"github.com/Statusnone420/weeklyquest/internal/cli/formatter"
	"github.com/Statusnone420/weeklyquest/internal/domain"
	"github.com/spf13/cobra"
)

func newQuestsCmd(app *App) *cobra.Command {
	var category categoryValue

	cmd := &cobra.Command{
		Use:   "quests",
		Short: "Show today's quest board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := warnPersist(cmd.ErrOrStderr(), app.Quests.ApplyRolloverIfNeeded(ctx, app.now())); err != nil {
				return err
			}

			// Opening the board is itself a tracked signal.
			payload := domain.EventPayload{AfterEveningCutoff: app.afterCutoff()}
			if err := warnPersist(cmd.ErrOrStderr(), app.report(ctx, domain.EventQuestsTabOpened, payload)); err != nil {
				return err
			}

			view := app.boardView()
			if category != "" {
				view.Daily = filterRows(view.Daily, domain.QuestCategory(category))
				view.Weekly = filterRows(view.Weekly, domain.QuestCategory(category))
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBoard(view))
			return nil
		},
	}

	cmd.Flags().Var(&category, "category", "Only show quests in this category")

	return cmd
}

func filterRows(rows []formatter.QuestRow, cat domain.QuestCategory) []formatter.QuestRow {
	var out []formatter.QuestRow
	for _, r := range rows {
		if r.Category == cat {
			out = append(out, r)
		}
	}
	return out
}
