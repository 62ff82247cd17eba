package cli

import (
	"context"
	"fmt"

	"github.com/Statusnone420/weeklyquest/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <ref>",
		Short: "Manually complete a quest (board ref like d2 or w1, or id prefix)",
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
			if err := warnPersist(cmd.ErrOrStderr(), app.markCompleted(ctx, id)); err != nil {
				return err
			}
			after := app.Quests.Snapshot()

			out := cmd.OutOrStdout()
			gained := after.Player.TotalXP - before.Player.TotalXP
			if gained == 0 {
				fmt.Fprintln(out, formatter.Dim("Already completed."))
				return nil
			}

			title := args[0]
			if q := findInstance(after, id); q != nil {
				if def, ok := app.Quests.Definition(q.DefinitionID); ok {
					title = def.Title
				}
			}
			fmt.Fprintf(out, "%s Completed %s %s\n",
				formatter.StyleGreen.Render("✔"),
				formatter.Bold(title),
				formatter.StylePurple.Render(fmt.Sprintf("+%d XP", gained)))

			if banner := app.levelUpLine(before.Player, after.Player); banner != "" {
				fmt.Fprintln(out, banner)
			}
			if after.DailyChestReady && !before.DailyChestReady {
				fmt.Fprintln(out, formatter.StyleYellow.Render("★ Daily chest is ready, claim it with 'chest'"))
			}
			return nil
		},
	}
}
