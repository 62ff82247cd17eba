package cli

import (
	"context"
	"fmt"

	"github.com/Statusnone420/weeklyquest/internal/catalog"
	"github.com/Statusnone420/weeklyquest/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newChestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chest",
		Short: "Claim the daily chest",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := warnPersist(cmd.ErrOrStderr(), app.Quests.ApplyRolloverIfNeeded(ctx, app.now())); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !app.Quests.Snapshot().DailyChestReady {
				fmt.Fprintln(out, formatter.Dim("No chest to claim. Finish every starred daily quest first."))
				return nil
			}
			if err := warnPersist(cmd.ErrOrStderr(), app.Quests.ClaimChest(ctx)); err != nil {
				return err
			}

			// The bonus XP was banked the moment the last starred quest
			// completed; claiming is the celebratory acknowledgement.
			fmt.Fprintf(out, "%s Daily chest claimed! %s\n",
				formatter.StyleYellow.Render("★"),
				formatter.StylePurple.Render(fmt.Sprintf("+%d XP banked", catalog.DailyChestBonusXP)))
			return nil
		},
	}
}
