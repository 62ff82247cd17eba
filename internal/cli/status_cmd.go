package cli

import (
	"context"
	"fmt"

	"github.com/Statusnone420/weeklyquest/internal/cli/formatter"
	"github.com/Statusnone420/weeklyquest/internal/domain"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show level, XP and today's progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := warnPersist(cmd.ErrOrStderr(), app.Quests.ApplyRolloverIfNeeded(ctx, app.now())); err != nil {
				return err
			}

			// Reviewing stats feeds the reflection quests.
			payload := domain.EventPayload{AfterEveningCutoff: app.afterCutoff()}
			if err := warnPersist(cmd.ErrOrStderr(), app.report(ctx, domain.EventStatsTabOpened, payload)); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlayer(app.playerView()))
			return nil
		},
	}
}
