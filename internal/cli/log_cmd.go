package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Statusnone420/weeklyquest/internal/cli/formatter"
	"github.com/Statusnone420/weeklyquest/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a self-care activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runLogForm(app, cmd)
			}
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newLogFocusCmd(app),
		newLogWaterCmd(app),
		newLogCheckinCmd(app),
	)

	return cmd
}

func newLogFocusCmd(app *App) *cobra.Command {
	var start bool

	cmd := &cobra.Command{
		Use:   "focus [minutes]",
		Short: "Log a focus session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if start {
				return app.dispatch(cmd, domain.EventFocusSessionStarted, domain.EventPayload{},
					"Focus session started.")
			}
			if len(args) == 0 {
				return fmt.Errorf("minutes required (or use --start)")
			}
			minutes, err := strconv.Atoi(args[0])
			if err != nil || minutes <= 0 {
				return fmt.Errorf("invalid minutes %q", args[0])
			}
			return app.dispatch(cmd, domain.EventFocusSessionCompleted,
				domain.EventPayload{Minutes: minutes},
				fmt.Sprintf("Focus session logged: %dm.", minutes))
		},
	}

	cmd.Flags().BoolVar(&start, "start", false, "Record the start of a session instead of a finish")

	return cmd
}

func newLogWaterCmd(app *App) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "water <total-ounces>",
		Short: "Log water intake (running daily total)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := strconv.Atoi(args[0])
			if err != nil || total < 0 {
				return fmt.Errorf("invalid ounce total %q", args[0])
			}
			return app.dispatch(cmd, domain.EventHydrationLogged,
				domain.EventPayload{TotalOunces: total, LogCount: count},
				fmt.Sprintf("Water logged: %doz today.", total))
		},
	}

	cmd.Flags().IntVar(&count, "count", 1, "How many logs you've made today, this one included")

	return cmd
}

func newLogCheckinCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "checkin",
		Short: "Log your daily check-in",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.dispatch(cmd, domain.EventCheckInCompleted,
				domain.EventPayload{AfterEveningCutoff: app.afterCutoff()},
				"Check-in logged.")
		},
	}
}

// dispatch reports an event, prints the confirmation plus any level-up
// banner, and downgrades persistence warnings.
func (app *App) dispatch(cmd *cobra.Command, kind domain.EventKind, payload domain.EventPayload, confirmation string) error {
	ctx := context.Background()
	if err := warnPersist(cmd.ErrOrStderr(), app.Quests.ApplyRolloverIfNeeded(ctx, app.now())); err != nil {
		return err
	}

	before := app.Quests.Snapshot()
	if err := warnPersist(cmd.ErrOrStderr(), app.report(ctx, kind, payload)); err != nil {
		return err
	}
	after := app.Quests.Snapshot()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s",
		formatter.StyleGreen.Render("✔"), confirmation)
	if gained := after.Player.TotalXP - before.Player.TotalXP; gained > 0 {
		fmt.Fprintf(out, " %s", formatter.StylePurple.Render(fmt.Sprintf("+%d XP", gained)))
	}
	fmt.Fprintln(out)

	if banner := app.levelUpLine(before.Player, after.Player); banner != "" {
		fmt.Fprintln(out, banner)
	}
	if after.DailyChestReady && !before.DailyChestReady {
		fmt.Fprintln(out, formatter.StyleYellow.Render("★ Daily chest is ready, claim it with 'chest'"))
	}
	return nil
}
