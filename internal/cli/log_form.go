package cli

import (
	"fmt"
	"strconv"

	"github.com/Statusnone420/weeklyquest/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

const (
	logChoiceFocusStart = "focus_start"
	logChoiceFocusDone  = "focus_done"
	logChoiceWater      = "water"
	logChoiceCheckin    = "checkin"
)

// runLogForm drives the interactive "what did you do?" flow. It collects the
// activity kind and its details, then dispatches the same way the flag-based
// subcommands do.
func runLogForm(app *App, cmd *cobra.Command) error {
	var choice string

	pick := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What did you do?").
				Options(
					huh.NewOption("Finished a focus session", logChoiceFocusDone),
					huh.NewOption("Started a focus session", logChoiceFocusStart),
					huh.NewOption("Drank water", logChoiceWater),
					huh.NewOption("Daily check-in", logChoiceCheckin),
				).
				Value(&choice),
		),
	).WithTheme(questHuhTheme()).WithShowHelp(false)

	if err := pick.Run(); err != nil {
		return err
	}

	switch choice {
	case logChoiceFocusStart:
		return app.dispatch(cmd, domain.EventFocusSessionStarted, domain.EventPayload{},
			"Focus session started.")

	case logChoiceFocusDone:
		minutes, err := promptPositiveInt("Session length (minutes)", "25")
		if err != nil {
			return err
		}
		return app.dispatch(cmd, domain.EventFocusSessionCompleted,
			domain.EventPayload{Minutes: minutes},
			fmt.Sprintf("Focus session logged: %dm.", minutes))

	case logChoiceWater:
		total, err := promptPositiveInt("Total ounces so far today", "32")
		if err != nil {
			return err
		}
		count, err := promptPositiveInt("Logs today, this one included", "1")
		if err != nil {
			return err
		}
		return app.dispatch(cmd, domain.EventHydrationLogged,
			domain.EventPayload{TotalOunces: total, LogCount: count},
			fmt.Sprintf("Water logged: %doz today.", total))

	case logChoiceCheckin:
		return app.dispatch(cmd, domain.EventCheckInCompleted,
			domain.EventPayload{AfterEveningCutoff: app.afterCutoff()},
			"Check-in logged.")
	}
	return nil
}

func promptPositiveInt(title, placeholder string) (int, error) {
	value := placeholder
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder(placeholder).
				Value(&value).
				Validate(validatePositiveInt),
		),
	).WithTheme(questHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return 0, err
	}
	n, _ := strconv.Atoi(value)
	return n, nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}
