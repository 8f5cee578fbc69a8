package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/andy/pomo/internal/repository"
	"github.com/andy/pomo/internal/schedule"
	"github.com/andy/pomo/internal/service"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change saved preferences",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := settingsEngine(cmd.Context())
		s := engine.Settings()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Work:      %d min\n", s.WorkDurationSeconds/60)
		fmt.Fprintf(out, "Break:     %d min\n", s.BreakDurationSeconds/60)
		fmt.Fprintf(out, "Sound:     %s\n", onOff(s.SoundEnabled))
		fmt.Fprintf(out, "Dark mode: %s\n", onOff(s.DarkModeEnabled))
		fmt.Fprintf(out, "Stored in: %s\n", storageLocation())
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <work|break|sound|dark> <value>",
	Short: "Change one preference",
	Long: `Change one preference and save it.

Examples:
  pomo settings set work 30     # 30 minute work sessions
  pomo settings set break 10
  pomo settings set sound off
  pomo settings set dark on`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		engine := settingsEngine(ctx)
		field, value := strings.ToLower(args[0]), args[1]

		var err error
		switch field {
		case "work", "break":
			minutes, convErr := strconv.Atoi(value)
			if convErr != nil {
				return fmt.Errorf("invalid minutes %q: %w", value, convErr)
			}
			if field == "work" {
				err = engine.SetWorkDuration(ctx, minutes)
			} else {
				err = engine.SetBreakDuration(ctx, minutes)
			}
		case "sound", "dark":
			enabled, parseErr := parseToggle(value)
			if parseErr != nil {
				return parseErr
			}
			if field == "sound" {
				err = engine.SetSoundEnabled(ctx, enabled)
			} else {
				err = engine.SetDarkModeEnabled(ctx, enabled)
			}
		default:
			return fmt.Errorf("unknown setting %q (want work, break, sound or dark)", field)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s set to %s\n", field, value)
		return nil
	},
}

// settingsEngine builds an engine that is never started, only used to
// read and change preferences
func settingsEngine(ctx context.Context) service.TimerEngine {
	return appInstance.NewTimerEngine(ctx, schedule.NewManual(), nil)
}

func storageLocation() string {
	if repo, ok := appInstance.SettingsRepo.(*repository.YAMLSettingsRepo); ok {
		return repo.Path()
	}
	return appInstance.Config.Storage.DatabasePath + " (encrypted)"
}

// parseToggle accepts on/off as well as anything strconv.ParseBool does
func parseToggle(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid toggle %q (want on or off)", value)
	}
	return enabled, nil
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
