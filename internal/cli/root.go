package cli

import (
	"github.com/andy/pomo/internal/app"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "A terminal Pomodoro timer",
	Long: `Pomo alternates work and break countdowns, chimes when a phase ends,
and remembers your durations and preferences between runs.

By default, running pomo without arguments launches the interactive TUI.
Use subcommands for headless and settings operations.`,
	RunE: launchTUI,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(resetCmd)
}
