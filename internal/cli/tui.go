package cli

import (
	"fmt"

	"github.com/andy/pomo/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the terminal UI",
	Long:  `Launch the interactive terminal user interface for pomo.`,
	RunE:  launchTUI,
}

func launchTUI(cmd *cobra.Command, args []string) error {
	// The alternate screen owns stdout, so log lines go to a file
	f, err := tea.LogToFile(appInstance.Config.Log.Path, "pomo")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	return tui.Run(appInstance)
}
