package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/andy/pomo/internal/crypto"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset saved data",
	Long: `Reset saved data.

Examples:
  pomo reset settings       # Forget saved durations and preferences
  pomo reset settings -y    # Same, without asking
  pomo reset all            # Also remove the encrypted database and its key`,
}

var resetSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Delete saved preferences so the defaults apply again",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes && !confirmPrompt("This will delete your saved durations and preferences. Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := appInstance.SettingsRepo.Delete(cmd.Context()); err != nil {
			return fmt.Errorf("failed to delete settings: %w", err)
		}

		fmt.Println("Saved settings have been deleted. Defaults apply on next start.")
		return nil
	},
}

var resetAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Delete saved preferences, the settings database and its keyring entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes && !confirmPrompt("This will delete ALL saved data, including the database key. Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := appInstance.SettingsRepo.Delete(cmd.Context()); err != nil {
			return fmt.Errorf("failed to delete settings: %w", err)
		}

		if appInstance.DB != nil {
			if err := appInstance.Close(); err != nil {
				return fmt.Errorf("failed to close database: %w", err)
			}
			appInstance.DB = nil
			for _, suffix := range []string{"", "-wal", "-shm"} {
				path := appInstance.Config.Storage.DatabasePath + suffix
				if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("failed to remove %s: %w", path, err)
				}
			}
			if err := crypto.NewKeyring().DeleteKey(); err != nil && !errors.Is(err, crypto.ErrKeyNotFound) {
				return fmt.Errorf("failed to delete database key: %w", err)
			}
		}

		fmt.Println("All saved data has been deleted.")
		return nil
	},
}

func confirmPrompt(message string) bool {
	fmt.Printf("%s [y/N] ", message)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func init() {
	resetCmd.PersistentFlags().BoolVarP(&resetYes, "yes", "y", false, "skip the confirmation prompt")
	resetCmd.AddCommand(resetSettingsCmd)
	resetCmd.AddCommand(resetAllCmd)
}
