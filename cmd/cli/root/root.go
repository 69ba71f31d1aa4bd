package root

import (
	"github.com/spf13/cobra"
)

// RootCmd is the top-level countdown command.
var RootCmd = &cobra.Command{
	Use:           "countdown",
	Short:         "Habit reminder countdowns",
	Long:          "Compute and render time remaining until daily habit reminders.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// GetRoot returns the RootCmd.
func GetRoot() *cobra.Command {
	return RootCmd
}
