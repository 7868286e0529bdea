package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the layered configuration",
	Long: `Work with the two configuration layers.

The global layer lives in the user config directory and applies
everywhere. The local layer is a .couldyou.json in the project root and
overrides the global layer field by field.`,
	Example: `  # Show the effective merged configuration
  couldyou config show

  # Show where each layer lives
  couldyou config path

  # Edit the local layer
  couldyou config edit

  See Also: couldyou init, couldyou doctor`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}
