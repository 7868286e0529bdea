package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Inspect configured MCP tool servers",
	Long: `Inspect the MCP tool servers defined under mcpServers in the merged
configuration. Entries are shown in configuration order: global entries
first, local-only entries after.`,
	Example: `  couldyou mcp list
  couldyou mcp show filesystem

  See Also: couldyou config show, couldyou doctor`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}
