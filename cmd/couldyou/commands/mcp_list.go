package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/couldyou/internal/errors"
)

var mcpListJSON bool

func init() {
	mcpCmd.AddCommand(mcpListCmd)
	mcpListCmd.Flags().BoolVar(&mcpListJSON, "json", false,
		"output as JSON")
}

var mcpListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured MCP servers",
	Long: `List every server under mcpServers in the merged configuration,
with its command line and whether it is enabled.`,
	Example: `  couldyou mcp list
  couldyou mcp list --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMcpListWithWriter(cmd.OutOrStdout())
	},
}

func runMcpListWithWriter(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if mcpListJSON {
		data, err := json.MarshalIndent(renderConfig(cfg, false).Servers, "", "  ")
		if err != nil {
			return errors.Wrap(err, "rendering JSON")
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	if len(cfg.Servers) == 0 {
		fmt.Fprintln(w, "No MCP servers configured.")
		fmt.Fprintln(w, "Add entries under mcpServers, e.g. with: couldyou config edit")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTATUS\tCOMMAND\tDISABLED TOOLS")
	for _, s := range cfg.Servers {
		status := "enabled"
		if !s.Enabled {
			status = "disabled"
		}
		command := truncate(strings.Join(append([]string{s.Command}, s.Args...), " "), 60)
		disabled := "-"
		if len(s.DisabledTools) > 0 {
			disabled = fmt.Sprintf("%d", len(s.DisabledTools))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, status, command, disabled)
	}
	return tw.Flush()
}
