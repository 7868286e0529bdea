package commands

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/thoreinstein/couldyou/internal/config"
	"github.com/thoreinstein/couldyou/internal/errors"
	"github.com/thoreinstein/couldyou/internal/mcp"
)

func init() {
	mcpCmd.AddCommand(mcpShowCmd)
}

var mcpShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show one MCP server in detail",
	Long: `Show the full configuration of one server. With no argument on an
interactive terminal, pick the server with a fuzzy finder.`,
	Example: `  couldyou mcp show filesystem
  couldyou mcp show`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMcpShowWithWriter(cmd.OutOrStdout(), args)
	},
}

func runMcpShowWithWriter(w io.Writer, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		name, err = pickServer(cfg)
		if err != nil {
			return err
		}
	}

	server, ok := cfg.Server(name)
	if !ok {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrNotFound, "no MCP server named %q", name),
			"run: couldyou mcp list")
	}

	fmt.Fprintf(w, "Name:       %s\n", server.Name)
	fmt.Fprintf(w, "Enabled:    %t\n", server.Enabled)
	fmt.Fprintf(w, "Invocation: %s\n", strings.Join(mcp.Invocation(server), " "))
	if len(server.DisabledTools) > 0 {
		tools := make([]string, 0, len(server.DisabledTools))
		for tool := range server.DisabledTools {
			tools = append(tools, tool)
		}
		sort.Strings(tools)
		fmt.Fprintf(w, "Disabled tools: %s\n", strings.Join(tools, ", "))
	}
	return nil
}

// pickServer lets the user choose a server interactively. Requires a
// terminal; in a pipe the name argument is mandatory.
func pickServer(cfg *config.Config) (string, error) {
	if len(cfg.Servers) == 0 {
		return "", errors.NewUserError(
			errors.New("no MCP servers configured"),
			"add entries under mcpServers, e.g. with: couldyou config edit")
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.NewUserError(
			errors.New("server name required when not running interactively"),
			"run: couldyou mcp show <name>")
	}

	idx, err := fuzzyfinder.Find(cfg.Servers, func(i int) string {
		return cfg.Servers[i].Name
	})
	if err != nil {
		return "", errors.Wrap(err, "selecting server")
	}
	return cfg.Servers[idx].Name, nil
}
