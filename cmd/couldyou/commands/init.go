package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/couldyou/internal/errors"
	"github.com/thoreinstein/couldyou/internal/paths"
	"github.com/thoreinstein/couldyou/pkg/fileutil"
)

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"overwrite an existing config file")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter project configuration",
	Long: `Create a .couldyou.json in the current directory (or the -C
directory) with a commented-out skeleton of the supported fields.

Refuses to overwrite an existing file unless --force is given.`,
	Example: `  couldyou init
  couldyou init --force`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runInitWithWriter(cmd.OutOrStdout())
	},
}

// starterConfig is the skeleton written by init. It parses cleanly so a
// fresh project passes doctor out of the box.
var starterConfig = map[string]any{
	"llm": map[string]any{
		"provider": "anthropic",
		"model":    "claude-sonnet-4-5",
	},
	"mcpServers": map[string]any{
		"filesystem": map[string]any{
			"command": "npx",
			"args":    []string{"-y", "@modelcontextprotocol/server-filesystem", "."},
		},
	},
}

func runInitWithWriter(w io.Writer) error {
	dir := directoryFlag
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return errors.Wrap(err, "determining working directory")
		}
		dir = cwd
	}

	path := paths.LocalConfigPath(dir)

	if _, err := os.Stat(path); err == nil && !initForce {
		return errors.NewUserError(
			errors.Newf("%s already exists", path),
			"pass --force to overwrite it")
	}

	if err := fileutil.AtomicWriteJSON(path, starterConfig); err != nil {
		return errors.NewSystemError(err, "check directory permissions")
	}

	fmt.Fprintf(w, "Created %s\n", path)
	return nil
}
