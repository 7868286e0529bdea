package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the configured environment as shell exports",
	Long: `Print the env section of the merged configuration as export
statements, sorted by name, suitable for eval in a shell.

Values are printed verbatim, including credentials; this command exists
to feed them to child processes.`,
	Example: `  eval "$(couldyou env)"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runEnvWithWriter(cmd.OutOrStdout())
	},
}

func runEnvWithWriter(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(cfg.Env))
	for k := range cfg.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(w, "export %s=%q\n", k, cfg.Env[k])
	}
	return nil
}
