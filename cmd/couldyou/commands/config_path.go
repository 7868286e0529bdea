package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configPathCmd)
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show where the configuration layers live",
	Long: `Print the resolved path of each configuration layer and whether the
file currently exists. A missing layer is not an error; the loader
treats it as empty.`,
	Example: `  couldyou config path`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigPathWithWriter(cmd.OutOrStdout())
	},
}

func runConfigPathWithWriter(w io.Writer) error {
	l, err := resolveLayers()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "global: %s%s\n", l.Global, existsNote(l.Global))
	fmt.Fprintf(w, "local:  %s%s\n", l.Local, existsNote(l.Local))
	fmt.Fprintf(w, "root:   %s\n", l.Root)
	return nil
}

func existsNote(path string) string {
	if _, err := os.Stat(path); err != nil {
		return " (missing)"
	}
	return ""
}
