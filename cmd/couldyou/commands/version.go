package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Set at build time via ldflags.
var (
	version = "0.1.0"
	commit  = "none"
	date    = "unknown"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runVersionWithWriter(cmd.OutOrStdout())
	},
}

func runVersionWithWriter(w io.Writer) error {
	fmt.Fprintf(w, "couldyou version %s\n", version)
	fmt.Fprintf(w, "  commit: %s\n", commit)
	fmt.Fprintf(w, "  built:  %s\n", date)
	return nil
}
