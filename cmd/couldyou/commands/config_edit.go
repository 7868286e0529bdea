package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/couldyou/internal/config"
	"github.com/thoreinstein/couldyou/internal/editor"
	"github.com/thoreinstein/couldyou/internal/errors"
	"github.com/thoreinstein/couldyou/internal/paths"
)

var editGlobal bool

func init() {
	configCmd.AddCommand(configEditCmd)
	configEditCmd.Flags().BoolVar(&editGlobal, "global", false,
		"edit the global layer instead of the local one")
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open a configuration layer in your editor",
	Long: `Open the local layer (or the global layer with --global) in your
preferred editor.

The editor comes from the editor field of the merged config, then
$EDITOR, then $VISUAL, falling back to nano or vi. A broken config does
not block editing; that is usually exactly when you need to edit it.`,
	Example: `  couldyou config edit
  couldyou config edit --global`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runConfigEdit()
	},
}

func runConfigEdit() error {
	l, err := resolveLayers()
	if err != nil {
		return err
	}

	path := l.Local
	if editGlobal {
		path = l.Global
		if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
			return errors.Wrap(err, "creating config directory")
		}
	}

	// Best effort: a layer that fails to load still gets edited with
	// whatever editor the environment provides.
	configured := ""
	if cfg, err := config.Load(l.Global, l.Local, l.Root); err == nil && cfg.Editor != nil {
		configured = *cfg.Editor
	}

	if err := editor.Open(path, configured); err != nil {
		return errors.NewSystemError(err, "set $EDITOR to a working editor command")
	}
	return nil
}
