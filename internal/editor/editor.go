// Package editor provides utilities for launching the user's preferred
// text editor.
package editor

import (
	"os"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
)

// Resolve returns the editor command to use. The configured value (the
// editor field of the merged config) wins; the fallback chain is
// $EDITOR → $VISUAL → nano → vi.
func Resolve(configured string) string {
	if configured != "" {
		return configured
	}

	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	// User-friendly fallback (nano is easier for beginners)
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	// POSIX standard fallback (vi is available on all Unix systems)
	return "vi"
}

// Open launches the resolved editor for the given path, attached to the
// current terminal. The editor command may carry arguments, e.g.
// "code --wait".
func Open(path, configured string) error {
	parts := strings.Fields(Resolve(configured))
	if len(parts) == 0 {
		return errors.New("no editor available")
	}

	args := append(parts[1:], path)
	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "running editor")
	}

	return nil
}
