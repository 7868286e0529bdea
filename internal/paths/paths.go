// Package paths resolves the locations of the two configuration layers.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the application name used for config file naming.
const AppName = "couldyou"

// LocalConfigName is the project-level config file, looked up in the
// project root.
const LocalConfigName = ".couldyou.json"

// ErrHomeDirNotFound indicates the user's home directory could not be
// determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o700

// GlobalConfigPath returns the user-level config file location.
// On Linux: ~/.config/couldyou/config.json
// On macOS: ~/Library/Application Support/couldyou/config.json
func GlobalConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.json")
}

// LocalConfigPath returns the project-level config file inside root.
func LocalConfigPath(root string) string {
	return filepath.Join(root, LocalConfigName)
}

// FindRoot walks upward from start looking for a directory containing
// the local config file. When no ancestor has one, start itself is the
// root; the local layer is then simply absent, which the loader
// tolerates.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrap(err, "resolving start directory")
	}

	for current := dir; ; {
		if _, err := os.Stat(filepath.Join(current, LocalConfigName)); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return dir, nil
		}
		current = parent
	}
}

// ResolveHome returns the user's home directory.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// EnsureDir creates the directory and any necessary parents. If perm is
// 0, DefaultDirPerm is used. Idempotent.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}
