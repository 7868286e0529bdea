package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setLayers points the loader at temp config files for the duration of
// one test. An empty content string leaves that layer absent, which the
// loader treats as an empty document.
func setLayers(t *testing.T, global, local string) string {
	t.Helper()

	dir := t.TempDir()

	globalPath := filepath.Join(dir, "config.json")
	if global != "" {
		require.NoError(t, os.WriteFile(globalPath, []byte(global), 0o644))
	}
	localPath := filepath.Join(dir, ".couldyou.json")
	if local != "" {
		require.NoError(t, os.WriteFile(localPath, []byte(local), 0o644))
	}

	prevGlobal, prevLocal, prevDir := globalConfigFlag, localConfigFlag, directoryFlag
	globalConfigFlag = globalPath
	localConfigFlag = localPath
	directoryFlag = dir
	t.Cleanup(func() {
		globalConfigFlag, localConfigFlag, directoryFlag = prevGlobal, prevLocal, prevDir
	})

	return dir
}
