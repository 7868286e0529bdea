package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/couldyou/internal/config"
)

func TestRunInit(t *testing.T) {
	setDir := func(t *testing.T) string {
		t.Helper()
		dir := t.TempDir()
		prev := directoryFlag
		directoryFlag = dir
		t.Cleanup(func() { directoryFlag = prev })
		return dir
	}

	t.Run("creates a starter config that parses", func(t *testing.T) {
		dir := setDir(t)

		var buf bytes.Buffer
		require.NoError(t, runInitWithWriter(&buf))

		path := filepath.Join(dir, ".couldyou.json")
		assert.Contains(t, buf.String(), path)

		doc, err := config.LoadRaw(path)
		require.NoError(t, err)
		cfg, err := config.Parse(doc, dir)
		require.NoError(t, err)
		require.Len(t, cfg.Servers, 1)
		assert.Equal(t, "filesystem", cfg.Servers[0].Name)
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		dir := setDir(t)
		path := filepath.Join(dir, ".couldyou.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"editor": "vim"}`), 0o644))

		err := runInitWithWriter(&bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")

		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, `{"editor": "vim"}`, string(data))
	})

	t.Run("force overwrites", func(t *testing.T) {
		dir := setDir(t)
		path := filepath.Join(dir, ".couldyou.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

		initForce = true
		t.Cleanup(func() { initForce = false })

		require.NoError(t, runInitWithWriter(&bytes.Buffer{}))

		doc, err := config.LoadRaw(path)
		require.NoError(t, err)
		assert.False(t, doc.IsEmpty())
	})
}
