package fileutil

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/couldyou/internal/errors"
)

func TestReadFileWithLimit(t *testing.T) {
	t.Run("reads small file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "small.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"a": 1}`), 0o644))

		data, err := ReadFileWithLimit(path)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"a": 1}`), data)
	})

	t.Run("missing file preserves fs.ErrNotExist", func(t *testing.T) {
		_, err := ReadFileWithLimit(filepath.Join(t.TempDir(), "absent"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "big")
		require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), MaxFileSize+1), 0o644))

		_, err := ReadFileWithLimit(path)
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})
}

func TestAtomicWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, AtomicWriteJSON(path, map[string]any{"k": "v"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"k\": \"v\"\n}\n", string(data))

	// Overwrite must also succeed and leave no temp files behind.
	require.NoError(t, AtomicWriteJSON(path, map[string]any{"k": "v2"}))
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
