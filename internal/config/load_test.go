package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	globalPath := filepath.Join(dir, "global.json")
	localPath := filepath.Join(dir, "local.json")

	require.NoError(t, os.WriteFile(globalPath, []byte(`{
		"systemPrompt": "global",
		"editor": "nano",
		"llm": {"provider": "anthropic", "model": "global-model"},
		"env": {"SHARED": "global"},
		"mcpServers": {
			"shared": {"command": "global-command", "args": ["global-arg"], "disabledTools": ["old"]},
			"global-only": {"command": "g", "args": []}
		}
	}`), 0o644))
	require.NoError(t, os.WriteFile(localPath, []byte(`{
		"systemPrompt": "local",
		"env": {"SHARED": "local", "EXTRA": "x"},
		"mcpServers": {
			"shared": {"disabledTools": ["new-a", "new-b"]},
			"local-only": {"command": "l", "args": ["1"]}
		}
	}`), 0o644))

	cfg, err := Load(globalPath, localPath, dir)
	require.NoError(t, err)

	require.NotNil(t, cfg.Prompt)
	assert.Equal(t, "local", *cfg.Prompt)
	require.NotNil(t, cfg.Editor)
	assert.Equal(t, "nano", *cfg.Editor)
	assert.Equal(t, map[string]string{"SHARED": "local", "EXTRA": "x"}, cfg.Env)
	assert.Equal(t, dir, cfg.Root)

	require.Len(t, cfg.Servers, 3)
	assert.Equal(t, "shared", cfg.Servers[0].Name)
	assert.Equal(t, "global-only", cfg.Servers[1].Name)
	assert.Equal(t, "local-only", cfg.Servers[2].Name)

	// The shared server keeps global's command/args while local's
	// disabledTools replaces the list entirely.
	shared := cfg.Servers[0]
	assert.Equal(t, "global-command", shared.Command)
	assert.Equal(t, []string{"global-arg"}, shared.Args)
	assert.Equal(t, map[string]struct{}{"new-a": {}, "new-b": {}}, shared.DisabledTools)
}

func TestLoadBothLayersAbsent(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(
		filepath.Join(dir, "no-global.json"),
		filepath.Join(dir, "no-local.json"),
		dir,
	)
	require.NoError(t, err)
	assert.Nil(t, cfg.Prompt)
	assert.Empty(t, cfg.Servers)
	assert.Equal(t, dir, cfg.Root)
}

func TestLoadMalformedLayerFailsFast(t *testing.T) {
	dir := t.TempDir()
	globalPath := filepath.Join(dir, "global.json")
	require.NoError(t, os.WriteFile(globalPath, []byte(`{oops`), 0o644))

	_, err := Load(globalPath, filepath.Join(dir, "absent.json"), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), globalPath)
}

func TestLoadValidationFailureReturnsNoConfig(t *testing.T) {
	dir := t.TempDir()
	localPath := filepath.Join(dir, "local.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{
		"mcpServers": {"broken": {"command": "c"}}
	}`), 0o644))

	cfg, err := Load(filepath.Join(dir, "absent.json"), localPath, dir)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingKeys)
	assert.Contains(t, err.Error(), "broken")
	assert.Contains(t, err.Error(), "args")
}
