package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/couldyou/internal/errors"
)

func TestRunDoctor(t *testing.T) {
	t.Run("healthy config exits clean", func(t *testing.T) {
		// "ls" is on PATH everywhere the tests run
		setLayers(t, `{"mcpServers": {"files": {"command": "ls", "args": []}}}`, "")

		var buf bytes.Buffer
		require.NoError(t, runDoctorWithWriter(&buf))
		assert.Contains(t, buf.String(), "Configuration is healthy")
		assert.Contains(t, buf.String(), "✓ server files")
	})

	t.Run("missing server command is a warning", func(t *testing.T) {
		setLayers(t, `{"mcpServers": {"ghost": {"command": "definitely-not-a-real-binary", "args": []}}}`, "")

		var buf bytes.Buffer
		err := runDoctorWithWriter(&buf)
		require.Error(t, err)

		var exitErr *errors.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, errors.ExitUser, exitErr.Code)
		assert.Contains(t, buf.String(), "not found on PATH")
	})

	t.Run("disabled server skips the PATH check", func(t *testing.T) {
		setLayers(t, `{"mcpServers": {"ghost": {"command": "definitely-not-a-real-binary", "args": [], "enabled": false}}}`, "")

		var buf bytes.Buffer
		require.NoError(t, runDoctorWithWriter(&buf))
		assert.Contains(t, buf.String(), "disabled")
	})

	t.Run("malformed layer is an error and stops further checks", func(t *testing.T) {
		setLayers(t, `{not json`, "")

		var buf bytes.Buffer
		err := runDoctorWithWriter(&buf)
		require.Error(t, err)

		var exitErr *errors.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, errors.ExitSystem, exitErr.Code)
		assert.NotContains(t, buf.String(), "merged config")
	})

	t.Run("validation failure reports the offending server", func(t *testing.T) {
		setLayers(t, `{"mcpServers": {"broken": {"args": []}}}`, "")

		var buf bytes.Buffer
		err := runDoctorWithWriter(&buf)
		require.Error(t, err)
		assert.Contains(t, buf.String(), "broken")
		assert.Contains(t, buf.String(), "command")
	})

	t.Run("json output", func(t *testing.T) {
		setLayers(t, `{"mcpServers": {"files": {"command": "ls", "args": []}}}`, "")
		doctorJSON = true
		t.Cleanup(func() { doctorJSON = false })

		var buf bytes.Buffer
		require.NoError(t, runDoctorWithWriter(&buf))

		var results []checkResult
		require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
		require.NotEmpty(t, results)
		assert.Equal(t, "global layer", results[0].Name)
	})
}
