package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConfigPath(t *testing.T) {
	t.Run("marks missing layers", func(t *testing.T) {
		dir := setLayers(t, `{}`, "")

		var buf bytes.Buffer
		require.NoError(t, runConfigPathWithWriter(&buf))

		out := buf.String()
		assert.Contains(t, out, "global: ")
		assert.Contains(t, out, "local:  ")
		assert.Contains(t, out, "(missing)")
		assert.Contains(t, out, "root:   "+dir)
	})

	t.Run("no missing marker when both layers exist", func(t *testing.T) {
		setLayers(t, `{}`, `{}`)

		var buf bytes.Buffer
		require.NoError(t, runConfigPathWithWriter(&buf))
		assert.NotContains(t, buf.String(), "(missing)")
	})
}
