package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Run("configured value wins", func(t *testing.T) {
		t.Setenv("EDITOR", "env-editor")

		assert.Equal(t, "config-editor", Resolve("config-editor"))
	})

	t.Run("EDITOR before VISUAL", func(t *testing.T) {
		t.Setenv("EDITOR", "from-editor")
		t.Setenv("VISUAL", "from-visual")

		assert.Equal(t, "from-editor", Resolve(""))
	})

	t.Run("VISUAL when EDITOR unset", func(t *testing.T) {
		t.Setenv("EDITOR", "")
		t.Setenv("VISUAL", "from-visual")

		assert.Equal(t, "from-visual", Resolve(""))
	})

	t.Run("fallback when nothing set", func(t *testing.T) {
		t.Setenv("EDITOR", "")
		t.Setenv("VISUAL", "")

		got := Resolve("")
		assert.Contains(t, []string{"nano", "vi"}, got)
	})
}

func TestOpenRunsEditorWithArgs(t *testing.T) {
	// "true" exits 0 regardless of arguments, which is all we need to
	// verify the command assembly path.
	assert.NoError(t, Open("/tmp/file.json", "true --flag"))
}
