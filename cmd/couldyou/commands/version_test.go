package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runVersionWithWriter(&buf))
	assert.Contains(t, buf.String(), "couldyou version "+version)
	assert.Contains(t, buf.String(), "commit:")
}
