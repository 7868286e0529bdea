package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thoreinstein/couldyou/internal/config"
)

func TestEnabled(t *testing.T) {
	servers := []config.ServerConfig{
		{Name: "a", Enabled: true},
		{Name: "b", Enabled: false},
		{Name: "c", Enabled: true},
	}

	enabled := Enabled(servers)

	assert.Len(t, enabled, 2)
	assert.Equal(t, "a", enabled[0].Name)
	assert.Equal(t, "c", enabled[1].Name)
}

func TestToolEnabled(t *testing.T) {
	server := config.ServerConfig{
		Name:          "s",
		DisabledTools: map[string]struct{}{"dangerous": {}},
	}

	assert.False(t, ToolEnabled(server, "dangerous"))
	assert.True(t, ToolEnabled(server, "safe"))
}

func TestInvocation(t *testing.T) {
	server := config.ServerConfig{
		Command: "npx",
		Args:    []string{"-y", "@modelcontextprotocol/server-github"},
	}

	assert.Equal(t, []string{"npx", "-y", "@modelcontextprotocol/server-github"}, Invocation(server))

	bare := config.ServerConfig{Command: "server", Args: []string{}}
	assert.Equal(t, []string{"server"}, Invocation(bare))
}
