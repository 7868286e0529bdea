// Package mcp exposes the consumer-facing view of configured MCP tool
// servers.
//
// Nothing here spawns or talks to a server process; a supervisor built
// on top of this package would iterate [Enabled] entries, exec the
// [Invocation] command line, and consult [ToolEnabled] before routing a
// tool call.
package mcp

import (
	"github.com/thoreinstein/couldyou/internal/config"
)

// Enabled returns the servers a supervisor should start, preserving
// configuration order.
func Enabled(servers []config.ServerConfig) []config.ServerConfig {
	var out []config.ServerConfig
	for _, s := range servers {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// ToolEnabled reports whether a tool on the server may be used. Tools
// named in the server's disabledTools set are suppressed.
func ToolEnabled(s config.ServerConfig, tool string) bool {
	_, disabled := s.DisabledTools[tool]
	return !disabled
}

// Invocation returns the command line a supervisor would exec for the
// server: the command followed by its arguments.
func Invocation(s config.ServerConfig) []string {
	out := make([]string, 0, len(s.Args)+1)
	out = append(out, s.Command)
	out = append(out, s.Args...)
	return out
}
