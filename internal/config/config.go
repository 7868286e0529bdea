package config

import (
	"fmt"
	"slices"
)

// Config is the effective configuration after merging the global and
// local layers. It is constructed once per load and never mutated;
// reloading means building a fresh instance.
type Config struct {
	// Prompt is the system prompt override, nil when absent from both
	// layers.
	Prompt *string

	// LLM is the provider configuration, passed through as-is. The
	// schema is provider-specific and deliberately unconstrained.
	LLM map[string]any

	// Servers holds one entry per key under mcpServers, in the order
	// the keys appear in the merged document.
	Servers []ServerConfig

	// Env holds process environment overrides.
	Env map[string]string

	// Editor is the external editor command, nil when unset.
	Editor *string

	// Root is the directory the config was resolved against. It is
	// supplied by the caller and never influenced by file content.
	Root string
}

// Server returns the named server entry, or false when no such server
// is configured.
func (c *Config) Server(name string) (ServerConfig, bool) {
	for _, s := range c.Servers {
		if s.Name == name {
			return s, true
		}
	}
	return ServerConfig{}, false
}

// ServerConfig describes one configured MCP tool server. It is static
// configuration only; nothing here represents a running process.
type ServerConfig struct {
	// Name is the map key under mcpServers, unique within a Config.
	Name string

	// Command is the executable to invoke the server.
	Command string

	// Args are the invocation arguments. Always non-nil on a valid
	// entry, possibly empty.
	Args []string

	// Enabled defaults to true when absent from the document.
	Enabled bool

	// DisabledTools names tools on this server to suppress. The wire
	// format is an ordered list; the model is a set, so duplicates
	// collapse and order is irrelevant.
	DisabledTools map[string]struct{}
}

// Parse converts a merged document into a Config rooted at root.
//
// It is a pure single-pass transform: no state, no retries. A server
// entry missing command or args fails with a ValidationError naming the
// server and every missing key. Unrecognized keys inside a server entry
// are ignored for forward compatibility. An entirely empty document is
// valid and produces a Config with empty collections.
func Parse(doc Document, root string) (*Config, error) {
	cfg := &Config{
		LLM:  map[string]any{},
		Env:  map[string]string{},
		Root: root,
	}

	prompt, err := optionalString(doc, "systemPrompt")
	if err != nil {
		return nil, err
	}
	cfg.Prompt = prompt

	editor, err := optionalString(doc, "editor")
	if err != nil {
		return nil, err
	}
	cfg.Editor = editor

	if v, ok := doc.Value("llm"); ok {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, &ValidationError{Field: "llm", Message: "must be an object", Err: ErrInvalidValue}
		}
		cfg.LLM = obj
	}

	if v, ok := doc.Value("env"); ok {
		env, err := parseEnv(v)
		if err != nil {
			return nil, err
		}
		cfg.Env = env
	}

	for _, name := range doc.ServerNames() {
		section := doc.root[serversKey].(map[string]any)
		entry, ok := section[name].(map[string]any)
		if !ok {
			return nil, &ValidationError{Server: name, Message: "server entry must be an object", Err: ErrInvalidValue}
		}
		server, err := parseServer(name, entry)
		if err != nil {
			return nil, err
		}
		cfg.Servers = append(cfg.Servers, server)
	}

	return cfg, nil
}

// parseServer builds one ServerConfig from a server entry object.
// Both required keys are checked before reporting, so a single error
// names everything that is missing.
func parseServer(name string, entry map[string]any) (ServerConfig, error) {
	server := ServerConfig{
		Name:          name,
		Enabled:       true,
		DisabledTools: map[string]struct{}{},
	}

	var missing []string
	if _, ok := entry["command"]; !ok {
		missing = append(missing, "command")
	}
	if _, ok := entry["args"]; !ok {
		missing = append(missing, "args")
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return ServerConfig{}, &ValidationError{Server: name, Missing: missing, Err: ErrMissingKeys}
	}

	command, ok := entry["command"].(string)
	if !ok {
		return ServerConfig{}, &ValidationError{Server: name, Field: "command", Message: "must be a string", Err: ErrInvalidValue}
	}
	server.Command = command

	args, err := stringSlice(entry["args"])
	if err != nil {
		return ServerConfig{}, &ValidationError{Server: name, Field: "args", Message: err.Error(), Err: ErrInvalidValue}
	}
	server.Args = args

	if v, ok := entry["enabled"]; ok {
		enabled, ok := v.(bool)
		if !ok {
			return ServerConfig{}, &ValidationError{Server: name, Field: "enabled", Message: "must be a boolean", Err: ErrInvalidValue}
		}
		server.Enabled = enabled
	}

	if v, ok := entry["disabledTools"]; ok {
		tools, err := stringSlice(v)
		if err != nil {
			return ServerConfig{}, &ValidationError{Server: name, Field: "disabledTools", Message: err.Error(), Err: ErrInvalidValue}
		}
		for _, tool := range tools {
			server.DisabledTools[tool] = struct{}{}
		}
	}

	return server, nil
}

// parseEnv converts the env section into a string-to-string map.
// Non-string values are rejected with the variable name, since a silent
// coercion would hide mistakes from the user.
func parseEnv(v any) (map[string]string, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &ValidationError{Field: "env", Message: "must be an object", Err: ErrInvalidValue}
	}
	env := make(map[string]string, len(obj))
	for key, val := range obj {
		s, ok := val.(string)
		if !ok {
			return nil, &ValidationError{Field: "env." + key, Message: "must be a string", Err: ErrInvalidValue}
		}
		env[key] = s
	}
	return env, nil
}

// optionalString reads a top-level field that may be absent but must be
// a string when present.
func optionalString(doc Document, key string) (*string, error) {
	v, ok := doc.Value(key)
	if !ok {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, &ValidationError{Field: key, Message: "must be a string", Err: ErrInvalidValue}
	}
	return &s, nil
}

// stringSlice converts a decoded JSON array into []string. The result is
// non-nil even for an empty array.
func stringSlice(v any) ([]string, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("must be an array of strings")
	}
	out := make([]string, len(arr))
	for i, e := range arr {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("must be an array of strings, found %T at index %d", e, i)
		}
		out[i] = s
	}
	return out, nil
}
