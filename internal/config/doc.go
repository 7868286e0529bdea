// Package config loads the layered JSON configuration for couldyou.
//
// Two layers exist: a global (user-level) file and a local (project-level)
// file. Loading is a single synchronous pass per process invocation:
//
//	LoadRaw(global) → LoadRaw(local) → Merge → Parse → *Config
//
// A missing layer is a normal state and yields an empty document. A layer
// that exists but is not valid JSON aborts loading with a [MalformedError].
// A merged document whose server entries lack required keys aborts loading
// with a [ValidationError]. There is never a partial Config: the caller
// either gets a fully validated value or an error.
//
// Merge semantics are deep and field-independent: objects merge key-wise
// with the local layer winning on conflicts, while arrays and scalars are
// replaced wholesale by the local value when present. The order of server
// names in the merged document is preserved (global's order first, then
// local-only names).
package config
