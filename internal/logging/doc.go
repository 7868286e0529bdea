// Package logging provides slog-based logging for the couldyou CLI.
//
// Terminal output goes through a color-aware text handler that masks
// secret-looking attribute values; JSON output is available for machine
// consumption, and a multi handler fans records out to a log file when
// one is configured.
package logging
