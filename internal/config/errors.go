package config

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for configuration loading failures.
var (
	// ErrMalformed indicates a config file exists but is not valid JSON.
	ErrMalformed = errors.New("malformed config")

	// ErrMissingKeys indicates a server entry lacks required keys.
	ErrMissingKeys = errors.New("missing required keys")

	// ErrInvalidValue indicates a field has a value of the wrong type.
	ErrInvalidValue = errors.New("invalid value")
)

// MalformedError reports a config file that exists but cannot be parsed
// as a JSON object. It always identifies the offending file.
type MalformedError struct {
	// Path is the file that failed to parse.
	Path string

	// Err is the underlying decode error.
	Err error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed config %s: %v", e.Path, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// Is reports a match for the ErrMalformed sentinel.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

// ValidationError reports a merged document that parses as JSON but does
// not describe a valid configuration. Server-level errors carry the server
// name; missing required keys are collected so one error names all of them.
type ValidationError struct {
	// Server identifies the offending server entry.
	// Empty for document-level errors.
	Server string

	// Missing lists required keys absent from the server entry, sorted.
	Missing []string

	// Field identifies the offending field for type errors.
	Field string

	// Message describes the problem when Missing is empty.
	Message string

	// Err is the matching sentinel (ErrMissingKeys or ErrInvalidValue).
	Err error
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("server %q: missing required keys: %s", e.Server, strings.Join(e.Missing, ", "))
	}
	switch {
	case e.Server != "" && e.Field != "":
		return fmt.Sprintf("server %q field %q: %s", e.Server, e.Field, e.Message)
	case e.Server != "":
		return fmt.Sprintf("server %q: %s", e.Server, e.Message)
	case e.Field != "":
		return fmt.Sprintf("field %q: %s", e.Field, e.Message)
	default:
		return e.Message
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports whether the error matches the target sentinel.
func (e *ValidationError) Is(target error) bool {
	return e.Err != nil && errors.Is(e.Err, target)
}
