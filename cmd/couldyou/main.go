// Package main is the entry point for the couldyou CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/couldyou/cmd/couldyou/commands"
	"github.com/thoreinstein/couldyou/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}
	os.Exit(errors.ExitUser)
}
