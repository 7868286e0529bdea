// Package commands implements the CLI commands for couldyou.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/couldyou/internal/errors"
	"github.com/thoreinstein/couldyou/internal/logging"
	"github.com/thoreinstein/couldyou/internal/settings"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// globalConfigFlag overrides the global config layer path.
var globalConfigFlag string

// localConfigFlag overrides the local config layer path.
var localConfigFlag string

// directoryFlag is the starting directory for project-root discovery.
var directoryFlag string

func init() {
	cobra.OnInitialize(settings.Init)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json (default from COULDYOU_LOG_FORMAT)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&globalConfigFlag, "config", "",
		"path to the global config layer (default from COULDYOU_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&localConfigFlag, "local-config", "",
		"path to the local config layer (default from COULDYOU_LOCAL_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&directoryFlag, "directory", "C", "",
		"start project-root discovery from this directory instead of the cwd")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("couldyou version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "couldyou",
	Short: "Layered configuration for an LLM + MCP workflow CLI",
	Long: `couldyou dispatches work to an LLM provider and a set of MCP tool
servers, driven by layered JSON configuration.

Two configuration layers exist: a global (user-level) file and a local
(project-level) .couldyou.json. They are deep-merged with the local
layer taking precedence, then validated before anything else runs. An
invalid configuration fails fast at startup, before any LLM or server
interaction begins.`,
	Example: `  # Create a starter project config
  couldyou init

  # Inspect the effective merged configuration
  couldyou config show

  # List configured MCP servers
  couldyou mcp list

  # Diagnose configuration problems
  couldyou doctor

  See Also: couldyou init, couldyou doctor, couldyou config`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger from the verbosity flags
// and the COULDYOU_* settings.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(
			errors.New("cannot use --quiet and --verbose together"),
			"pass either -q or -v, not both")
	}

	var level slog.Level
	switch {
	case quiet:
		level = slog.LevelError
	case verbosity > 0:
		level = logging.LevelFromVerbosity(verbosity)
	default:
		level = logging.ParseLevel(settings.LogLevel())
	}

	format := logFormat
	if format == "" {
		format = settings.LogFormat()
	}

	opts := &slog.HandlerOptions{Level: level}

	var primaryHandler slog.Handler
	switch logging.Format(format) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
