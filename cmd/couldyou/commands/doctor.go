package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/couldyou/internal/config"
	"github.com/thoreinstein/couldyou/internal/errors"
)

var doctorJSON bool

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration problems",
	Long: `Check the configuration layer by layer and report everything found,
rather than stopping at the first problem the way a normal load does.

Checks, in order: each layer parses as JSON, the merged document
validates, and each enabled server's command is on PATH. A missing
command is a warning, not an error; the server may be installed later.

Exit code is 0 when healthy, 1 with warnings only, 2 with errors.`,
	Example: `  couldyou doctor
  couldyou doctor --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDoctorWithWriter(cmd.OutOrStdout())
	},
}

// checkSeverity classifies a single diagnostic result.
type checkSeverity string

const (
	severityOK      checkSeverity = "ok"
	severityInfo    checkSeverity = "info"
	severityWarning checkSeverity = "warning"
	severityError   checkSeverity = "error"
)

// checkResult is one line of doctor output.
type checkResult struct {
	Name     string        `json:"name"`
	Severity checkSeverity `json:"severity"`
	Detail   string        `json:"detail,omitempty"`
}

func runDoctorWithWriter(w io.Writer) error {
	l, err := resolveLayers()
	if err != nil {
		return err
	}

	results := runChecks(l)

	if doctorJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return errors.Wrap(err, "rendering JSON")
		}
		fmt.Fprintln(w, string(data))
	} else {
		for _, r := range results {
			if r.Detail != "" {
				fmt.Fprintf(w, "%s %s: %s\n", statusIcon(r.Severity), r.Name, r.Detail)
			} else {
				fmt.Fprintf(w, "%s %s\n", statusIcon(r.Severity), r.Name)
			}
		}
		fmt.Fprintf(w, "\n%s\n", summarize(results))
	}

	warnings, errCount := tally(results)
	switch {
	case errCount > 0:
		return errors.NewExitError(errors.Newf("%d configuration error(s)", errCount), errors.ExitSystem)
	case warnings > 0:
		return errors.NewExitError(errors.Newf("%d warning(s)", warnings), errors.ExitUser)
	}
	return nil
}

// runChecks performs every diagnostic against the resolved layers.
// Later checks are skipped when their inputs already failed, so one
// malformed file produces one error and not a cascade.
func runChecks(l layers) []checkResult {
	var results []checkResult

	global, err := config.LoadRaw(l.Global)
	results = append(results, layerResult("global layer", l.Global, global, err))
	local, lerr := config.LoadRaw(l.Local)
	results = append(results, layerResult("local layer", l.Local, local, lerr))

	if err != nil || lerr != nil {
		return results
	}

	cfg, err := config.Parse(config.Merge(global, local), l.Root)
	if err != nil {
		results = append(results, checkResult{
			Name:     "merged config",
			Severity: severityError,
			Detail:   err.Error(),
		})
		return results
	}
	results = append(results, checkResult{
		Name:     "merged config",
		Severity: severityOK,
		Detail:   fmt.Sprintf("%d server(s) configured", len(cfg.Servers)),
	})

	for _, s := range cfg.Servers {
		if !s.Enabled {
			results = append(results, checkResult{
				Name:     "server " + s.Name,
				Severity: severityInfo,
				Detail:   "disabled",
			})
			continue
		}
		if _, err := exec.LookPath(s.Command); err != nil {
			results = append(results, checkResult{
				Name:     "server " + s.Name,
				Severity: severityWarning,
				Detail:   fmt.Sprintf("command %q not found on PATH", s.Command),
			})
			continue
		}
		results = append(results, checkResult{
			Name:     "server " + s.Name,
			Severity: severityOK,
		})
	}

	return results
}

// layerResult describes a single layer's load outcome. An absent file
// is informational; only a file that exists but fails to parse is an
// error.
func layerResult(name, path string, doc config.Document, err error) checkResult {
	if err != nil {
		return checkResult{Name: name, Severity: severityError, Detail: err.Error()}
	}
	if doc.IsEmpty() {
		return checkResult{Name: name, Severity: severityInfo, Detail: path + " (absent or empty)"}
	}
	return checkResult{Name: name, Severity: severityOK, Detail: path}
}

func statusIcon(s checkSeverity) string {
	switch s {
	case severityOK:
		return "✓"
	case severityInfo:
		return "ℹ"
	case severityWarning:
		return "⚠"
	default:
		return "✗"
	}
}

func tally(results []checkResult) (warnings, errCount int) {
	for _, r := range results {
		switch r.Severity {
		case severityWarning:
			warnings++
		case severityError:
			errCount++
		}
	}
	return warnings, errCount
}

func summarize(results []checkResult) string {
	warnings, errCount := tally(results)
	switch {
	case errCount > 0:
		return fmt.Sprintf("%d error(s), %d warning(s). Fix the errors above and re-run.", errCount, warnings)
	case warnings > 0:
		return fmt.Sprintf("%d warning(s).", warnings)
	}
	return "Configuration is healthy."
}
