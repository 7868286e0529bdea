package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"

	"github.com/thoreinstein/couldyou/internal/config"
	"github.com/thoreinstein/couldyou/internal/errors"
	"github.com/thoreinstein/couldyou/internal/logging"
)

var showFormat string
var showSecrets bool

func init() {
	configCmd.AddCommand(configShowCmd)
	configShowCmd.Flags().StringVar(&showFormat, "format", "json",
		"output format: json, yaml, toml")
	configShowCmd.Flags().BoolVar(&showSecrets, "show-secrets", false,
		"print env values unmasked")
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective merged configuration",
	Long: `Show the configuration after merging the global and local layers,
exactly as the rest of the tool sees it.

Values in the env section that look like credentials are masked unless
--show-secrets is given.`,
	Example: `  couldyou config show
  couldyou config show --format yaml
  couldyou config show --show-secrets`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigShowWithWriter(cmd.OutOrStdout())
	},
}

// showServer is the rendered form of one server entry. disabledTools is
// sorted so output is stable across runs.
type showServer struct {
	Name          string   `json:"name" yaml:"name" toml:"name"`
	Command       string   `json:"command" yaml:"command" toml:"command"`
	Args          []string `json:"args" yaml:"args" toml:"args"`
	Enabled       bool     `json:"enabled" yaml:"enabled" toml:"enabled"`
	DisabledTools []string `json:"disabledTools,omitempty" yaml:"disabledTools,omitempty" toml:"disabledTools,omitempty"`
}

type showConfig struct {
	SystemPrompt string            `json:"systemPrompt,omitempty" yaml:"systemPrompt,omitempty" toml:"systemPrompt,omitempty"`
	LLM          map[string]any    `json:"llm,omitempty" yaml:"llm,omitempty" toml:"llm,omitempty"`
	Servers      []showServer      `json:"mcpServers" yaml:"mcpServers" toml:"mcpServers"`
	Env          map[string]string `json:"env,omitempty" yaml:"env,omitempty" toml:"env,omitempty"`
	Editor       string            `json:"editor,omitempty" yaml:"editor,omitempty" toml:"editor,omitempty"`
	Root         string            `json:"root" yaml:"root" toml:"root"`
}

func runConfigShowWithWriter(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := renderConfig(cfg, showSecrets)

	switch showFormat {
	case "json":
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return errors.Wrap(err, "rendering JSON")
		}
		fmt.Fprintln(w, string(data))
	case "yaml":
		data, err := yaml.Marshal(out)
		if err != nil {
			return errors.Wrap(err, "rendering YAML")
		}
		fmt.Fprint(w, string(data))
	case "toml":
		data, err := toml.Marshal(out)
		if err != nil {
			return errors.Wrap(err, "rendering TOML")
		}
		fmt.Fprint(w, string(data))
	default:
		return errors.NewUserError(
			errors.Newf("unknown format %q", showFormat),
			"use one of: json, yaml, toml")
	}

	return nil
}

// renderConfig converts a Config into its printable form, masking env
// values unless secrets were explicitly requested.
func renderConfig(cfg *config.Config, secrets bool) showConfig {
	out := showConfig{
		LLM:     cfg.LLM,
		Servers: []showServer{},
		Env:     cfg.Env,
		Root:    cfg.Root,
	}
	if cfg.Prompt != nil {
		out.SystemPrompt = *cfg.Prompt
	}
	if cfg.Editor != nil {
		out.Editor = *cfg.Editor
	}
	if !secrets {
		out.Env = logging.MaskSecrets(cfg.Env)
	}
	if len(out.Env) == 0 {
		out.Env = nil
	}

	for _, s := range cfg.Servers {
		entry := showServer{
			Name:    s.Name,
			Command: s.Command,
			Args:    s.Args,
			Enabled: s.Enabled,
		}
		for tool := range s.DisabledTools {
			entry.DisabledTools = append(entry.DisabledTools, tool)
		}
		sort.Strings(entry.DisabledTools)
		out.Servers = append(out.Servers, entry)
	}

	return out
}
