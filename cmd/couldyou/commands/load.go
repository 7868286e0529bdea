package commands

import (
	"os"

	"github.com/thoreinstein/couldyou/internal/config"
	"github.com/thoreinstein/couldyou/internal/errors"
	"github.com/thoreinstein/couldyou/internal/paths"
	"github.com/thoreinstein/couldyou/internal/settings"
)

// layers holds the resolved paths of the two configuration layers and
// the project root they were resolved against.
type layers struct {
	Global string
	Local  string
	Root   string
}

// resolveLayers determines where the two layers live. Precedence per
// layer: flag, then COULDYOU_* setting, then the default location. The
// project root is discovered by walking upward from -C (or the cwd)
// looking for the local config file.
func resolveLayers() (layers, error) {
	start := directoryFlag
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return layers{}, errors.Wrap(err, "determining working directory")
		}
		start = cwd
	}

	root, err := paths.FindRoot(start)
	if err != nil {
		return layers{}, err
	}

	l := layers{Root: root}

	switch {
	case globalConfigFlag != "":
		l.Global = globalConfigFlag
	case settings.GlobalConfigOverride() != "":
		l.Global = settings.GlobalConfigOverride()
	default:
		l.Global = paths.GlobalConfigPath()
	}

	switch {
	case localConfigFlag != "":
		l.Local = localConfigFlag
	case settings.LocalConfigOverride() != "":
		l.Local = settings.LocalConfigOverride()
	default:
		l.Local = paths.LocalConfigPath(root)
	}

	return l, nil
}

// loadConfig resolves the layers and runs the full load pipeline.
// Failures come back as config errors pointing the user at doctor.
func loadConfig() (*config.Config, error) {
	l, err := resolveLayers()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(l.Global, l.Local, l.Root)
	if err != nil {
		return nil, errors.NewConfigError(err)
	}

	return cfg, nil
}
