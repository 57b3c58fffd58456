// Package opts carries the flag values shared by every fixrc command.
package opts

import (
	"context"
	"os"

	"github.com/walteh/fixrc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string // --config, empty resolves conventional names from the working directory
	Debug      bool   // --debug
	Async      bool   // --async
	Jobs       int    // --jobs, zero keeps the config value
	Report     string // --report, empty writes no report
}

// LoadConfig loads the configured file, probing the conventional names
// when none was given. A missing config is not fatal: the builtin rule
// table still repairs files named on the command line.
func (ro *RootOpts) LoadConfig(ctx context.Context) (*config.Config, error) {
	if ro.ConfigFile != "" {
		cfg, err := config.Load(ctx, ro.ConfigFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		return ro.override(cfg), nil
	}

	path, err := config.Resolve(ctx, ".")
	if errors.Is(err, os.ErrNotExist) {
		return ro.override(config.Default()), nil
	}
	if err != nil {
		return nil, errors.Errorf("resolving config: %w", err)
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	return ro.override(cfg), nil
}

// override applies command line overrides on top of the loaded config
func (ro *RootOpts) override(cfg *config.Config) *config.Config {
	if ro.Jobs > 0 {
		cfg.Options.Jobs = ro.Jobs
	}
	return cfg
}
