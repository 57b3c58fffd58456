package config

import (
	"context"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// candidates are the file names Resolve probes, most specific first. The
// bare .fixrc form is format-sniffed by parseAny.
var candidates = []string{
	".fixrc.yaml",
	".fixrc.yml",
	".fixrc.json",
	".fixrc.toml",
	".fixrc.hcl",
	".fixrc",
}

// Resolve finds the config file for dir by probing the candidate names in
// order. It returns os.ErrNotExist wrapped when none exists; callers decide
// whether a missing config is fatal.
func Resolve(ctx context.Context, dir string) (string, error) {
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", errors.Errorf("no config file in %s: %w", dir, os.ErrNotExist)
}

// parseAny tries each format in a fixed order until one accepts the data.
// Used for extensionless rc files where the name carries no format hint.
func parseAny(ctx context.Context, data []byte) (*Config, error) {
	attempts := []Parser{
		&YAMLParser{},
		&JSONParser{},
		&TOMLParser{},
		&HCLParser{},
	}

	var lastErr error
	for _, p := range attempts {
		cfg, err := p.Parse(ctx, data)
		if err == nil {
			return cfg, nil
		}
		lastErr = err
	}

	return nil, errors.Errorf("no format accepted the file: %w", lastErr)
}

// TODO(dr.methodical): 🧪 Add tests for config files that parse in two formats
