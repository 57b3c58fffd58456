// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/fixrc/pkg/rules"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Rule is one pattern rewrite in config form
type Rule struct {
	Name        string `json:"name" yaml:"name" toml:"name"`                      // Identifier used in reports
	Pattern     string `json:"pattern" yaml:"pattern" toml:"pattern"`             // Regular expression to match
	Replacement string `json:"replacement" yaml:"replacement" toml:"replacement"` // Expansion template, may reference groups
}

// 📦 FileRules scopes extra rules to files matching a glob. The extras run
// after the general set, in declaration order: rules first, then close_calls,
// then properties.
type FileRules struct {
	Glob       string   `json:"glob" yaml:"glob" toml:"glob"`                                        // Matched against the slash path, and again with a **/ prefix
	Rules      []Rule   `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty"`       // Literal pattern rewrites
	CloseCalls []string `json:"close_calls,omitempty" yaml:"close_calls,omitempty" toml:"close_calls,omitempty"` // Call targets whose dangling trailing comma becomes a closer
	Properties []string `json:"properties,omitempty" yaml:"properties,omitempty" toml:"properties,omitempty"`    // Property names granted missing-comma insertion
}

// 🔧 Options tunes how files are repaired and written back
type Options struct {
	Backup         bool `json:"backup,omitempty" yaml:"backup,omitempty" toml:"backup,omitempty"`                         // Keep a .fixrc.bak copy of every rewritten file
	Jobs           int  `json:"jobs,omitempty" yaml:"jobs,omitempty" toml:"jobs,omitempty"`                               // Max files repaired concurrently, 0 or 1 means sequential
	VerifyBalance  bool `json:"verify_balance,omitempty" yaml:"verify_balance,omitempty" toml:"verify_balance,omitempty"` // Withhold writes that unbalance a balanced file
	VerifyFixpoint bool `json:"verify_fixpoint,omitempty" yaml:"verify_fixpoint,omitempty" toml:"verify_fixpoint,omitempty"` // Withhold writes the rule set would keep changing
}

// 📚 Config represents the complete configuration
type Config struct {
	Files          []string    `json:"files,omitempty" yaml:"files,omitempty" toml:"files,omitempty"`                            // Literal paths to repair
	Root           string      `json:"root,omitempty" yaml:"root,omitempty" toml:"root,omitempty"`                               // Directory the include globs walk, defaults to .
	Include        []string    `json:"include,omitempty" yaml:"include,omitempty" toml:"include,omitempty"`                      // Doublestar globs selecting files under root
	Ignore         []string    `json:"ignore,omitempty" yaml:"ignore,omitempty" toml:"ignore,omitempty"`                         // Doublestar globs dropping files and pruning directories
	DisableBuiltin bool        `json:"disable_builtin,omitempty" yaml:"disable_builtin,omitempty" toml:"disable_builtin,omitempty"` // Drop the builtin repair table, leaving only configured rules
	Rules          []Rule      `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty"`                            // Extra general rules, appended after the builtin table
	FileRules      []FileRules `json:"file_rules,omitempty" yaml:"file_rules,omitempty" toml:"file_rules,omitempty"`             // Glob-scoped extra rules
	Options        Options     `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`                      // Repair and write-back behavior

	location string
	base     rules.RuleSet
	scoped   []scopedRules
}

type scopedRules struct {
	glob string
	set  rules.RuleSet
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg *Config
	if p := GetParser(path); p != nil {
		cfg, err = p.Parse(ctx, data)
		if err != nil {
			return nil, errors.Errorf("parsing config: %w", err)
		}
	} else if strings.HasSuffix(path, ".fixrc") {
		// The extensionless rc form carries no format hint
		cfg, err = parseAny(ctx, data)
		if err != nil {
			return nil, errors.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
	} else {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg.location = path
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🎯 Default returns the configuration used when no config file exists:
// the builtin rule table over paths named on the command line.
func Default() *Config {
	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		// The empty config always validates.
		panic(err)
	}
	return cfg
}

// 🔍 Validate checks the configuration and compiles its rule sets. Load
// calls it; hand-built configs must call it before RulesFor.
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	cfg.Root = filepath.Clean(cfg.Root)

	if cfg.Options.Jobs < 0 {
		return errors.Errorf("options.jobs must be >= 0, got %d", cfg.Options.Jobs)
	}

	for _, pattern := range cfg.Include {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("include pattern %q is not a valid glob", pattern)
		}
	}
	for _, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("ignore pattern %q is not a valid glob", pattern)
		}
	}

	base := rules.RuleSet{}
	if !cfg.DisableBuiltin {
		base = rules.Builtin()
	}

	extra, err := compileRules(cfg.Rules, "rules")
	if err != nil {
		return err
	}
	cfg.base = base.Append(extra...)

	cfg.scoped = cfg.scoped[:0]
	for i, fr := range cfg.FileRules {
		if fr.Glob == "" {
			return errors.Errorf("file_rules[%d]: glob is required", i)
		}
		if !doublestar.ValidatePattern(fr.Glob) {
			return errors.Errorf("file_rules[%d]: glob %q is not a valid glob", i, fr.Glob)
		}
		if len(fr.Rules) == 0 && len(fr.CloseCalls) == 0 && len(fr.Properties) == 0 {
			return errors.Errorf("file_rules[%d]: at least one of rules, close_calls, properties is required", i)
		}

		set, err := compileRules(fr.Rules, fmt.Sprintf("file_rules[%d].rules", i))
		if err != nil {
			return err
		}
		set = set.Append(rules.CallCloseRules(fr.CloseCalls...)...)
		set = set.Append(rules.PropertyCommaRules(fr.Properties...)...)

		cfg.scoped = append(cfg.scoped, scopedRules{glob: fr.Glob, set: set})
	}

	return nil
}

func compileRules(specs []Rule, section string) (rules.RuleSet, error) {
	out := make(rules.RuleSet, 0, len(specs))
	for i, spec := range specs {
		if spec.Name == "" {
			return nil, errors.Errorf("%s[%d]: name is required", section, i)
		}
		if spec.Pattern == "" {
			return nil, errors.Errorf("%s[%d]: pattern is required", section, i)
		}

		rule, err := rules.New(spec.Name, spec.Pattern, spec.Replacement)
		if err != nil {
			return nil, errors.Errorf("%s[%d]: %w", section, i, err)
		}
		out = append(out, rule)
	}

	return out, nil
}

// 🎯 RuleSet returns the general rule set: the builtin table (unless
// disabled) followed by the configured extra rules.
func (cfg *Config) RuleSet() rules.RuleSet {
	return cfg.base
}

// 🎯 RulesFor returns the effective rule set for one path: the general set
// plus every file_rules entry whose glob matches the path.
func (cfg *Config) RulesFor(path string) rules.RuleSet {
	set := cfg.base
	slash := filepath.ToSlash(path)

	for _, scope := range cfg.scoped {
		if matchScope(scope.glob, slash) {
			set = set.Append(scope.set...)
		}
	}

	return set
}

func matchScope(glob string, slash string) bool {
	if matched, err := doublestar.Match(glob, slash); err == nil && matched {
		return true
	}
	// Repo-relative globs still match paths enumerated as absolute.
	if !strings.HasPrefix(glob, "/") {
		if matched, err := doublestar.Match("**/"+glob, slash); err == nil && matched {
			return true
		}
	}
	return false
}

// 📍 Location returns the path the config was loaded from, empty for
// hand-built configs.
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%d files + %d globs, %d rules (%d scoped)",
		len(cfg.Files), len(cfg.Include), len(cfg.base), len(cfg.scoped))
}
