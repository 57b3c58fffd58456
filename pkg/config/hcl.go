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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclRule struct {
		Name        string `hcl:"name"`
		Pattern     string `hcl:"pattern"`
		Replacement string `hcl:"replacement,optional"`
	}
	type hclConfig struct {
		Files          []string  `hcl:"files,optional"`
		Root           string    `hcl:"root,optional"`
		Include        []string  `hcl:"include,optional"`
		Ignore         []string  `hcl:"ignore,optional"`
		DisableBuiltin bool      `hcl:"disable_builtin,optional"`
		Rules          []hclRule `hcl:"rule,block"`
		FileRules      []struct {
			Glob       string    `hcl:"glob"`
			CloseCalls []string  `hcl:"close_calls,optional"`
			Properties []string  `hcl:"properties,optional"`
			Rules      []hclRule `hcl:"rule,block"`
		} `hcl:"file_rules,block"`
		Options *struct {
			Backup         bool `hcl:"backup,optional"`
			Jobs           int  `hcl:"jobs,optional"`
			VerifyBalance  bool `hcl:"verify_balance,optional"`
			VerifyFixpoint bool `hcl:"verify_fixpoint,optional"`
		} `hcl:"options,block"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		Files:          hclCfg.Files,
		Root:           hclCfg.Root,
		Include:        hclCfg.Include,
		Ignore:         hclCfg.Ignore,
		DisableBuiltin: hclCfg.DisableBuiltin,
	}

	for _, r := range hclCfg.Rules {
		cfg.Rules = append(cfg.Rules, Rule{
			Name:        r.Name,
			Pattern:     r.Pattern,
			Replacement: r.Replacement,
		})
	}

	for _, fr := range hclCfg.FileRules {
		entry := FileRules{
			Glob:       fr.Glob,
			CloseCalls: fr.CloseCalls,
			Properties: fr.Properties,
		}
		for _, r := range fr.Rules {
			entry.Rules = append(entry.Rules, Rule{
				Name:        r.Name,
				Pattern:     r.Pattern,
				Replacement: r.Replacement,
			})
		}
		cfg.FileRules = append(cfg.FileRules, entry)
	}

	if hclCfg.Options != nil {
		cfg.Options = Options{
			Backup:         hclCfg.Options.Backup,
			Jobs:           hclCfg.Options.Jobs,
			VerifyBalance:  hclCfg.Options.VerifyBalance,
			VerifyFixpoint: hclCfg.Options.VerifyFixpoint,
		}
	}

	return cfg, nil
}
