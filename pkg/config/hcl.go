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
	"github.com/walteh/restyle/pkg/text"
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

// 📝 Parse parses the config from HCL. Rules are labeled blocks:
//
//	rule "input-bg" {
//	  pattern     = "(className=\")([^\"]*\\bborder[^\"]*)\""
//	  replace     = "$${1}$${2} bg-slate-800\""
//	  guard       = "bg-"
//	  guard_group = 2
//	}
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
		Name       string `hcl:"name,label"`
		Pattern    string `hcl:"pattern"`
		Replace    string `hcl:"replace"`
		Literal    bool   `hcl:"literal,optional"`
		Guard      string `hcl:"guard,optional"`
		GuardGroup int    `hcl:"guard_group,optional"`
		Files      string `hcl:"files,optional"`
	}
	type hclConfig struct {
		Root     string    `hcl:"root,optional"`
		Files    []string  `hcl:"files,optional"`
		Profiles []string  `hcl:"profiles,optional"`
		Rules    []hclRule `hcl:"rule,block"`
		DryRun   bool      `hcl:"dry_run,optional"`
		Strict   bool      `hcl:"strict,optional"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		Root:     hclCfg.Root,
		Files:    hclCfg.Files,
		Profiles: hclCfg.Profiles,
		DryRun:   hclCfg.DryRun,
		Strict:   hclCfg.Strict,
	}
	for _, r := range hclCfg.Rules {
		cfg.Rules = append(cfg.Rules, text.Rule{
			Name:           r.Name,
			Pattern:        r.Pattern,
			Replace:        r.Replace,
			Literal:        r.Literal,
			Guard:          r.Guard,
			GuardGroup:     r.GuardGroup,
			FileFilterGlob: r.Files,
		})
	}

	return cfg, nil
}
