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
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/restyle/pkg/rules"
	"github.com/walteh/restyle/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎛️ Overrides are command line values that take precedence over the file
type Overrides struct {
	Root     string   // replaces root, relative to the working directory
	Files    []string // replaces the file list
	Profiles []string // replaces the profile list
	DryRun   bool     // forces dry run on
	Strict   bool     // forces strict on
}

// Where a Plan's file list came from
const (
	FilesFromFlags    = "--file flags"
	FilesFromConfig   = "config file"
	FilesFromProfiles = "profile defaults"
)

// 📋 Plan is everything a run needs, fully resolved
type Plan struct {
	Root       string
	Files      []string
	FileSource string
	Profiles   []string
	Rules    *text.RuleSet
	DryRun   bool
	Strict   bool
}

// 🔄 Resolve merges overrides into the config and compiles the rule set.
// Profile rules come first in profile order, then the config's own rules.
// When no file list is given, the default files of the selected profiles are
// used in order with duplicates dropped.
func (cfg *Config) Resolve(ctx context.Context, o Overrides) (*Plan, error) {
	plan := &Plan{
		Root:     cfg.rootDir(),
		Files:      cfg.Files,
		FileSource: FilesFromConfig,
		Profiles:   cfg.Profiles,
		DryRun:     cfg.DryRun || o.DryRun,
		Strict:     cfg.Strict || o.Strict,
	}
	if o.Root != "" {
		plan.Root = filepath.Clean(o.Root)
	}
	if len(o.Profiles) > 0 {
		plan.Profiles = o.Profiles
	}
	if len(o.Files) > 0 {
		plan.Files = o.Files
		plan.FileSource = FilesFromFlags
	}

	ruleSet := &text.RuleSet{}
	var defaultFiles []string
	for _, name := range plan.Profiles {
		profile, err := rules.Lookup(name)
		if err != nil {
			return nil, err
		}
		compiled, err := profile.Compile()
		if err != nil {
			return nil, err
		}
		ruleSet = ruleSet.Append(compiled)
		defaultFiles = append(defaultFiles, profile.Files...)
	}

	custom, err := text.Compile(cfg.Rules)
	if err != nil {
		return nil, errors.Errorf("config rules: %w", err)
	}
	plan.Rules = ruleSet.Append(custom)

	if plan.Rules.Len() == 0 {
		return nil, errors.Errorf("no rules selected: name a profile or add rules to the config (profiles: %v)", rules.Names())
	}

	if len(plan.Files) == 0 {
		plan.Files = dedupe(defaultFiles)
		plan.FileSource = FilesFromProfiles
	}
	if len(plan.Files) == 0 {
		return nil, errors.Errorf("no files to process: list files in the config or pass --file")
	}

	zerolog.Ctx(ctx).Debug().
		Str("root", plan.Root).
		Strs("files", plan.Files).
		Str("file_source", plan.FileSource).
		Strs("profiles", plan.Profiles).
		Int("rules", plan.Rules.Len()).
		Bool("dry_run", plan.DryRun).
		Bool("strict", plan.Strict).
		Msg("resolved plan")

	return plan, nil
}

// rootDir resolves a relative root against the config file's directory
func (cfg *Config) rootDir() string {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	if filepath.IsAbs(root) || cfg.location == "" {
		return filepath.Clean(root)
	}
	return filepath.Join(cfg.location, root)
}

func dedupe(files []string) []string {
	seen := make(map[string]bool, len(files))
	out := make([]string, 0, len(files))
	for _, f := range files {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}
