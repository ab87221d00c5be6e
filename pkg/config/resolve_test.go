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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/restyle/pkg/rules"
	"github.com/walteh/restyle/pkg/text"
)

var defaultPages = []string{
	"app/dashboard/page.tsx",
	"app/analytics/page.tsx",
	"app/transactions/page.tsx",
	"app/products/page.tsx",
}

func ruleCount(t *testing.T, names ...string) int {
	t.Helper()
	total := 0
	for _, name := range names {
		p, err := rules.Lookup(name)
		require.NoError(t, err)
		total += len(p.Rules)
	}
	return total
}

func TestConfig_Resolve(t *testing.T) {
	custom := text.Rule{Pattern: "bg-white", Replace: "bg-black", Literal: true}

	tests := []struct {
		name        string
		cfg         *Config
		overrides   Overrides
		wantErr     bool
		errContains string
		check       func(t *testing.T, plan *Plan)
	}{
		{
			name: "profile_defaults_files",
			cfg:  &Config{Profiles: []string{"fix-white-bg"}},
			check: func(t *testing.T, plan *Plan) {
				assert.Equal(t, ".", plan.Root)
				assert.Equal(t, defaultPages, plan.Files)
				assert.Equal(t, FilesFromProfiles, plan.FileSource)
				assert.Equal(t, ruleCount(t, "fix-white-bg"), plan.Rules.Len())
			},
		},
		{
			name: "profiles_share_default_files",
			cfg:  &Config{Profiles: []string{"fix-white-bg", "remove-dark-mode"}},
			check: func(t *testing.T, plan *Plan) {
				assert.Equal(t, defaultPages, plan.Files)
				assert.Equal(t, ruleCount(t, "fix-white-bg", "remove-dark-mode"), plan.Rules.Len())
			},
		},
		{
			name: "custom_rules_follow_profile_rules",
			cfg: &Config{
				Profiles: []string{"fix-white-bg"},
				Rules:    []text.Rule{custom},
			},
			check: func(t *testing.T, plan *Plan) {
				got := plan.Rules.Rules()
				require.Len(t, got, ruleCount(t, "fix-white-bg")+1)
				assert.Equal(t, custom, got[len(got)-1])
			},
		},
		{
			name: "overrides_win",
			cfg: &Config{
				Root:     "web",
				Files:    []string{"app/a.tsx"},
				Profiles: []string{"fix-white-bg"},
			},
			overrides: Overrides{
				Root:     "other/",
				Files:    []string{"app/b.tsx"},
				Profiles: []string{"remove-all-white"},
				DryRun:   true,
				Strict:   true,
			},
			check: func(t *testing.T, plan *Plan) {
				assert.Equal(t, "other", plan.Root)
				assert.Equal(t, []string{"app/b.tsx"}, plan.Files)
				assert.Equal(t, FilesFromFlags, plan.FileSource)
				assert.Equal(t, []string{"remove-all-white"}, plan.Profiles)
				assert.Equal(t, ruleCount(t, "remove-all-white"), plan.Rules.Len())
				assert.True(t, plan.DryRun)
				assert.True(t, plan.Strict)
			},
		},
		{
			name: "root_relative_to_config_file",
			cfg:  &Config{Root: "web", Rules: []text.Rule{custom}, Files: []string{"a.tsx"}, location: filepath.Join("repo", "config")},
			check: func(t *testing.T, plan *Plan) {
				assert.Equal(t, filepath.Join("repo", "config", "web"), plan.Root)
				assert.Equal(t, []string{"a.tsx"}, plan.Files)
				assert.Equal(t, FilesFromConfig, plan.FileSource)
			},
		},
		{
			name:        "no_rules",
			cfg:         &Config{Files: []string{"a.tsx"}},
			wantErr:     true,
			errContains: "no rules selected",
		},
		{
			name:        "custom_rules_need_files",
			cfg:         &Config{Rules: []text.Rule{custom}},
			wantErr:     true,
			errContains: "no files to process",
		},
		{
			name:        "malformed_custom_rule",
			cfg:         &Config{Files: []string{"a.tsx"}, Rules: []text.Rule{{Pattern: "(unclosed", Replace: "x"}}},
			wantErr:     true,
			errContains: "config rules",
		},
		{
			name:        "unknown_override_profile",
			cfg:         &Config{},
			overrides:   Overrides{Profiles: []string{"nope"}},
			wantErr:     true,
			errContains: `unknown profile "nope"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := tt.cfg.Resolve(context.Background(), tt.overrides)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, plan)
		})
	}
}
