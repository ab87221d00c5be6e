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

package text

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inputBgRules = []Rule{
	{
		Name:       "input-border-bg",
		Pattern:    `(className=")([^"]*\bborder[^"]*)"(\s*/>|\s*\n)`,
		Replace:    `${1}${2} bg-slate-800 text-white"${3}`,
		Guard:      "bg-",
		GuardGroup: 2,
	},
}

func TestRewriter_ReplaceText(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		rules        []Rule
		want         string
		wantCount    int
		wantModified bool
	}{
		{
			name:    "literal_replacement",
			content: "Hello World",
			rules: []Rule{
				{Pattern: "World", Replace: "Universe", Literal: true},
			},
			want:         "Hello Universe",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "multiple_matches",
			content: "Hello World World",
			rules: []Rule{
				{Pattern: "World", Replace: "Universe", Literal: true},
			},
			want:         "Hello Universe Universe",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:    "rules_apply_in_order",
			content: "a",
			rules: []Rule{
				{Pattern: "a", Replace: "b", Literal: true},
				{Pattern: "b", Replace: "c", Literal: true},
			},
			want:         "c",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:    "capture_group_reference",
			content: `<div className="bg-white p-4">`,
			rules: []Rule{
				{Pattern: `bg-white(["\s])`, Replace: `bg-slate-800${1}`},
			},
			want:         `<div className="bg-slate-800 p-4">`,
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "literal_keeps_dollar_signs",
			content: "price",
			rules: []Rule{
				{Pattern: "price", Replace: "$1.00", Literal: true},
			},
			want:         "$1.00",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "literal_pattern_is_quoted",
			content: "a.b axb",
			rules: []Rule{
				{Pattern: "a.b", Replace: "X", Literal: true},
			},
			want:         "X axb",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "no_match",
			content:      "Hello World",
			rules:        []Rule{{Pattern: "Goodbye", Replace: "Hi", Literal: true}},
			want:         "Hello World",
			wantModified: false,
		},
		{
			name:         "empty_content",
			content:      "",
			rules:        []Rule{{Pattern: "World", Replace: "Universe", Literal: true}},
			want:         "",
			wantModified: false,
		},
		{
			name:         "empty_rules",
			content:      "Hello World",
			rules:        []Rule{},
			want:         "Hello World",
			wantModified: false,
		},
		{
			name:    "identity_replacement_counts_but_does_not_modify",
			content: "same",
			rules: []Rule{
				{Pattern: "same", Replace: "same", Literal: true},
			},
			want:         "same",
			wantCount:    1,
			wantModified: false,
		},
		{
			name:         "guard_appends_marker",
			content:      "<input className=\"border\" />",
			rules:        inputBgRules,
			want:         "<input className=\"border bg-slate-800 text-white\" />",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "guard_skips_when_marker_present",
			content:      "<input className=\"border bg-slate-800\" />",
			rules:        inputBgRules,
			want:         "<input className=\"border bg-slate-800\" />",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "guard_sees_whole_value",
			content:      "<input className=\"bg-slate-800 border\" />",
			rules:        inputBgRules,
			want:         "<input className=\"bg-slate-800 border\" />",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:    "guard_on_whole_match",
			content: "keep-me drop-me",
			rules: []Rule{
				{Pattern: `\S+-me`, Replace: "gone", Guard: "keep"},
			},
			want:         "keep-me gone",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "guard_on_unmatched_group_never_skips",
			content: "ab",
			rules: []Rule{
				{Pattern: `a(x)?b`, Replace: "c", Guard: "x", GuardGroup: 1},
			},
			want:         "c",
			wantCount:    1,
			wantModified: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := Compile(tt.rules)
			require.NoError(t, err)

			result, err := NewRewriter().ReplaceText(context.Background(), strings.NewReader(tt.content), rules)
			require.NoError(t, err)
			require.NotNil(t, result)

			assert.Equal(t, tt.content, string(result.OriginalContent))
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
			assert.Equal(t, tt.wantModified, result.WasModified)

			got, changed := Apply(tt.content, rules)
			assert.Equal(t, tt.want, got, "Apply should agree with ReplaceText")
			assert.Equal(t, tt.wantModified, changed)
		})
	}
}

func TestRewriter_Hits(t *testing.T) {
	rules := MustCompile(
		Rule{Name: "first", Pattern: "a", Replace: "b", Literal: true},
		Rule{Name: "unused", Pattern: "zzz", Replace: "y", Literal: true},
		Rule{Pattern: "b", Replace: "c", Literal: true},
	)

	result, err := NewRewriter().ReplaceText(context.Background(), strings.NewReader("aab"), rules)
	require.NoError(t, err)

	assert.Equal(t, []RuleHit{
		{Rule: "first", Count: 2},
		{Rule: "b", Count: 3},
	}, result.Hits)
	assert.Equal(t, 5, result.ReplacementCount)
	assert.Equal(t, "ccc", string(result.ModifiedContent))
}

func TestApply_NilRuleSet(t *testing.T) {
	got, changed := Apply("unchanged", nil)
	assert.Equal(t, "unchanged", got)
	assert.False(t, changed)
}

func TestApply_Deterministic(t *testing.T) {
	rules := MustCompile(inputBgRules...)
	input := "<input className=\"w-full border rounded\" />\n<input className=\"border\"\n"

	first, _ := Apply(input, rules)
	for i := 0; i < 5; i++ {
		again, _ := Apply(input, rules)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
	}
}

func TestApply_GuardedRuleIsIdempotent(t *testing.T) {
	rules := MustCompile(inputBgRules...)
	input := "<input className=\"w-full border rounded\" />\n<input className=\"bg-red border-x\" />"

	once, changed := Apply(input, rules)
	require.True(t, changed)

	twice, changed := Apply(once, rules)
	assert.False(t, changed, "second pass should not change anything")
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second pass changed output (-once +twice):\n%s", diff)
	}
}
