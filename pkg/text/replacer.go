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
	"io"
)

// RuleHit records how many substitutions one rule made
type RuleHit struct {
	// Rule is the label of the rule (its name, or its pattern when unnamed)
	Rule string

	// Count is the number of substitutions made by the rule
	Count int
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if the content differs from the original
	WasModified bool

	// ReplacementCount is the number of substitutions made across all rules
	ReplacementCount int

	// Hits lists the rules that made at least one substitution, in rule order
	Hits []RuleHit

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// Apply runs rules over text in order and reports whether the result differs
	Apply(text string, rules *RuleSet) (string, bool)

	// ReplaceText applies rules to the content read from r
	ReplaceText(ctx context.Context, content io.Reader, rules *RuleSet) (*ReplacementResult, error)
}
