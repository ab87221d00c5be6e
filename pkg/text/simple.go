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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var _ TextReplacer = (*Rewriter)(nil)

// Rewriter implements TextReplacer by running each rule over the output of the
// previous one. It holds no state and never touches storage.
type Rewriter struct{}

// NewRewriter creates a new Rewriter
func NewRewriter() *Rewriter {
	return &Rewriter{}
}

// Apply is a shorthand for NewRewriter().Apply
func Apply(text string, rules *RuleSet) (string, bool) {
	return NewRewriter().Apply(text, rules)
}

// Apply implements TextReplacer.Apply
func (r *Rewriter) Apply(text string, rules *RuleSet) (string, bool) {
	out, _, _ := r.run(text, rules)
	return out, out != text
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *Rewriter) ReplaceText(ctx context.Context, content io.Reader, rules *RuleSet) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	original := string(originalContent)
	modified, count, hits := r.run(original, rules)

	for _, hit := range hits {
		zerolog.Ctx(ctx).Trace().Str("rule", hit.Rule).Int("count", hit.Count).Msg("rule matched")
	}

	return &ReplacementResult{
		WasModified:      modified != original,
		ReplacementCount: count,
		Hits:             hits,
		OriginalContent:  originalContent,
		ModifiedContent:  []byte(modified),
	}, nil
}

func (r *Rewriter) run(text string, rules *RuleSet) (string, int, []RuleHit) {
	if rules == nil {
		return text, 0, nil
	}

	total := 0
	var hits []RuleHit
	current := text
	for i := range rules.rules {
		rule := &rules.rules[i]
		next, n := rule.apply(current)
		if n > 0 {
			total += n
			hits = append(hits, RuleHit{Rule: rule.label(), Count: n})
		}
		current = next
	}
	return current, total, hits
}
