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
	"regexp"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🔄 Rule defines a single ordered rewrite
type Rule struct {
	// Name is an optional label used in logs
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Pattern is a regular expression, or plain text when Literal is set
	Pattern string `json:"pattern" yaml:"pattern"`

	// Replace is the replacement text. Unless Literal is set it may reference
	// capture groups with ${1} or ${name}.
	Replace string `json:"replace" yaml:"replace"`

	// Literal treats both Pattern and Replace as plain text
	Literal bool `json:"literal,omitempty" yaml:"literal,omitempty"`

	// Guard suppresses a match when this substring is present in the guarded region
	Guard string `json:"guard,omitempty" yaml:"guard,omitempty"`

	// GuardGroup is the capture group the guard is checked against (0 is the whole match)
	GuardGroup int `json:"guard_group,omitempty" yaml:"guard_group,omitempty"`

	// FileFilterGlob restricts the rule to paths matching this doublestar glob
	FileFilterGlob string `json:"files,omitempty" yaml:"files,omitempty"`
}

// 📝 String returns a short human readable form of the rule
func (r Rule) String() string {
	var b strings.Builder
	if r.Name != "" {
		b.WriteString(r.Name)
		b.WriteString(": ")
	}
	b.WriteString(r.Pattern)
	b.WriteString(" => ")
	b.WriteString(r.Replace)
	if r.Guard != "" {
		b.WriteString(" (unless ")
		b.WriteString(r.Guard)
		if r.GuardGroup > 0 {
			b.WriteString(" in group ")
			b.WriteString(strconv.Itoa(r.GuardGroup))
		}
		b.WriteString(")")
	}
	return b.String()
}

// compiledRule is a Rule with its pattern compiled
type compiledRule struct {
	Rule
	re *regexp.Regexp
}

// RuleSet is an ordered, compiled list of rules. The zero value and nil are
// both empty rule sets.
type RuleSet struct {
	rules []compiledRule
}

// 🏭 Compile validates and compiles rules in order. A malformed pattern is
// reported here, never while applying.
func Compile(rules []Rule) (*RuleSet, error) {
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}

	rs := &RuleSet{rules: make([]compiledRule, 0, len(rules))}
	for i, rule := range rules {
		pattern := rule.Pattern
		if rule.Literal {
			pattern = regexp.QuoteMeta(pattern)
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errors.Errorf("rule %d (%s): compiling pattern: %w", i, rule.label(), err)
		}
		if rule.GuardGroup > re.NumSubexp() {
			return nil, errors.Errorf("rule %d (%s): guard_group %d exceeds %d capture groups", i, rule.label(), rule.GuardGroup, re.NumSubexp())
		}
		rs.rules = append(rs.rules, compiledRule{Rule: rule, re: re})
	}
	return rs, nil
}

// MustCompile is like Compile but panics on error. It is meant for rule
// tables written in code.
func MustCompile(rules ...Rule) *RuleSet {
	rs, err := Compile(rules)
	if err != nil {
		panic(err)
	}
	return rs
}

// ValidateRules checks that all rules are well formed without compiling them
func ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if rule.Pattern == "" {
			return errors.Errorf("rule %d: pattern is required", i)
		}
		if rule.GuardGroup < 0 {
			return errors.Errorf("rule %d: guard_group must not be negative", i)
		}
		if rule.GuardGroup > 0 && rule.Guard == "" {
			return errors.Errorf("rule %d: guard_group set without guard", i)
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d: invalid files glob %q", i, rule.FileFilterGlob)
		}
	}
	return nil
}

// Len returns the number of rules
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Rules returns the uncompiled rules in order
func (rs *RuleSet) Rules() []Rule {
	if rs == nil {
		return nil
	}
	out := make([]Rule, len(rs.rules))
	for i, r := range rs.rules {
		out[i] = r.Rule
	}
	return out
}

// Append returns a new rule set with other's rules after rs's rules
func (rs *RuleSet) Append(other *RuleSet) *RuleSet {
	out := &RuleSet{rules: make([]compiledRule, 0, rs.Len()+other.Len())}
	if rs != nil {
		out.rules = append(out.rules, rs.rules...)
	}
	if other != nil {
		out.rules = append(out.rules, other.rules...)
	}
	return out
}

// 🔍 ForPath returns the rules that apply to path, keeping their order.
// Rules without a files glob apply everywhere.
func (rs *RuleSet) ForPath(path string) *RuleSet {
	out := &RuleSet{}
	if rs == nil {
		return out
	}
	slashed := toSlash(path)
	for _, r := range rs.rules {
		if r.FileFilterGlob == "" {
			out.rules = append(out.rules, r)
			continue
		}
		// patterns were validated by Compile
		if ok, _ := doublestar.Match(r.FileFilterGlob, slashed); ok {
			out.rules = append(out.rules, r)
		}
	}
	return out
}

func (r Rule) label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Pattern
}

// apply runs the rule once over src and returns the result and the number of
// substitutions made. Guarded matches are copied through untouched.
func (r *compiledRule) apply(src string) (string, int) {
	matches := r.re.FindAllStringSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return src, 0
	}

	count := 0
	dst := make([]byte, 0, len(src))
	last := 0
	for _, m := range matches {
		dst = append(dst, src[last:m[0]]...)
		switch {
		case r.guarded(src, m):
			dst = append(dst, src[m[0]:m[1]]...)
		case r.Literal:
			dst = append(dst, r.Replace...)
			count++
		default:
			dst = r.re.ExpandString(dst, r.Replace, src, m)
			count++
		}
		last = m[1]
	}
	dst = append(dst, src[last:]...)
	return string(dst), count
}

// guarded reports whether the guard substring is present in the guarded
// region of match m. A group that did not participate is an empty region.
func (r *compiledRule) guarded(src string, m []int) bool {
	if r.Guard == "" {
		return false
	}
	start, end := m[2*r.GuardGroup], m[2*r.GuardGroup+1]
	if start < 0 {
		return false
	}
	return strings.Contains(src[start:end], r.Guard)
}

func toSlash(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
