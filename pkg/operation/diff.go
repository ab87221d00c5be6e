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

package operation

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// lineDiff renders the changed lines between before and after. Each block of
// changes is headed by the line number it starts at in before.
func lineDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf strings.Builder
	line := 1
	inBlock := false
	for _, d := range diffs {
		chunk := splitLines(d.Text)
		if d.Type == diffmatchpatch.DiffEqual {
			line += len(chunk)
			inBlock = false
			continue
		}

		if !inBlock {
			fmt.Fprintf(&buf, "@@ line %d @@\n", line)
			inBlock = true
		}

		prefix := "+ "
		if d.Type == diffmatchpatch.DiffDelete {
			prefix = "- "
			line += len(chunk)
		}
		for _, l := range chunk {
			buf.WriteString(prefix)
			buf.WriteString(strings.TrimSuffix(l, "\n"))
			buf.WriteString("\n")
		}
	}
	return buf.String()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.SplitAfter(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
