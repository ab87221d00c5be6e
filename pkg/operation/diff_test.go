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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineDiff(t *testing.T) {
	tests := []struct {
		name   string
		before string
		after  string
		want   string
	}{
		{
			name:   "identical",
			before: "a\nb\n",
			after:  "a\nb\n",
			want:   "",
		},
		{
			name:   "single_line_change",
			before: "a\nb\nc\n",
			after:  "a\nB\nc\n",
			want:   "@@ line 2 @@\n- b\n+ B\n",
		},
		{
			name:   "two_blocks",
			before: "a\nb\nc\nd\n",
			after:  "A\nb\nc\nD\n",
			want:   "@@ line 1 @@\n- a\n+ A\n@@ line 4 @@\n- d\n+ D\n",
		},
		{
			name:   "no_trailing_newline",
			before: "a\nb",
			after:  "a\nB",
			want:   "@@ line 2 @@\n- b\n+ B\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lineDiff(tt.before, tt.after))
		})
	}
}
