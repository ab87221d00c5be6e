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

package status

import (
	"fmt"
	"strings"
)

// 📊 FileStatus represents the outcome of rewriting one file
type FileStatus int

const (
	StatusUnknown     FileStatus = iota
	StatusUpdated                // Content changed and was written back
	StatusUnchanged              // No rule changed the content
	StatusNotFound               // Path does not exist
	StatusError                  // Reading, rewriting or writing failed
	StatusWouldUpdate            // Content changed but the run is a dry run
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusUpdated:
		return "updated"
	case StatusUnchanged:
		return "unchanged"
	case StatusNotFound:
		return "not found"
	case StatusError:
		return "error"
	case StatusWouldUpdate:
		return "would update"
	default:
		return "unknown"
	}
}

// 📄 Outcome is the result of processing one file
type Outcome struct {
	Path         string     // Path as listed
	Status       FileStatus // What happened
	Replacements int        // Number of substitutions made
	Diff         string     // Line diff, only set for dry runs
	Err          error      // Set when Status is StatusError
}

// 📈 Summary counts outcomes across a run
type Summary struct {
	Updated     int
	Unchanged   int
	WouldUpdate int
	NotFound    int
	Failed      int
}

// Add records one outcome
func (s *Summary) Add(o Outcome) {
	switch o.Status {
	case StatusUpdated:
		s.Updated++
	case StatusUnchanged:
		s.Unchanged++
	case StatusWouldUpdate:
		s.WouldUpdate++
	case StatusNotFound:
		s.NotFound++
	default:
		s.Failed++
	}
}

// Total returns the number of recorded outcomes
func (s Summary) Total() int {
	return s.Updated + s.Unchanged + s.WouldUpdate + s.NotFound + s.Failed
}

// Skipped returns the number of files that could not be processed
func (s Summary) Skipped() int {
	return s.NotFound + s.Failed
}

// String returns a one line description, omitting zero counts
func (s Summary) String() string {
	parts := []string{}
	add := func(n int, label string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, label))
		}
	}
	add(s.Updated, "updated")
	add(s.WouldUpdate, "would update")
	add(s.Unchanged, "unchanged")
	add(s.NotFound, "not found")
	add(s.Failed, "failed")

	files := "files"
	if s.Total() == 1 {
		files = "file"
	}
	if len(parts) == 0 {
		return fmt.Sprintf("0 %s processed", files)
	}
	return fmt.Sprintf("%d %s processed: %s", s.Total(), files, strings.Join(parts, ", "))
}
