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
	"context"

	"github.com/walteh/restyle/pkg/status"
	"github.com/walteh/restyle/pkg/text"
)

// 🎯 Operation is a unit of work run by an OperationRunner
type Operation interface {
	// Name identifies the operation in logs
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for an operation
type Options struct {
	// Files are processed in this order
	Files []string
	// Rules are applied to every file, filtered by each rule's files glob
	Rules *text.RuleSet
	// Store reads and writes documents
	Store *status.Manager
	// Replacer applies rules; defaults to text.NewRewriter()
	Replacer text.TextReplacer
	// DryRun computes diffs instead of writing
	DryRun bool
}
