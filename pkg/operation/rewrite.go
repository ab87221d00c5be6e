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
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/restyle/pkg/log"
	"github.com/walteh/restyle/pkg/status"
	"github.com/walteh/restyle/pkg/text"
	"gitlab.com/tozd/go/errors"
)

var _ Operation = (*RewriteOperation)(nil)

// 📦 RewriteOperation rewrites a list of files in place, one after the other
type RewriteOperation struct {
	opts     Options
	summary  status.Summary
	outcomes []status.Outcome
}

// 📦 NewRewriteOperation creates a new rewrite operation
func NewRewriteOperation(opts Options) (*RewriteOperation, error) {
	if opts.Store == nil {
		return nil, errors.Errorf("store is required")
	}
	if opts.Rules.Len() == 0 {
		return nil, errors.Errorf("at least one rule is required")
	}
	if opts.Replacer == nil {
		opts.Replacer = text.NewRewriter()
	}
	return &RewriteOperation{opts: opts}, nil
}

// Name implements Operation.Name
func (op *RewriteOperation) Name() string {
	if op.opts.DryRun {
		return "rewrite (dry run)"
	}
	return "rewrite"
}

// 🏃 Execute processes every file. Per-file failures are reported and never
// stop the run; only cancellation does.
func (op *RewriteOperation) Execute(ctx context.Context) error {
	logger := log.FromContext(ctx)

	for _, file := range op.opts.Files {
		if err := ctx.Err(); err != nil {
			logger.Errorf("run interrupted before %s: %v", file, err)
			return errors.Errorf("rewrite interrupted before %s: %w", file, err)
		}

		outcome := op.processFile(ctx, file)
		op.summary.Add(outcome)
		op.outcomes = append(op.outcomes, outcome)

		logger.LogFileOutcome(ctx, outcome)
		logger.Diff(file, outcome.Diff)
	}

	logger.Summary(op.summary)
	return nil
}

// Summary returns the counts of the last Execute
func (op *RewriteOperation) Summary() status.Summary {
	return op.summary
}

// Outcomes returns the per-file outcomes of the last Execute, in file order
func (op *RewriteOperation) Outcomes() []status.Outcome {
	return op.outcomes
}

// 📄 processFile rewrites a single file
func (op *RewriteOperation) processFile(ctx context.Context, file string) status.Outcome {
	zlog := zerolog.Ctx(ctx).With().Str("file", file).Logger()

	exists, err := op.opts.Store.FileExists(ctx, file)
	if err != nil {
		return status.Outcome{Path: file, Status: status.StatusError, Err: err}
	}
	if !exists {
		return status.Outcome{Path: file, Status: status.StatusNotFound}
	}

	// the file can still vanish between the check and the read
	doc, err := op.opts.Store.ReadDocument(ctx, file)
	if err != nil {
		if errors.Is(err, status.ErrNotFound) {
			return status.Outcome{Path: file, Status: status.StatusNotFound}
		}
		return status.Outcome{Path: file, Status: status.StatusError, Err: err}
	}

	rules := op.opts.Rules.ForPath(file)
	zlog.Debug().Int("rules", rules.Len()).Msg("applying rules")

	result, err := op.opts.Replacer.ReplaceText(zlog.WithContext(ctx), strings.NewReader(doc.Content), rules)
	if err != nil {
		return status.Outcome{Path: file, Status: status.StatusError, Err: errors.Errorf("rewriting: %w", err)}
	}
	doc.Content = string(result.ModifiedContent)

	for _, hit := range result.Hits {
		zlog.Debug().Str("rule", hit.Rule).Int("count", hit.Count).Msg("rule applied")
	}

	outcome := status.Outcome{Path: file, Replacements: result.ReplacementCount}
	switch {
	case !doc.Changed():
		outcome.Status = status.StatusUnchanged
	case op.opts.DryRun:
		outcome.Status = status.StatusWouldUpdate
		outcome.Diff = lineDiff(doc.Original, doc.Content)
	default:
		if err := op.opts.Store.SaveDocument(ctx, doc); err != nil {
			return status.Outcome{Path: file, Status: status.StatusError, Err: errors.Errorf("writing file: %w", err)}
		}
		outcome.Status = status.StatusUpdated
	}
	return outcome
}
