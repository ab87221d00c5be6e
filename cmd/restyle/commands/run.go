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

package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/restyle/cmd/restyle/opts"
	"github.com/walteh/restyle/pkg/config"
	"github.com/walteh/restyle/pkg/log"
	"github.com/walteh/restyle/pkg/operation"
	"github.com/walteh/restyle/pkg/rules"
	"github.com/walteh/restyle/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// ErrSkippedFiles is returned in strict mode when any file was not rewritten
// because it was missing or failed
var ErrSkippedFiles = errors.Base("files were skipped")

// NewRunCmd creates a new run command
func NewRunCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var overrides config.Overrides

	cmd := &cobra.Command{
		Use:   "run [profile...]",
		Short: "Rewrite files with built-in profiles and config rules",
		Long: `Run applies the selected rules to every listed file, in order.
It will:
1. Load the config file, if any
2. Build the rule list from the profiles (args replace config profiles), then config rules
3. Rewrite each file, writing it back only when it changed
4. Print one line per file and a summary

Missing or unreadable files are reported and skipped. With --strict the command
exits non-zero when that happens.`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return rules.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "run").Logger().WithContext(cmd.Context())

			cfg, err := rootOpts.LoadConfig(ctx)
			if err != nil {
				return err
			}

			overrides.Profiles = args
			plan, err := cfg.Resolve(ctx, overrides)
			if err != nil {
				return errors.Errorf("resolving run: %w", err)
			}

			store := status.New(plan.Root)
			op, err := operation.NewRewriteOperation(operation.Options{
				Files:  plan.Files,
				Rules:  plan.Rules,
				Store:  store,
				DryRun: plan.DryRun,
			})
			if err != nil {
				return errors.Errorf("creating rewrite: %w", err)
			}

			logger := log.FromContext(ctx)
			logger.Header(header(plan, store.BaseDir()))
			logger.Infof("files: %s (%d)", plan.FileSource, len(plan.Files))

			if err := operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, op); err != nil {
				return err
			}

			if summary := op.Summary(); plan.Strict && summary.Skipped() > 0 {
				return errors.WithDetails(
					errors.Errorf("%w: %d of %d", ErrSkippedFiles, summary.Skipped(), summary.Total()),
					"not_found", summary.NotFound,
					"failed", summary.Failed,
				)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&overrides.Files, "file", "f", nil, "file to rewrite (repeatable, replaces the configured list)")
	cmd.Flags().StringVar(&overrides.Root, "root", "", "directory relative file paths resolve against")
	cmd.Flags().BoolVar(&overrides.DryRun, "dry-run", false, "show the changes without writing them")
	cmd.Flags().BoolVar(&overrides.Strict, "strict", false, "exit non-zero when any file is missing or fails")

	return cmd
}

func header(plan *config.Plan, root string) string {
	source := "config rules"
	if len(plan.Profiles) > 0 {
		source = strings.Join(plan.Profiles, ", ")
	}
	msg := fmt.Sprintf("%s: %d rules over %d files in %s", source, plan.Rules.Len(), len(plan.Files), root)
	if plan.DryRun {
		msg += " (dry run)"
	}
	return msg
}
