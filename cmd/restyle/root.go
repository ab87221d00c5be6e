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

package main

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/restyle/cmd/restyle/commands"
	"github.com/walteh/restyle/cmd/restyle/opts"
	"github.com/walteh/restyle/pkg/config"
	"github.com/walteh/restyle/pkg/log"
)

// newRootCmd builds the command tree. Flags are bound to a fresh RootOpts so
// the tree can be built more than once per process.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootOpts := &opts.RootOpts{
		Stdout: stdout,
		Stderr: stderr,
	}

	rootCmd := &cobra.Command{
		Use:   "restyle",
		Short: "Rewrite color and background classes in source files",
		Long: `restyle applies ordered tables of (pattern, replacement) rules to a list of
source files and writes each file back only when it changed.

Built-in profiles cover the common dark theme migrations; custom rules can be
added in a .restyle.yaml, .restyle.json or .restyle.hcl config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			rootOpts.ConfigExplicit = cmd.Flags().Changed("config")
			cmd.SetContext(setupLogging(cmd, rootOpts))
			return nil
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	addRootFlags(rootCmd, rootOpts)

	rootCmd.AddCommand(
		commands.NewRunCmd(rootOpts),
		commands.NewListCmd(rootOpts),
		commands.NewShowCmd(rootOpts),
		newVersionCmd(),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", config.DefaultPath, "config file path")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&o.NoColor, "no-color", false, "disable colored output")
}

// setupLogging stores the structured logger and the console logger in the
// command context. Structured logs go to stderr, the console report to stdout.
func setupLogging(cmd *cobra.Command, o *opts.RootOpts) context.Context {
	level := zerolog.WarnLevel
	if o.Debug {
		level = zerolog.DebugLevel
	}
	if o.NoColor {
		color.NoColor = true
	}

	zlog := zerolog.New(o.Stderr).Level(level).With().Timestamp().Logger()
	ctx := zlog.WithContext(cmd.Context())
	return log.NewContext(ctx, log.New(o.Stdout, zlog))
}
