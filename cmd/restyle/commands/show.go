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
	"io"

	"github.com/spf13/cobra"
	"github.com/walteh/restyle/cmd/restyle/opts"
	"github.com/walteh/restyle/pkg/rules"
)

// NewShowCmd creates a new show command
func NewShowCmd(rootOpts *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "show <profile>",
		Short: "Print a profile's default files and ordered rules",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return rules.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := rules.Lookup(args[0])
			if err != nil {
				return err
			}
			return printProfile(cmd.OutOrStdout(), profile)
		},
	}
}

func printProfile(w io.Writer, p *rules.Profile) error {
	if _, err := fmt.Fprintf(w, "%s\n  %s\n\nfiles:\n", p.Name, p.Description); err != nil {
		return err
	}
	for _, f := range p.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	fmt.Fprintln(w, "\nrules:")
	for i, r := range p.Rules {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, r)
	}
	return nil
}
