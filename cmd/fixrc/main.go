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
	"os"

	"github.com/spf13/cobra"
	"github.com/walteh/fixrc/cmd/fixrc/commands"
	"github.com/walteh/fixrc/cmd/fixrc/opts"
	"github.com/walteh/fixrc/pkg/status"
)

func main() {
	ctx := context.Background()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		status.NewUserLogger(ctx).LogVerification(false, "Command failed", err)
		os.Exit(1)
	}
}

// 🏗️ newRootCmd builds the fixrc command tree
func newRootCmd() *cobra.Command {
	rootOpts := &opts.RootOpts{}

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "fixrc",
		Short: "A best effort repair tool for recurring textual breakage",
		Long: `fixrc folds an ordered table of pattern rewrites over source files,
repairing recurring comma and parenthesis breakage. A file is written
back only when its repaired content differs byte for byte.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(rootOpts)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd, rootOpts)

	// Add commands
	rootCmd.AddCommand(
		commands.NewFixCmd(rootOpts),
		commands.NewCheckCmd(rootOpts),
		commands.NewRulesCmd(rootOpts),
		commands.NewCleanCmd(rootOpts),
		commands.NewRestoreCmd(rootOpts),
		commands.NewSchemaCmd(rootOpts),
		newVersionCmd(),
	)

	return rootCmd
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(FormatVersion())
		},
	}
}
