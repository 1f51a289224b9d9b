// Copyright 2026 The Rejectlint Authors. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package command implements the rejectlint command line interface.
package command

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rejectlint/rejectlint/internal/config"
)

// ErrFindings signals that analysis completed and reported violations.
var ErrFindings = errors.New("violations found")

var (
	cfgFile          string
	allowEmptyReject bool
	format           string
	verbose          bool
)

// New returns the rejectlint root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rejectlint [flags] file.js ...",
		Short: "Report promise rejections whose reason is not an Error",
		Long: `Rejectlint reports promise rejections in JavaScript sources whose reason is
not provably an Error. Rejecting with a string, number, or nothing at all
discards the stack trace and breaks instanceof checks in downstream handlers.

Two shapes are checked: direct calls of Promise.reject, and invocations of
the second executor parameter of new Promise(...).

Arguments may be files or directory patterns ending in /..., which expand to
all .js, .mjs and .cjs files found recursively.

Exit codes:
  0  No problems found
  1  One or more problems were reported
  2  Bad invocation (invalid flags, unreadable or unparsable files)

Examples:
  rejectlint app.js                      Check a single file
  rejectlint src/...                     Check a source tree recursively
  rejectlint --format json app.js        Output diagnostics as JSON
  rejectlint --allow-empty-reject app.js Tolerate reject() with no argument`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runLint,
	}

	flags := cmd.Flags()
	flags.BoolVar(&allowEmptyReject, "allow-empty-reject", false, "permit rejection calls with no arguments")
	flags.StringVar(&format, "format", "text", "output format, text or json")
	flags.StringVar(&cfgFile, "config", "", "configuration file (default "+config.DefaultFilename+" if present)")
	flags.BoolVar(&verbose, "verbose", false, "log analysis progress to stderr")

	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := New().Execute()
	switch {
	case err == nil:
		return 0

	case errors.Is(err, ErrFindings):
		return 1

	default:
		fmt.Fprintln(os.Stderr, "rejectlint:", err)

		return 2
	}
}
