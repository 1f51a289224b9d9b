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

package command

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rejectlint/rejectlint/analyzer"
	"github.com/rejectlint/rejectlint/internal/config"
	"github.com/rejectlint/rejectlint/internal/report"
)

func runLint(cmd *cobra.Command, args []string) error {
	behavior, outFormat, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr())

	opts := analyzer.Options{
		analyzer.WithAllowEmptyReject(behavior.Enabled(config.AllowEmptyReject)),
	}
	logger.LogAttrs(cmd.Context(), slog.LevelDebug, "configured", opts.LogAttr())

	a := analyzer.New(opts)

	files, err := expandArgs(args)
	if err != nil {
		return err
	}

	var all []report.Diagnostic

	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		logger.Debug("analyzing", "file", path, "bytes", len(src))

		ds, err := a.Check(cmd.Context(), path, src)
		if err != nil {
			return err
		}

		all = append(all, ds...)
	}

	if len(all) == 0 {
		return nil
	}

	out := cmd.OutOrStdout()
	switch outFormat {
	case "json":
		err = report.FormatJSON(out, all)
	default:
		err = report.FormatText(out, all)
	}

	if err != nil {
		return err
	}

	return ErrFindings
}

// resolveConfig merges the configuration file with command line flags.
// An explicitly set flag wins over the file.
func resolveConfig(cmd *cobra.Command) (config.Behavior, string, error) {
	var behavior config.Behavior

	outFormat := "text"

	path, explicit := cfgFile, cfgFile != ""
	if !explicit {
		path = config.DefaultFilename
	}

	f, err := config.Load(path)
	switch {
	case err == nil:
		f.Apply(&behavior)

		if f.Format != "" {
			outFormat = f.Format
		}

	case !explicit && errors.Is(err, os.ErrNotExist):
		// Running without a configuration file is fine.

	default:
		return 0, "", err
	}

	if cmd.Flags().Changed("allow-empty-reject") {
		behavior.Set(config.AllowEmptyReject, allowEmptyReject)
	}

	if cmd.Flags().Changed("format") {
		outFormat = format
	}

	switch outFormat {
	case "text", "json":
	default:
		return 0, "", fmt.Errorf("%w: %q", config.ErrUnknownFormat, outFormat)
	}

	return behavior, outFormat, nil
}

func newLogger(w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
