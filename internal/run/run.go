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

// Package run executes the rejectlint pipeline for one source file.
package run

import (
	"context"
	"runtime/trace"

	"github.com/rejectlint/rejectlint/internal/analyze"
	"github.com/rejectlint/rejectlint/internal/config"
	"github.com/rejectlint/rejectlint/internal/jstree"
	"github.com/rejectlint/rejectlint/internal/report"
)

// Run analyzes one JavaScript source file and returns its diagnostics sorted
// by position. All state is local to the call, so independent files can be
// analyzed concurrently without coordination.
func (o *Options) Run(ctx context.Context, filename string, source []byte) ([]report.Diagnostic, error) {
	ctx, task := trace.NewTask(ctx, "RejectLint")
	defer task.End()

	trace.Log(ctx, "file", filename)

	region := trace.StartRegion(ctx, "Parse")
	tree, err := jstree.Parse(ctx, filename, source)
	region.End()

	if err != nil {
		return nil, err
	}

	defer trace.StartRegion(ctx, "Analyze").End()

	checker := analyze.Checker{
		Tree:             tree,
		CouldBeError:     o.CouldBeError,
		AllowEmptyReject: o.Behavior.Enabled(config.AllowEmptyReject),
	}

	var ds []report.Diagnostic
	for _, v := range checker.Run() {
		start, end := tree.Start(v.Site), tree.End(v.Site)

		ds = append(ds, report.Diagnostic{
			File:    filename,
			Line:    start.Line,
			Col:     start.Col,
			EndLine: end.Line,
			EndCol:  end.Col,
			Rule:    Name,
			Message: report.Message(v.ID),
		})
	}

	return ds, nil
}
