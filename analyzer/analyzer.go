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

package analyzer

import (
	"context"

	"github.com/rejectlint/rejectlint/internal/report"
	"github.com/rejectlint/rejectlint/internal/run"
)

// Public API constants for the rejectlint analyzer.
const (
	name = run.Name
	doc  = `rejectlint reports promise rejections whose reason is not an Error`
	url  = "https://pkg.go.dev/github.com/rejectlint/rejectlint"
)

// Analyzer checks JavaScript sources for promise rejections whose reason is
// not provably an Error-like value.
type Analyzer struct {
	opts *run.Options
}

// New creates a new instance of the rejectlint analyzer. It allows for
// programmatic configuration using [Option], which is useful for integrating
// the analyzer into other tools. For command-line use, [Default] is
// typically sufficient.
func New(opts ...Option) *Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	return &Analyzer{opts: r}
}

// Default is a pre-configured [Analyzer] with default options.
var Default = New()

// Name returns the analyzer name attached to diagnostics.
func (*Analyzer) Name() string { return name }

// Doc returns the one-line analyzer documentation.
func (*Analyzer) Doc() string { return doc }

// URL returns the analyzer documentation URL.
func (*Analyzer) URL() string { return url }

// Check analyzes a single JavaScript source file and returns its diagnostics
// sorted by position. Repeated runs over unchanged input produce identical
// results.
func (a *Analyzer) Check(ctx context.Context, filename string, source []byte) ([]report.Diagnostic, error) {
	return a.opts.Run(ctx, filename, source)
}
