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
	"log/slog"

	"github.com/rejectlint/rejectlint/internal/config"
	"github.com/rejectlint/rejectlint/internal/errlike"
	"github.com/rejectlint/rejectlint/internal/run"
)

// Option configures specific behavior of a [New] rejectlint analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option]
// interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithAllowEmptyReject is an [Option] to permit rejection calls with no
// arguments.
func WithAllowEmptyReject(allow bool) Option { return allowEmptyOption{allow: allow} }

type allowEmptyOption struct{ allow bool }

func (o allowEmptyOption) apply(r *run.Options) {
	r.Behavior.Set(config.AllowEmptyReject, o.allow)
}

func (o allowEmptyOption) LogAttr() slog.Attr {
	return slog.Bool("allow-empty-reject", o.allow)
}

// WithErrorPredicate is an [Option] to replace the error-likeness heuristic,
// for example with one backed by type information. A nil predicate restores
// the default.
func WithErrorPredicate(p errlike.Predicate) Option { return predicateOption{predicate: p} }

type predicateOption struct{ predicate errlike.Predicate }

func (o predicateOption) apply(r *run.Options) {
	r.CouldBeError = o.predicate
}

func (o predicateOption) LogAttr() slog.Attr {
	return slog.Bool("custom-error-predicate", o.predicate != nil)
}
