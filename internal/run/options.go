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

package run

import (
	"github.com/rejectlint/rejectlint/internal/config"
	"github.com/rejectlint/rejectlint/internal/errlike"
)

// Name is the check name attached to every diagnostic.
const Name = "rejectlint"

// Options represent the configuration of a rejectlint run.
type Options struct {
	// Behavior holds the behavioral options.
	Behavior config.Behavior

	// CouldBeError overrides the default error-likeness heuristic when non-nil.
	CouldBeError errlike.Predicate
}

// DefaultOptions initializes and returns a new Options instance with default
// values.
func DefaultOptions() *Options {
	return &Options{}
}
