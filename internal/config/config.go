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

// Package config holds the behavioral options of an analysis run.
package config

// Behavior is a bitmask of behavioral options, immutable for the duration of
// one analysis run.
type Behavior uint8

const (
	// AllowEmptyReject permits rejection calls with no arguments.
	AllowEmptyReject Behavior = 1 << iota
)

// Set adjusts the bitmask by enabling or disabling the given option.
func (b *Behavior) Set(flag Behavior, value bool) {
	if value {
		*b |= flag
	} else {
		*b &^= flag
	}
}

// Enabled checks if the given option is set.
func (b Behavior) Enabled(flag Behavior) bool {
	return b&flag != 0
}
