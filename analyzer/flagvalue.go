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
	"strconv"

	"github.com/rejectlint/rejectlint/internal/config"
)

// behaviorValue adapts one behavior bit to the [flag.Value] interface.
type behaviorValue struct {
	analyzer *Analyzer
	flag     config.Behavior
}

// Set implements [flag.Value].
func (f behaviorValue) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.analyzer.opts.Behavior.Set(f.flag, b)

	return nil
}

// String implements [flag.Value].
func (f behaviorValue) String() string {
	if f.analyzer == nil {
		return "false"
	}

	return strconv.FormatBool(f.analyzer.opts.Behavior.Enabled(f.flag))
}

// Get implements [flag.Getter].
func (f behaviorValue) Get() any {
	if f.analyzer == nil {
		return false
	}

	return f.analyzer.opts.Behavior.Enabled(f.flag)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f behaviorValue) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
