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

// Package report holds the diagnostic message catalog and output rendering.
package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// MessageID identifies an entry in the message catalog.
type MessageID string

// RejectAnError is reported for a rejection site whose reason is not an Error.
const RejectAnError MessageID = "rejectAnError"

var catalog = map[MessageID]string{
	RejectAnError: "Expected the Promise rejection reason to be an Error.",
}

// Message resolves a message id against the catalog. An id missing from the
// catalog renders as the id itself, so a catalog miss stays visible in output.
func Message(id MessageID) string {
	if m, ok := catalog[id]; ok {
		return m
	}

	return string(id)
}

// Diagnostic is a single reported problem.
type Diagnostic struct {
	// File is the analyzed source file.
	File string `json:"file"`

	// Line and Col locate the start of the offending call, 1-based.
	Line int `json:"line"`
	Col  int `json:"col"`

	// EndLine and EndCol locate the position just past the call.
	EndLine int `json:"endLine"`
	EndCol  int `json:"endCol"`

	// Rule is the name of the check that produced the diagnostic.
	Rule string `json:"rule"`

	// Message is the rendered catalog message.
	Message string `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s (%s)", d.File, d.Line, d.Col, d.Message, d.Rule)
}

// FormatText writes one line per diagnostic.
func FormatText(w io.Writer, ds []Diagnostic) error {
	for _, d := range ds {
		if _, err := fmt.Fprintln(w, d); err != nil {
			return err
		}
	}

	return nil
}

// FormatJSON writes the diagnostics as an indented JSON array.
func FormatJSON(w io.Writer, ds []Diagnostic) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(ds)
}
