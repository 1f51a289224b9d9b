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

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/rejectlint/rejectlint/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	f, err := Load(writeConfig(t, "allow-empty-reject: true\nformat: json\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if f.AllowEmptyReject == nil || !*f.AllowEmptyReject {
		t.Error("allow-empty-reject not loaded")
	}

	if f.Format != "json" {
		t.Errorf("format = %q, want %q", f.Format, "json")
	}
}

func TestLoadEmpty(t *testing.T) {
	t.Parallel()

	f, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if f.AllowEmptyReject != nil {
		t.Error("empty file must leave allow-empty-reject unset")
	}
}

func TestLoadUnknownField(t *testing.T) {
	t.Parallel()

	if _, err := Load(writeConfig(t, "allow-empty: true\n")); err == nil {
		t.Error("unknown field not rejected")
	}
}

func TestLoadUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "format: xml\n"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Load error = %v, want %v", err, ErrUnknownFormat)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), DefaultFilename))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load error = %v, want %v", err, os.ErrNotExist)
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	var b Behavior

	(&File{}).Apply(&b)
	if b.Enabled(AllowEmptyReject) {
		t.Error("unset option must not change the mask")
	}

	enable := true
	(&File{AllowEmptyReject: &enable}).Apply(&b)
	if !b.Enabled(AllowEmptyReject) {
		t.Error("set option not applied")
	}
}
