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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working
// directory when no explicit path is given.
const DefaultFilename = ".rejectlint.yml"

// ErrUnknownFormat is returned for an unrecognized output format.
var ErrUnknownFormat = errors.New("unknown output format")

// File is the on-disk configuration.
type File struct {
	// AllowEmptyReject permits rejection calls with no arguments.
	// Unset leaves the built-in default in place.
	AllowEmptyReject *bool `yaml:"allow-empty-reject"`

	// Format selects the output rendering, "text" or "json".
	Format string `yaml:"format"`
}

// Load reads and validates a configuration file. Malformed configuration is
// rejected here, before any analysis begins.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &File{}, nil // an empty file means all defaults
		}

		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	switch f.Format {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("%s: %w: %q", path, ErrUnknownFormat, f.Format)
	}

	return &f, nil
}

// Apply merges the explicitly set file options into a behavior mask.
func (f *File) Apply(b *Behavior) {
	if f.AllowEmptyReject != nil {
		b.Set(AllowEmptyReject, *f.AllowEmptyReject)
	}
}
