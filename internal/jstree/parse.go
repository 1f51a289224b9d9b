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

package jstree

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// ErrSyntax is returned when a source file does not parse as JavaScript.
var ErrSyntax = errors.New("syntax error")

// Parse parses one JavaScript source file and links it into an arena.
// Each call uses its own parser instance, so Parse is safe for concurrent use.
func Parse(ctx context.Context, filename string, source []byte) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%s: %w", filename, ErrSyntax)
	}

	t := &Tree{Filename: filename, Source: source, tree: tree}
	t.link(root, InvalidNode)

	return t, nil
}
