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

package jstree_test

import (
	"testing"

	. "github.com/rejectlint/rejectlint/internal/jstree"
)

// findFunction returns the only function-like node in the tree.
func findFunction(t *testing.T, tree *Tree) NodeIndex {
	t.Helper()

	for n := range tree.PostOrder() {
		if tree.IsFunctionLike(n) {
			return n
		}
	}

	t.Fatal("no function in tree")

	return InvalidNode
}

func TestParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "FunctionExpression",
			source: "let f = function(resolve, reject) {};",
			want:   []string{"resolve", "reject"},
		},
		{
			name:   "Arrow",
			source: "let f = (a, b) => a;",
			want:   []string{"a", "b"},
		},
		{
			name:   "BareArrowParameter",
			source: "let f = x => x;",
			want:   []string{"x"},
		},
		{
			name:   "NoParams",
			source: "let f = () => 1;",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := parse(t, tt.source)

			fn := findFunction(t, tree)

			params := tree.Params(fn)
			if len(params) != len(tt.want) {
				t.Fatalf("got %d params, want %d", len(params), len(tt.want))
			}

			for i, p := range params {
				if got := tree.Text(p); got != tt.want[i] {
					t.Errorf("param %d = %q, want %q", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestCalleeAndArguments(t *testing.T) {
	t.Parallel()

	tree := parse(t, `Promise.reject(1, "two");`)

	call := findFirst(t, tree, KindCallExpression)

	callee := tree.Callee(call)
	if !callee.Valid() || tree.Kind(callee) != KindMemberExpression {
		t.Errorf("callee kind = %q, want %q", tree.Kind(callee), KindMemberExpression)
	}

	args := tree.Arguments(call)
	if len(args) != 2 {
		t.Fatalf("got %d arguments, want 2", len(args))
	}

	if got, want := tree.Text(args[0]), "1"; got != want {
		t.Errorf("argument 0 = %q, want %q", got, want)
	}
}

func TestNewExpressionCallee(t *testing.T) {
	t.Parallel()

	tree := parse(t, "new Promise(executor);")

	call := findFirst(t, tree, KindNewExpression)

	callee := tree.Callee(call)
	if !callee.Valid() || tree.Text(callee) != "Promise" {
		t.Errorf("constructor = %q, want %q", tree.Text(callee), "Promise")
	}

	if args := tree.Arguments(call); len(args) != 1 {
		t.Errorf("got %d arguments, want 1", len(args))
	}
}

func TestArgumentlessNew(t *testing.T) {
	t.Parallel()

	tree := parse(t, "new Thing;")

	call := findFirst(t, tree, KindNewExpression)
	if args := tree.Arguments(call); args != nil {
		t.Errorf("got %d arguments, want none", len(args))
	}
}
