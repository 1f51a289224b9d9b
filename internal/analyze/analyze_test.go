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

package analyze_test

import (
	"slices"
	"testing"

	. "github.com/rejectlint/rejectlint/internal/analyze"
	"github.com/rejectlint/rejectlint/internal/jstree"
	"github.com/rejectlint/rejectlint/internal/report"
)

func parse(t *testing.T, source string) *jstree.Tree {
	t.Helper()

	tree, err := jstree.Parse(t.Context(), "test.js", []byte(source))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	return tree
}

// violationLines runs the checker and returns the 1-based start line of every
// violation in report order.
func violationLines(t *testing.T, c *Checker) []int {
	t.Helper()

	var lines []int
	for _, v := range c.Run() {
		if v.ID != report.RejectAnError {
			t.Errorf("unexpected message id %q", v.ID)
		}

		lines = append(lines, c.Tree.Start(v.Site).Line)
	}

	return lines
}

func TestChecker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		source     string
		allowEmpty bool
		want       []int
	}{
		{
			name:   "EmptyReject",
			source: `Promise.reject();`,
			want:   []int{1},
		},
		{
			name:       "EmptyRejectAllowed",
			source:     `Promise.reject();`,
			allowEmpty: true,
			want:       nil,
		},
		{
			name:       "LiteralStillFlaggedWhenEmptyAllowed",
			source:     `Promise.reject("oops");`,
			allowEmpty: true,
			want:       []int{1},
		},
		{
			name:   "NumberLiteral",
			source: `Promise.reject(5);`,
			want:   []int{1},
		},
		{
			name:   "NewError",
			source: `Promise.reject(new Error("oops"));`,
			want:   nil,
		},
		{
			name:   "ErrorSubclass",
			source: `Promise.reject(new TypeError("oops"));`,
			want:   nil,
		},
		{
			name:   "Identifier",
			source: `Promise.reject(someValue);`,
			want:   nil,
		},
		{
			name:   "Undefined",
			source: `Promise.reject(undefined);`,
			want:   []int{1},
		},
		{
			name:   "AliasedFactoryNotRecognized",
			source: "const r = Promise.reject;\nr(5);",
			want:   nil,
		},
		{
			name:   "OtherPromiseMethod",
			source: `Promise.resolve("fine");`,
			want:   nil,
		},
		{
			name:   "ExecutorStringReject",
			source: "new Promise(function(resolve, reject) {\n  reject(\"no\");\n});",
			want:   []int{2},
		},
		{
			name:   "ExecutorArrowErrorReject",
			source: `new Promise((resolve, reject) => reject(new Error("no")));`,
			want:   nil,
		},
		{
			name:   "ExecutorEmptyReject",
			source: "new Promise((resolve, reject) => {\n  reject();\n});",
			want:   []int{2},
		},
		{
			name:       "ExecutorEmptyRejectAllowed",
			source:     "new Promise((resolve, reject) => {\n  reject();\n});",
			allowEmpty: true,
			want:       nil,
		},
		{
			name:   "ExecutorRenamedParameter",
			source: "new Promise((ok, fail) => {\n  fail(\"no\");\n});",
			want:   []int{2},
		},
		{
			name:   "SingleParameterExecutor",
			source: "new Promise((resolve) => {\n  resolve(1);\n});",
			want:   nil,
		},
		{
			name:   "DestructuredSecondParameter",
			source: "new Promise((resolve, { reject }) => {\n  reject(\"no\");\n});",
			want:   nil,
		},
		{
			name:   "NonFunctionExecutor",
			source: `new Promise(executor);`,
			want:   nil,
		},
		{
			name:   "RejectPassedAsValue",
			source: "new Promise((resolve, reject) => {\n  resolve(reject);\n});",
			want:   nil,
		},
		{
			name:   "RejectReassigned",
			source: "new Promise((resolve, reject) => {\n  reject = console.log;\n});",
			want:   nil,
		},
		{
			name: "ShadowedRejectNotTracked",
			source: "new Promise((resolve, reject) => {\n" +
				"  function inner(reject) {\n" +
				"    reject(\"no\");\n" +
				"  }\n" +
				"  reject(new Error(\"yes\"));\n" +
				"});",
			want: nil,
		},
		{
			name: "NestedExecutors",
			source: "new Promise((resolve, reject) => {\n" +
				"  new Promise((res, rej) => {\n" +
				"    rej(\"inner\");\n" +
				"  });\n" +
				"  reject(\"outer\");\n" +
				"});",
			want: []int{3, 5},
		},
		{
			name:   "DirectAndExecutorCombined",
			source: "Promise.reject(1);\nnew Promise((res, rej) => {\n  rej(2);\n});",
			want:   []int{1, 3},
		},
		{
			name:   "SequenceArgumentErrorLast",
			source: `Promise.reject((log("rejecting"), err));`,
			want:   nil,
		},
		{
			name:   "SequenceArgumentLiteralLast",
			source: `Promise.reject((err, "oops"));`,
			want:   []int{1},
		},
		{
			name:   "LogicalFallbackArgument",
			source: "new Promise((resolve, reject) => {\n  reject(err || \"oops\");\n});",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := &Checker{Tree: parse(t, tt.source), AllowEmptyReject: tt.allowEmpty}

			if got := violationLines(t, c); !slices.Equal(got, tt.want) {
				t.Errorf("violations at %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunIdempotent(t *testing.T) {
	t.Parallel()

	c := &Checker{Tree: parse(t, "Promise.reject(1);\nPromise.reject(2);")}

	first, second := c.Run(), c.Run()
	if !slices.Equal(first, second) {
		t.Errorf("repeated runs differ: %v vs %v", first, second)
	}
}

func TestCustomPredicate(t *testing.T) {
	t.Parallel()

	rejectAll := func(*jstree.Tree, jstree.NodeIndex) bool { return false }

	c := &Checker{Tree: parse(t, `Promise.reject(new Error("x"));`), CouldBeError: rejectAll}

	if got := violationLines(t, c); !slices.Equal(got, []int{1}) {
		t.Errorf("violations at %v, want [1]", got)
	}
}

func TestIsDirectRejectionCall(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{"Reject", `Promise.reject(1);`, true},
		{"Resolve", `Promise.resolve(1);`, false},
		{"OtherObject", `Deferred.reject(1);`, false},
		{"PlainCall", `reject(1);`, false},
		{"Computed", `Promise["reject"](1);`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := parse(t, tt.source)

			found := false
			for n := range tree.PostOrder() {
				if tree.Kind(n) == jstree.KindCallExpression && IsDirectRejectionCall(tree, n) {
					found = true
				}
			}

			if found != tt.want {
				t.Errorf("IsDirectRejectionCall = %v, want %v", found, tt.want)
			}
		})
	}
}

func TestCallbackRejectSites(t *testing.T) {
	t.Parallel()

	tree := parse(t, "new Promise((resolve, reject) => {\n  reject(\"a\");\n  reject(\"b\");\n});")

	ctor := jstree.InvalidNode
	for n := range tree.PostOrder() {
		if tree.Kind(n) == jstree.KindNewExpression {
			ctor = n
		}
	}

	sites := CallbackRejectSites(tree, ctor)
	if len(sites) != 2 {
		t.Fatalf("got %d sites, want 2", len(sites))
	}

	for _, site := range sites {
		if got := tree.Kind(site); got != jstree.KindCallExpression {
			t.Errorf("site kind = %q, want %q", got, jstree.KindCallExpression)
		}
	}
}
