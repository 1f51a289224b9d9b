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

// Package errlike decides whether an expression could evaluate to an
// Error-like value.
package errlike

import "github.com/rejectlint/rejectlint/internal/jstree"

// Predicate reports whether an expression node could evaluate to an
// Error-like value. It is injected into the analysis as a pure function so
// the heuristic can be swapped or tested independently of traversal logic.
type Predicate func(t *jstree.Tree, n jstree.NodeIndex) bool

// CouldBeError is the default heuristic. It is deliberately conservative:
// any expression whose value cannot be determined syntactically, such as an
// identifier or a call, passes. Only expressions that certainly produce a
// non-Error value, such as literals, fail.
func CouldBeError(t *jstree.Tree, n jstree.NodeIndex) bool {
	switch t.Kind(n) {
	case jstree.KindNewExpression, jstree.KindCallExpression,
		jstree.KindIdentifier, jstree.KindUndefined,
		jstree.KindMemberExpression, jstree.KindSubscriptExpression,
		jstree.KindAwaitExpression, jstree.KindYieldExpression:
		return true

	case jstree.KindParenthesized:
		for _, c := range t.Children(n) {
			if t.Kind(c) != jstree.KindComment {
				return CouldBeError(t, c)
			}
		}

		return false

	case jstree.KindAssignmentExpr:
		return couldBeErrorField(t, n, "right")

	case jstree.KindAugmentedAssignment:
		switch t.Operator(n) {
		case "&&=":
			return couldBeErrorField(t, n, "right")
		case "||=", "??=":
			return couldBeErrorField(t, n, "left") || couldBeErrorField(t, n, "right")
		default:
			return false
		}

	case jstree.KindBinaryExpression:
		// Only the short-circuit operators can propagate an Error operand.
		switch t.Operator(n) {
		case "&&":
			return couldBeErrorField(t, n, "right")
		case "||", "??":
			return couldBeErrorField(t, n, "left") || couldBeErrorField(t, n, "right")
		default:
			return false
		}

	case jstree.KindTernaryExpression:
		return couldBeErrorField(t, n, "consequence") || couldBeErrorField(t, n, "alternative")

	case jstree.KindSequenceExpression:
		// A comma expression evaluates to its final operand. The grammar does
		// not expose operand fields here, so take the last named child; with a
		// nested right operand that child is the inner sequence.
		children := t.Children(n)
		for i := len(children) - 1; i >= 0; i-- {
			if t.Kind(children[i]) != jstree.KindComment {
				return CouldBeError(t, children[i])
			}
		}

		return false
	}

	return false
}

func couldBeErrorField(t *jstree.Tree, n jstree.NodeIndex, field string) bool {
	c := t.ChildByField(n, field)

	return c.Valid() && CouldBeError(t, c)
}
