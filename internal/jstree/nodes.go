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

// IsFunctionLike reports whether a node declares an ordered parameter list of
// its own: a function or generator expression or declaration, an arrow
// function, or a method definition.
func (t *Tree) IsFunctionLike(n NodeIndex) bool {
	switch t.Kind(n) {
	case KindArrowFunction, KindFunctionExpression, KindFunctionKeyword,
		KindFunctionDeclaration, KindGeneratorFunction, KindGeneratorFuncDecl,
		KindMethodDefinition:
		return true
	}

	return false
}

// Params returns the declared parameter patterns of a function-like node in
// order. A parenthesis-free arrow parameter is returned as a one-element list.
func (t *Tree) Params(fn NodeIndex) []NodeIndex {
	if p := t.ChildByField(fn, "parameter"); p.Valid() {
		return []NodeIndex{p}
	}

	ps := t.ChildByField(fn, "parameters")
	if !ps.Valid() {
		return nil
	}

	var out []NodeIndex
	for _, c := range t.Children(ps) {
		if t.Kind(c) == KindComment {
			continue
		}

		out = append(out, c)
	}

	return out
}

// Body returns the body of a function-like node, or [InvalidNode].
func (t *Tree) Body(fn NodeIndex) NodeIndex {
	return t.ChildByField(fn, "body")
}

// Callee returns the callee of a call expression or the constructor of a new
// expression.
func (t *Tree) Callee(call NodeIndex) NodeIndex {
	if t.Kind(call) == KindNewExpression {
		return t.ChildByField(call, "constructor")
	}

	return t.ChildByField(call, "function")
}

// Arguments returns the argument expressions of a call or new expression in
// order. A tagged template or an argument-less new expression yields nil.
func (t *Tree) Arguments(call NodeIndex) []NodeIndex {
	args := t.ChildByField(call, "arguments")
	if !args.Valid() || t.Kind(args) != KindArguments {
		return nil
	}

	out := make([]NodeIndex, 0, len(t.Children(args)))
	for _, c := range t.Children(args) {
		if t.Kind(c) == KindComment {
			continue
		}

		out = append(out, c)
	}

	return out
}
