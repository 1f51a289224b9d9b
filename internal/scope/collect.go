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

package scope

import "github.com/rejectlint/rejectlint/internal/jstree"

// Build constructs the symbol table for one function-like node: its declared
// parameters plus the var and function declarations hoisted to the function
// scope, each binding with its uses in source order.
//
// The tree must be fully linked before Build runs, so that every reference's
// enclosing node is resolvable.
func Build(t *jstree.Tree, fn jstree.NodeIndex) *Table {
	c := &collector{
		tree:      t,
		table:     &Table{index: make(map[string]int)},
		declSites: make(map[jstree.NodeIndex]bool),
		hidden:    make(map[string]int),
	}

	for _, p := range t.Params(fn) {
		c.declarePattern(p)
	}

	if body := t.Body(fn); body.Valid() {
		var hoisted []jstree.NodeIndex
		collectHoistedIdents(t, body, &hoisted)
		for _, id := range hoisted {
			c.declare(id)
		}

		c.walk(body)
	}

	return c.table
}

type collector struct {
	tree  *jstree.Tree
	table *Table

	// declSites are identifiers that declare a binding rather than use one.
	declSites map[jstree.NodeIndex]bool

	// hidden counts active redeclarations per name during the walk.
	hidden map[string]int
}

func (c *collector) declarePattern(pattern jstree.NodeIndex) {
	for _, id := range patternIdents(c.tree, pattern) {
		c.declare(id)
	}
}

func (c *collector) declare(id jstree.NodeIndex) {
	c.declSites[id] = true

	name := c.tree.Text(id)
	if _, ok := c.table.index[name]; ok {
		return // a var redeclaration merges with the existing binding
	}

	c.table.index[name] = len(c.table.bindings)
	c.table.bindings = append(c.table.bindings, Binding{Name: name, Decl: id})
}

// walk records references to the table's bindings, suspending names wherever
// a nested scope redeclares them.
func (c *collector) walk(n jstree.NodeIndex) {
	t := c.tree

	if t.IsFunctionLike(n) {
		c.walkShadowed(n, nestedDeclared(t, n))

		return
	}

	switch t.Kind(n) {
	case jstree.KindIdentifier:
		c.reference(n)

	case jstree.KindStatementBlock, jstree.KindForStatement:
		c.walkShadowed(n, lexicalNames(t, n))

	case jstree.KindForInStatement:
		// The loop target hides its name for the whole clause.
		var names []string
		if left := t.ChildByField(n, "left"); left.Valid() {
			names = identNames(t, patternIdents(t, left))
		}

		c.walkShadowed(n, names)

	case jstree.KindCatchClause:
		var names []string
		if p := t.ChildByField(n, "parameter"); p.Valid() {
			names = identNames(t, patternIdents(t, p))
		}

		c.walkShadowed(n, names)

	default:
		for _, ch := range t.Children(n) {
			c.walk(ch)
		}
	}
}

// walkShadowed descends into n with the given names suspended.
func (c *collector) walkShadowed(n jstree.NodeIndex, names []string) {
	for _, name := range names {
		c.hidden[name]++
	}

	for _, ch := range c.tree.Children(n) {
		c.walk(ch)
	}

	for _, name := range names {
		if c.hidden[name]--; c.hidden[name] == 0 {
			delete(c.hidden, name)
		}
	}
}

func (c *collector) reference(id jstree.NodeIndex) {
	name := c.tree.Text(id)

	pos, ok := c.table.index[name]
	if !ok || c.hidden[name] > 0 || c.declSites[id] {
		return
	}

	b := &c.table.bindings[pos]
	b.Refs = append(b.Refs, classify(c.tree, id))
}

// classify determines the direction and syntactic role of one identifier use
// from its immediate enclosing node.
func classify(t *jstree.Tree, id jstree.NodeIndex) Reference {
	ref := Reference{Ident: id, Enclosing: t.Parent(id), Role: RoleValue, Read: true}

	parent := ref.Enclosing
	if !parent.Valid() {
		return ref
	}

	switch t.Kind(parent) {
	case jstree.KindCallExpression:
		if t.ChildByField(parent, "function") == id {
			ref.Role = RoleCallee
		}

	case jstree.KindArguments:
		ref.Role = RoleArgument

	case jstree.KindAssignmentExpr:
		if t.ChildByField(parent, "left") == id {
			ref.Role, ref.Read, ref.Write = RoleAssign, false, true
		}

	case jstree.KindAugmentedAssignment:
		// A compound assignment both reads and writes its target.
		if t.ChildByField(parent, "left") == id {
			ref.Role, ref.Write = RoleAssign, true
		}

	case jstree.KindUpdateExpression:
		ref.Role, ref.Write = RoleAssign, true
	}

	return ref
}

// patternIdents returns the identifiers a binding pattern declares, skipping
// property keys and default-value expressions.
func patternIdents(t *jstree.Tree, pattern jstree.NodeIndex) []jstree.NodeIndex {
	var out []jstree.NodeIndex
	collectPatternIdents(t, pattern, &out)

	return out
}

func collectPatternIdents(t *jstree.Tree, n jstree.NodeIndex, out *[]jstree.NodeIndex) {
	switch t.Kind(n) {
	case jstree.KindIdentifier, jstree.KindShorthandPattern:
		*out = append(*out, n)

	case jstree.KindAssignmentPattern, jstree.KindObjectAssignPat:
		if l := t.ChildByField(n, "left"); l.Valid() {
			collectPatternIdents(t, l, out)
		}

	case jstree.KindPairPattern:
		if v := t.ChildByField(n, "value"); v.Valid() {
			collectPatternIdents(t, v, out)
		}

	case jstree.KindRestPattern, jstree.KindObjectPattern, jstree.KindArrayPattern:
		for _, ch := range t.Children(n) {
			collectPatternIdents(t, ch, out)
		}
	}
}

// collectHoistedIdents gathers the var and function declarations that hoist
// to the enclosing function scope. Nested function bodies keep their own.
func collectHoistedIdents(t *jstree.Tree, n jstree.NodeIndex, out *[]jstree.NodeIndex) {
	for _, ch := range t.Children(n) {
		switch t.Kind(ch) {
		case jstree.KindFunctionDeclaration, jstree.KindGeneratorFuncDecl:
			if name := t.ChildByField(ch, "name"); name.Valid() {
				*out = append(*out, name)
			}

			continue

		case jstree.KindVariableDecl:
			for _, d := range t.Children(ch) {
				if t.Kind(d) != jstree.KindVariableDeclarator {
					continue
				}

				if name := t.ChildByField(d, "name"); name.Valid() {
					collectPatternIdents(t, name, out)
				}
			}

			continue
		}

		if t.IsFunctionLike(ch) {
			continue
		}

		collectHoistedIdents(t, ch, out)
	}
}

// nestedDeclared returns the names a nested function-like declares in its own
// scope: parameters, its own name, and hoisted declarations in its body.
func nestedDeclared(t *jstree.Tree, fn jstree.NodeIndex) []string {
	var ids []jstree.NodeIndex
	for _, p := range t.Params(fn) {
		collectPatternIdents(t, p, &ids)
	}

	if name := t.ChildByField(fn, "name"); name.Valid() {
		ids = append(ids, name)
	}

	if body := t.Body(fn); body.Valid() {
		collectHoistedIdents(t, body, &ids)
	}

	return identNames(t, ids)
}

// lexicalNames returns the let and const names declared directly in a block
// or in a for statement initializer.
func lexicalNames(t *jstree.Tree, n jstree.NodeIndex) []string {
	var ids []jstree.NodeIndex
	for _, ch := range t.Children(n) {
		if t.Kind(ch) != jstree.KindLexicalDeclaration {
			continue
		}

		for _, d := range t.Children(ch) {
			if t.Kind(d) != jstree.KindVariableDeclarator {
				continue
			}

			if name := t.ChildByField(d, "name"); name.Valid() {
				collectPatternIdents(t, name, &ids)
			}
		}
	}

	return identNames(t, ids)
}

func identNames(t *jstree.Tree, ids []jstree.NodeIndex) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, t.Text(id))
	}

	return names
}
