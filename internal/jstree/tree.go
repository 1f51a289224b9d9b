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

// Package jstree parses JavaScript sources with tree-sitter and links the
// resulting syntax tree into an index arena.
//
// Every named node receives a stable [NodeIndex] and a parent index, assigned
// in one deterministic pre-order pass before any analysis runs. Enclosing-node
// lookups are therefore pure data reads, independent of traversal order.
package jstree

import (
	"iter"

	sitter "github.com/smacker/go-tree-sitter"
)

// NodeIndex is the stable arena index of a node, assigned in pre-order during
// the linking pass.
type NodeIndex int32

// InvalidNode represents an invalid node index.
const InvalidNode NodeIndex = -1

// Valid checks if this index is valid.
func (n NodeIndex) Valid() bool {
	return n != InvalidNode
}

type node struct {
	ts       *sitter.Node
	parent   NodeIndex
	children []NodeIndex
}

// Tree is one parsed and linked JavaScript source file.
type Tree struct {
	Filename string
	Source   []byte

	// tree keeps the underlying cgo syntax tree alive for the arena's lifetime.
	tree  *sitter.Tree
	nodes []node
}

// Position is a source location with 1-based line and column.
type Position struct {
	Line, Col int
	Byte      uint32
}

// link assigns arena and parent indices to the subtree rooted at ts.
// Only named nodes are indexed; anonymous tokens stay reachable through the
// underlying tree-sitter node.
func (t *Tree) link(ts *sitter.Node, parent NodeIndex) NodeIndex {
	idx := NodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, node{ts: ts, parent: parent})

	count := int(ts.NamedChildCount())
	children := make([]NodeIndex, 0, count)
	for i := range count {
		children = append(children, t.link(ts.NamedChild(i), idx))
	}
	t.nodes[idx].children = children

	return idx
}

// Root returns the index of the program node.
func (t *Tree) Root() NodeIndex { return 0 }

// Len returns the number of linked nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Kind returns the grammar kind name of a node.
func (t *Tree) Kind(n NodeIndex) string { return t.nodes[n].ts.Type() }

// Parent returns the enclosing node, or [InvalidNode] for the root.
func (t *Tree) Parent(n NodeIndex) NodeIndex { return t.nodes[n].parent }

// Children returns the named children of a node in source order.
// The returned slice is shared and must not be modified.
func (t *Tree) Children(n NodeIndex) []NodeIndex { return t.nodes[n].children }

// Text returns the source text covered by a node.
func (t *Tree) Text(n NodeIndex) string { return t.nodes[n].ts.Content(t.Source) }

// Start returns the starting position of a node.
func (t *Tree) Start(n NodeIndex) Position {
	ts := t.nodes[n].ts
	p := ts.StartPoint()

	return Position{Line: int(p.Row) + 1, Col: int(p.Column) + 1, Byte: ts.StartByte()}
}

// End returns the position just past a node.
func (t *Tree) End(n NodeIndex) Position {
	ts := t.nodes[n].ts
	p := ts.EndPoint()

	return Position{Line: int(p.Row) + 1, Col: int(p.Column) + 1, Byte: ts.EndByte()}
}

// ChildByField returns the index of the named child filling a grammar field,
// or [InvalidNode] when the field is absent or filled by an anonymous token.
func (t *Tree) ChildByField(n NodeIndex, field string) NodeIndex {
	fc := t.nodes[n].ts.ChildByFieldName(field)
	if fc == nil {
		return InvalidNode
	}

	// Siblings cannot share a byte range, so range plus kind identifies the
	// child among the node's linked children.
	for _, c := range t.nodes[n].children {
		cts := t.nodes[c].ts
		if cts.StartByte() == fc.StartByte() && cts.EndByte() == fc.EndByte() && cts.Type() == fc.Type() {
			return c
		}
	}

	return InvalidNode
}

// Operator returns the operator token of a binary or assignment expression.
func (t *Tree) Operator(n NodeIndex) string {
	op := t.nodes[n].ts.ChildByFieldName("operator")
	if op == nil {
		return ""
	}

	return op.Content(t.Source)
}

// PostOrder yields every node after all of its children, left to right.
// The sequence is deterministic for a given tree.
func (t *Tree) PostOrder() iter.Seq[NodeIndex] {
	return func(yield func(NodeIndex) bool) {
		if len(t.nodes) == 0 {
			return
		}

		var walk func(n NodeIndex) bool
		walk = func(n NodeIndex) bool {
			for _, c := range t.nodes[n].children {
				if !walk(c) {
					return false
				}
			}

			return yield(n)
		}

		walk(t.Root())
	}
}
