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

// Package scope builds explicit symbol tables for JavaScript function scopes:
// ordered bindings, each with an ordered list of usage records tagged with a
// read/write direction and a syntactic role.
package scope

import "github.com/rejectlint/rejectlint/internal/jstree"

// Role classifies the syntactic position of a reference.
type Role uint8

const (
	// RoleValue is a bare value use: returned, stored, or captured.
	RoleValue Role = iota

	// RoleCallee marks a reference invoked as the callee of a call expression.
	RoleCallee

	// RoleArgument marks a reference passed as a call argument.
	RoleArgument

	// RoleAssign marks the target of an assignment or update expression.
	RoleAssign
)

func (r Role) String() string {
	switch r {
	case RoleValue:
		return "value"
	case RoleCallee:
		return "callee"
	case RoleArgument:
		return "argument"
	case RoleAssign:
		return "assign"
	default:
		return "unknown"
	}
}

// Reference records one use of a binding.
type Reference struct {
	// Ident is the identifier node of the use.
	Ident jstree.NodeIndex

	// Enclosing is the immediate parent node; for [RoleCallee] it is the call
	// expression being invoked.
	Enclosing jstree.NodeIndex

	Role Role

	Read, Write bool
}

// Binding is a declared variable with its ordered uses.
type Binding struct {
	Name string

	// Decl is the declaring identifier: a parameter name or declarator name.
	Decl jstree.NodeIndex

	// Refs are the binding's uses in source order. References hidden by a
	// nested redeclaration of the same name are not recorded.
	Refs []Reference
}

// Table is the symbol table of one function scope.
type Table struct {
	bindings []Binding
	index    map[string]int
}

// Bindings returns the declared bindings in declaration order.
func (tb *Table) Bindings() []Binding { return tb.bindings }

// Lookup returns the first declared binding with the given name, or nil.
func (tb *Table) Lookup(name string) *Binding {
	i, ok := tb.index[name]
	if !ok {
		return nil
	}

	return &tb.bindings[i]
}
