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

package analyze

import (
	"cmp"
	"slices"

	"github.com/rejectlint/rejectlint/internal/errlike"
	"github.com/rejectlint/rejectlint/internal/jstree"
	"github.com/rejectlint/rejectlint/internal/report"
)

// Checker runs the promise-rejection analysis over one linked syntax tree.
type Checker struct {
	Tree *jstree.Tree

	// CouldBeError overrides the default error-likeness heuristic when non-nil.
	CouldBeError errlike.Predicate

	// AllowEmptyReject permits rejection calls with no arguments.
	AllowEmptyReject bool
}

// Violation is one rejection site whose argument fails the acceptance policy.
type Violation struct {
	// Site is the offending call expression.
	Site jstree.NodeIndex

	ID report.MessageID
}

// Run performs a single post-order pass over the tree. Visiting a node only
// after its subtree guarantees that the callback locator sees fully linked
// executor bodies. The returned violations are sorted by source position.
func (c *Checker) Run() []Violation {
	var vs []Violation

	for n := range c.Tree.PostOrder() {
		switch c.Tree.Kind(n) {
		case jstree.KindCallExpression:
			if IsDirectRejectionCall(c.Tree, n) {
				if v, ok := c.validate(n); ok {
					vs = append(vs, v)
				}
			}

		case jstree.KindNewExpression:
			for _, site := range CallbackRejectSites(c.Tree, n) {
				if v, ok := c.validate(site); ok {
					vs = append(vs, v)
				}
			}
		}
	}

	slices.SortFunc(vs, func(a, b Violation) int {
		return cmp.Compare(c.Tree.Start(a.Site).Byte, c.Tree.Start(b.Site).Byte)
	})

	return vs
}

func (c *Checker) couldBeError(n jstree.NodeIndex) bool {
	p := c.CouldBeError
	if p == nil {
		p = errlike.CouldBeError
	}

	return p(c.Tree, n)
}
