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
	"github.com/rejectlint/rejectlint/internal/jstree"
	"github.com/rejectlint/rejectlint/internal/scope"
)

// CallbackRejectSites finds the rejection sites implied by the executor
// callback of a promise-constructing call: every call expression whose callee
// is a read reference of the executor's second parameter.
//
// An executor that is not a function, declares fewer than two parameters, or
// declares a destructured or defaulted second parameter yields no sites; the
// reject binding cannot be tracked statically in those shapes.
func CallbackRejectSites(t *jstree.Tree, call jstree.NodeIndex) []jstree.NodeIndex {
	callee := t.Callee(call)
	if !callee.Valid() || t.Kind(callee) != jstree.KindIdentifier || t.Text(callee) != "Promise" {
		return nil
	}

	args := t.Arguments(call)
	if len(args) == 0 {
		return nil
	}

	fn := args[0]
	if !t.IsFunctionLike(fn) {
		return nil
	}

	params := t.Params(fn)
	if len(params) < 2 {
		return nil
	}

	second := params[1]
	if t.Kind(second) != jstree.KindIdentifier {
		return nil
	}

	binding := scope.Build(t, fn).Lookup(t.Text(second))
	if binding == nil {
		return nil
	}

	var sites []jstree.NodeIndex
	for _, ref := range binding.Refs {
		// A parameter stored, passed on, or reassigned is not followed; only
		// a direct invocation is a rejection site.
		if ref.Read && ref.Role == scope.RoleCallee {
			sites = append(sites, ref.Enclosing)
		}
	}

	return sites
}
