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

import "github.com/rejectlint/rejectlint/internal/jstree"

// IsDirectRejectionCall reports whether a call expression invokes the
// built-in rejection factory, matched purely by the member shape
// Promise.reject. A local variable named Promise is indistinguishable from
// the built-in, and an aliased factory is never recognized.
func IsDirectRejectionCall(t *jstree.Tree, call jstree.NodeIndex) bool {
	callee := t.Callee(call)
	if !callee.Valid() || t.Kind(callee) != jstree.KindMemberExpression {
		return false
	}

	obj := t.ChildByField(callee, "object")
	prop := t.ChildByField(callee, "property")

	return obj.Valid() && prop.Valid() &&
		t.Kind(obj) == jstree.KindIdentifier && t.Text(obj) == "Promise" &&
		t.Kind(prop) == jstree.KindPropertyIdentifier && t.Text(prop) == "reject"
}
