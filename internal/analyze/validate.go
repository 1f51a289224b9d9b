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
	"github.com/rejectlint/rejectlint/internal/report"
)

// validate applies the acceptance policy to one rejection site. Only the
// first argument is ever inspected.
func (c *Checker) validate(site jstree.NodeIndex) (Violation, bool) {
	args := c.Tree.Arguments(site)
	if len(args) == 0 {
		if c.AllowEmptyReject {
			return Violation{}, false
		}

		return Violation{Site: site, ID: report.RejectAnError}, true
	}

	reason := args[0]
	if c.couldBeError(reason) && !isBareUndefined(c.Tree, reason) {
		return Violation{}, false
	}

	return Violation{Site: site, ID: report.RejectAnError}, true
}

// isBareUndefined recognizes the literal identifier undefined. The
// conservative predicate tolerates arbitrary identifiers, so this one value
// must still be flagged.
func isBareUndefined(t *jstree.Tree, n jstree.NodeIndex) bool {
	switch t.Kind(n) {
	case jstree.KindUndefined:
		return true
	case jstree.KindIdentifier:
		return t.Text(n) == "undefined"
	}

	return false
}
