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

// Package analyzer implements the rejectlint static analysis check.
//
// # Overview
//
// Rejectlint flags promise rejections in JavaScript sources whose supplied
// reason is not provably an Error-like object. Rejecting with a string or
// number discards the stack trace and breaks instanceof checks downstream.
//
// # Example
//
// Flagged:
//
//	Promise.reject("permission denied");
//
//	new Promise((resolve, reject) => {
//	    reject(404);
//	});
//
// Accepted:
//
//	Promise.reject(new Error("permission denied"));
//
//	new Promise((resolve, reject) => {
//	    reject(new NotFoundError(path));
//	});
//
// # Detection
//
// Two shapes count as rejection sites: a direct call of Promise.reject, and
// any invocation of the second executor parameter of new Promise(...). The
// executor parameter is resolved through a per-function symbol table, so a
// shadowed or destructured parameter is never misattributed. Classification
// of the reason is syntactic and conservative; identifiers and call results
// pass, the bare identifier undefined never does.
package analyzer
