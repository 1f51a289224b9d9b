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

// Package analyze implements the promise-rejection check.
//
// Two finders produce candidate rejection sites: the direct classifier
// matches calls of the member shape Promise.reject, and the callback locator
// resolves the second executor parameter of new Promise(...) to its scope
// binding and follows its invocations. Every candidate flows through a
// single validator, which applies the configured policy and the
// error-likeness predicate to the call's first argument.
package analyze
