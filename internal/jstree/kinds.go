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

// Node kind names of the tree-sitter JavaScript grammar.
const (
	KindProgram = "program"

	// Identifiers. The grammar gives the bare keyword undefined its own kind.
	KindIdentifier         = "identifier"
	KindPropertyIdentifier = "property_identifier"
	KindUndefined          = "undefined"

	// Expressions
	KindCallExpression      = "call_expression"
	KindNewExpression       = "new_expression"
	KindMemberExpression    = "member_expression"
	KindSubscriptExpression = "subscript_expression"
	KindArguments           = "arguments"
	KindAssignmentExpr      = "assignment_expression"
	KindAugmentedAssignment = "augmented_assignment_expression"
	KindUpdateExpression    = "update_expression"
	KindBinaryExpression    = "binary_expression"
	KindTernaryExpression   = "ternary_expression"
	KindSequenceExpression  = "sequence_expression"
	KindParenthesized       = "parenthesized_expression"
	KindAwaitExpression     = "await_expression"
	KindYieldExpression     = "yield_expression"

	// Function-like nodes. Older grammar revisions name anonymous function
	// expressions "function", newer ones "function_expression".
	KindArrowFunction       = "arrow_function"
	KindFunctionExpression  = "function_expression"
	KindFunctionKeyword     = "function"
	KindFunctionDeclaration = "function_declaration"
	KindGeneratorFunction   = "generator_function"
	KindGeneratorFuncDecl   = "generator_function_declaration"
	KindMethodDefinition    = "method_definition"

	// Parameter and binding patterns
	KindFormalParameters  = "formal_parameters"
	KindRestPattern       = "rest_pattern"
	KindAssignmentPattern = "assignment_pattern"
	KindObjectPattern     = "object_pattern"
	KindArrayPattern      = "array_pattern"
	KindPairPattern       = "pair_pattern"
	KindObjectAssignPat   = "object_assignment_pattern"
	KindShorthandPattern  = "shorthand_property_identifier_pattern"

	// Statements and declarations
	KindStatementBlock     = "statement_block"
	KindLexicalDeclaration = "lexical_declaration"
	KindVariableDecl       = "variable_declaration"
	KindVariableDeclarator = "variable_declarator"
	KindForStatement       = "for_statement"
	KindForInStatement     = "for_in_statement"
	KindCatchClause        = "catch_clause"

	KindComment = "comment"
)
