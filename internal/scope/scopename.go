// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

import (
	"go/ast"

	"golang.org/x/tools/go/ast/astutil"
)

// Name describes the scope opened by node, as used in "Declared in ... scope".
//
// Only scopes that can hold constants, types, functions or imported packages are
// named; header scopes of if, for and switch statements declare variables only.
func Name(node ast.Node) string {
	switch node.(type) {
	case *ast.FuncType:
		return "function"

	case *ast.BlockStmt:
		return "block"

	case *ast.CaseClause, *ast.CommClause:
		return "case clause"

	case *ast.File:
		return "file"

	case nil:
		return "unknown"

	default:
		return astutil.NodeDescription(node)
	}
}
