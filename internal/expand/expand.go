// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package expand

import (
	"go/ast"
	"go/token"

	"fillmore-labs.com/capture/internal/syntax"
)

// Expr returns the expansion of list.
//
// With no clauses the result is list.Body itself, parenthesized unless it is a primary
// expression, and result is ignored. Otherwise result is the type of the expression; a nil
// result is derived from the body with [ResultType].
func Expr(list *syntax.List, result ast.Expr) (ast.Expr, error) {
	if len(list.Clauses) == 0 {
		if primary(list.Body) {
			return list.Body, nil
		}

		return &ast.ParenExpr{X: list.Body}, nil
	}

	if result == nil {
		var err error
		if result, err = ResultType(list.Body); err != nil {
			return nil, err
		}
	}

	stmts := []ast.Stmt{&ast.ReturnStmt{Results: []ast.Expr{list.Body}}}

	last := len(list.Clauses) - 1
	for i := last; i >= 0; i-- {
		scope := stmts
		if i < last {
			scope = []ast.Stmt{&ast.BlockStmt{List: stmts}}
		}

		stmts = append([]ast.Stmt{Binding(list.Clauses[i])}, scope...)
	}

	fun := &ast.FuncLit{
		Type: &ast.FuncType{
			Params:  &ast.FieldList{},
			Results: &ast.FieldList{List: []*ast.Field{{Type: result}}},
		},
		Body: &ast.BlockStmt{List: stmts},
	}

	return &ast.CallExpr{Fun: fun}, nil
}

// primary reports whether e can replace a call expression in any context without parentheses.
func primary(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Ident, *ast.BasicLit, *ast.FuncLit, *ast.ParenExpr,
		*ast.SelectorExpr, *ast.IndexExpr, *ast.IndexListExpr, *ast.SliceExpr,
		*ast.TypeAssertExpr, *ast.CallExpr:
		return true

	default: // Binary and unary expressions, composite literals in conditions
		return false
	}
}

// Binding returns the short variable declaration rebinding the identifier of c.
func Binding(c syntax.Clause) *ast.AssignStmt {
	var value ast.Expr

	switch c.Mode {
	case syntax.Ref, syntax.RefMut:
		value = &ast.UnaryExpr{Op: token.AND, X: ast.NewIdent(c.Name.Name)}

	case syntax.Method:
		value = &ast.CallExpr{
			Fun: &ast.SelectorExpr{X: ast.NewIdent(c.Name.Name), Sel: ast.NewIdent(c.Method.Name)},
		}

	default:
		value = ast.NewIdent(c.Name.Name)
	}

	return &ast.AssignStmt{
		Lhs: []ast.Expr{ast.NewIdent(c.Name.Name)},
		Tok: token.DEFINE,
		Rhs: []ast.Expr{value},
	}
}
