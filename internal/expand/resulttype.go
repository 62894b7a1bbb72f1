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
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
)

// ErrUntypedBody is returned when the result type of a body can not be derived from its syntax.
var ErrUntypedBody = errors.New("cannot infer result type of body")

// ResultType derives the type of a body expression from its syntax.
//
// It understands function literals, typed composite literals and their addresses, basic
// literals, type assertions and conversions to predeclared types.
func ResultType(body ast.Expr) (ast.Expr, error) {
	switch e := ast.Unparen(body).(type) {
	case *ast.FuncLit:
		return e.Type, nil

	case *ast.CompositeLit:
		if typ := literalType(e); typ != nil {
			return typ, nil
		}

	case *ast.UnaryExpr:
		if cl, ok := ast.Unparen(e.X).(*ast.CompositeLit); ok && e.Op == token.AND {
			if typ := literalType(cl); typ != nil {
				return &ast.StarExpr{X: typ}, nil
			}
		}

	case *ast.BasicLit:
		if name, ok := defaultTypes[e.Kind]; ok {
			return ast.NewIdent(name), nil
		}

	case *ast.TypeAssertExpr:
		if e.Type != nil {
			return e.Type, nil
		}

	case *ast.CallExpr:
		if id, ok := ast.Unparen(e.Fun).(*ast.Ident); ok && len(e.Args) == 1 && predeclaredType(id.Name) {
			return id, nil
		}
	}

	return nil, fmt.Errorf("%w %s", ErrUntypedBody, types.ExprString(body))
}

// defaultTypes are the default types of untyped constants.
var defaultTypes = map[token.Token]string{
	token.INT:    "int",
	token.FLOAT:  "float64",
	token.IMAG:   "complex128",
	token.CHAR:   "rune",
	token.STRING: "string",
}

// literalType returns the type of a composite literal, if it can be written as a result type.
func literalType(cl *ast.CompositeLit) ast.Expr {
	switch typ := cl.Type.(type) {
	case nil:
		return nil

	case *ast.ArrayType:
		if _, ok := typ.Len.(*ast.Ellipsis); ok {
			return nil // [...]T
		}
	}

	return cl.Type
}

func predeclaredType(name string) bool {
	_, ok := types.Universe.Lookup(name).(*types.TypeName)

	return ok
}
