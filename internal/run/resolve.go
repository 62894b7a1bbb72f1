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

package run

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/capture/internal/report"
	"fillmore-labs.com/capture/internal/scope"
	"fillmore-labs.com/capture/internal/syntax"
)

// resolver checks captured names against the scope of the call site.
type resolver struct {
	pass   *analysis.Pass
	scopes scope.Index
	msets  *typeutil.MethodSetCache
}

func newResolver(p *analysis.Pass) resolver {
	return resolver{
		pass:   p,
		scopes: scope.NewIndex(p.TypesInfo),
		msets:  new(typeutil.MethodSetCache),
	}
}

// resolve reports captures of names that are not variables at the call site and method clauses
// not applicable to the captured value. It returns false when anything was reported.
func (r resolver) resolve(file *ast.File, call *ast.CallExpr, list *syntax.List, clauses report.Clauses) bool {
	root := r.pass.TypesInfo.Scopes[file]
	if root == nil {
		return true
	}

	// types of the bindings established by earlier clauses
	bound := make(map[string]types.Type)

	for _, c := range list.Clauses {
		typ, ok := bound[c.Name.Name]
		if !ok {
			declared, obj := scope.Lookup(root, call.Pos(), c.Name.Name)

			v, isVar := obj.(*types.Var)
			if !isVar {
				report.NotVariable(r.pass, clauses, c, obj, r.scopes.Describe(declared))

				return false
			}

			typ = v.Type()
		}

		switch c.Mode {
		case syntax.Ref, syntax.RefMut:
			typ = types.NewPointer(typ)

		case syntax.Method:
			if typ, ok = r.method(typ, c, clauses); !ok {
				return false
			}
		}

		bound[c.Name.Name] = typ
	}

	return true
}

// method returns the result type of calling the method of c on a value of type typ.
func (r resolver) method(typ types.Type, c syntax.Clause, clauses report.Clauses) (types.Type, bool) {
	obj, _, _ := types.LookupFieldOrMethod(typ, true, r.pass.Pkg, c.Method.Name)

	fn, ok := obj.(*types.Func)
	if !ok {
		report.NoMethod(r.pass, clauses, c, typ, syntax.Closest(c.Method.Name, r.methodNames(typ)))

		return nil, false
	}

	sig := fn.Signature()
	if sig.Params().Len() != 0 || sig.Results().Len() != 1 || sig.Variadic() {
		report.MethodSignature(r.pass, clauses, c, fn)

		return nil, false
	}

	return sig.Results().At(0).Type(), true
}

func (r resolver) methodNames(typ types.Type) []string {
	var names []string

	for _, sel := range typeutil.IntuitiveMethodSet(typ, r.msets) {
		if m := sel.Obj(); m.Exported() || m.Pkg() == r.pass.Pkg {
			names = append(names, m.Name())
		}
	}

	return names
}
