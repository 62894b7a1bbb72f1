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
	"context"
	"go/ast"
	"go/constant"
	"go/printer"
	"go/token"
	"go/types"
	"runtime/trace"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/capture/internal/astutil"
	"fillmore-labs.com/capture/internal/check"
	"fillmore-labs.com/capture/internal/expand"
	"fillmore-labs.com/capture/internal/report"
	"fillmore-labs.com/capture/internal/syntax"
)

// The marker function replaced by expansions.
const (
	markerPath = "fillmore-labs.com/capture"
	markerName = "Expr"
)

// isMarker reports whether call statically calls the marker function.
func isMarker(info *types.Info, call *ast.CallExpr) bool {
	fn := typeutil.StaticCallee(info, call)

	return fn != nil && fn.Name() == markerName && fn.Pkg() != nil && fn.Pkg().Path() == markerPath
}

// expander rewrites single marker calls.
type expander struct {
	pass *analysis.Pass
	resolver
	strict bool
}

func (e expander) expand(ctx context.Context, file *ast.File, call *ast.CallExpr) {
	defer trace.StartRegion(ctx, "Expand").End()

	p := e.pass

	if len(call.Args) != 1 {
		astutil.InternalError(p, call, "Capture expression with %d arguments", len(call.Args))

		return
	}

	arg := call.Args[0]

	tv, ok := p.TypesInfo.Types[arg]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		report.NonConstant(p, arg)

		return
	}

	value := constant.StringVal(tv.Value)
	clauses := report.NewClauses(arg, value)

	list, err := syntax.Parse(value)
	if err != nil {
		report.Malformed(p, clauses, err)

		return
	}

	if e.strict {
		if err := check.Aliasing(list); err != nil {
			report.Malformed(p, clauses, err)

			return
		}
	}

	if !e.resolve(file, call, list, clauses) {
		return
	}

	result, err := resultType(p.Fset, list, call)
	if err != nil {
		astutil.InternalError(p, call, "Can't parse result type: %v", err)

		return
	}

	src, err := expand.Source(list, result)
	if err != nil {
		report.Malformed(p, clauses, err)

		return
	}

	trace.Logf(ctx, "expansion", "%d clauses", len(list.Clauses))

	report.Expansion(p, call, src)
}

// resultType returns the explicit type argument of call, or nil when it is inferred.
//
// The type is printed from the source, keeping struct tags.
func resultType(fset *token.FileSet, list *syntax.List, call *ast.CallExpr) (ast.Expr, error) {
	index, ok := ast.Unparen(call.Fun).(*ast.IndexExpr)
	if !ok {
		return nil, nil
	}

	var buf strings.Builder
	if err := printer.Fprint(&buf, fset, index.Index); err != nil {
		return nil, err
	}

	return list.ParseExpr(buf.String())
}
