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

package report

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/capture/internal/syntax"
)

// NotVariable reports a capture of a name that does not denote a variable at the call site.
func NotVariable(p *analysis.Pass, clauses Clauses, c syntax.Clause, obj types.Object, scope string) {
	diagnostic := clauseDiagnostic(clauses, c.Name)

	switch obj.(type) {
	case nil:
		diagnostic.Message = fmt.Sprintf("capture of undeclared name %q", c.Name.Name)

	default:
		diagnostic.Message = fmt.Sprintf("capture of %q, which is not a variable", c.Name.Name)

		if obj.Pos().IsValid() {
			diagnostic.Related = []analysis.RelatedInformation{{
				Pos:     obj.Pos(),
				Message: fmt.Sprintf("Declared in %s scope", scope),
			}}
		}
	}

	p.Report(diagnostic)
}

// NoMethod reports a method clause naming a method the captured value does not have.
func NoMethod(p *analysis.Pass, clauses Clauses, c syntax.Clause, typ types.Type, hint string) {
	diagnostic := clauseDiagnostic(clauses, c.Method)

	diagnostic.Message = fmt.Sprintf("%s (type %s) has no method %s",
		c.Name.Name, types.TypeString(typ, types.RelativeTo(p.Pkg)), c.Method.Name)

	if hint != "" {
		diagnostic.Message += fmt.Sprintf(" (did you mean %q?)", hint)
	}

	p.Report(diagnostic)
}

// MethodSignature reports a method clause naming a method that can't rebind the captured value.
func MethodSignature(p *analysis.Pass, clauses Clauses, c syntax.Clause, fn *types.Func) {
	diagnostic := clauseDiagnostic(clauses, c.Method)

	diagnostic.Message = fmt.Sprintf("method %s must take no arguments and return one value", c.Method.Name)
	diagnostic.Related = []analysis.RelatedInformation{{
		Pos:     fn.Pos(),
		Message: types.ObjectString(fn, types.RelativeTo(p.Pkg)),
	}}

	p.Report(diagnostic)
}

func clauseDiagnostic(clauses Clauses, id syntax.Ident) analysis.Diagnostic {
	diagnostic := analysis.Diagnostic{Pos: clauses.Pos(id.Offset)}

	if clauses.Exact() {
		diagnostic.End = clauses.Pos(id.Offset + len(id.Name))
	}

	return diagnostic
}
