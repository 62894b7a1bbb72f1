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
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/capture/internal/check"
	"fillmore-labs.com/capture/internal/syntax"
)

// Diagnostic messages.
const (
	MessageExpandable  = "capture expression can be expanded"
	MessageFix         = "Expand capture clauses"
	MessageNonConstant = "capture clauses must be a constant string"
)

// Expansion reports call as expandable, with a suggested fix replacing it by src.
func Expansion(p *analysis.Pass, call *ast.CallExpr, src []byte) {
	text := src
	if prefix := lineIndent(p, call.Pos()); len(prefix) > 0 && !bytes.ContainsRune(src, '`') {
		// raw strings keep their content
		text = bytes.ReplaceAll(src, []byte("\n"), append([]byte("\n"), prefix...))
	}

	p.Report(analysis.Diagnostic{
		Pos:     call.Pos(),
		End:     call.End(),
		Message: MessageExpandable,
		SuggestedFixes: []analysis.SuggestedFix{{
			Message:   MessageFix,
			TextEdits: []analysis.TextEdit{{Pos: call.Pos(), End: call.End(), NewText: text}},
		}},
	})
}

// NonConstant reports a clause argument that is not a constant string.
func NonConstant(p *analysis.Pass, arg ast.Expr) {
	p.Report(analysis.Diagnostic{
		Pos:     arg.Pos(),
		End:     arg.End(),
		Message: MessageNonConstant,
	})
}

// Malformed reports a clause list that failed to parse or validate.
func Malformed(p *analysis.Pass, clauses Clauses, err error) {
	var (
		aliasErr  *check.AliasError
		syntaxErr *syntax.Error
	)

	switch {
	case errors.As(err, &aliasErr):
		first, second := aliasErr.First.Name, aliasErr.Second.Name

		diagnostic := analysis.Diagnostic{
			Pos:     clauses.Pos(second.Offset),
			Message: err.Error(),
		}

		if clauses.Exact() {
			diagnostic.End = clauses.Pos(second.Offset + len(second.Name))
			diagnostic.Related = []analysis.RelatedInformation{{
				Pos:     clauses.Pos(first.Offset),
				End:     clauses.Pos(first.Offset + len(first.Name)),
				Message: fmt.Sprintf("Earlier %q capture", aliasErr.First),
			}}
		}

		p.Report(diagnostic)

	case errors.As(err, &syntaxErr):
		p.Report(analysis.Diagnostic{
			Pos:     clauses.Pos(syntaxErr.Offset),
			Message: err.Error(),
		})

	default:
		p.Report(analysis.Diagnostic{
			Pos:     clauses.Pos(0),
			Message: err.Error(),
		})
	}
}

// lineIndent returns the leading white space of the line containing pos.
func lineIndent(p *analysis.Pass, pos token.Pos) []byte {
	tf := p.Fset.File(pos)
	if tf == nil || p.ReadFile == nil {
		return nil
	}

	content, err := p.ReadFile(tf.Name())
	if err != nil {
		return nil
	}

	start := tf.Offset(tf.LineStart(tf.Line(pos)))
	if start >= len(content) {
		return nil
	}

	line := content[start:]

	return line[:len(line)-len(bytes.TrimLeft(line, " \t"))]
}
