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
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"

	"fillmore-labs.com/capture/internal/syntax"
)

var rawcfg = &printer.Config{Mode: printer.RawFormat}

// decl wraps an expansion into a file, since go/format reads a leading "func" as a declaration.
const decl = "var _ = "

var header = []byte("package p\n\n" + decl)

// Source returns the gofmt-formatted expansion of list, see [Expr].
func Source(list *syntax.List, result ast.Expr) ([]byte, error) {
	expr, err := Expr(list, result)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(header) // ignore error

	if len(list.Clauses) == 0 {
		err = rawcfg.Fprint(&buf, list.Fset, expr)
	} else {
		err = fprintScopes(&buf, list.Fset, expr)
	}

	if err != nil {
		return nil, fmt.Errorf("can't render expansion: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("can't format expansion: %w", err)
	}

	_, src, ok := bytes.Cut(src, []byte(decl))
	if !ok {
		return nil, errMissingDecl
	}

	return bytes.TrimSpace(src), nil
}

var errMissingDecl = errors.New("can't find expansion in formatted source")

// fprintScopes prints the function literal call built by [Expr], one statement per line.
func fprintScopes(buf *bytes.Buffer, fset *token.FileSet, expr ast.Expr) error {
	call, ok := expr.(*ast.CallExpr)
	if !ok {
		return fmt.Errorf("unexpected expansion %T", expr)
	}

	fun, ok := call.Fun.(*ast.FuncLit)
	if !ok {
		return fmt.Errorf("unexpected function %T", call.Fun)
	}

	buf.WriteString("func() ") // ignore error

	if err := rawcfg.Fprint(buf, fset, fun.Type.Results.List[0].Type); err != nil {
		return err
	}

	buf.WriteByte(' ') // ignore error

	if err := fprintBlock(buf, fset, fun.Body, 0); err != nil {
		return err
	}

	buf.WriteString("()") // ignore error

	return nil
}

func fprintBlock(buf *bytes.Buffer, fset *token.FileSet, block *ast.BlockStmt, depth int) error {
	buf.WriteString("{\n") // ignore error

	for _, stmt := range block.List {
		writeIndent(buf, depth+1)

		var err error
		if inner, ok := stmt.(*ast.BlockStmt); ok {
			err = fprintBlock(buf, fset, inner, depth+1)
		} else {
			err = rawcfg.Fprint(buf, fset, stmt)
		}

		if err != nil {
			return err
		}

		buf.WriteByte('\n') // ignore error
	}

	writeIndent(buf, depth)
	buf.WriteByte('}') // ignore error

	return nil
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for range depth {
		buf.WriteByte('\t') // ignore error
	}
}
