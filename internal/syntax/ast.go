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

package syntax

import (
	"go/ast"
	"go/token"
	"log/slog"
)

// Ident is an identifier of a capture list.
type Ident struct {
	Name   string
	Offset int // Byte offset in the capture list
}

// Clause is a single capture directive.
type Clause struct {
	Mode   Mode
	Method Ident // Method name, set only for [Method] clauses
	Name   Ident // Rebound identifier
}

// String returns the clause as written in a capture list.
func (c Clause) String() string {
	if c.Mode == Method {
		return c.Method.Name + " " + c.Name.Name
	}

	return c.Mode.String() + " " + c.Name.Name
}

// List is a parsed capture list: the clauses in source order, followed by the body.
type List struct {
	Clauses []Clause

	// Body is the terminal expression. Its positions are relative to Fset.
	Body ast.Expr

	// BodyOffset is the byte offset of the body in the capture list.
	BodyOffset int

	// Fset holds the positions of Body and of expressions parsed with [List.ParseExpr].
	Fset *token.FileSet
}

// LogValue implements [slog.LogValuer].
func (l *List) LogValue() slog.Value {
	clauses := make([]string, 0, len(l.Clauses))
	for _, c := range l.Clauses {
		clauses = append(clauses, c.String())
	}

	return slog.GroupValue(
		slog.Any("clauses", clauses),
		slog.Int("body", l.BodyOffset),
	)
}
