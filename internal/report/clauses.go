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
	"go/ast"
	"go/token"
)

// Clauses maps byte offsets in a constant clause string to file positions.
type Clauses struct {
	arg   ast.Expr
	start token.Pos
}

// NewClauses returns a [Clauses] for the constant string value of arg.
//
// Offsets map exactly only when arg is a single string literal whose text equals value.
// Otherwise every offset maps to the start of arg.
func NewClauses(arg ast.Expr, value string) Clauses {
	c := Clauses{arg: arg}

	lit, ok := ast.Unparen(arg).(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING || len(lit.Value) < 2 {
		return c
	}

	if lit.Value[1:len(lit.Value)-1] == value { // no escapes, no carriage returns
		c.start = lit.ValuePos + 1
	}

	return c
}

// Pos returns the file position of offset.
func (c Clauses) Pos(offset int) token.Pos {
	if !c.start.IsValid() {
		return c.arg.Pos()
	}

	return c.start + token.Pos(offset)
}

// Exact reports whether offsets map to their precise position.
func (c Clauses) Exact() bool {
	return c.start.IsValid()
}
