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

/*
Package capture provides explicit capture clauses for Go expressions.

A capture list states, for each variable consumed by a body expression
(typically a function literal), how the variable is made available inside
the body:

	move x      // x := x
	ref x       // x := &x
	ref mut x   // x := &x, exclusive
	Clone x     // x := x.Clone()

Capture lists are written as the constant argument of [Expr] and expanded at
build time by the analyzer in [fillmore-labs.com/capture/analyzer]:

	g := capture.Expr[func() uint32]("move x, ref y, Clone z in func() uint32 { return x + *y + z }")

becomes

	g := func() func() uint32 {
		x := x
		{
			y := &y
			{
				z := z.Clone()
				return func() uint32 { return x + *y + z }
			}
		}
	}()

Each clause opens a new scope shadowing the previous binding of its
identifier, so later clauses see the effect of earlier ones.

# Syntax

	capture-list  := (clause ",")* terminal
	clause        := "move" IDENT
	               | "ref" "mut" IDENT
	               | "ref" IDENT
	               | IDENT IDENT
	terminal      := "in" EXPR

Commas are optional and leading commas are ignored. EXPR is exactly one Go
expression.

# Caveats

Every clause declares a variable, so a clause whose identifier the body never
uses does not compile ("declared and not used"), the same as an unused short
variable declaration.

A list with no clauses expands to EXPR itself, parenthesized unless it is a
primary expression. The type argument of [Expr] is dropped, so the result has
the type of EXPR:

	v := capture.Expr[float64]("in 1") // becomes v := 1, an int
*/
package capture
