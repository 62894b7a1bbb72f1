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

package malformed

import "fillmore-labs.com/capture"

const clauses = "move x in x"

type counter int

func (c counter) Clone() counter { return c }

func (c counter) Add(d counter) counter { return c + d }

func errors(x int, s string, n counter) {
	_ = capture.Expr[int]("move x")                      // want `malformed capture syntax: missing terminal "in" expression`
	_ = capture.Expr[int]("mvoe in x")                   // want `malformed capture syntax: .* \(did you mean "move"\?\)`
	_ = capture.Expr[int]("move x; in x")                // want `malformed capture syntax: unexpected ";"`
	_ = capture.Expr[int]("move x in x +")               // want `malformed capture syntax`
	_ = capture.Expr[*int]("ref mut x, ref x in x")      // want `"ref x" conflicts with earlier "ref mut x"`
	_ = capture.Expr[*int]("ref x, ref mut x in x")      // want `"ref mut x" conflicts with earlier "ref x"`
	_ = capture.Expr[int](s)                             // want "capture clauses must be a constant string"
	_ = capture.Expr[int]("move y in y")                 // want `capture of undeclared name "y"`
	_ = capture.Expr[int]("move clauses in clauses")     // want `capture of "clauses", which is not a variable`
	_ = capture.Expr[counter]("clone n in n")            // want `n \(type counter\) has no method clone \(did you mean "Clone"\?\)`
	_ = capture.Expr[counter]("Add n in n")              // want `method Add must take no arguments and return one value`
	_ = capture.Expr[string]("Clone s in s")             // want `s \(type string\) has no method Clone`
	_ = capture.Expr[int](clauses)                       // want "capture expression can be expanded"
	_ = capture.Expr[*int]("move x, ref x in x")         // want "capture expression can be expanded"
	_ = capture.Expr[counter]("ref n, Clone n in n")     // want "capture expression can be expanded"
}
