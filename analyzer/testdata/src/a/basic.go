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

package a

import (
	"fmt"

	"fillmore-labs.com/capture"
)

type counter uint32

func (c counter) Clone() counter { return c }

func basic() {
	x := 1

	f := capture.Expr[func() int]("move x in func() int { return x }") // want "capture expression can be expanded"

	fmt.Println(f())
}

func scenario() func() uint32 {
	x, y, z := uint32(1), uint32(2), counter(3)

	return capture.Expr[func() uint32]("move x, ref y, Clone z in func() uint32 { return x + *y + uint32(z) }") // want "capture expression can be expanded"
}

func empty(x int) int {
	return capture.Expr[int]("in x + 1") // want "capture expression can be expanded"
}

func scaled(a, b int) int {
	return capture.Expr[int]("in a + b") * 2 // want "capture expression can be expanded"
}

func tagged(v int) any {
	return capture.Expr[struct{ A int `json:"a"` }]("move v in struct{ A int `json:\"a\"` }{v}") // want "capture expression can be expanded"
}

func nested(values []int) {
	for i := range values {
		if i > 0 {
			p := capture.Expr[*int](`ref mut i in i`) // want "capture expression can be expanded"
			*p = 0
		}
	}
}

func skipped() int {
	x := 1

	return capture.Expr[int]("move x in x") //nolint:capture
}
