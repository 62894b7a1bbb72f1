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

package capture_test

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/capture/internal/expand"
	"fillmore-labs.com/capture/internal/syntax"
)

// TestExampleExpansion verifies the runnable examples contain the expansions of their capture lists.
func TestExampleExpansion(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "example_test.go", nil, parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Can't parse examples: %v", err)
	}

	tests := []struct {
		example string
		clauses string
		result  string
	}{
		{"Example", "move x, ref y, Clone z in func() uint32 { return x + *y + uint32(z) }", "func() uint32"},
		{"Example_order", "move x, ref x in x", "*int"},
	}

	for _, tt := range tests {
		t.Run(tt.example, func(t *testing.T) {
			t.Parallel()

			list, err := syntax.Parse(tt.clauses)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.clauses, err)
			}

			result, err := list.ParseExpr(tt.result)
			if err != nil {
				t.Fatalf("Can't parse result type %q: %v", tt.result, err)
			}

			want, err := expand.Source(list, result)
			if err != nil {
				t.Fatalf("Source(%q) failed: %v", tt.clauses, err)
			}

			expansion := findExpansion(f, tt.example)
			if expansion == nil {
				t.Fatalf("No expansion found in %s", tt.example)
			}

			var got bytes.Buffer
			if err := format.Node(&got, fset, expansion); err != nil {
				t.Fatalf("Can't format expansion: %v", err)
			}

			if diff := cmp.Diff(string(want), got.String()); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.example, diff)
			}
		})
	}
}

// findExpansion returns the first immediately called function literal in the named function.
func findExpansion(f *ast.File, name string) ast.Node {
	var expansion ast.Node

	for _, decl := range f.Decls {
		fun, ok := decl.(*ast.FuncDecl)
		if !ok || fun.Name.Name != name {
			continue
		}

		ast.Inspect(fun.Body, func(n ast.Node) bool {
			if expansion != nil {
				return false
			}

			if call, ok := n.(*ast.CallExpr); ok {
				if _, ok := call.Fun.(*ast.FuncLit); ok && len(call.Args) == 0 {
					expansion = call

					return false
				}
			}

			return true
		})
	}

	return expansion
}
