// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/capture/internal/astutil"
	"fillmore-labs.com/capture/internal/config"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the capture analyzer's pipeline.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("capture: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "Capture")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	e := expander{
		pass:     p,
		resolver: newResolver(p),
		strict:   o.Behavior.Enabled(config.StrictAliasing),
	}

	// Remember the current file over all calls in it
	var (
		file        *ast.File
		currentFile astutil.CurrentFile
	)

	root, types := in.Root(), []ast.Node{
		(*ast.File)(nil),
		(*ast.CallExpr)(nil),
	}

	root.Inspect(types, func(c inspector.Cursor) bool {
		switch node := c.Node().(type) {
		case *ast.File:
			file, currentFile = node, astutil.NewCurrentFile(p.Fset, node)
			if !currentFile.Valid() {
				astutil.InternalError(p, node, "File %s without valid info", node.Name.Name)

				return false
			}

			if currentFile.NoLint() {
				return false
			}

			return o.Behavior.Enabled(config.IncludeGenerated) || !currentFile.Generated()

		case *ast.CallExpr:
			if !isMarker(p.TypesInfo, node) {
				return true
			}

			// Skip calls with nolint comment
			if currentFile.NoLintComment(node.Pos()) {
				return false
			}

			e.expand(ctx, file, node)

			return false

		default:
			astutil.InternalError(p, node, "Unexpected node type: %T", node)

			return false
		}
	})

	return nil, nil
}
