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

package scope

import (
	"go/ast"
	"go/token"
	"go/types"
)

// Index maps scopes to the AST nodes introducing them.
type Index map[*types.Scope]ast.Node

// NewIndex creates a scope index from the type checker's scope map.
func NewIndex(info *types.Info) Index {
	s := make(Index, len(info.Scopes))
	for node, scope := range info.Scopes {
		s[scope] = node
	}

	return s
}

// Lookup resolves name as seen at pos, searching from the innermost scope of root containing pos outwards.
//
// It returns the scope declaring the object, or nil values when name is not declared at pos.
func Lookup(root *types.Scope, pos token.Pos, name string) (*types.Scope, types.Object) {
	inner := root.Innermost(pos)
	if inner == nil {
		inner = root
	}

	return inner.LookupParent(name, pos)
}

// Describe returns a human-readable name for scope.
func (s Index) Describe(scope *types.Scope) string {
	if node, ok := s[scope]; ok {
		return Name(node)
	}

	switch scope {
	case nil:
		return Name(nil)

	case types.Universe:
		return "universe"
	}

	if scope.Parent() == types.Universe {
		return "package"
	}

	return "unknown"
}
