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

// Package check validates parsed capture lists.
package check

import (
	"errors"
	"fmt"

	"fillmore-labs.com/capture/internal/syntax"
)

// ErrAliasedMutable is the class of clause chains aliasing a mutable reference.
var ErrAliasedMutable = errors.New("mutable reference aliased by another reference")

// AliasError reports two reference captures of the same identifier, at least one of them mutable.
type AliasError struct {
	First, Second syntax.Clause
}

func (e *AliasError) Error() string {
	return fmt.Sprintf("%s: %q conflicts with earlier %q: %v",
		syntax.ErrMalformed, e.Second, e.First, ErrAliasedMutable)
}

// Unwrap makes an [AliasError] match both [ErrAliasedMutable] and [syntax.ErrMalformed].
func (e *AliasError) Unwrap() []error { return []error{ErrAliasedMutable, syntax.ErrMalformed} }

// Aliasing rejects clause chains where an identifier captured by "ref mut" is also captured
// by "ref" or another "ref mut", in either order.
//
// Other repeated captures of an identifier are valid, each one shadowing the previous binding.
func Aliasing(list *syntax.List) error {
	refs := make(map[string]syntax.Clause)

	for _, c := range list.Clauses {
		if !c.Mode.Reference() {
			continue
		}

		first, ok := refs[c.Name.Name]
		if !ok {
			refs[c.Name.Name] = c
			continue
		}

		if first.Mode == syntax.RefMut || c.Mode == syntax.RefMut {
			return &AliasError{First: first, Second: c}
		}
	}

	return nil
}
