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

package capture

import (
	"errors"
	"fmt"
)

// ErrUnexpanded is the panic value of an [Expr] call that was not expanded.
var ErrUnexpanded = errors.New("unexpanded capture expression")

// Expr marks a capture expression with result type T.
//
// The clauses argument must be a constant string. Calls are replaced with their
// expansion by the capture analyzer; an unexpanded call panics with an error
// wrapping [ErrUnexpanded].
func Expr[T any](clauses string) T {
	panic(fmt.Errorf("capture: %w: %q", ErrUnexpanded, clauses))
}
