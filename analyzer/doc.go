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

// Package analyzer implements the capture static analysis pass.
//
// # Overview
//
// The analyzer finds calls of [fillmore-labs.com/capture.Expr] and suggests
// replacing each of them by its expansion into nested shadowing scopes.
//
// # Example
//
// Before:
//
//	f := capture.Expr[func() int]("move x, ref y in func() int { return x + *y }")
//
// After applying the suggested fix:
//
//	f := func() func() int {
//		x := x
//		{
//			y := &y
//			return func() int { return x + *y }
//		}
//	}()
//
// # Diagnostics
//
//   - Clause lists that are not constant strings
//   - Malformed clause lists, reported at the offending position
//   - A "ref mut" capture aliased by another reference to the same variable
package analyzer
