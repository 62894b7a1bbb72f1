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

// Package expand turns parsed capture lists into Go expressions.
//
// Clauses are folded right to left around the body: each clause becomes a short variable
// declaration opening a new block, so every binding shadows the previous binding of its
// identifier and sees only the bindings of earlier clauses. The outermost block is the body
// of an immediately invoked function literal, which makes the result an expression.
package expand
