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

// Package syntax tokenizes and parses capture lists.
//
// A capture list is a sequence of clauses followed by a terminal "in" and a
// single Go expression. Clauses are scanned with [go/scanner], the body is
// parsed with [go/parser]. Errors carry the byte offset of the offending
// token and, for misspelled keywords, a suggestion.
package syntax
