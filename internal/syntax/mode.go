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

package syntax

// Mode is the capture mode of a [Clause].
type Mode uint8

//go:generate go tool stringer -type Mode -linecomment
const (
	// Move rebinds an identifier to its current value.
	Move Mode = iota + 1 // move

	// Ref rebinds an identifier to a shared reference to its current value.
	Ref // ref

	// RefMut rebinds an identifier to an exclusive reference to its current value.
	// Go pointers do not distinguish this from [Ref]; exclusivity is checked separately.
	RefMut // ref mut

	// Method rebinds an identifier to the result of a zero-argument method call on its current value.
	Method // method
)

// Reference reports whether the mode binds a reference.
func (i Mode) Reference() bool { return i == Ref || i == RefMut }
