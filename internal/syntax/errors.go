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

import (
	"errors"
	"strconv"
)

// ErrMalformed is the class of all capture syntax errors.
var ErrMalformed = errors.New("malformed capture syntax")

// Error is a capture syntax error at a byte offset of the capture list.
type Error struct {
	Offset int
	Msg    string

	// Hint is a keyword the offending input probably meant, if any.
	Hint string
}

func (e *Error) Error() string {
	msg := ErrMalformed.Error() + ": " + e.Msg
	if e.Hint != "" {
		msg += " (did you mean " + strconv.Quote(e.Hint) + "?)"
	}

	return msg
}

func (e *Error) Unwrap() error { return ErrMalformed }
