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
	"errors"
	"testing"

	. "fillmore-labs.com/capture"
)

func TestExprUnexpanded(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()

		err, ok := r.(error)
		if !ok {
			t.Fatalf("Got panic value %v, want an error", r)
		}

		if !errors.Is(err, ErrUnexpanded) {
			t.Errorf("Got error %v, want %v", err, ErrUnexpanded)
		}
	}()

	_ = Expr[int]("in 1")

	t.Error("Expected panic")
}
