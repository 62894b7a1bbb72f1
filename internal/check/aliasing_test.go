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

package check_test

import (
	"errors"
	"testing"

	. "fillmore-labs.com/capture/internal/check"
	"fillmore-labs.com/capture/internal/syntax"
)

func TestAliasing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		first  string
		second string
	}{
		{name: "Move", src: "move x, move x in x"},
		{name: "MoveThenRef", src: "move x, ref x in x"},
		{name: "SharedRefs", src: "ref x, ref x in x"},
		{name: "SingleRefMut", src: "move x, ref mut x, clone x in x"},
		{name: "DifferentNames", src: "ref mut x, ref mut y, ref x2 in x"},
		{name: "RefAfterRefMut", src: "ref mut y, ref y in y", first: "ref mut y", second: "ref y"},
		{name: "RefMutAfterRef", src: "ref y, move y, ref mut y in y", first: "ref y", second: "ref mut y"},
		{name: "RefMutTwice", src: "ref mut y, ref mut y in y", first: "ref mut y", second: "ref mut y"},
		{name: "FirstConflict", src: "ref a, ref mut b, ref mut a, ref b in a", first: "ref a", second: "ref mut a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			list, err := syntax.Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.src, err)
			}

			err = Aliasing(list)

			if tt.first == "" {
				if err != nil {
					t.Errorf("Aliasing(%q) = %v, want nil", tt.src, err)
				}

				return
			}

			if !errors.Is(err, ErrAliasedMutable) || !errors.Is(err, syntax.ErrMalformed) {
				t.Fatalf("Got error %v, want %v", err, ErrAliasedMutable)
			}

			var aerr *AliasError
			if !errors.As(err, &aerr) {
				t.Fatalf("Got error type %T, want %T", err, aerr)
			}

			if got, want := aerr.First.String(), tt.first; got != want {
				t.Errorf("Got first clause %q, want %q", got, want)
			}

			if got, want := aerr.Second.String(), tt.second; got != want {
				t.Errorf("Got second clause %q, want %q", got, want)
			}
		})
	}
}
