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

package config_test

import (
	"log/slog"
	"testing"

	. "fillmore-labs.com/capture/internal/config"
)

func TestBehavior(t *testing.T) {
	t.Parallel()

	b := DefaultBehavior()

	if b.Enabled(IncludeGenerated) {
		t.Error("Generated files included by default")
	}

	if !b.Enabled(StrictAliasing) {
		t.Error("Strict aliasing disabled by default")
	}

	b.Set(IncludeGenerated, true)
	b.Set(StrictAliasing, false)

	if !b.Enabled(IncludeGenerated) || b.Enabled(StrictAliasing) {
		t.Errorf("Got %v, want only IncludeGenerated enabled", b.LogValue())
	}
}

func TestBitMaskLogValue(t *testing.T) {
	t.Parallel()

	b := NewBitMask(IncludeGenerated, StrictAliasing)

	if got, want := b.LogValue(), slog.StringValue("0b11"); !got.Equal(want) {
		t.Errorf("Got LogValue %v, want %v", got, want)
	}
}
