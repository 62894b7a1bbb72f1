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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/capture/analyzer"
	"fillmore-labs.com/capture/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Config
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.IncludeGenerated,
			args:    []string{"-strict-aliasing"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.StrictAliasing,
			args:    []string{"-strict-aliasing=false"},
			want:    false,
		},
		{
			name:    "On",
			initial: 0,
			args:    []string{"-strict-aliasing=on"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := config.NewBitMask(tt.initial)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.StrictAliasing
			fv := NewBehaviorValue(&flags, value)
			fs.Var(fv, "strict-aliasing", "reject aliased references")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("StrictAliasing enabled = %v, want %v", flags.Enabled(value), tt.want)
			}

			if tt.initial != value && !flags.Enabled(tt.initial) && tt.initial != 0 {
				t.Errorf("Flag %v was cleared", tt.initial)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	flags := config.DefaultBehavior()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.Var(NewBehaviorValue(&flags, config.StrictAliasing), "strict-aliasing", "reject aliased references")

	if err := fs.Parse([]string{"-strict-aliasing=maybe"}); err == nil {
		t.Error("Expected parse error")
	}

	if !flags.Enabled(config.StrictAliasing) {
		t.Error("Invalid value changed flag")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	flags := config.DefaultBehavior()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewBehaviorValue(&flags, config.StrictAliasing)
	fs.Var(fv, "strict-aliasing", "reject aliased references")

	const expectedUsage = `
  -strict-aliasing
    	reject aliased references (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestAnalyzerFlags(t *testing.T) {
	t.Parallel()

	a := New()

	for _, name := range []string{"generated", "strict-aliasing"} {
		if a.Flags.Lookup(name) == nil {
			t.Errorf("Missing flag -%s", name)
		}
	}
}
