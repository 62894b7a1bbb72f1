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

package gclplugin

import capture "fillmore-labs.com/capture/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Generated enables expansion in generated files.
	Generated *bool `json:"generated,omitzero"`
	// StrictAliasing rejects "ref mut" captures aliased by other references.
	StrictAliasing *bool `json:"strict-aliasing,omitzero"`
}

// Options converts [Settings] into a list of [capture.Option] for the capture analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []capture.Option {
	var opts []capture.Option

	opts = appendOption(opts, s.Generated, capture.WithGenerated)
	opts = appendOption(opts, s.StrictAliasing, capture.WithStrictAliasing)

	return opts
}

// appendOption appends a non-nil setting to a [capture.Option] list.
func appendOption[T any](opts []capture.Option, value *T, constructor func(T) capture.Option) []capture.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
