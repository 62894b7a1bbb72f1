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

package config

// Config represents behavioral options of the capture analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to expand capture expressions in generated files.
	IncludeGenerated Config = 1 << iota

	// StrictAliasing rejects a mutable reference combined with another reference to the same variable.
	StrictAliasing
)

// Behavior holds the enabled [Config] flags.
type Behavior = BitMask[Config]

// DefaultBehavior returns the default analyzer behavior.
func DefaultBehavior() Behavior {
	return NewBitMask(StrictAliasing)
}
