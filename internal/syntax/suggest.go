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
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// suggest returns the keyword a misspelled word probably stands for, or "" if there is none.
func suggest(word string) string {
	if Reserved(word) {
		return ""
	}

	return Closest(word, keywords)
}

// Closest returns the candidate a misspelled word probably stands for, or "" if there is none.
func Closest(word string, candidates []string) string {
	if len(word) < 2 {
		return ""
	}

	if ranks := fuzzy.RankFindFold(word, candidates); len(ranks) > 0 {
		sort.Sort(ranks)

		return ranks[0].Target
	}

	word = strings.ToLower(word)
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(word, strings.ToLower(c)); d <= len(c)/2 {
			return c
		}
	}

	return ""
}
