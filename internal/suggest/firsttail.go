// Copyright 2024 The augsuggest Authors
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

package suggest

import "strings"

// findFirstTail implements §4.3: the first tail is the first element of
// list that is not a null-valued interior node whose simplified tail is a
// proper prefix of the next element's simplified tail. It returns a nil
// tail and index -1 for an empty list (the degenerate NoChildNodes case).
func findFirstTail(list []*Tail) (*Tail, int) {
	for i, t := range list {
		if t.Value == nil && i+1 < len(list) && isProperChildPrefix(t.SimplifiedTail, list[i+1].SimplifiedTail) {
			continue
		}
		return t, i
	}
	if len(list) > 0 {
		return list[len(list)-1], len(list) - 1
	}
	return nil, -1
}

// isProperChildPrefix reports whether a is a proper prefix of b that ends
// at a path boundary, i.e. b's child-of-a relationship spec §4.3 calls
// for when deciding whether a null-valued anchor should be skipped.
func isProperChildPrefix(a, b string) bool {
	if len(a) >= len(b) || !strings.HasPrefix(b, a) {
		return false
	}
	return strings.HasSuffix(a, "/") || b[len(a)] == '/'
}
