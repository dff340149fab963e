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

import "augeas.dev/go/suggest/internal/errors"

// BuildEntries implements stage 1: it queries tree for every (path, value)
// pair under pattern and turns each into an Entry, pre-splitting its path
// into segments so later stages never touch path text again.
func BuildEntries(tree Tree, pattern string, cfg Config) ([]*Entry, error) {
	matches, err := tree.Match(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, []string{pattern}, "matching")
	}
	entries := make([]*Entry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, &Entry{
			Path:        m.Path,
			Value:       m.Value,
			QuotedValue: quoteValue(m.Value),
			Segments:    SplitPath(m.Path, cfg.NoSeq),
		})
	}
	return entries, nil
}
