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

import (
	"strings"

	"augeas.dev/go/suggest/internal/errors"
)

// Run loads file through lens on tree, renames the loaded subtree to
// cfg.Target when set, and runs all five stages, returning the rendered
// `set`-script and any internal diagnostics raised during emission.
func Run(tree Tree, lens, file string, flags InitFlag, cfg Config) (string, []Diagnostic, error) {
	if err := tree.Init("", flags); err != nil {
		return "", nil, errors.Wrapf(err, []string{file}, "initializing tree")
	}
	if err := tree.Transform(lens, file); err != nil {
		return "", nil, errors.Wrapf(err, []string{file}, "applying lens %q", lens)
	}
	if err := tree.Load(); err != nil {
		return "", nil, errors.Wrapf(err, []string{file}, "loading")
	}

	root := "/files" + file
	pattern := root
	if cfg.Target != "" {
		if err := tree.Rename(root, cfg.Target); err != nil {
			return "", nil, errors.Wrapf(err, []string{root}, "renaming to %q", cfg.Target)
		}
		pattern = cfg.Target
	}
	pattern += "//*"

	entries, err := BuildEntries(tree, pattern, cfg)
	if err != nil {
		return "", nil, err
	}

	groups := BuildGroups(entries).Groups()
	Disambiguate(groups)
	for _, g := range groups {
		computeAlignment(g, cfg)
	}

	var b strings.Builder
	diags := Emit(&b, entries, cfg)
	return b.String(), diags, nil
}
