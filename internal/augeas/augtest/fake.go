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

// Package augtest provides an in-memory suggest.Tree for tests, so the
// pipeline and CLI can be exercised without a real Augeas installation.
package augtest

import (
	"path"
	"strings"

	"augeas.dev/go/suggest/internal/suggest"
)

// FakeTree is a suggest.Tree backed by a fixed, caller-supplied list of
// (path, value) pairs. Init, Transform and Load are no-ops that just
// record their arguments for assertions; Match filters the fixed list by
// an exact path or a "//*" descendant pattern; Rename rewrites path
// prefixes in place.
type FakeTree struct {
	Entries []suggest.PathValue

	InitLoadPath string
	InitFlags    suggest.InitFlag
	Lens, File   string
	Loaded       bool
}

var _ suggest.Tree = (*FakeTree)(nil)

// New returns a FakeTree seeded with entries, copied so callers can reuse
// their slice.
func New(entries []suggest.PathValue) *FakeTree {
	return &FakeTree{Entries: append([]suggest.PathValue(nil), entries...)}
}

func (t *FakeTree) Init(loadPath string, flags suggest.InitFlag) error {
	t.InitLoadPath, t.InitFlags = loadPath, flags
	return nil
}

func (t *FakeTree) Transform(lens, file string) error {
	t.Lens, t.File = lens, file
	return nil
}

func (t *FakeTree) Load() error {
	t.Loaded = true
	return nil
}

// Match implements the one query shape this package ever issues: an
// exact prefix (possibly with a trailing "//*" standing for "every
// descendant"). It intentionally does not support arbitrary Augeas path
// expressions.
func (t *FakeTree) Match(pattern string) ([]suggest.PathValue, error) {
	prefix, descendants := strings.CutSuffix(pattern, "//*")
	var out []suggest.PathValue
	for _, e := range t.Entries {
		switch {
		case descendants:
			if strings.HasPrefix(e.Path, prefix+"/") {
				out = append(out, e)
			}
		case e.Path == prefix:
			out = append(out, e)
		}
	}
	return out, nil
}

func (t *FakeTree) Rename(src, dst string) error {
	for i, e := range t.Entries {
		if e.Path == src {
			t.Entries[i].Path = dst
			continue
		}
		if rest, ok := strings.CutPrefix(e.Path, src+"/"); ok {
			t.Entries[i].Path = path.Join(dst, rest)
		}
	}
	return nil
}
