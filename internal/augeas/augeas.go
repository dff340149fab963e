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

// Package augeas adapts honnef.co/go/augeas's cgo binding for the real
// Augeas library to the suggest.Tree interface. It is the only package in
// this module that touches cgo or the filesystem notion of a live tree.
package augeas

import (
	"fmt"

	honneflib "honnef.co/go/augeas"

	"augeas.dev/go/suggest/internal/suggest"
)

// Tree wraps a live honnef.co/go/augeas handle.
type Tree struct {
	handle honneflib.Augeas
	opened bool
}

var _ suggest.Tree = (*Tree)(nil)

// Init opens the underlying Augeas handle rooted at loadPath ("" for the
// default "/"), converting our flag bitmask to the library's own.
func (t *Tree) Init(loadPath string, flags suggest.InitFlag) error {
	h, err := honneflib.New(loadPath, "", toLibFlags(flags))
	if err != nil {
		return fmt.Errorf("opening augeas handle: %w", err)
	}
	t.handle = h
	t.opened = true
	return nil
}

// Transform registers lens as the transform for file by setting the two
// /augeas/load tree entries Augeas reads before the next Load, the same
// mechanism `augtool`'s `transform` command uses.
func (t *Tree) Transform(lens, file string) error {
	xfm := "/augeas/load/augsuggest"
	if err := t.handle.Set(xfm+"/lens", lens); err != nil {
		return fmt.Errorf("setting lens %q: %w", lens, err)
	}
	if err := t.handle.Set(xfm+"/incl", file); err != nil {
		return fmt.Errorf("setting incl %q: %w", file, err)
	}
	return nil
}

// Load (re-)reads every configured file into the tree.
func (t *Tree) Load() error {
	if err := t.handle.Load(); err != nil {
		return fmt.Errorf("loading tree: %w", err)
	}
	return nil
}

// Match returns every (path, value) pair matching pattern.
func (t *Tree) Match(pattern string) ([]suggest.PathValue, error) {
	paths, err := t.handle.Match(pattern)
	if err != nil {
		return nil, fmt.Errorf("matching %q: %w", pattern, err)
	}
	out := make([]suggest.PathValue, 0, len(paths))
	for _, p := range paths {
		v, err := t.handle.Get(p)
		if err != nil {
			out = append(out, suggest.PathValue{Path: p})
			continue
		}
		value := v
		out = append(out, suggest.PathValue{Path: p, Value: &value})
	}
	return out, nil
}

// Rename moves the subtree at src to dst.
func (t *Tree) Rename(src, dst string) error {
	if err := t.handle.Rename(src, dst); err != nil {
		return fmt.Errorf("renaming %q to %q: %w", src, dst, err)
	}
	return nil
}

// Close releases the underlying handle.
func (t *Tree) Close() error {
	if !t.opened {
		return nil
	}
	return t.handle.Close()
}

func toLibFlags(flags suggest.InitFlag) honneflib.Flags {
	var out honneflib.Flags
	if flags.Has(suggest.FlagTypeCheck) {
		out |= honneflib.TypeCheck
	}
	if flags.Has(suggest.FlagNoStdinc) {
		out |= honneflib.NoStdinc
	}
	if flags.Has(suggest.FlagNoLoad) {
		out |= honneflib.NoLoad
	}
	if flags.Has(suggest.FlagNoModlAutoload) {
		out |= honneflib.NoModlAutoload
	}
	if flags.Has(suggest.FlagEnableSpan) {
		out |= honneflib.EnableSpan
	}
	return out
}
