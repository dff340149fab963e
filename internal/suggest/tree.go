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

// Tree is the narrow interface this package needs from an Augeas tree: the
// four parser operations spec.md §6 names, plus the one-shot rename used
// to apply Config.Target before matching. internal/augeas implements it
// over the real C library; internal/augeas/augtest implements it entirely
// in memory for tests.
type Tree interface {
	// Init loads the Augeas library itself, rooted at loadPath.
	Init(loadPath string, flags InitFlag) error
	// Transform applies a lens to a file, making its tree available under
	// /files.
	Transform(lens, file string) error
	// Load (re-)reads every configured file into the tree.
	Load() error
	// Match returns every (path, value) pair whose path matches pattern,
	// in tree order.
	Match(pattern string) ([]PathValue, error)
	// Rename moves the subtree at src to dst, used to apply Config.Target.
	Rename(src, dst string) error
}

// InitFlag mirrors the bitmask accepted by honnef.co/go/augeas's own Init,
// redeclared here so this package has no direct (let alone cgo) dependency
// on that library; internal/augeas converts between the two.
type InitFlag int

const (
	FlagNone InitFlag = 0
	// FlagTypeCheck enables lens type-checking while loading files.
	FlagTypeCheck InitFlag = 1 << iota
	// FlagNoStdinc excludes the builtin load path.
	FlagNoStdinc
	// FlagNoLoad initializes without loading any files.
	FlagNoLoad
	// FlagNoModlAutoload disables automatic module loading.
	FlagNoModlAutoload
	// FlagEnableSpan records file positions for loaded tree nodes.
	FlagEnableSpan
)

// Has reports whether flags includes f.
func (flags InitFlag) Has(f InitFlag) bool { return flags&f != 0 }
