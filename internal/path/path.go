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

// Package path validates the --target flag: Config.Target must be a
// clean, absolute Augeas path, since it replaces the /files/<file> prefix
// every matched entry is renamed under before emission.
package path

import (
	"strings"

	"augeas.dev/go/suggest/internal/errors"
)

// ValidateTarget cleans target (collapsing "//" and a trailing "/") and
// rejects anything that isn't an absolute Augeas path, i.e. one that
// starts with "/". The empty string is returned unchanged: it means
// "don't rename".
func ValidateTarget(target string) (string, error) {
	if target == "" {
		return "", nil
	}
	clean := Clean(target)
	if !IsAbs(clean) {
		return "", errors.Newf([]string{target}, "--target must be an absolute path")
	}
	return clean, nil
}

// IsAbs reports whether p is an absolute Augeas path.
func IsAbs(p string) bool {
	return strings.HasPrefix(p, "/")
}

// Clean collapses repeated "/" separators and strips a trailing one, the
// way Augeas paths are conventionally written.
func Clean(p string) string {
	if p == "" {
		return p
	}
	abs := strings.HasPrefix(p, "/")
	var kept []string
	for _, part := range strings.Split(p, "/") {
		if part != "" {
			kept = append(kept, part)
		}
	}
	out := strings.Join(kept, "/")
	if abs {
		out = "/" + out
	}
	return out
}
