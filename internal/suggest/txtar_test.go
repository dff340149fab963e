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
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
	"golang.org/x/tools/txtar"
)

// TestCases runs every testdata/cases/*.txtar fixture: each bundles an
// "entries.json" list of PathValue pairs and the "want.txt" script stages
// 2-5 are expected to render from them.
func TestCases(t *testing.T) {
	files, err := filepath.Glob("testdata/cases/*.txtar")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Not(qt.HasLen(files, 0)))

	for _, f := range files {
		f := f
		t.Run(filepath.Base(f), func(t *testing.T) {
			a, err := txtar.ParseFile(f)
			qt.Assert(t, qt.IsNil(err))

			var entriesJSON, want []byte
			for _, file := range a.Files {
				switch file.Name {
				case "entries.json":
					entriesJSON = file.Data
				case "want.txt":
					want = file.Data
				}
			}
			qt.Assert(t, qt.Not(qt.IsNil(entriesJSON)))
			qt.Assert(t, qt.Not(qt.IsNil(want)))

			var pvs []PathValue
			qt.Assert(t, qt.IsNil(json.Unmarshal(entriesJSON, &pvs)))

			got := render(t, pvs, Config{})
			qt.Assert(t, qt.Equals(got, string(want)))
		})
	}
}
