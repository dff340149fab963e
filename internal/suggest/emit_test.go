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
	"testing"

	"github.com/go-quicktest/qt"
)

// buildCorruptedGroup runs stages 2-4 over two sibling rows, then clears
// one position's EmitState to reproduce the "can't happen" branch emission
// falls back on: a disambiguation state that was never set.
func buildCorruptedGroup(t *testing.T) []*Entry {
	t.Helper()
	pvs := []PathValue{
		{Path: "/files/x/row[1]/name", Value: sv("a")},
		{Path: "/files/x/row[2]/name", Value: sv("b")},
	}
	entries := make([]*Entry, len(pvs))
	for i, pv := range pvs {
		entries[i] = &Entry{
			Path:        pv.Path,
			Value:       pv.Value,
			QuotedValue: quoteValue(pv.Value),
			Segments:    SplitPath(pv.Path, false),
		}
	}
	groups := BuildGroups(entries).Groups()
	Disambiguate(groups)
	groups[0].EmitState[1] = stateUnset
	return entries
}

// TestEmitDiagnosticsStderrOnly covers the default: diagnostics are
// returned for the caller to report, but never written into the script
// itself.
func TestEmitDiagnosticsStderrOnly(t *testing.T) {
	entries := buildCorruptedGroup(t)
	var b strings.Builder
	diags := Emit(&b, entries, Config{})

	qt.Assert(t, qt.HasLen(diags, 1))
	qt.Assert(t, qt.Equals(b.String(), ""+
		"set /files/x/row[*]/name 'a'\n"+
		"set /files/x/row[name='b']/name 'b'\n"))
}

// TestEmitDiagnosticsInline covers Config.DiagnosticsInline: the same
// diagnostic is additionally rendered as a "# ..." comment line right
// after the entry that raised it.
func TestEmitDiagnosticsInline(t *testing.T) {
	entries := buildCorruptedGroup(t)
	var b strings.Builder
	diags := Emit(&b, entries, Config{DiagnosticsInline: true})

	qt.Assert(t, qt.HasLen(diags, 1))
	got := b.String()
	qt.Assert(t, qt.Equals(got, ""+
		"set /files/x/row[*]/name 'a'\n"+
		"# "+diags[0].Message+"\n"+
		"set /files/x/row[name='b']/name 'b'\n"))
}
