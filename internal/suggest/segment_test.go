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
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
)

func TestSplitPathBracketForm(t *testing.T) {
	segs := SplitPath("/files/squid.conf/acl[2]/port", false)
	qt.Assert(t, qt.Equals(len(segs), 2))
	qt.Assert(t, qt.Equals(segs[0].Head, "/files/squid.conf/acl"))
	qt.Assert(t, qt.Equals(segs[0].Form, FormBracket))
	qt.Assert(t, qt.Equals(*segs[0].Position, 2))
	qt.Assert(t, qt.Equals(segs[0].SimplifiedTail, "port"))
	qt.Assert(t, qt.IsFalse(segs[1].IsPositional()))
	qt.Assert(t, qt.Equals(segs[1].Text, "/port"))
}

func TestSplitPathSlashForm(t *testing.T) {
	segs := SplitPath("/files/etc/motd/7", false)
	qt.Assert(t, qt.Equals(len(segs), 2))
	qt.Assert(t, qt.Equals(segs[0].Form, FormSlash))
	qt.Assert(t, qt.Equals(*segs[0].Position, 7))
	qt.Assert(t, qt.Equals(segs[0].SimplifiedTail, ""))
}

func TestSplitPathNoMarker(t *testing.T) {
	segs := SplitPath("/files/etc/hosts/comment", false)
	qt.Assert(t, qt.Equals(len(segs), 1))
	qt.Assert(t, qt.IsFalse(segs[0].IsPositional()))
	qt.Assert(t, qt.Equals(segs[0].Text, "/files/etc/hosts/comment"))
}

func TestSplitPathEmbeddedMarkerSimplified(t *testing.T) {
	segs := SplitPath("/files/x/acl[3]/host/2", false)
	qt.Assert(t, qt.Equals(segs[0].SimplifiedTail, "host/seq::*"))

	segs = SplitPath("/files/x/acl[3]/host/2", true)
	qt.Assert(t, qt.Equals(segs[0].SimplifiedTail, "host/*"))
}

func TestSplitPathBracketZeroIsValid(t *testing.T) {
	segs := SplitPath("/files/x/acl[0]/type", false)
	qt.Assert(t, qt.Equals(*segs[0].Position, 0))
}

// TestSplitPathMultipleMarkersStructure checks the whole segment chain at
// once with cmp.Diff rather than field-by-field assertions, since this
// case has enough segments that a mismatch anywhere is easier to spot as a
// single structural diff.
func TestSplitPathMultipleMarkersStructure(t *testing.T) {
	two := 2
	five := 5
	want := []*Segment{
		{
			Head:           "/files/x/acl",
			Text:           "/files/x/acl",
			Form:           FormBracket,
			Position:       &two,
			SimplifiedTail: "host/seq::*",
		},
		{
			Head:           "/files/x/acl[2]/host/",
			Text:           "/host/",
			Form:           FormSlash,
			Position:       &five,
			SimplifiedTail: "",
		},
		{
			Text: "",
			Form: FormNone,
		},
	}
	got := SplitPath("/files/x/acl[2]/host/5", false)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("SplitPath mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitPathNonDecimalBracketIsNotMarker(t *testing.T) {
	segs := SplitPath("/files/x/acl[name]/type", false)
	qt.Assert(t, qt.Equals(len(segs), 1))
	qt.Assert(t, qt.Equals(segs[0].Text, "/files/x/acl[name]/type"))
}
