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
)

func TestFindFirstTailSkipsNullAnchor(t *testing.T) {
	g := newGroup("/files/x/entry")
	g.insert(1, "meta", nil)
	child := g.insert(1, "meta/seq::*", sv("x"))

	first, idx := findFirstTail(g.TailsAtPosition[1])
	qt.Assert(t, qt.Equals(first, child))
	qt.Assert(t, qt.Equals(idx, 1))
}

func TestFindFirstTailAllNullReturnsLast(t *testing.T) {
	g := newGroup("/files/x/entry")
	only := g.insert(1, "meta", nil)

	first, idx := findFirstTail(g.TailsAtPosition[1])
	qt.Assert(t, qt.Equals(first, only))
	qt.Assert(t, qt.Equals(idx, 0))
}

func TestFindFirstTailEmptyList(t *testing.T) {
	first, idx := findFirstTail(nil)
	qt.Assert(t, qt.IsNil(first))
	qt.Assert(t, qt.Equals(idx, -1))
}

// TestTier2CandidateSkipsNonUniqueFirstTail builds a group where the
// first tail at every position repeats the same value (so tier 1 and
// tier 2 both reject it) while a later tail, "id", is unique-valued and
// present at every position, and confirms tier2Candidate finds it.
func TestTier2CandidateSkipsNonUniqueFirstTail(t *testing.T) {
	g := newGroup("/files/x/row")
	g.insert(1, "extra", sv("const"))
	id1 := g.insert(1, "id", sv("1"))
	g.insert(2, "extra", sv("const"))
	id2 := g.insert(2, "id", sv("2"))

	list := g.TailsAtPosition[1]
	first, startIdx := findFirstTail(list)
	qt.Assert(t, qt.Equals(first.SimplifiedTail, "extra"))

	got := tier2Candidate(g, list, startIdx)
	qt.Assert(t, qt.Equals(got, id1))

	list2 := g.TailsAtPosition[2]
	_, startIdx2 := findFirstTail(list2)
	got2 := tier2Candidate(g, list2, startIdx2)
	qt.Assert(t, qt.Equals(got2, id2))
}

// TestTier2CandidateRejectsValueAbsentAtSomePosition covers condition
// (b): a tail unique in value but missing entirely from another
// position is not a tier-2 candidate.
func TestTier2CandidateRejectsValueAbsentAtSomePosition(t *testing.T) {
	g := newGroup("/files/x/row")
	g.insert(1, "extra", sv("const"))
	g.insert(1, "only_here", sv("z"))
	g.insert(2, "extra", sv("const"))

	list := g.TailsAtPosition[1]
	_, startIdx := findFirstTail(list)
	got := tier2Candidate(g, list, startIdx)
	qt.Assert(t, qt.IsNil(got))
}

// TestTier3CandidateWithinSubgroup reproduces the shared-first-tail
// scenario: two groups of three positions each share the first tail
// "kind" (two distinct values), and "id" collides globally across the
// two kind-groups but is unique within each.
func TestTier3CandidateWithinSubgroup(t *testing.T) {
	g := newGroup("/files/x/item")
	for i, id := range []string{"1", "2", "3"} {
		p := i + 1
		g.insert(p, "kind", sv("fruit"))
		g.insert(p, "id", sv(id))
	}
	for i, id := range []string{"1", "2", "3"} {
		p := i + 4
		g.insert(p, "kind", sv("veg"))
		g.insert(p, "id", sv(id))
	}
	computeFirstTails(g)

	list1 := g.TailsAtPosition[1]
	first1, startIdx1 := findFirstTail(list1)
	qt.Assert(t, qt.Equals(first1.SimplifiedTail, "kind"))

	// Tier 2 must reject both tails: "kind" repeats within its own
	// subgroup, "id" repeats across subgroups.
	qt.Assert(t, qt.IsNil(tier2Candidate(g, list1, startIdx1)))

	sg := g.subgroupFor(1)
	qt.Assert(t, qt.DeepEquals(sg.MatchingPositions, []int{1, 2, 3}))

	chosen := tier3Candidate(1, sg, list1, startIdx1)
	qt.Assert(t, qt.Not(qt.IsNil(chosen)))
	qt.Assert(t, qt.Equals(chosen.SimplifiedTail, "id"))
	qt.Assert(t, qt.Equals(*chosen.Value, "1"))
}

// TestSubgroupForUnifiesSelfValuedFirstTails covers the interpretive
// rule that self-valued first tails (empty simplified tail, this
// position's own value) share one subgroup regardless of their
// individual values, so ordinals assign sequentially across the whole
// group instead of splitting by value.
func TestSubgroupForUnifiesSelfValuedFirstTails(t *testing.T) {
	g := newGroup("/files/squid.conf/acl[1]/host")
	g.insert(1, "", sv("10.0.0.0/8"))
	g.insert(2, "", sv("192.168.0.0/16"))
	g.insert(3, "", sv("172.16.0.0/12"))
	computeFirstTails(g)

	sg := g.subgroupFor(1)
	qt.Assert(t, qt.DeepEquals(sg.MatchingPositions, []int{1, 2, 3}))
	qt.Assert(t, qt.Equals(sg.SubgroupPosition[1], 1))
	qt.Assert(t, qt.Equals(sg.SubgroupPosition[2], 2))
	qt.Assert(t, qt.Equals(sg.SubgroupPosition[3], 3))

	// The same subgroup object is returned for every position, keyed
	// by the shared "\x00self" identity rather than by value.
	qt.Assert(t, qt.Equals(g.subgroupFor(2), sg))
	qt.Assert(t, qt.Equals(g.subgroupFor(3), sg))
}

func TestChooseTailNoChildNodes(t *testing.T) {
	g := newGroup("/files/x/row")
	g.growTo(2)
	chooseTail(g, 1)
	qt.Assert(t, qt.Equals(g.ChosenState[1], NoChildNodes))
	qt.Assert(t, qt.Equals(g.EmitState[1], NoChildNodes))
}

func TestChooseTailFirstTierOnUniqueFirstTail(t *testing.T) {
	g := newGroup("/files/x/acl")
	g.insert(1, "setting", sv("localnet"))
	g.insert(2, "setting", sv("SSL_ports"))

	Disambiguate([]*Group{g})
	qt.Assert(t, qt.Equals(g.ChosenState[1], FirstTail))
	qt.Assert(t, qt.Equals(g.ChosenState[2], FirstTail))
}
