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

// Disambiguate runs stage 4 (§4.4) over every group: for each position
// that has entries it picks a recipe by trying tiers 1-4 in order and
// records the result in the group's FirstTail/ChosenTail/ChosenState
// slices. EmitState starts as a copy of ChosenState; stage 5 advances it.
func Disambiguate(groups []*Group) {
	for _, g := range groups {
		computeFirstTails(g)
		for p := 1; p <= g.MaxPosition; p++ {
			chooseTail(g, p)
		}
	}
}

func computeFirstTails(g *Group) {
	for p := 1; p <= g.MaxPosition; p++ {
		list := g.TailsAtPosition[p]
		if len(list) == 0 {
			continue
		}
		t, _ := findFirstTail(list)
		g.FirstTail[p] = t
	}
}

func chooseTail(g *Group, p int) {
	list := g.TailsAtPosition[p]
	if len(list) == 0 {
		g.ChosenState[p] = NoChildNodes
		g.EmitState[p] = NoChildNodes
		return
	}

	first, startIdx := findFirstTail(list)

	// Tier 1: the first tail is unique across the whole group. A first
	// tail with an empty simplified tail carries no child content to
	// test — it is this very position's own value — so it never
	// qualifies here; it falls through to tier 4's ordinal instead. A
	// single-position group still gets that state here; emission then
	// skips the predicate for it (see predicateBodies in emit.go).
	if first != nil && first.SimplifiedTail != "" && first.TailValueFoundTotal == 1 {
		g.ChosenState[p] = FirstTail
		g.EmitState[p] = FirstTail
		return
	}

	// Tier 2: some tail present at every position has a unique value.
	if t := tier2Candidate(g, list, startIdx); t != nil {
		g.ChosenTail[p] = t
		g.ChosenState[p] = ChosenTailStart
		g.EmitState[p] = ChosenTailStart
		return
	}

	// Tier 3: unique within the subgroup sharing this position's first tail.
	sg := g.subgroupFor(p)
	if sg != nil {
		if t := tier3Candidate(p, sg, list, startIdx); t != nil {
			g.ChosenTail[p] = t
			g.ChosenState[p] = ChosenTailPlusFirstTailStart
			g.EmitState[p] = ChosenTailPlusFirstTailStart
			return
		}
	}

	// Tier 4: unavoidable duplicate, fall back to an ordinal.
	g.ChosenState[p] = FirstTailPlusPosition
	g.EmitState[p] = FirstTailPlusPosition
}

// tier2Candidate implements §4.4 tier 2: scanning from the first tail
// forward, the first Tail that (a) is unique across the whole group, (b)
// is present (by simplified tail, any value) at every position, and (c)
// is not preceded in this position's list by another Tail with the same
// simplified tail.
func tier2Candidate(g *Group, list []*Tail, startIdx int) *Tail {
outer:
	for i := startIdx; i < len(list); i++ {
		t := list[i]
		if t.SimplifiedTail == "" || t.TailValueFoundTotal != 1 {
			continue
		}
		for q := 1; q <= g.MaxPosition; q++ {
			if t.TailFound[q] < 1 {
				continue outer
			}
		}
		for j := 0; j < i; j++ {
			if list[j].SimplifiedTail == t.SimplifiedTail {
				continue outer
			}
		}
		return t
	}
	return nil
}

// tier3Candidate implements §4.4 tier 3: scanning strictly after the
// first tail, the first Tail that (a) has zero occurrences of its own
// value at every other position in the subgroup, (b) is present (any
// value) at every position in the subgroup including p, and (c) is not
// preceded in this position's list by another Tail with the same
// simplified tail.
func tier3Candidate(p int, sg *Subgroup, list []*Tail, startIdx int) *Tail {
outer:
	for i := startIdx + 1; i < len(list); i++ {
		t := list[i]
		if t.SimplifiedTail == "" {
			continue
		}
		for _, q := range sg.MatchingPositions {
			if q != p && t.TailValueFound[q] != 0 {
				continue outer
			}
			if t.TailFound[q] < 1 {
				continue outer
			}
		}
		for j := 0; j < i; j++ {
			if list[j].SimplifiedTail == t.SimplifiedTail {
				continue outer
			}
		}
		return t
	}
	return nil
}

// subgroupFor returns (creating if necessary) the Subgroup keyed by
// position p's first tail, per spec §3/§4.4. It requires FirstTail to
// already be populated for every position in g.
func (g *Group) subgroupFor(p int) *Subgroup {
	first := g.FirstTail[p]
	if first == nil {
		return nil
	}
	key := subgroupKey(first)
	if sg, ok := g.Subgroups[key]; ok {
		return sg
	}
	sg := &Subgroup{FirstTail: first, SubgroupPosition: map[int]int{}}
	for q := 1; q <= g.MaxPosition; q++ {
		ft := g.FirstTail[q]
		if ft == nil {
			continue
		}
		// Self-valued first tails (empty simplified tail) share one
		// subgroup regardless of value: there is no child content to
		// key by, so every such position falls into the same ordinal
		// sequence.
		match := ft.SimplifiedTail == "" && first.SimplifiedTail == "" ||
			ft.SimplifiedTail == first.SimplifiedTail && sameValue(ft.Value, first.Value)
		if match {
			sg.MatchingPositions = append(sg.MatchingPositions, q)
		}
	}
	for i, q := range sg.MatchingPositions {
		sg.SubgroupPosition[q] = i + 1
	}
	g.Subgroups[key] = sg
	return sg
}

// subgroupKey identifies a first-tail observation by its simplified tail
// and value; a nil value gets its own reserved key so it never collides
// with the empty string. Every self-valued tail (empty simplified tail)
// shares the one key "\x00self", whatever its value.
func subgroupKey(t *Tail) string {
	if t.SimplifiedTail == "" {
		return "\x00self"
	}
	if t.Value == nil {
		return t.SimplifiedTail + "\x00null"
	}
	return t.SimplifiedTail + "\x00v:" + *t.Value
}
