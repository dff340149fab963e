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

// State is the disambiguation state of a (group, position) pair: one
// recipe per tier of spec §4.4 (tiers 2 and 3 each tracked through Start,
// WIP and Done during emission) plus NoChildNodes; stateUnset is the zero
// value.
type State int

const (
	stateUnset State = iota
	FirstTail
	ChosenTailStart
	ChosenTailWIP
	ChosenTailDone
	ChosenTailPlusFirstTailStart
	ChosenTailPlusFirstTailWIP
	ChosenTailPlusFirstTailDone
	FirstTailPlusPosition
	NoChildNodes
)

// Group collects every segment sharing one Head. Groups own their Tails
// and Subgroups; Segments hold a non-owning reference back to their Group.
type Group struct {
	Head        string
	MaxPosition int

	// AllTails holds every distinct (simplified tail, value) pair seen
	// under this head, in first-seen order.
	AllTails []*Tail

	// TailsAtPosition[p] is the ordered list of Tail references observed
	// at position p, one per entry, in input order. Index 0 is unused;
	// valid positions start at 1.
	TailsAtPosition [][]*Tail

	// FirstTail, ChosenTail, ChosenState and EmitState are filled in by stage 4
	// (disambiguate.go), indexed the same way as TailsAtPosition.
	FirstTail  []*Tail
	ChosenTail []*Tail
	// ChosenState is the recipe each position starts emission in; it is
	// never mutated after stage 4. EmitState is the live, per-line copy
	// that stage 5 advances (see emit.go).
	ChosenState []State
	EmitState   []State

	// Subgroups is keyed by the identity of a first-tail observation
	// (see subgroupKey); it is only populated when tier 3 or 4 fires.
	Subgroups map[string]*Subgroup

	// Alignment widths per position, filled in by align.go when enabled.
	PrettyWidth   []int
	ReWidthChosen []int
	ReWidthFirst  []int
}

// newGroup allocates a Group with its position-indexed slices sized for
// capacity 1 (position 0 unused, position 1 present); growTo grows
// them further as higher positions are seen.
func newGroup(head string) *Group {
	g := &Group{
		Head:      head,
		Subgroups: map[string]*Subgroup{},
	}
	g.growTo(1)
	return g
}

// growTo ensures every position-indexed slice in g has room through
// position p, zero-filling new entries. Spec §4.2 allows any growth
// strategy as long as the universal properties in §8 hold; here every
// slice is grown to exactly p+1 entries.
func (g *Group) growTo(p int) {
	if p <= g.MaxPosition || len(g.TailsAtPosition) > p {
		if p > g.MaxPosition {
			g.MaxPosition = p
		}
		return
	}
	newLen := p + 1
	g.TailsAtPosition = growSlice(g.TailsAtPosition, newLen)
	g.FirstTail = growSlice(g.FirstTail, newLen)
	g.ChosenTail = growSlice(g.ChosenTail, newLen)
	g.ChosenState = growSlice(g.ChosenState, newLen)
	g.EmitState = growSlice(g.EmitState, newLen)
	g.PrettyWidth = growSlice(g.PrettyWidth, newLen)
	g.ReWidthChosen = growSlice(g.ReWidthChosen, newLen)
	g.ReWidthFirst = growSlice(g.ReWidthFirst, newLen)
	for _, t := range g.AllTails {
		t.TailFound = growSlice(t.TailFound, newLen)
		t.TailValueFound = growSlice(t.TailValueFound, newLen)
	}
	if p > g.MaxPosition {
		g.MaxPosition = p
	}
}

func growSlice[T any](s []T, n int) []T {
	if len(s) >= n {
		return s
	}
	grown := make([]T, n)
	copy(grown, s)
	return grown
}

// Tail is one distinct (simplified tail, value) observation within a
// group.
type Tail struct {
	SimplifiedTail string
	Value          *string
	QuotedValue    string

	// RegexValue caches the regex-escaped form of Value, computed lazily
	// by regexp.go the first time this Tail is used as a chosen or first
	// tail under --regexp.
	RegexValue string
	regexReady bool

	// TailFound[p] counts entries at position p whose simplified tail
	// equals SimplifiedTail, regardless of value; TailValueFound[p]
	// additionally requires the value to match. TailValueFoundTotal is
	// the sum of TailValueFound across all positions.
	TailFound           []int
	TailValueFound      []int
	TailValueFoundTotal int
}

// sameValue reports whether a and b are equal under the exact
// byte-equality rule of §4.2: a nil value matches only another nil.
func sameValue(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Subgroup is created lazily in tier 3/4 for one first-tail identity; see
// spec §3 and §4.4.
type Subgroup struct {
	FirstTail *Tail

	// MatchingPositions lists, in ascending order, every position in the
	// owning group whose first tail has the same (simplified tail, value)
	// as FirstTail. When FirstTail is self-valued (empty simplified tail),
	// every position with a self-valued first tail matches, whatever its
	// value.
	MatchingPositions []int

	// SubgroupPosition[p] is the 1-based index of p within
	// MatchingPositions.
	SubgroupPosition map[int]int
}
