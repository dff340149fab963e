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

// GroupIndex buckets segments by head, looked up through a map. Each
// group's own tail list is scanned linearly; it is small enough that
// quadratic work inside it is acceptable.
type GroupIndex struct {
	byHead map[string]*Group
	order  []*Group // first-seen order, for deterministic iteration
}

func newGroupIndex() *GroupIndex {
	return &GroupIndex{byHead: map[string]*Group{}}
}

func (gi *GroupIndex) get(head string) *Group {
	if g, ok := gi.byHead[head]; ok {
		return g
	}
	g := newGroup(head)
	gi.byHead[head] = g
	gi.order = append(gi.order, g)
	return g
}

// Groups returns every group in first-seen order.
func (gi *GroupIndex) Groups() []*Group {
	return gi.order
}

// BuildGroups implements stage 3: it walks every entry's already-split
// segment chain and, for each positional segment, inserts its (simplified
// tail, value) observation into the segment's group, wiring the segment's
// non-owning Group back-reference as it goes. Segments with a nil
// Position (the tailpiece) are left untouched, per invariant 5.
func BuildGroups(entries []*Entry) *GroupIndex {
	gi := newGroupIndex()
	for _, e := range entries {
		for _, seg := range e.Segments {
			if !seg.IsPositional() {
				continue
			}
			g := gi.get(seg.Head)
			seg.Group = g
			seg.Tail = g.insert(*seg.Position, seg.SimplifiedTail, e.Value)
		}
	}
	return gi
}

// insert records one (simplified tail, value) observation at position p,
// implementing §4.2: an exact (tail, value) match bumps an existing
// Tail's counters; otherwise a new Tail is appended, with its TailFound
// history seeded from the most recently seen Tail sharing the same
// simplified tail. Every Tail sharing that simplified tail then has
// TailFound[p] incremented together, so any one of them can answer "is
// this tail present at position q" regardless of which value variant it
// carries.
func (g *Group) insert(p int, simplifiedTail string, value *string) *Tail {
	g.growTo(p)

	var exact, sibling *Tail
	for _, t := range g.AllTails {
		if t.SimplifiedTail != simplifiedTail {
			continue
		}
		sibling = t
		if sameValue(t.Value, value) {
			exact = t
		}
	}

	target := exact
	if target == nil {
		target = &Tail{
			SimplifiedTail: simplifiedTail,
			Value:          value,
			QuotedValue:    quoteValue(value),
		}
		if sibling != nil {
			target.TailFound = append([]int(nil), sibling.TailFound...)
		}
		target.TailFound = growSlice(target.TailFound, g.MaxPosition+1)
		target.TailValueFound = growSlice(target.TailValueFound, g.MaxPosition+1)
		g.AllTails = append(g.AllTails, target)
	}

	for _, t := range g.AllTails {
		if t.SimplifiedTail == simplifiedTail {
			t.TailFound[p]++
		}
	}
	target.TailValueFound[p]++
	target.TailValueFoundTotal++
	g.TailsAtPosition[p] = append(g.TailsAtPosition[p], target)
	return target
}
