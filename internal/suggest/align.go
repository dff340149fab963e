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

// computeAlignment implements §4.6: when cfg.Pretty is set, every
// position is assigned a left-pad field width equal to the longest
// rendered value among positions that share its active tail's simplified
// tail, capped at 30 characters. The active tail is whichever Tail
// actually drives that position's predicate: the chosen tail if
// disambiguation picked one, otherwise the first tail.
func computeAlignment(g *Group, cfg Config) {
	if !cfg.Pretty {
		return
	}

	widthByTail := map[string]int{}
	for p := 1; p <= g.MaxPosition; p++ {
		t := activeTail(g, p)
		if t == nil {
			continue
		}
		w := renderedWidth(g, t, cfg)
		if w > widthByTail[t.SimplifiedTail] {
			widthByTail[t.SimplifiedTail] = w
		}
	}

	for p := 1; p <= g.MaxPosition; p++ {
		t := activeTail(g, p)
		if t == nil {
			continue
		}
		g.PrettyWidth[p] = widthByTail[t.SimplifiedTail]

		if ft := g.FirstTail[p]; ft != nil {
			g.ReWidthFirst[p] = effectiveRegexpWidth(g, ft, cfg)
		}
		if ct := g.ChosenTail[p]; ct != nil {
			g.ReWidthChosen[p] = effectiveRegexpWidth(g, ct, cfg)
		}
	}
}

// activeTail returns whichever Tail a position's emitted predicate is
// actually built from.
func activeTail(g *Group, p int) *Tail {
	if t := g.ChosenTail[p]; t != nil {
		return t
	}
	return g.FirstTail[p]
}

func renderedWidth(g *Group, t *Tail, cfg Config) int {
	var s string
	if cfg.RegexpMinLen > 0 {
		s = g.regexValueFor(t, cfg.RegexpMinLen)
	} else {
		s = valueOf(t.Value)
	}
	w := len([]rune(s))
	if w > 30 {
		w = 30
	}
	return w
}

func effectiveRegexpWidth(g *Group, t *Tail, cfg Config) int {
	if cfg.RegexpMinLen <= 0 {
		return 0
	}
	return regexpWidth(g, t)
}
