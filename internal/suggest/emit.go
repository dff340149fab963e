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
	"fmt"
	"strconv"
	"strings"
)

// Diagnostic is an internal-consistency violation (§7 kind 3) noticed
// during emission: the affected segment still renders as "[*]" and
// emission continues.
type Diagnostic struct {
	Message string
}

// Emit implements stage 5: it walks entries in input order, writing one
// `set` line per non-suppressed entry to w, and returns any internal
// diagnostics raised along the way.
func Emit(w *strings.Builder, entries []*Entry, cfg Config) []Diagnostic {
	var diags []Diagnostic
	for i, e := range entries {
		if suppressed(entries, i) {
			continue
		}
		before := len(diags)
		writeEntry(w, e, cfg, &diags)
		if cfg.DiagnosticsInline {
			for _, d := range diags[before:] {
				w.WriteString("# ")
				w.WriteString(d.Message)
				w.WriteByte('\n')
			}
		}
		if cfg.Pretty && i+1 < len(entries) && differentPosition(e, entries[i+1]) {
			w.WriteByte('\n')
		}
	}
	return diags
}

// suppressed implements the null-anchor rule: an entry with a null value
// whose path is a strict prefix of the next entry's path is never
// printed — the next line's `set` implicitly creates it.
func suppressed(entries []*Entry, i int) bool {
	e := entries[i]
	if e.Value != nil || i+1 >= len(entries) {
		return false
	}
	next := entries[i+1].Path
	return strings.HasPrefix(next, e.Path) && len(next) > len(e.Path) && next[len(e.Path)] == '/'
}

func lastPositional(e *Entry) *Segment {
	for i := len(e.Segments) - 1; i >= 0; i-- {
		if e.Segments[i].IsPositional() {
			return e.Segments[i]
		}
	}
	return nil
}

// differentPosition reports whether a and b's trailing positional
// segments belong to different (group, position) pairs, the trigger for
// a blank-line separator under --pretty.
func differentPosition(a, b *Entry) bool {
	pa, pb := lastPositional(a), lastPositional(b)
	if pa == nil || pb == nil {
		return pa != pb
	}
	return pa.Group != pb.Group || *pa.Position != *pb.Position
}

func writeEntry(w *strings.Builder, e *Entry, cfg Config, diags *[]Diagnostic) {
	w.WriteString("set ")
	for _, seg := range e.Segments {
		w.WriteString(seg.Text)
		if !seg.IsPositional() {
			continue
		}
		w.WriteString(renderPredicate(seg, cfg, diags))
	}
	if e.Value == nil {
		w.WriteByte('\n')
		return
	}
	w.WriteByte(' ')
	w.WriteString(e.QuotedValue)
	w.WriteByte('\n')
}

// renderPredicate renders everything a segment contributes after its own
// Text: the bracketed predicate for a "[n]" segment, or "seq::*"/"*"
// followed by the same bracketed predicate for a "/n" segment. A group of
// size 1 needs no predicate at all (the position is inherently
// unambiguous) except when its sole entry is a null-valued anchor, which
// still needs the universal "[*]" so replay can find it.
func renderPredicate(seg *Segment, cfg Config, diags *[]Diagnostic) string {
	g := seg.Group
	p := *seg.Position

	seqLiteral := "seq::*"
	if cfg.NoSeq {
		seqLiteral = "*"
	}

	bodies := predicateBodies(g, p, seg, cfg, diags)

	var pred strings.Builder
	for _, b := range bodies {
		pred.WriteByte('[')
		pred.WriteString(b)
		pred.WriteByte(']')
	}

	if seg.Form == FormSlash {
		return seqLiteral + pred.String()
	}
	return pred.String()
}

// predicateBodies returns the predicate body strings for (g, p) — more
// than one only for tier 4, whose two bracket groups render separately —
// and advances the position's shared EmitState when this segment is the
// one that discharges a tier-2/3 "or count(...)=0" disjunct.
func predicateBodies(g *Group, p int, seg *Segment, cfg Config, diags *[]Diagnostic) []string {
	if g.MaxPosition == 1 {
		if seg.Tail != nil && seg.Tail.Value == nil {
			return []string{"*"}
		}
		return nil
	}

	switch g.EmitState[p] {
	case NoChildNodes:
		return []string{"*"}

	case FirstTail:
		ft := g.FirstTail[p]
		if ft == nil {
			diagf(diags, g, p, "missing first tail")
			return []string{"*"}
		}
		return []string{term(g, ft, p, cfg)}

	case ChosenTailStart, ChosenTailWIP, ChosenTailDone:
		ct := g.ChosenTail[p]
		if ct == nil {
			diagf(diags, g, p, "missing chosen tail")
			return []string{"*"}
		}
		body := term(g, ct, p, cfg)
		if g.EmitState[p] != ChosenTailDone {
			body += " or count(" + tailExpr(ct.SimplifiedTail) + ")=0"
		}
		if seg.Tail == ct {
			g.EmitState[p] = ChosenTailDone
		} else if g.EmitState[p] == ChosenTailStart {
			g.EmitState[p] = ChosenTailWIP
		}
		return []string{body}

	case ChosenTailPlusFirstTailStart, ChosenTailPlusFirstTailWIP, ChosenTailPlusFirstTailDone:
		ft, ct := g.FirstTail[p], g.ChosenTail[p]
		if ft == nil || ct == nil {
			diagf(diags, g, p, "missing subgroup tail")
			return []string{"*"}
		}
		body := term(g, ct, p, cfg)
		if ft.SimplifiedTail != "" {
			body = term(g, ft, p, cfg) + " and " + body
		}
		if g.EmitState[p] != ChosenTailPlusFirstTailDone {
			body += " or count(" + tailExpr(ct.SimplifiedTail) + ")=0"
		}
		if seg.Tail == ct {
			g.EmitState[p] = ChosenTailPlusFirstTailDone
		} else if g.EmitState[p] == ChosenTailPlusFirstTailStart {
			g.EmitState[p] = ChosenTailPlusFirstTailWIP
		}
		return []string{body}

	case FirstTailPlusPosition:
		ft := g.FirstTail[p]
		sg := g.subgroupFor(p)
		if ft == nil || sg == nil {
			diagf(diags, g, p, "missing subgroup")
			return []string{"*"}
		}
		ordinal := strconv.Itoa(sg.SubgroupPosition[p])
		if ft.SimplifiedTail == "" {
			return []string{ordinal}
		}
		return []string{term(g, ft, p, cfg), ordinal}

	default:
		diagf(diags, g, p, "unset disambiguation state")
		return []string{"*"}
	}
}

func diagf(diags *[]Diagnostic, g *Group, p int, msg string) {
	*diags = append(*diags, Diagnostic{Message: fmt.Sprintf("internal error: %s for %s[%d]", msg, g.Head, p)})
}

// tailExpr renders a simplified tail as a path-predicate expression; the
// empty simplified tail means the position's own value, tested via ".".
func tailExpr(simplifiedTail string) string {
	if simplifiedTail == "" {
		return "."
	}
	return simplifiedTail
}

// term renders one "expr = value" or "expr =~ regexp(...)" comparison,
// applying alignment padding to the value when --pretty is on.
func term(g *Group, t *Tail, p int, cfg Config) string {
	expr := tailExpr(t.SimplifiedTail)
	if cfg.RegexpMinLen > 0 {
		body := g.regexValueFor(t, cfg.RegexpMinLen)
		if cfg.Pretty {
			body = padRight(body, g.PrettyWidth[p])
		}
		return expr + " =~ regexp(" + quoteRegex(body) + ")"
	}
	if cfg.Pretty {
		v := valueOf(t.Value)
		return expr + "=" + quoteString(padRight(v, g.PrettyWidth[p]), preferredQuote(v))
	}
	return expr + "=" + t.QuotedValue
}

func padRight(s string, w int) string {
	if n := w - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
