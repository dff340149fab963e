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

import "strings"

// regexEscape implements the §4.5/§6 regex-body escaping rules: the eight
// regex metacharacters get a literal backslash in front of them (later
// doubled by quoteString's own backslash handling, so the parser's regex
// dialect sees exactly one); "\" and "]" have no escape of their own and
// are folded to the "." wildcard; "[" gets a single backslash, which
// quoteRegex leaves undoubled.
func regexEscape(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '*', '?', '.', '(', ')', '^', '$', '|', '[':
			out = append(out, '\\', r)
		case '\\', ']':
			out = append(out, '.')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

// quoteRegex wraps an already-escaped regex body the same way a literal
// value is quoted, so a "'" surviving regexEscape doesn't break the
// regexp('...') call. Every backslash in escaped comes from regexEscape,
// so the only doubled "\[" in the quoted form is the escape of a "[",
// which is put back to a single backslash.
func quoteRegex(escaped string) string {
	return strings.ReplaceAll(quoteString(escaped, preferredQuote(escaped)), `\\[`, `\[`)
}

// regexpWidth implements §4.5's common-prefix computation: the width is
// the length of the longest common prefix t.Value shares with any other,
// differently-valued Tail recorded under the same simplified tail
// anywhere in the group, or 0 when there is no such Tail.
func regexpWidth(g *Group, t *Tail) int {
	tv := []rune(valueOf(t.Value))
	width := 0
	for _, other := range g.AllTails {
		if other == t || other.SimplifiedTail != t.SimplifiedTail || sameValue(other.Value, t.Value) {
			continue
		}
		if cp := commonPrefixLen(tv, []rune(valueOf(other.Value))); cp > width {
			width = cp
		}
	}
	return width
}

func commonPrefixLen(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && valueCmpRune(a[n], b[n]) {
		n++
	}
	return n
}

// valueCmpRune compares two value characters for the common-prefix width
// computation. ']' is treated as a wildcard here, matching any character;
// this only ever affects how much prefix a relaxed regex needs to keep.
func valueCmpRune(a, b rune) bool {
	if a == ']' || b == ']' {
		return true
	}
	return a == b
}

// regexValueFor returns the escaped, still unquoted regexp(...) body for t,
// relaxed to the widest of regexpWidth(g, t) and minLen characters and
// truncated with a trailing ".*" when at least three characters were
// dropped. The escaped/truncated body is cached on t itself, so a Tail
// used as both chosen and first tail computes it once.
func (g *Group) regexValueFor(t *Tail, minLen int) string {
	if t.regexReady {
		return t.RegexValue
	}
	raw := []rune(valueOf(t.Value))
	width := regexpWidth(g, t)
	if width < minLen {
		width = minLen
	}
	body := raw
	suffix := ""
	if width < len(raw) {
		body = raw[:width]
		if len(raw)-width >= 3 {
			suffix = ".*"
		}
	}
	t.RegexValue = regexEscape(string(body)) + suffix
	t.regexReady = true
	return t.RegexValue
}
