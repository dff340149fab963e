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

// quoteValue implements the §6 quoting rules for a literal value: single
// quotes are preferred; double quotes are used only when the value holds
// a "'" and no '"'; \n, \t and \\ are always backslash-escaped; there is
// no unquoted form. v == nil renders as the empty string — callers check
// Value == nil themselves to decide whether to print a value at all.
func quoteValue(v *string) string {
	if v == nil {
		return ""
	}
	return quoteString(*v, preferredQuote(*v))
}

// preferredQuote chooses the quote character for s under the rule above.
func preferredQuote(s string) byte {
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		return '"'
	}
	return '\''
}

// quoteString wraps s in q, escaping q itself, backslash, and the two
// whitespace controls the grammar forbids unescaped.
func quoteString(s string, q byte) string {
	var b strings.Builder
	b.WriteByte(q)
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\\':
			b.WriteString(`\\`)
		case rune(q):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
	return b.String()
}

func valueOf(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
