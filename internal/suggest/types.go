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

// Package suggest picks content-based path predicates for an Augeas tree
// dump and renders a `set`-script that reconstructs it.
//
// The pipeline has five stages, each living in its own file: ingest
// (ingest.go), segmentation (segment.go), grouping (grouping.go),
// disambiguation (disambiguate.go) and emission (emit.go). Later stages
// only ever read the output of earlier ones.
package suggest

// Config carries every option a caller can set. It is built once by the CLI
// layer and threaded by value into every stage; nothing in this package
// reads process-global state.
type Config struct {
	// Pretty enables alignment padding (§4.6) and blank-line separation
	// between groups of sibling records (§4.7).
	Pretty bool

	// RegexpMinLen enables regular-expression relaxation (§4.5) when > 0;
	// it is the minimum number of characters of a value kept in its
	// relaxed regexp (a shorter value is kept whole).
	RegexpMinLen int

	// NoSeq renders a numeric-leaf position as `/*/` instead of the
	// default `/seq::*/`.
	NoSeq bool

	// Target, when non-empty, is the absolute path the loaded subtree is
	// renamed to before emission; it also replaces the path prefix that
	// appears in the output.
	Target string

	// DiagnosticsInline routes internal-consistency diagnostics (§7 kind
	// 3) into the output stream as `# ...` comment lines. Emit returns
	// them either way; the CLI reports them on stderr only when this is
	// off.
	DiagnosticsInline bool
}

// PathValue is one (path, value) pair as returned by the Augeas match
// query that seeds ingestion. Value is nil for interior nodes that carry
// no leaf value.
type PathValue struct {
	Path  string
	Value *string
}

// Entry is one ingested (path, value) pair together with its pre-computed
// segment chain. Entries are immutable after ingest; only their segments'
// groups gain state during disambiguation and emission.
type Entry struct {
	Path        string
	Value       *string
	QuotedValue string
	Segments    []*Segment
}

// Segment is one positional selector in a path, or the trailing tailpiece
// that follows the last one. See spec §3 for field semantics.
type Segment struct {
	// Head is the absolute prefix ending at the label that carries the
	// position; segments with identical heads share a Group.
	Head string

	// Text is the literal slice printed before the predicate: the part
	// of Head from the previous segment boundary onward.
	Text string

	// Form records which of the two marker spellings produced this
	// segment: FormBracket for "[n]", FormSlash for "/n". Unused
	// (FormNone) for the trailing tail segment.
	Form MarkerForm

	// Position is the integer inside the marker; nil for the tailpiece.
	Position *int

	// SimplifiedTail is the remainder of the path after this marker,
	// with every further marker rewritten per §4.1.
	SimplifiedTail string

	// Group is a non-owning back-reference, nil iff Position is nil.
	Group *Group

	// Tail is the (simplified tail, value) observation this segment
	// contributed to its Group, non-owning like Group itself. Emission
	// uses it to tell whether this segment is the one that discharges a
	// tier-2/3 state's "or count(...)=0" disjunct.
	Tail *Tail
}

// MarkerForm distinguishes the two positional-selector spellings
// recognized by segmentation (§4.1): "[n]" and "/n".
type MarkerForm int

const (
	FormNone MarkerForm = iota
	FormBracket
	FormSlash
)

// IsPositional reports whether s carries a position (is not the trailing
// tailpiece of its entry).
func (s *Segment) IsPositional() bool {
	return s.Position != nil
}
