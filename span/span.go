// Copyright 2026 The Jaq Authors
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

// Package span defines the position information attached to HIR and MIR
// nodes.
//
// Unlike a full file-set-relative cue/token.Pos, a Span here is nothing more
// than the byte range the parser observed for a node. Reconstructing
// line/column information from that range is out of scope for the
// resolver; callers that need human-readable positions own the source text
// and can compute it themselves.
package span

import "fmt"

// A Span is a half-open byte range [Start, End) into the original source
// text. The zero Span is the empty range at offset 0.
type Span struct {
	Start int
	End   int
}

// New returns the Span [start, end).
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

// IsValid reports whether s is a non-empty range (End > Start). The zero
// Span, like any other empty range, reports false.
func (s Span) IsValid() bool {
	return s.End > s.Start
}

// String renders s as "start..end", the same terse form used to report
// spans in diagnostics.
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
