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

// Package diag defines the shared diagnostic type produced by the resolver.
//
// An Error never aborts lowering: the resolver appends to a List and
// substitutes a neutral placeholder, then keeps going. This mirrors
// cuelang.org/go/cue/errors, trimmed to what a name-resolution pass needs:
// there is no data-tree Path (there is no data tree here), only the
// definition path the compiler was in when the error was raised.
package diag

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/baod-rate/jaq/span"
)

// An Error is a single diagnostic with a source span and a definition path
// (the dotted chain of enclosing definition names, outermost first).
type Error struct {
	Span    span.Span
	Path    []string
	Message string
}

func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", strings.Join(e.Path, "."), e.Message)
}

// New creates an Error at the given span with a path and message.
func New(sp span.Span, path []string, format string, args ...interface{}) *Error {
	return &Error{
		Span:    sp,
		Path:    append([]string(nil), path...),
		Message: fmt.Sprintf(format, args...),
	}
}

// A List is an ordered collection of diagnostics. The zero List is ready to
// use. Errors are appended in the order lowering discovers them, which for
// this resolver is a depth-first, outermost-first traversal of the HIR.
type List []*Error

// Add appends err to the list.
func (l *List) Add(err *Error) {
	*l = append(*l, err)
}

// Addf is a convenience wrapper around Add/New.
func (l *List) Addf(sp span.Span, path []string, format string, args ...interface{}) {
	l.Add(New(sp, path, format, args...))
}

// Err returns l as an error, or nil if l is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
	}
}

// Sorted returns a copy of l ordered by span start, then by path, then by
// message — a stable order suitable for display, independent of the
// discovery order used internally.
func (l List) Sorted() List {
	out := append(List(nil), l...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		pa, pb := strings.Join(a.Path, "."), strings.Join(b.Path, ".")
		if pa != pb {
			return pa < pb
		}
		return a.Message < b.Message
	})
	return out
}

// Print writes one line per diagnostic to w.
func Print(w io.Writer, l List) {
	for _, e := range l {
		fmt.Fprintf(w, "%s: %s\n", e.Span, e.Error())
	}
}
