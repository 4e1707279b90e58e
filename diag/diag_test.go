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

package diag_test

import (
	"bytes"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/baod-rate/jaq/diag"
	"github.com/baod-rate/jaq/span"
)

func TestErrorMessage(t *testing.T) {
	e := diag.New(span.New(0, 1), nil, "undefined variable")
	qt.Assert(t, qt.Equals(e.Error(), "undefined variable"))

	e = diag.New(span.New(0, 1), []string{"a", "b"}, "undefined variable")
	qt.Assert(t, qt.Equals(e.Error(), "a.b: undefined variable"))
}

func TestListErrNilWhenEmpty(t *testing.T) {
	var l diag.List
	qt.Assert(t, qt.IsNil(l.Err()))

	l.Addf(span.New(0, 1), nil, "bad %s", "thing")
	qt.Assert(t, qt.IsNotNil(l.Err()))
	qt.Assert(t, qt.HasLen(l, 1))
	qt.Assert(t, qt.Equals(l[0].Message, "bad thing"))
}

func TestListErrorSummary(t *testing.T) {
	var l diag.List
	l.Addf(span.New(0, 1), nil, "first")
	qt.Assert(t, qt.Equals(l.Error(), "first"))

	l.Addf(span.New(1, 2), nil, "second")
	qt.Assert(t, qt.Equals(l.Error(), "first (and 1 more errors)"))
}

func TestListSorted(t *testing.T) {
	var l diag.List
	l.Addf(span.New(5, 6), nil, "later")
	l.Addf(span.New(1, 2), nil, "earlier")

	sorted := l.Sorted()
	qt.Assert(t, qt.Equals(sorted[0].Message, "earlier"))
	qt.Assert(t, qt.Equals(sorted[1].Message, "later"))

	// Sorted returns a copy; the original discovery order is untouched.
	qt.Assert(t, qt.Equals(l[0].Message, "later"))
}

func TestPrint(t *testing.T) {
	var l diag.List
	l.Addf(span.New(0, 1), []string{"f"}, "oops")

	var buf bytes.Buffer
	diag.Print(&buf, l)
	qt.Assert(t, qt.Equals(buf.String(), "0..1: f: oops\n"))
}
