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

package numlit_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/baod-rate/jaq/internal/numlit"
)

func TestParseInteger(t *testing.T) {
	r, ok := numlit.Parse("42")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(r.IsInt))
	qt.Assert(t, qt.Equals(r.I, int64(42)))
}

func TestParseNegativeInteger(t *testing.T) {
	r, ok := numlit.Parse("-7")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(r.IsInt))
	qt.Assert(t, qt.Equals(r.I, int64(-7)))
}

func TestParseFloatDot(t *testing.T) {
	r, ok := numlit.Parse("3.5")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsFalse(r.IsInt))
	qt.Assert(t, qt.Equals(r.F, 3.5))
}

func TestParseFloatExponent(t *testing.T) {
	r, ok := numlit.Parse("1e3")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsFalse(r.IsInt))
	qt.Assert(t, qt.Equals(r.F, 1000.0))
}

func TestParseBadInteger(t *testing.T) {
	r, ok := numlit.Parse("99999999999999999999999999999")
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.IsTrue(r.IsInt))
	qt.Assert(t, qt.Equals(r.I, int64(0)))
}

func TestParseBadFloat(t *testing.T) {
	r, ok := numlit.Parse("1.2.3")
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.IsFalse(r.IsInt))
	qt.Assert(t, qt.Equals(r.F, 0.0))
}
