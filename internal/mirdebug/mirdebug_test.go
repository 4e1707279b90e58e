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

package mirdebug_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/baod-rate/jaq/internal/mirdebug"
)

type point struct{ X, Y int }

func TestSprintContainsFieldValues(t *testing.T) {
	out := mirdebug.Sprint(point{X: 1, Y: 2})
	qt.Assert(t, qt.IsTrue(strings.Contains(out, "1")))
	qt.Assert(t, qt.IsTrue(strings.Contains(out, "2")))
}

func TestFprintWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	mirdebug.Fprint(&buf, point{X: 3, Y: 4})
	qt.Assert(t, qt.IsTrue(buf.Len() > 0))
	qt.Assert(t, qt.IsTrue(strings.Contains(buf.String(), "3")))
}
