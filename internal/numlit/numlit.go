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

// Package numlit parses the unparsed numeric literal text HIR carries
// (hir.Number.Text) into the two native representations the MIR
// distinguishes, following jaq's Num::parse (original_source/jaq-core/src/mir.rs):
// text without a '.', 'e' or 'E' is an integer, everything else a float.
package numlit

import (
	"strconv"
	"strings"
)

// Result is the outcome of parsing one numeric literal.
type Result struct {
	IsInt bool
	I     int64
	F     float64
}

// Parse parses text into a numeric literal: dotless, exponentless text is
// attempted as a native-sized signed integer; anything else as an IEEE-754
// double. ok is false if the attempted parse failed, in which case Result
// is the zero value of the attempted kind (Int 0 or Float 0), so a caller
// can substitute a neutral placeholder and continue.
func Parse(text string) (r Result, ok bool) {
	if !strings.ContainsAny(text, ".eE") {
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Result{IsInt: true, I: 0}, false
		}
		return Result{IsInt: true, I: i}, true
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Result{IsInt: false, F: 0}, false
	}
	return Result{IsInt: false, F: f}, true
}
