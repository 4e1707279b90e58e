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

// Package mirdebug renders definition tables and MIR trees for debugging
// the resolver itself, the same role cuelang.org/go/internal/core/debug
// plays for compile.go's output in its test suite, minus that package's
// concern with reproducing CUE source syntax — this is diagnostic output,
// not a serializer.
package mirdebug

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
)

// Fprint writes a Go-syntax-like, indented rendering of v to w using
// kr/pretty, a low-ceremony struct-dumping library.
func Fprint(w io.Writer, v interface{}) {
	fmt.Fprintln(w, pretty.Sprint(v))
}

// Sprint is the string-returning form of Fprint, convenient for use
// directly in test failure messages.
func Sprint(v interface{}) string {
	return pretty.Sprint(v)
}
