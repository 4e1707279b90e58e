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

// Package hir declares the high-level syntax tree produced by the parser
// (external to this module). Every node carries the span the parser
// observed for it; the resolver copies these through unchanged into the
// MIR it produces.
//
// The shape mirrors cuelang.org/go/cue/ast: a small closed Expr interface
// tagged by an unexported method, with one exported struct per constructor.
package hir

import "github.com/baod-rate/jaq/span"

// An Expr is any HIR expression node.
type Expr interface {
	Span() span.Span
	hirExpr()
}

// Spanned is embedded by every concrete Expr to carry the byte range the
// parser observed for it. Embed it directly when constructing a node, e.g.
// &Call{Spanned: Spanned{Src: sp}, Name: "length"}.
type Spanned struct{ Src span.Span }

func (s Spanned) Span() span.Span { return s.Src }

// Op identifies a binary operator, including the pipe, whose right-hand
// side may additionally bind a variable (see Binary.Bind).
type Op int

const (
	OpPipe Op = iota
	OpComma
	OpAlt // //
	OpOr
	OpAnd
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpAssign
	OpUpdateAssign // |=
	OpAltAssign    // //=
)

// FoldKind distinguishes the two jq-style accumulation constructs that
// share the xs/x/init/f shape.
type FoldKind int

const (
	FoldReduce FoldKind = iota
	FoldForEach
)

// Call is a reference to a named filter, `name(args...)`, or a nullary
// reference `name` when len(Args) == 0.
type Call struct {
	Spanned
	Name string
	Args []Expr
}

func (*Call) hirExpr() {}

// Var is a `$name` reference.
type Var struct {
	Spanned
	Name string
}

func (*Var) hirExpr() {}

// Binary is any two-operand expression. For Op == OpPipe, Bind is the
// variable name bound by `l as $x | r`; Bind is empty for a plain pipe or
// any other operator.
type Binary struct {
	Spanned
	X, Y Expr
	Op   Op
	Bind string
}

func (*Binary) hirExpr() {}

// Fold is jq's `reduce xs as $x (init; f)` / `foreach xs as $x (init; f)`.
type Fold struct {
	Spanned
	Kind     FoldKind
	Xs, Init Expr
	X        string
	F        Expr
}

func (*Fold) hirExpr() {}

// Identity is `.`.
type Identity struct{ Spanned }

func (*Identity) hirExpr() {}

// Number is an unparsed numeric literal, exactly as scanned.
type Number struct {
	Spanned
	Text string
}

func (*Number) hirExpr() {}

// String is a literal string with no remaining interpolation to resolve.
type String struct {
	Spanned
	Value string
}

func (*String) hirExpr() {}

// Array is `[f]` or, when F is nil, the empty array literal `[]`.
type Array struct {
	Spanned
	F Expr
}

func (*Array) hirExpr() {}

// KeyValue is one `key: value` pair of an Object literal.
type KeyValue struct {
	Key, Value Expr
}

// Object is `{...}`.
type Object struct {
	Spanned
	Pairs []KeyValue
}

func (*Object) hirExpr() {}

// Try is `try f`.
type Try struct {
	Spanned
	F Expr
}

func (*Try) hirExpr() {}

// Neg is unary `-f`.
type Neg struct {
	Spanned
	F Expr
}

func (*Neg) hirExpr() {}

// Recurse is `..`.
type Recurse struct{ Spanned }

func (*Recurse) hirExpr() {}

// IfArm is one `if`/`elif` condition/branch pair.
type IfArm struct {
	Cond, Then Expr
}

// IfThenElse is `if c1 then t1 elif c2 then t2 ... else e end`.
type IfThenElse struct {
	Spanned
	Arms []IfArm
	Else Expr
}

func (*IfThenElse) hirExpr() {}

// A PathPart is one component of a path segment: either an index expression
// or a slice with optional lower/upper bounds.
type PathPart interface {
	pathPart()
}

// Index is `[x]` or `.x` as a path component.
type Index struct{ X Expr }

func (Index) pathPart() {}

// Slice is `[lo:hi]`; either bound may be nil.
type Slice struct{ Lo, Hi Expr }

func (Slice) pathPart() {}

// PathSegment is one step of a Path, with the jq `?` optional marker.
type PathSegment struct {
	Part     PathPart
	Optional bool
}

// Path is `f.a[b].c?` etc: a subject expression followed by an ordered
// list of access segments.
type Path struct {
	Spanned
	Subject  Expr
	Segments []PathSegment
}

func (*Path) hirExpr() {}

// Arg is one parameter declaration of a Def: either a value parameter
// (bound as a $-variable at call time) or a filter parameter (bound as a
// callable sub-filter).
type Arg struct {
	IsValue bool
	Name    string
}

// NewValueArg returns a value-parameter declaration named name.
func NewValueArg(name string) Arg { return Arg{IsValue: true, Name: name} }

// NewFilterArg returns a filter-parameter declaration named name.
func NewFilterArg(name string) Arg { return Arg{IsValue: false, Name: name} }

// ValueName returns (name, true) if a is a value parameter.
func (a Arg) ValueName() (string, bool) {
	if a.IsValue {
		return a.Name, true
	}
	return "", false
}

// FilterName returns (name, true) if a is a filter parameter.
func (a Arg) FilterName() (string, bool) {
	if !a.IsValue {
		return a.Name, true
	}
	return "", false
}

// Def is `def name(args): body;`, with zero or more nested definitions
// visible only inside Body and inside each other's bodies; a nested
// definition sees itself and the nested definitions declared before it,
// not those declared after it.
type Def struct {
	Name string
	Args []Arg
	Defs []*Def
	Body Expr
}
