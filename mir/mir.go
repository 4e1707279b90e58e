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

// Package mir declares the mid-level intermediate representation produced
// by the resolver: a tree structurally identical to hir.Expr except that
// every name has been replaced by an integer reference.
package mir

import (
	"github.com/baod-rate/jaq/hir"
	"github.com/baod-rate/jaq/nativeset"
	"github.com/baod-rate/jaq/span"
)

// A DefID is the dense, append-only, never-renumbered identifier of a
// Definition. DefID 0 always denotes the synthetic root.
type DefID uint32

// RootID is the DefID of the synthetic root definition.
const RootID DefID = 0

// An Expr is any MIR expression node. Every constructor here corresponds
// 1:1 to an hir.Expr constructor; see that package for the HIR shape this
// was lowered from.
type Expr interface {
	Span() span.Span
	mirExpr()
}

// Spanned is embedded by every concrete Expr; see hir.Spanned, whose byte
// range it carries through unchanged.
type Spanned struct{ Src span.Span }

func (s Spanned) Span() span.Span { return s.Src }

// A CallTarget is where a resolved Call dispatches to.
type CallTarget interface {
	callTarget()
}

// DefTarget calls a user (or standard library) definition.
type DefTarget struct{ ID DefID }

func (DefTarget) callTarget() {}

// ArgTarget invokes a lexically enclosing filter-parameter. These are
// always nullary: a filter-parameter cannot itself be called with
// arguments.
type ArgTarget struct{ Position int }

func (ArgTarget) callTarget() {}

// NativeTarget calls a registered native filter.
type NativeTarget struct{ Handle nativeset.Handle }

func (NativeTarget) callTarget() {}

// Call is a lowered hir.Call: its Target has already been resolved to a
// definition, an argument position, or a native handle.
type Call struct {
	Spanned
	Target CallTarget
	Args   []Expr
}

func (*Call) mirExpr() {}

// Var is a lowered hir.Var: Position counts from the innermost binder (0 =
// innermost) into the concatenation of the enclosing definition's
// value-parameters (outermost ancestor to self) followed by in-body bound
// variables.
type Var struct {
	Spanned
	Position int
}

func (*Var) mirExpr() {}

// Binary mirrors hir.Binary. Bind, when Op == hir.OpPipe, is carried
// through unchanged for diagnostic purposes (e.g. pretty-printing); it has
// no effect on Var resolution, which already happened during lowering.
type Binary struct {
	Spanned
	X, Y Expr
	Op   hir.Op
	Bind string
}

func (*Binary) mirExpr() {}

// Fold mirrors hir.Fold.
type Fold struct {
	Spanned
	Kind     hir.FoldKind
	Xs, Init Expr
	X        string
	F        Expr
}

func (*Fold) mirExpr() {}

// Identity is `.`.
type Identity struct{ Spanned }

func (*Identity) mirExpr() {}

// Num is a lowered numeric literal, pre-parsed into exactly one of the two
// native representations jq distinguishes at the value-model boundary.
type Num struct {
	Spanned
	IsInt bool
	I     int64
	F     float64
}

func (*Num) mirExpr() {}

// String is a literal string, copied through verbatim.
type String struct {
	Spanned
	Value string
}

func (*String) mirExpr() {}

// Array mirrors hir.Array.
type Array struct {
	Spanned
	F Expr // nil for the empty array literal
}

func (*Array) mirExpr() {}

// KeyValue is one lowered key/value pair of an Object.
type KeyValue struct {
	Key, Value Expr
}

// Object mirrors hir.Object.
type Object struct {
	Spanned
	Pairs []KeyValue
}

func (*Object) mirExpr() {}

// Try mirrors hir.Try.
type Try struct {
	Spanned
	F Expr
}

func (*Try) mirExpr() {}

// Neg mirrors hir.Neg.
type Neg struct {
	Spanned
	F Expr
}

func (*Neg) mirExpr() {}

// Recurse is `..`.
type Recurse struct{ Spanned }

func (*Recurse) mirExpr() {}

// IfArm is one lowered condition/branch pair.
type IfArm struct {
	Cond, Then Expr
}

// IfThenElse mirrors hir.IfThenElse.
type IfThenElse struct {
	Spanned
	Arms []IfArm
	Else Expr
}

func (*IfThenElse) mirExpr() {}

// PathPart mirrors hir.PathPart.
type PathPart interface {
	pathPart()
}

// Index mirrors hir.Index.
type Index struct{ X Expr }

func (Index) pathPart() {}

// Slice mirrors hir.Slice.
type Slice struct{ Lo, Hi Expr }

func (Slice) pathPart() {}

// PathSegment mirrors hir.PathSegment.
type PathSegment struct {
	Part     PathPart
	Optional bool
}

// Path mirrors hir.Path.
type Path struct {
	Spanned
	Subject  Expr
	Segments []PathSegment
}

func (*Path) mirExpr() {}
