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

// Package resolve implements the name-resolution and IR-lowering pass: it
// walks a parsed hir.Expr tree and produces an isomorphic mir.Expr tree in
// which every filter call and variable reference has been replaced by an
// integer reference, recording recursion and accumulating diagnostics along
// the way.
package resolve

import (
	"github.com/baod-rate/jaq/diag"
	"github.com/baod-rate/jaq/hir"
	"github.com/baod-rate/jaq/mir"
	"github.com/baod-rate/jaq/nativeset"
)

// A Context owns the identifier tables, the native-filter registry, the
// diagnostic accumulator, and the recursion set, for the lifetime of one
// lowering session. It is single-threaded and synchronous: every mutating
// method must be called from the session's one owning goroutine, and
// nothing here blocks or suspends.
type Context struct {
	Defs *Defs

	natives *nativeset.Set
	errs    diag.List

	// recs is the recursion set: a DefID is appended here every time a
	// call resolves to an ancestor of the calling definition, including the
	// caller itself. It is intentionally never cleared between root
	// definitions; duplicate entries are harmless since the finaliser's
	// write is idempotent.
	recs []mir.DefID
}

// New creates a Context whose root definition (DefID 0) has one
// value-parameter per name in globals, and whose native registry enforces
// version gating against toolchainVersion (pass "" to disable gating).
func New(globals []string, toolchainVersion string) *Context {
	return &Context{
		Defs:    newDefs(globals),
		natives: nativeset.NewSet(toolchainVersion),
	}
}

// InsertNative registers one native filter.
func (c *Context) InsertNative(e nativeset.Entry) {
	c.natives.Insert(e)
}

// Errors returns the diagnostics accumulated so far, in discovery order
// (depth-first, outermost-first over the HIR).
func (c *Context) Errors() diag.List {
	return c.errs
}

// InsertDefs imports a batch of top-level HIR definitions, as from a
// standard library, each via RootDef.
func (c *Context) InsertDefs(defs []*hir.Def) {
	for _, d := range defs {
		c.RootDef(d)
	}
}

// RootDef inserts one top-level definition as a child of the synthetic
// root, lowers its body (and those of everything nested inside it), then
// runs the recursion finaliser over the whole (never-cleared) recursion
// set accumulated so far.
func (c *Context) RootDef(d *hir.Def) {
	c.def([]mir.DefID{mir.RootID}, d)
	for _, rec := range c.recs {
		c.Defs.Get(rec).Recursive = true
	}
}

// RootFilter lowers expr in the synthetic root's scope — with no in-body
// variables bound yet — and stores the result as the root definition's
// body. This is the toolchain's main entry point, invoked once the user's
// own definitions (and the standard library's) have all been inserted via
// RootDef/InsertDefs, so that the filter it lowers can call any of them.
func (c *Context) RootFilter(expr hir.Expr) {
	c.Defs.Get(mir.RootID).Body = c.filter(mir.RootID, nil, expr)
}

// def performs two-phase definition insertion: d is allocated and registered
// as a child of its parent, with a placeholder body, before its nested
// definitions are inserted and before its own body is lowered, so that d's
// body can call d itself and every definition nested in d. Nested
// definitions are inserted one at a time, each lowered in full before the
// next is registered, so a nested definition's body sees itself and the
// siblings declared before it, but not those declared after it. ancestors
// is the path from the synthetic root down to (and including) d's parent.
func (c *Context) def(ancestors []mir.DefID, d *hir.Def) {
	id := c.Defs.alloc(Definition{
		Name:      d.Name,
		Args:      d.Args,
		Children:  nil,
		Ancestors: append([]mir.DefID(nil), ancestors...),
		Recursive: false,
		Body:      placeholderBody(),
	})

	parent := ancestors[len(ancestors)-1]
	p := c.Defs.Get(parent)
	p.Children = append(p.Children, id)

	childAncestors := append(ancestors, id)

	// d's nested definitions are all inserted (this loop) before d's own
	// body is lowered (below), so that resolving calls inside the body can
	// already see every one of them.
	for _, inner := range d.Defs {
		c.def(append([]mir.DefID(nil), childAncestors...), inner)
	}

	c.Defs.Get(id).Body = c.filter(id, nil, d.Body)
}
