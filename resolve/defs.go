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

package resolve

import (
	"github.com/baod-rate/jaq/hir"
	"github.com/baod-rate/jaq/mir"
)

// A Definition is one entry of the append-only definition table: a named,
// arity-fixed filter, its declaration-order nested definitions, its
// ancestor path, and (once lowering of its body has completed) its
// recursion status and MIR body.
type Definition struct {
	Name      string
	Args      []hir.Arg
	Children  []mir.DefID
	Ancestors []mir.DefID
	Recursive bool
	Body      mir.Expr
}

// Arity is len(Args): the number of parameters this definition takes.
func (d *Definition) Arity() int {
	return len(d.Args)
}

// ArgIndices partitions the indices of d's own Args (not those of its
// ancestors) into value-parameter and filter-parameter indices, preserving
// declaration order within each. This is the Go analogue of jaq's
// Def::var_nonvar_arg_idxs, a pure accessor a downstream interpreter needs
// to lay out its argument stack.
func (d *Definition) ArgIndices() (value, filter []int) {
	for i, a := range d.Args {
		if a.IsValue {
			value = append(value, i)
		} else {
			filter = append(filter, i)
		}
	}
	return value, filter
}

// placeholderBody is the bogus body installed at definition-insertion time,
// before the real body has been lowered by Context.def. No caller may
// observe it once root-level lowering returns.
func placeholderBody() mir.Expr {
	return &mir.Identity{}
}

// Defs is the identifier table: an append-only sequence of Definitions,
// indexed by the dense DefID each was allocated when first encountered in
// the HIR. DefID 0 is always the synthetic root, whose Args are
// value-parameters named after the globals supplied to newDefs.
type Defs struct {
	defs []Definition
}

// newDefs creates the table with just the synthetic root definition, whose
// parameters are value parameters named after globals, in order.
func newDefs(globals []string) *Defs {
	args := make([]hir.Arg, len(globals))
	for i, g := range globals {
		args[i] = hir.NewValueArg(g)
	}
	return &Defs{defs: []Definition{{
		Name:      "",
		Args:      args,
		Children:  nil,
		Ancestors: nil,
		Recursive: false,
		Body:      placeholderBody(),
	}}}
}

// alloc appends a new Definition and returns its freshly assigned DefID.
func (t *Defs) alloc(d Definition) mir.DefID {
	id := mir.DefID(len(t.defs))
	t.defs = append(t.defs, d)
	return id
}

// Get is the total accessor over the table: every DefID ever handed out by
// this Defs remains valid for its lifetime.
func (t *Defs) Get(id mir.DefID) *Definition {
	return &t.defs[id]
}

// Len reports the number of definitions in the table, including the root.
func (t *Defs) Len() int {
	return len(t.defs)
}

// AncestorsAndSelf returns ancestors(id) ++ [id], outermost first.
func (t *Defs) AncestorsAndSelf(id mir.DefID) []mir.DefID {
	a := t.defs[id].Ancestors
	out := make([]mir.DefID, len(a)+1)
	copy(out, a)
	out[len(a)] = id
	return out
}

// SmallestCommonAncestor returns the deepest DefID that is a prefix of both
// AncestorsAndSelf(a) and AncestorsAndSelf(b). Exposed for API parity with
// jaq's Defs::smallest_common_ancestor; this resolver does not itself
// consume it.
func (t *Defs) SmallestCommonAncestor(a, b mir.DefID) mir.DefID {
	pa, pb := t.AncestorsAndSelf(a), t.AncestorsAndSelf(b)
	last := mir.RootID
	for i := 0; i < len(pa) && i < len(pb); i++ {
		if pa[i] != pb[i] {
			break
		}
		last = pa[i]
	}
	return last
}

// ArgsInScope yields, outermost first, every Argument declared along
// AncestorsAndSelf(id) — i.e. id's own parameters preceded by those of
// every enclosing definition.
func (t *Defs) ArgsInScope(id mir.DefID) []hir.Arg {
	var out []hir.Arg
	for _, aid := range t.AncestorsAndSelf(id) {
		out = append(out, t.defs[aid].Args...)
	}
	return out
}

// FilterArgPosition returns the position of the rightmost filter-parameter
// named name among id's own parameters, offset by the count of
// filter-parameters declared in ancestors(id) (not including id). ok is
// false if id declares no filter-parameter of that name.
func (t *Defs) FilterArgPosition(id mir.DefID, name string) (pos int, ok bool) {
	own := t.defs[id].Args
	idx := -1
	for i, a := range own {
		if n, isFilter := a.FilterName(); isFilter && n == name {
			idx = i
		}
	}
	if idx < 0 {
		return 0, false
	}
	// idx counts a position within id's own Args slice, which also holds
	// value parameters; the target position space is filter-parameters
	// only, so translate idx into a rank among id's own filter-parameters.
	rank := 0
	for i := 0; i < idx; i++ {
		if _, isFilter := own[i].FilterName(); isFilter {
			rank++
		}
	}
	offset := 0
	for _, aid := range t.defs[id].Ancestors {
		for _, a := range t.defs[aid].Args {
			if !a.IsValue {
				offset++
			}
		}
	}
	return offset + rank, true
}
