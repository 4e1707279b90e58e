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

package resolve_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/baod-rate/jaq/hir"
	"github.com/baod-rate/jaq/mir"
	"github.com/baod-rate/jaq/resolve"
)

// TestArgIndicesPartition checks that ArgIndices partitions a definition's
// own parameter list into value- and filter-parameter index sets, each in
// declaration order, ignoring any parameters declared by ancestors.
func TestArgIndicesPartition(t *testing.T) {
	d := def("a",
		[]hir.Arg{
			hir.NewFilterArg("f"),
			hir.NewValueArg("x"),
			hir.NewFilterArg("g"),
			hir.NewValueArg("y"),
		},
		ident(0),
	)

	ctx := resolve.New(nil, "")
	ctx.RootDef(d)

	a := findChild(t, ctx.Defs, mir.RootID, "a")
	value, filter := ctx.Defs.Get(a).ArgIndices()

	qt.Assert(t, qt.DeepEquals(value, []int{1, 3}))
	qt.Assert(t, qt.DeepEquals(filter, []int{0, 2}))
}

// TestArgIndicesAllValue checks the degenerate all-value-parameter case:
// every index is a value index and no filter index is returned.
func TestArgIndicesAllValue(t *testing.T) {
	d := def("a", []hir.Arg{hir.NewValueArg("x"), hir.NewValueArg("y")}, ident(0))

	ctx := resolve.New(nil, "")
	ctx.RootDef(d)

	a := findChild(t, ctx.Defs, mir.RootID, "a")
	value, filter := ctx.Defs.Get(a).ArgIndices()

	qt.Assert(t, qt.DeepEquals(value, []int{0, 1}))
	qt.Assert(t, qt.HasLen(filter, 0))
}

// findChild returns the DefID of parent's direct child named name, failing
// the test if there is none.
func findChild(t *testing.T, defs *resolve.Defs, parent mir.DefID, name string) mir.DefID {
	t.Helper()
	for _, c := range defs.Get(parent).Children {
		if defs.Get(c).Name == name {
			return c
		}
	}
	t.Fatalf("no child named %q under DefID %d", name, parent)
	return 0
}

// TestSmallestCommonAncestor builds a small nested-definition tree:
//
//	def outer:
//	  def a: .;
//	  def b:
//	    def c: .;
//	    c;
//	  b;
//	outer
//
// and checks the LCA property: SmallestCommonAncestor(x, y) is a common
// prefix of both AncestorsAndSelf(x) and AncestorsAndSelf(y), and is the
// deepest such prefix.
func TestSmallestCommonAncestor(t *testing.T) {
	c := def("c", nil, ident(0))
	b := def("b", nil, call(1, "c"), c)
	a := def("a", nil, ident(2))
	outer := def("outer", nil, call(3, "b"), a, b)

	ctx := resolve.New(nil, "")
	ctx.RootDef(outer)

	outerID := findChild(t, ctx.Defs, mir.RootID, "outer")
	aID := findChild(t, ctx.Defs, outerID, "a")
	bID := findChild(t, ctx.Defs, outerID, "b")
	cID := findChild(t, ctx.Defs, bID, "c")

	// a and c's nearest shared enclosing definition is outer.
	lca := ctx.Defs.SmallestCommonAncestor(aID, cID)
	qt.Assert(t, qt.Equals(lca, outerID))
	assertIsPrefixOfBoth(t, ctx.Defs, lca, aID, cID)

	// b and c: c is nested directly inside b, so the LCA is b itself.
	lca = ctx.Defs.SmallestCommonAncestor(bID, cID)
	qt.Assert(t, qt.Equals(lca, bID))
	assertIsPrefixOfBoth(t, ctx.Defs, lca, bID, cID)

	// A DefID and itself: the LCA is itself.
	qt.Assert(t, qt.Equals(ctx.Defs.SmallestCommonAncestor(cID, cID), cID))
}

// assertIsPrefixOfBoth checks that lca occurs at the same, last-matching
// index of both AncestorsAndSelf(x) and AncestorsAndSelf(y): the defining
// property of a lowest common ancestor.
func assertIsPrefixOfBoth(t *testing.T, defs *resolve.Defs, lca, x, y mir.DefID) {
	t.Helper()
	px, py := defs.AncestorsAndSelf(x), defs.AncestorsAndSelf(y)

	idx := -1
	for i := 0; i < len(px) && i < len(py); i++ {
		if px[i] != py[i] {
			break
		}
		idx = i
	}
	if idx < 0 || px[idx] != lca {
		t.Fatalf("SmallestCommonAncestor = %d is not the deepest common prefix of %v and %v", lca, px, py)
	}
}
