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

// call lowers a Call's arguments, then resolves its callee by walking the
// calling definition's ancestor chain from outermost to innermost,
// preferring (in order at each ancestor) a matching sibling definition,
// then a nullary filter-parameter, before falling back, once the whole
// chain is exhausted, to the native registry.
func (c *Context) call(id mir.DefID, vars []string, x *hir.Call) mir.Expr {
	args := make([]mir.Expr, len(x.Args))
	for i, a := range x.Args {
		args[i] = c.filter(id, vars, a)
	}

	ancestors := c.Defs.AncestorsAndSelf(id)

	for _, ancestor := range ancestors {
		if target, ok := c.resolveAtAncestor(id, ancestors, ancestor, x, args); ok {
			return target
		}
	}

	if entry, ok := c.natives.Lookup(x.Name, len(args)); ok {
		return &mir.Call{
			Spanned: mir.Spanned{Src: x.Src},
			Target:  mir.NativeTarget{Handle: entry.Handle},
			Args:    args,
		}
	}

	c.errf(id, x.Src, "could not find function")
	return &mir.Identity{Spanned: mir.Spanned{Src: x.Src}}
}

// resolveAtAncestor tries to resolve one call at a single ancestor scope:
// a matching sibling definition first, then a matching nullary
// filter-parameter. It reports ok=false to signal "continue outward to the
// next ancestor".
func (c *Context) resolveAtAncestor(
	callerID mir.DefID,
	callerAncestors []mir.DefID,
	ancestor mir.DefID,
	x *hir.Call,
	args []mir.Expr,
) (mir.Expr, bool) {
	children := c.Defs.Get(ancestor).Children

	// Later declarations shadow earlier ones: scan in reverse.
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		cd := c.Defs.Get(child)
		if cd.Name != x.Name || cd.Arity() != len(args) {
			continue
		}

		if isAncestorOrSelf(callerAncestors, child) {
			if anyFilterParam(cd.Args) {
				c.errf(callerID, x.Src,
					"attempting to recursively call filter with non-variable argument")
			}
			c.recs = append(c.recs, child)
		}

		return &mir.Call{
			Spanned: mir.Spanned{Src: x.Src},
			Target:  mir.DefTarget{ID: child},
			Args:    args,
		}, true
	}

	// Filter-parameters are not higher-order: only a nullary reference can
	// resolve to one.
	if len(args) == 0 {
		if pos, ok := c.Defs.FilterArgPosition(ancestor, x.Name); ok {
			return &mir.Call{
				Spanned: mir.Spanned{Src: x.Src},
				Target:  mir.ArgTarget{Position: pos},
				Args:    nil,
			}, true
		}
	}

	return nil, false
}

func isAncestorOrSelf(ancestors []mir.DefID, id mir.DefID) bool {
	for _, a := range ancestors {
		if a == id {
			return true
		}
	}
	return false
}

func anyFilterParam(args []hir.Arg) bool {
	for _, a := range args {
		if !a.IsValue {
			return true
		}
	}
	return false
}
