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
	"github.com/baod-rate/jaq/internal/numlit"
	"github.com/baod-rate/jaq/mir"
	"github.com/baod-rate/jaq/span"
)

// errf records a diagnostic at sp tagged with the current definition's
// path, mirroring compiler.errf/compiler.path in cuelang.org/go's compile.go.
func (c *Context) errf(id mir.DefID, sp span.Span, format string, args ...interface{}) {
	c.errs.Addf(sp, c.path(id), format, args...)
}

// path returns the names of id's ancestors followed by id's own name,
// outermost first, skipping the nameless synthetic root, for use in
// diagnostic messages.
func (c *Context) path(id mir.DefID) []string {
	var out []string
	for _, aid := range c.Defs.AncestorsAndSelf(id) {
		if name := c.Defs.Get(aid).Name; name != "" {
			out = append(out, name)
		}
	}
	return out
}

// filter lowers a single HIR expression in the scope of definition id,
// with vars holding the in-body variable names bound so far, outermost
// first.
func (c *Context) filter(id mir.DefID, vars []string, e hir.Expr) mir.Expr {
	switch x := e.(type) {
	case *hir.Call:
		return c.call(id, vars, x)

	case *hir.Var:
		return c.variable(id, vars, x)

	case *hir.Binary:
		if x.Op == hir.OpPipe && x.Bind != "" {
			l := c.filter(id, vars, x.X)
			inner := append(append([]string(nil), vars...), x.Bind)
			r := c.filter(id, inner, x.Y)
			return &mir.Binary{Spanned: mir.Spanned{Src: x.Src}, X: l, Y: r, Op: x.Op, Bind: x.Bind}
		}
		return &mir.Binary{
			Spanned: mir.Spanned{Src: x.Src},
			X:       c.filter(id, vars, x.X),
			Y:       c.filter(id, vars, x.Y),
			Op:      x.Op,
		}

	case *hir.Fold:
		xs := c.filter(id, vars, x.Xs)
		init := c.filter(id, vars, x.Init)
		inner := append(append([]string(nil), vars...), x.X)
		f := c.filter(id, inner, x.F)
		return &mir.Fold{
			Spanned: mir.Spanned{Src: x.Src},
			Kind:    x.Kind,
			Xs:      xs,
			Init:    init,
			X:       x.X,
			F:       f,
		}

	case *hir.Identity:
		return &mir.Identity{Spanned: mir.Spanned{Src: x.Src}}

	case *hir.Number:
		return c.number(id, x)

	case *hir.String:
		return &mir.String{Spanned: mir.Spanned{Src: x.Src}, Value: x.Value}

	case *hir.Array:
		var f mir.Expr
		if x.F != nil {
			f = c.filter(id, vars, x.F)
		}
		return &mir.Array{Spanned: mir.Spanned{Src: x.Src}, F: f}

	case *hir.Object:
		pairs := make([]mir.KeyValue, len(x.Pairs))
		for i, kv := range x.Pairs {
			pairs[i] = mir.KeyValue{
				Key:   c.filter(id, vars, kv.Key),
				Value: c.filter(id, vars, kv.Value),
			}
		}
		return &mir.Object{Spanned: mir.Spanned{Src: x.Src}, Pairs: pairs}

	case *hir.Try:
		return &mir.Try{Spanned: mir.Spanned{Src: x.Src}, F: c.filter(id, vars, x.F)}

	case *hir.Neg:
		return &mir.Neg{Spanned: mir.Spanned{Src: x.Src}, F: c.filter(id, vars, x.F)}

	case *hir.Recurse:
		return &mir.Recurse{Spanned: mir.Spanned{Src: x.Src}}

	case *hir.IfThenElse:
		arms := make([]mir.IfArm, len(x.Arms))
		for i, a := range x.Arms {
			arms[i] = mir.IfArm{
				Cond: c.filter(id, vars, a.Cond),
				Then: c.filter(id, vars, a.Then),
			}
		}
		return &mir.IfThenElse{
			Spanned: mir.Spanned{Src: x.Src},
			Arms:    arms,
			Else:    c.filter(id, vars, x.Else),
		}

	case *hir.Path:
		subject := c.filter(id, vars, x.Subject)
		segments := make([]mir.PathSegment, len(x.Segments))
		for i, seg := range x.Segments {
			segments[i] = mir.PathSegment{
				Part:     c.pathPart(id, vars, seg.Part),
				Optional: seg.Optional,
			}
		}
		return &mir.Path{Spanned: mir.Spanned{Src: x.Src}, Subject: subject, Segments: segments}

	default:
		panic("resolve: unknown hir.Expr constructor")
	}
}

func (c *Context) pathPart(id mir.DefID, vars []string, p hir.PathPart) mir.PathPart {
	switch x := p.(type) {
	case hir.Index:
		return mir.Index{X: c.filter(id, vars, x.X)}
	case hir.Slice:
		var lo, hi mir.Expr
		if x.Lo != nil {
			lo = c.filter(id, vars, x.Lo)
		}
		if x.Hi != nil {
			hi = c.filter(id, vars, x.Hi)
		}
		return mir.Slice{Lo: lo, Hi: hi}
	default:
		panic("resolve: unknown hir.PathPart constructor")
	}
}

// number parses and lowers a numeric literal.
func (c *Context) number(id mir.DefID, x *hir.Number) mir.Expr {
	r, ok := numlit.Parse(x.Text)
	if !ok {
		if r.IsInt {
			c.errf(id, x.Src, "cannot interpret as machine-size integer")
		} else {
			c.errf(id, x.Src, "cannot interpret as floating-point number")
		}
	}
	return &mir.Num{Spanned: mir.Spanned{Src: x.Src}, IsInt: r.IsInt, I: r.I, F: r.F}
}

// variable resolves a $-reference against the in-scope parameter and
// in-body variable stack.
func (c *Context) variable(id mir.DefID, vars []string, x *hir.Var) mir.Expr {
	var stack []string
	for _, a := range c.Defs.ArgsInScope(id) {
		if name, ok := a.ValueName(); ok {
			stack = append(stack, name)
		}
	}
	stack = append(stack, vars...)

	pos := -1
	for i, name := range stack {
		if name == x.Name {
			pos = i
		}
	}
	if pos < 0 {
		c.errf(id, x.Src, "undefined variable")
		return &mir.Var{Spanned: mir.Spanned{Src: x.Src}, Position: 0}
	}
	// The stack is outermost-first; the MIR position counts from the
	// innermost (last) binder.
	return &mir.Var{Spanned: mir.Spanned{Src: x.Src}, Position: len(stack) - 1 - pos}
}
