// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package vtype

import (
	"github.com/pkg/errors"
	"github.com/wdamron/vtype/internal/util"
	"github.com/wdamron/vtype/types"
)

// unificationStore maps each unknown to its equivalence class. The value of a class is either one
// of its unknowns (unsolved) or the type which the class has been bound to.
type unificationStore = util.UnionFind[int, types.Type]

func newUnificationStore() *unificationStore {
	return util.NewUnionFind[int, types.Type](preferSolved)
}

// Classes keep a solved type over a placeholder; between two placeholders, the first is kept.
func preferSolved(a, b types.Type) types.Type {
	if types.IsUnknown(a) && !types.IsUnknown(b) {
		return b
	}
	return a
}

// Substitute every unknown within t by its solution in store. Unsolved unknowns are replaced by the
// canonical unknown of their class.
func resolveIn(store *unificationStore, t types.Type) types.Type {
	switch t := t.(type) {
	case *types.Unknown:
		v, ok := store.Representative(t.Id)
		if !ok {
			return t
		}
		if u, unsolved := v.(*types.Unknown); unsolved {
			return u
		}
		return resolveIn(store, v)
	case *types.Var:
		return t
	case *types.Forall:
		if !types.ContainsUnknowns(t.Body) {
			return t
		}
		return &types.Forall{Vars: t.Vars, Body: resolveIn(store, t.Body)}
	}
	if !types.ContainsUnknowns(t) {
		return t
	}
	return types.MapParams(t, func(p types.Type) types.Type { return resolveIn(store, p) })
}

func (c *Context) resolve(t types.Type) types.Type { return resolveIn(c.store, t) }

// Resolve the outermost unknown of t, if any. When t is an unknown, the root id of its class is
// also returned.
func (c *Context) shallow(t types.Type) (types.Type, int, bool) {
	u, ok := t.(*types.Unknown)
	if !ok {
		return t, 0, false
	}
	root, ok := c.store.Root(u.Id)
	if !ok {
		return t, 0, false
	}
	v, _ := c.store.Representative(root)
	return v, root, true
}

// Allocate a fresh unknown.
func (c *Context) fresh() *types.Unknown {
	u := &types.Unknown{Id: c.nextId}
	c.nextId++
	c.store.AddSingleton(u.Id, u)
	return u
}

// Unify a and b, which originate from the expressions at sa and sb.
func (c *Context) unify(a, b types.Type, sa, sb Site) error {
	_, err := c.coerce(a, b, sa, sb)
	return err
}

// Unify a and b, returning the type both sides now share. Where Number meets Integer, the result
// holds Integer, and every class whose value was rebuilt by the promotion is rebound to the
// rebuilt structure.
func (c *Context) coerce(a, b types.Type, sa, sb Site) (types.Type, error) {
	origA, origB := a, b
	a, rootA, fromA := c.shallow(a)
	b, rootB, fromB := c.shallow(b)

	ua, unknownA := a.(*types.Unknown)
	ub, unknownB := b.(*types.Unknown)
	switch {
	case unknownA && unknownB:
		c.store.Union(ua.Id, ub.Id)
		return origA, nil
	case unknownA:
		return origA, c.bind(ua, b, sa, sb)
	case unknownB:
		return origB, c.bind(ub, a, sb, sa)
	}

	switch a.(type) {
	case *types.Var, *types.Forall:
		return nil, errors.Errorf("Type-variables must be instantiated before unification: %s", types.TypeString(a))
	}
	switch b.(type) {
	case *types.Var, *types.Forall:
		return nil, errors.Errorf("Type-variables must be instantiated before unification: %s", types.TypeString(b))
	}

	if types.HasTag(a, types.AnyTag) || types.HasTag(b, types.AnyTag) {
		return origA, nil
	}

	// Numeric promotion rebinds the class which held Number:
	if types.HasTag(a, types.NumberTag) && types.HasTag(b, types.IntegerTag) {
		if fromA {
			c.store.Set(rootA, b)
		}
		return origB, nil
	}
	if types.HasTag(a, types.IntegerTag) && types.HasTag(b, types.NumberTag) {
		if fromB {
			c.store.Set(rootB, a)
		}
		return origA, nil
	}

	switch a := a.(type) {
	case *types.Variadic:
		return origA, c.unifyVariadic(a, b, sa, sb, false)
	case *types.Concrete:
		switch b := b.(type) {
		case *types.Variadic:
			return origA, c.unifyVariadic(b, a, sb, sa, true)
		case *types.Concrete:
			if a.Tag != b.Tag || a.Params.Len() != b.Params.Len() {
				return nil, c.mismatch(a, b, sa, sb)
			}
			params := a.Params
			for i, n := 0, a.Params.Len(); i < n; i++ {
				pa, pb := a.Params.At(i), b.Params.At(i)
				if pa.Name != pb.Name {
					return nil, c.mismatch(a, b, sa, sb)
				}
				t, err := c.coerce(pa.Type, pb.Type, sa, sb)
				if err != nil {
					return nil, err
				}
				if t != pa.Type {
					params = params.Set(i, t)
				}
			}
			merged := types.Type(a)
			if params != a.Params {
				merged = &types.Concrete{Tag: a.Tag, Params: params}
			}
			switch {
			case fromA:
				c.rebind(rootA, a, merged)
				if fromB {
					c.rebind(rootB, b, merged)
				}
				return origA, nil
			case fromB:
				c.rebind(rootB, b, merged)
				return origB, nil
			}
			return merged, nil
		}
	}
	return nil, c.mismatch(a, b, sa, sb)
}

// Replace the solved value of the class at root by t, unless the class would then contain itself.
func (c *Context) rebind(root int, value, t types.Type) {
	if t == value || c.occursRoot(root, c.resolve(t)) {
		return
	}
	c.store.Set(root, t)
}

// A variadic function unifies with another variadic function of the same shape, or with the
// fixed-arity instance matching a curried function or procedure type.
func (c *Context) unifyVariadic(v *types.Variadic, other types.Type, sv, so Site, swapped bool) error {
	order := func(x, y types.Type) (types.Type, types.Type) {
		if swapped {
			return y, x
		}
		return x, y
	}
	switch o := other.(type) {
	case *types.Variadic:
		if v.MinArgs != o.MinArgs || v.MaxArgs != o.MaxArgs || len(v.Args) != len(o.Args) {
			break
		}
		for i := range v.Args {
			if err := c.unify(v.Args[i], o.Args[i], sv, so); err != nil {
				return err
			}
		}
		return c.unify(v.Out, o.Out, sv, so)

	case *types.Concrete:
		if o.Tag == types.ProcedureTag {
			if v.Accepts(0) {
				return c.unify(v.Fixed(0), o, sv, so)
			}
			break
		}
		for k, depth := 1, c.curriedDepth(o); k <= depth; k++ {
			if v.Accepts(k) {
				return c.unify(v.Fixed(k), o, sv, so)
			}
		}
	}
	a, b := order(v, other)
	sa, sb := sv, so
	if swapped {
		sa, sb = so, sv
	}
	return c.mismatch(a, b, sa, sb)
}

// Count the arguments of a curried function type, following solved unknowns.
func (c *Context) curriedDepth(t types.Type) int {
	depth := 0
	for {
		t, _, _ = c.shallow(t)
		if !types.HasTag(t, types.FunctionTag) || types.IsVariadic(t) {
			return depth
		}
		depth++
		t, _ = t.(*types.Concrete).Params.Get(types.OutParam)
	}
}

func (c *Context) mismatch(a, b types.Type, sa, sb Site) error {
	return &TypeMismatch{Site: sa, Other: sb, Left: c.resolve(a), Right: c.resolve(b)}
}

// Bind the unsolved unknown u to t, unless u occurs within t.
func (c *Context) bind(u *types.Unknown, t types.Type, su, st Site) error {
	rt := c.resolve(t)
	if c.occurs(u, rt) {
		return &OccursCheckFailure{Site: su, Other: st, Unknown: u, Type: rt}
	}
	c.store.Set(u.Id, rt)
	return nil
}

// Check if the unsolved unknown u occurs within the resolved type t.
func (c *Context) occurs(u *types.Unknown, t types.Type) bool {
	root, _ := c.store.Root(u.Id)
	return c.occursRoot(root, t)
}

func (c *Context) occursRoot(root int, t types.Type) bool {
	found := false
	types.WalkUnknowns(t, func(w *types.Unknown) {
		if r, ok := c.store.Root(w.Id); ok && r == root {
			found = true
		}
	})
	return found
}
