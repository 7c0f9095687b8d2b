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

package constraint

import (
	set "github.com/hashicorp/go-set/v3"
	"github.com/wdamron/vtype/types"
)

// Generate computes the constraints on the variables named in vars under which sub is a subtype
// of super. False is returned if no assignment of the variables can make sub a subtype of super.
//
// Variables which are not named in vars are rigid: they only relate to themselves.
func Generate(vars *set.Set[string], sub, super types.Type) (Set, bool) {
	if v, ok := sub.(*types.Var); ok && vars.Contains(v.Name) {
		return Single(v.Name, &Subtype{Lower: types.Never, Upper: super}), true
	}
	if v, ok := super.(*types.Var); ok && vars.Contains(v.Name) {
		return Single(v.Name, &Subtype{Lower: sub, Upper: types.Any}), true
	}
	if types.HasTag(sub, types.NeverTag) || types.HasTag(super, types.AnyTag) {
		return NewSet(), true
	}

	switch a := sub.(type) {
	case *types.Var:
		if b, ok := super.(*types.Var); ok && a.Name == b.Name {
			return NewSet(), true
		}
		return Set{}, false

	case *types.Forall:
		b, ok := super.(*types.Forall)
		if !ok || len(a.Vars) != len(b.Vars) {
			return Set{}, false
		}
		for i := range a.Vars {
			if a.Vars[i] != b.Vars[i] {
				return Set{}, false
			}
		}
		inner := vars.Copy()
		for _, name := range a.Vars {
			inner.Remove(name)
		}
		return Generate(inner, a.Body, b.Body)

	case *types.Variadic:
		switch b := super.(type) {
		case *types.Variadic:
			if a.MinArgs == b.MinArgs && a.MaxArgs == b.MaxArgs && len(a.Args) == len(b.Args) {
				return generateParams(vars, a, b)
			}
		case *types.Concrete:
			if cs, ok := generateVariadic(vars, a, b); ok {
				return cs, true
			}
		}

	case *types.Concrete:
		if b, ok := super.(*types.Concrete); ok && a.Tag == b.Tag && a.Params.Len() == b.Params.Len() {
			return generateParams(vars, a, b)
		}
	}

	// Without constrainable variables, the relationship is fixed:
	if !mentions(vars, sub) && !mentions(vars, super) && types.IsSubtype(sub, super) {
		return NewSet(), true
	}
	return Set{}, false
}

func mentions(vars *set.Set[string], t types.Type) bool {
	for _, name := range types.FreeVars(t).Slice() {
		if vars.Contains(name) {
			return true
		}
	}
	return false
}

// Parameters are constrained according to their variance. Invariant parameters are constrained
// in both directions.
func generateParams(vars *set.Set[string], sub, super types.Type) (Set, bool) {
	ps, qs := types.Params(sub), types.Params(super)
	if len(ps) != len(qs) {
		return Set{}, false
	}
	result := NewSet()
	for i, v := range types.ParamVariance(sub) {
		p, q := ps[i], qs[i]
		if p.Name != q.Name {
			return Set{}, false
		}
		var (
			cs Set
			ok bool
		)
		switch v {
		case types.Covariant:
			cs, ok = Generate(vars, p.Type, q.Type)
		case types.Contravariant:
			cs, ok = Generate(vars, q.Type, p.Type)
		default:
			var down, up Set
			if down, ok = Generate(vars, p.Type, q.Type); ok {
				if up, ok = Generate(vars, q.Type, p.Type); ok {
					cs, ok = down.Meet(up)
				}
			}
		}
		if !ok {
			return Set{}, false
		}
		if result, ok = result.Meet(cs); !ok {
			return Set{}, false
		}
	}
	return result, true
}

// A variadic function type is constrained against the first fixed arity in its range at which the
// curried function type super can be applied.
func generateVariadic(vars *set.Set[string], v *types.Variadic, super *types.Concrete) (Set, bool) {
	depth := curriedDepth(super)
	for k := v.MinArgs; (v.MaxArgs < 0 || k <= v.MaxArgs) && k <= depth; k++ {
		if cs, ok := generateFixed(vars, v, k, super); ok {
			return cs, true
		}
	}
	return Set{}, false
}

// Count the arguments of a curried function type.
func curriedDepth(t types.Type) int {
	depth := 0
	for {
		c, ok := t.(*types.Concrete)
		if !ok || c.Tag != types.FunctionTag {
			return depth
		}
		depth++
		t, _ = c.Params.Get(types.OutParam)
	}
}

// Variadic arguments follow the same direction as variadic subtyping: each variadic argument
// type must be a subtype of the corresponding fixed argument type.
func generateFixed(vars *set.Set[string], v *types.Variadic, k int, t types.Type) (Set, bool) {
	result := NewSet()
	for i := 0; i < k; i++ {
		c, ok := t.(*types.Concrete)
		if !ok || c.Tag != types.FunctionTag {
			return Set{}, false
		}
		in, _ := c.Params.Get(types.InParam)
		cs, ok := Generate(vars, v.ArgAt(i), in)
		if !ok {
			return Set{}, false
		}
		if result, ok = result.Meet(cs); !ok {
			return Set{}, false
		}
		t, _ = c.Params.Get(types.OutParam)
	}
	if k == 0 {
		c, ok := t.(*types.Concrete)
		if !ok || c.Tag != types.ProcedureTag {
			return Set{}, false
		}
		t, _ = c.Params.Get(types.OutParam)
	}
	cs, ok := Generate(vars, v.Out, t)
	if !ok {
		return Set{}, false
	}
	return result.Meet(cs)
}
