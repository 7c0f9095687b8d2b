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
	"github.com/wdamron/vtype/types"
)

// VarianceOf computes the variance of the type variable name within t: Constant when it does not
// occur (or is shadowed by a Forall), otherwise the combined variance of every occurrence. An
// invariant occurrence, or both a covariant and a contravariant occurrence, make it Invariant.
func VarianceOf(name string, t types.Type) types.Variance {
	switch t := t.(type) {
	case *types.Var:
		if t.Name == name {
			return types.Covariant
		}
		return types.Constant

	case *types.Forall:
		for _, bound := range t.Vars {
			if bound == name {
				return types.Constant
			}
		}
		return VarianceOf(name, t.Body)

	case *types.Concrete, *types.Variadic:
		v := types.Constant
		params := types.Params(t)
		for i, pv := range types.ParamVariance(t) {
			v = v.Join(pv.Compose(VarianceOf(name, params[i].Type)))
			if v == types.Invariant {
				break
			}
		}
		return v
	}
	return types.Constant
}

// MinimalSubstitution chooses a type for each constrained variable, and each free variable of goal,
// which makes goal as specific as the constraints allow.
//
// Variables which occur covariantly (or not at all) in goal are assigned their lower bound, and
// variables which occur contravariantly are assigned their upper bound. Invariant variables are
// assigned their lower bound; the result is safe, though it may be less specific than an explicit
// annotation. False is returned if any constraint is unsatisfiable.
func MinimalSubstitution(cs Set, goal types.Type) (map[string]types.Type, bool) {
	if !cs.Satisfiable() {
		return nil, false
	}
	for _, name := range types.FreeVars(goal).Slice() {
		if _, ok := cs.Get(name); !ok {
			cs = cs.With(name, Unconstrained())
		}
	}
	sub := make(map[string]types.Type, cs.Len())
	cs.Range(func(name string, c Constraint) bool {
		switch c := c.(type) {
		case *Equal:
			sub[name] = c.Type
		case *Subtype:
			if VarianceOf(name, goal) == types.Contravariant {
				sub[name] = c.Upper
			} else {
				sub[name] = c.Lower
			}
		}
		return true
	})
	return sub, true
}
