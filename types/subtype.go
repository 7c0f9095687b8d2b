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

package types

// IsSubtype checks if t1 is a subtype of t2.
//
// `Any` is a supertype and `Never` is a subtype of every type, and `Integer` is a subtype of `Number`.
// Parameters of concrete types with the same tag are compared according to their variance.
// A variadic function type is a subtype of each fixed-arity function type which it can be applied as.
func IsSubtype(t1, t2 Type) bool {
	if HasTag(t2, AnyTag) || HasTag(t1, NeverTag) {
		return true
	}
	switch a := t1.(type) {
	case *Var:
		b, ok := t2.(*Var)
		return ok && a.Name == b.Name

	case *Unknown:
		b, ok := t2.(*Unknown)
		return ok && a.Id == b.Id

	case *Forall:
		b, ok := t2.(*Forall)
		return ok && sameNames(a.Vars, b.Vars) && IsSubtype(a.Body, b.Body)

	case *Variadic:
		switch b := t2.(type) {
		case *Variadic:
			return isVariadicSubVariadic(a, b)
		case *Concrete:
			return isVariadicSubFunction(a, b)
		}
		return false

	case *Concrete:
		b, ok := t2.(*Concrete)
		if !ok {
			return false
		}
		if a.Tag == IntegerTag && b.Tag == NumberTag {
			return true
		}
		if a.Tag != b.Tag || a.Params.Len() != b.Params.Len() {
			return false
		}
		for i, v := range ParamVariance(a) {
			pa, pb := a.Params.At(i), b.Params.At(i)
			if pa.Name != pb.Name || !isSubtypeWithVariance(pa.Type, pb.Type, v) {
				return false
			}
		}
		return true
	}
	return false
}

func isSubtypeWithVariance(a, b Type, v Variance) bool {
	switch v {
	case Covariant:
		return IsSubtype(a, b)
	case Contravariant:
		return IsSubtype(b, a)
	case Invariant:
		return IsSubtype(a, b) && IsSubtype(b, a)
	}
	return true
}

// ArgAt returns the declared type of the i-th argument. The last declared argument repeats.
func (v *Variadic) ArgAt(i int) Type {
	if len(v.Args) == 0 {
		return Any
	}
	if i >= len(v.Args) {
		i = len(v.Args) - 1
	}
	return v.Args[i]
}

// Accepts checks if the variadic function may be applied to argc arguments.
func (v *Variadic) Accepts(argc int) bool {
	return argc >= v.MinArgs && (v.MaxArgs < 0 || argc <= v.MaxArgs)
}

// Fixed returns the curried function type for applying the variadic function to argc arguments.
func (v *Variadic) Fixed(argc int) Type {
	args := make([]Type, argc)
	for i := range args {
		args[i] = v.ArgAt(i)
	}
	return Curried(args, v.Out)
}

// Split the first k arguments off of a curried function type. Zero arguments match a Procedure.
func unrollFunction(t Type, k int) (args []Type, out Type, ok bool) {
	c, isConcrete := t.(*Concrete)
	if !isConcrete {
		return nil, nil, false
	}
	if k == 0 {
		if c.Tag != ProcedureTag {
			return nil, nil, false
		}
		out, ok = c.Params.Get(OutParam)
		return nil, out, ok
	}
	args = make([]Type, 0, k)
	for i := 0; i < k; i++ {
		c, isConcrete = t.(*Concrete)
		if !isConcrete || c.Tag != FunctionTag {
			return nil, nil, false
		}
		in, _ := c.Params.Get(InParam)
		args = append(args, in)
		t, _ = c.Params.Get(OutParam)
	}
	return args, t, true
}

func isVariadicSubFunction(v *Variadic, f *Concrete) bool {
	for k := v.MinArgs; v.MaxArgs < 0 || k <= v.MaxArgs; k++ {
		args, out, ok := unrollFunction(f, k)
		if !ok {
			if k == 0 {
				continue
			}
			// Longer prefixes of the same chain cannot match either.
			return false
		}
		if variadicMatches(v, args, out) {
			return true
		}
	}
	return false
}

// Each fixed argument type must be a supertype of the corresponding variadic argument type, and
// the variadic result must be a subtype of the fixed result.
func variadicMatches(v *Variadic, args []Type, out Type) bool {
	if !IsSubtype(v.Out, out) {
		return false
	}
	for i, arg := range args {
		if !IsSubtype(v.ArgAt(i), arg) {
			return false
		}
	}
	return true
}

func isVariadicSubVariadic(a, b *Variadic) bool {
	if a.MinArgs > b.MinArgs {
		return false
	}
	if a.MaxArgs >= 0 && (b.MaxArgs < 0 || a.MaxArgs < b.MaxArgs) {
		return false
	}
	n := len(a.Args)
	if len(b.Args) > n {
		n = len(b.Args)
	}
	args := make([]Type, n)
	for i := range args {
		args[i] = b.ArgAt(i)
	}
	return variadicMatches(a, args, b.Out)
}

// Meet computes the greatest lower bound of t1 and t2.
//
// Types with different tags meet at `Never`. Types with invariant parameters only have a meet when
// one is already a subtype of the other; otherwise the meet is `Never`, regardless of which
// parameters differ.
func Meet(t1, t2 Type) Type {
	if IsSubtype(t1, t2) {
		return t1
	}
	if IsSubtype(t2, t1) {
		return t2
	}
	return bound(t1, t2, true)
}

// Join computes the least upper bound of t1 and t2.
//
// Types with different tags join at `Any`. Types with invariant parameters only have a join when
// one is already a subtype of the other; otherwise the join is `Any`.
func Join(t1, t2 Type) Type {
	if IsSubtype(t1, t2) {
		return t2
	}
	if IsSubtype(t2, t1) {
		return t1
	}
	return bound(t1, t2, false)
}

func bound(t1, t2 Type, meet bool) Type {
	fallback := Type(Any)
	if meet {
		fallback = Never
	}
	a, aok := t1.(*Concrete)
	b, bok := t2.(*Concrete)
	if !aok || !bok || a.Tag != b.Tag || a.Params.Len() != b.Params.Len() {
		return fallback
	}
	vs := ParamVariance(a)
	for _, v := range vs {
		if v == Invariant {
			return fallback
		}
	}
	params := make([]Param, len(vs))
	for i, v := range vs {
		pa, pb := a.Params.At(i), b.Params.At(i)
		if pa.Name != pb.Name {
			return fallback
		}
		// Contravariant parameters swap roles:
		if (v == Covariant) == meet {
			params[i] = Param{pa.Name, Meet(pa.Type, pb.Type)}
		} else {
			params[i] = Param{pa.Name, Join(pa.Type, pb.Type)}
		}
	}
	return NewConcrete(a.Tag, params...)
}
