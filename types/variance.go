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

// Variance describes how subtyping of a type parameter relates to subtyping of the enclosing type.
//
// Constant is only produced when computing the variance of a variable within a type (the variable
// does not occur); type constructors never declare constant parameters.
type Variance int

const (
	Constant Variance = iota
	Covariant
	Contravariant
	Invariant
)

func (v Variance) String() string {
	switch v {
	case Constant:
		return "constant"
	case Covariant:
		return "covariant"
	case Contravariant:
		return "contravariant"
	default:
		return "invariant"
	}
}

// Join combines the variances of two occurrences of the same variable.
func (v Variance) Join(w Variance) Variance {
	switch {
	case v == Constant:
		return w
	case w == Constant, v == w:
		return v
	default:
		return Invariant
	}
}

// Compose returns the variance of an occurrence with variance w, nested within a parameter
// with variance v.
func (v Variance) Compose(w Variance) Variance {
	switch {
	case v == Constant || w == Constant:
		return Constant
	case v == Invariant || w == Invariant:
		return Invariant
	case v == w:
		return Covariant
	default:
		return Contravariant
	}
}

// Flip swaps covariance and contravariance.
func (v Variance) Flip() Variance { return Contravariant.Compose(v) }

// ParamVariance returns the declared variance of each parameter of t, in order.
//
// Containers are covariant in their elements. Function types are contravariant in their arguments
// and covariant in their result. Parameters of unrecognized type constructors are invariant.
func ParamVariance(t Type) []Variance {
	switch t := t.(type) {
	case *Concrete:
		n := t.Params.Len()
		vs := make([]Variance, n)
		switch t.Tag {
		case ListTag, PairTag, ProcedureTag:
			for i := range vs {
				vs[i] = Covariant
			}
		case FunctionTag:
			for i := range vs {
				vs[i] = Contravariant
			}
			if n > 0 {
				vs[n-1] = Covariant
			}
		default:
			for i := range vs {
				vs[i] = Invariant
			}
		}
		return vs
	case *Variadic:
		vs := make([]Variance, len(t.Args)+1)
		for i := range t.Args {
			vs[i] = Contravariant
		}
		vs[len(t.Args)] = Covariant
		return vs
	}
	return nil
}
