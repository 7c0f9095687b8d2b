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

import (
	"strconv"
)

// Well-known type tags.
const (
	AnyTag       = "Any"
	NeverTag     = "Never"
	IntegerTag   = "Integer"
	NumberTag    = "Number"
	BooleanTag   = "Boolean"
	StringTag    = "String"
	SymbolTag    = "Symbol"
	NullTag      = "Null"
	ListTag      = "List"
	PairTag      = "Pair"
	ProcedureTag = "Procedure"
	FunctionTag  = "Function"
)

// Parameter names of the well-known parameterized types.
const (
	InParam      = "in"
	OutParam     = "out"
	ElementParam = "element"
	FirstParam   = "first"
	SecondParam  = "second"
)

// Type is the base interface for all types.
type Type interface {
	TypeName() string
}

func (t *Concrete) TypeName() string { return "Concrete" }
func (t *Var) TypeName() string      { return "Var" }
func (t *Forall) TypeName() string   { return "Forall" }
func (t *Variadic) TypeName() string { return "Variadic" }
func (t *Unknown) TypeName() string  { return "Unknown" }

var (
	_ Type = (*Concrete)(nil)
	_ Type = (*Var)(nil)
	_ Type = (*Forall)(nil)
	_ Type = (*Variadic)(nil)
	_ Type = (*Unknown)(nil)
)

// Concrete type: `Integer` or `(List Integer)`
type Concrete struct {
	Tag    string
	Params ParamList
}

// Type variable: `a`
type Var struct {
	Name string
}

// Quantified type: `(forall (a b) (-> a b))`
type Forall struct {
	Vars []string
	Body Type
}

// Variadic function type. The last argument type repeats for any arguments past the end of Args.
// A negative MaxArgs means the function accepts any number of arguments past MinArgs.
type Variadic struct {
	Args    []Type
	Out     Type
	MinArgs int
	MaxArgs int
}

// Inference placeholder for a type which has not been solved yet.
// Unknowns never escape from the inference engine.
type Unknown struct {
	Id int
}

// Any is the top type.
var Any = &Concrete{Tag: AnyTag}

// Never is the bottom type.
var Never = &Concrete{Tag: NeverTag}

// Create a concrete type with the given tag and parameters.
func NewConcrete(tag string, params ...Param) *Concrete {
	return &Concrete{Tag: tag, Params: NewParamList(params...)}
}

// Create a parameterless concrete type: `Integer`, `Boolean`, etc
func Const(tag string) *Concrete { return &Concrete{Tag: tag} }

// Create a one-argument function type: `(-> in out)`
func NewFunction(in, out Type) *Concrete {
	return NewConcrete(FunctionTag, Param{InParam, in}, Param{OutParam, out})
}

// Create a zero-argument function type: `(Procedure out)`
func NewProcedure(out Type) *Concrete {
	return NewConcrete(ProcedureTag, Param{OutParam, out})
}

// Create a list type: `(List element)`
func NewList(element Type) *Concrete {
	return NewConcrete(ListTag, Param{ElementParam, element})
}

// Create a pair type: `(Pair first second)`
func NewPair(first, second Type) *Concrete {
	return NewConcrete(PairTag, Param{FirstParam, first}, Param{SecondParam, second})
}

// Create a variadic function type accepting between min and max arguments (max < 0 for no upper limit).
func NewVariadic(args []Type, out Type, min, max int) *Variadic {
	return &Variadic{Args: args, Out: out, MinArgs: min, MaxArgs: max}
}

// Build the curried function type for the given argument types. Zero arguments produce a Procedure.
func Curried(args []Type, out Type) Type {
	if len(args) == 0 {
		return NewProcedure(out)
	}
	t := out
	for i := len(args) - 1; i >= 0; i-- {
		t = NewFunction(args[i], t)
	}
	return t
}

// Check if t is a type variable.
func IsVar(t Type) bool { _, ok := t.(*Var); return ok }

// Check if t is an inference placeholder.
func IsUnknown(t Type) bool { _, ok := t.(*Unknown); return ok }

// Check if t is a quantified type.
func IsForall(t Type) bool { _, ok := t.(*Forall); return ok }

// Check if t is a variadic function type.
func IsVariadic(t Type) bool { _, ok := t.(*Variadic); return ok }

// Check if t carries the given tag. Variadic function types carry the Function tag.
func HasTag(t Type, tag string) bool {
	switch t := t.(type) {
	case *Concrete:
		return t.Tag == tag
	case *Variadic:
		return tag == FunctionTag
	}
	return false
}

// Get the named parameters of a type, in declaration order. Variadic arguments are named by position.
func Params(t Type) []Param {
	switch t := t.(type) {
	case *Concrete:
		return t.Params.Slice()
	case *Variadic:
		ps := make([]Param, 0, len(t.Args)+1)
		for i, arg := range t.Args {
			ps = append(ps, Param{"arg" + strconv.Itoa(i), arg})
		}
		return append(ps, Param{OutParam, t.Out})
	}
	return nil
}

// Map f over the parameters of t, preserving its structure. Variables, unknowns and
// quantified types are returned unchanged.
func MapParams(t Type, f func(Type) Type) Type {
	switch t := t.(type) {
	case *Concrete:
		if t.Params.Len() == 0 {
			return t
		}
		return &Concrete{Tag: t.Tag, Params: t.Params.Map(f)}
	case *Variadic:
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = f(arg)
		}
		return &Variadic{Args: args, Out: f(t.Out), MinArgs: t.MinArgs, MaxArgs: t.MaxArgs}
	}
	return t
}

// Check if a and b are structurally equal.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Concrete:
		b, ok := b.(*Concrete)
		if !ok || a.Tag != b.Tag || a.Params.Len() != b.Params.Len() {
			return false
		}
		for i, n := 0, a.Params.Len(); i < n; i++ {
			pa, pb := a.Params.At(i), b.Params.At(i)
			if pa.Name != pb.Name || !Equal(pa.Type, pb.Type) {
				return false
			}
		}
		return true
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *Unknown:
		b, ok := b.(*Unknown)
		return ok && a.Id == b.Id
	case *Forall:
		b, ok := b.(*Forall)
		return ok && sameNames(a.Vars, b.Vars) && Equal(a.Body, b.Body)
	case *Variadic:
		b, ok := b.(*Variadic)
		if !ok || a.MinArgs != b.MinArgs || a.MaxArgs != b.MaxArgs || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return Equal(a.Out, b.Out)
	}
	return a == nil && b == nil
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Check if t contains any inference placeholders.
func ContainsUnknowns(t Type) bool {
	found := false
	WalkUnknowns(t, func(*Unknown) { found = true })
	return found
}

// Call f for each inference placeholder within t, in depth-first order.
func WalkUnknowns(t Type, f func(*Unknown)) {
	switch t := t.(type) {
	case *Unknown:
		f(t)
	case *Forall:
		WalkUnknowns(t.Body, f)
	case *Concrete, *Variadic:
		for _, p := range Params(t) {
			WalkUnknowns(p.Type, f)
		}
	}
}

// Replace free type variables in t. Variables bound by a nested Forall are not replaced.
func Substitute(t Type, sub map[string]Type) Type {
	if len(sub) == 0 {
		return t
	}
	switch t := t.(type) {
	case *Var:
		if r, ok := sub[t.Name]; ok {
			return r
		}
		return t
	case *Forall:
		inner := sub
		for _, name := range t.Vars {
			if _, shadowed := sub[name]; shadowed {
				inner = make(map[string]Type, len(sub))
				for k, v := range sub {
					inner[k] = v
				}
				break
			}
		}
		for _, name := range t.Vars {
			delete(inner, name)
		}
		return &Forall{Vars: t.Vars, Body: Substitute(t.Body, inner)}
	}
	return MapParams(t, func(p Type) Type { return Substitute(p, sub) })
}
