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

// Package constraint implements subtype constraints over type variables, for local type inference.
//
// A constraint bounds a single type variable, either exactly (Equal) or by an interval of types
// (Subtype). Constraints and constraint sets combine by meet; unsatisfiable combinations are
// reported by returning false, never by panicking or returning an error.
package constraint

import (
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/wdamron/vtype/types"
)

// Constraint bounds a single type variable.
type Constraint interface {
	String() string
	isConstraint()
}

// Equal constrains a variable to exactly one type.
type Equal struct {
	Type types.Type
}

// Subtype constrains a variable to lie between Lower and Upper.
type Subtype struct {
	Lower types.Type
	Upper types.Type
}

func (*Equal) isConstraint()   {}
func (*Subtype) isConstraint() {}

func (c *Equal) String() string { return "= " + types.TypeString(c.Type) }

func (c *Subtype) String() string {
	return types.TypeString(c.Lower) + " <: _ <: " + types.TypeString(c.Upper)
}

// Unconstrained returns the interval `Never <: _ <: Any`.
func Unconstrained() *Subtype { return &Subtype{Lower: types.Never, Upper: types.Any} }

// Satisfiable checks if some type satisfies c.
func Satisfiable(c Constraint) bool {
	switch c := c.(type) {
	case *Equal:
		return true
	case *Subtype:
		return types.IsSubtype(c.Lower, c.Upper)
	}
	return false
}

// Meet combines two constraints on the same variable. Meet is commutative; false is returned
// when no type satisfies both constraints.
func Meet(c1, c2 Constraint) (Constraint, bool) {
	switch a := c1.(type) {
	case *Equal:
		switch b := c2.(type) {
		case *Equal:
			if !types.Equal(a.Type, b.Type) {
				return nil, false
			}
			return a, true
		case *Subtype:
			return meetEqualSubtype(a, b)
		}

	case *Subtype:
		switch b := c2.(type) {
		case *Equal:
			return meetEqualSubtype(b, a)
		case *Subtype:
			c := &Subtype{
				Lower: types.Join(a.Lower, b.Lower),
				Upper: types.Meet(a.Upper, b.Upper),
			}
			if !Satisfiable(c) {
				return nil, false
			}
			return c, true
		}
	}
	return nil, false
}

func meetEqualSubtype(eq *Equal, sub *Subtype) (Constraint, bool) {
	if !types.IsSubtype(sub.Lower, eq.Type) || !types.IsSubtype(eq.Type, sub.Upper) {
		return nil, false
	}
	return eq, true
}

var emptySet = immutable.NewSortedMap(nil)

// Set is an immutable mapping from type-variable names to constraints.
type Set struct {
	m *immutable.SortedMap
}

// NewSet returns an empty constraint set.
func NewSet() Set { return Set{emptySet} }

// Single returns a constraint set with one entry.
func Single(name string, c Constraint) Set { return Set{emptySet.Set(name, c)} }

func (s Set) sorted() *immutable.SortedMap {
	if s.m == nil {
		return emptySet
	}
	return s.m
}

// Len returns the number of constrained variables.
func (s Set) Len() int { return s.sorted().Len() }

// Get returns the constraint for name.
func (s Set) Get(name string) (Constraint, bool) {
	c, ok := s.sorted().Get(name)
	if !ok {
		return nil, false
	}
	return c.(Constraint), true
}

// With returns a copy of s with name constrained by c, replacing any existing constraint.
func (s Set) With(name string, c Constraint) Set { return Set{s.sorted().Set(name, c)} }

// Range iterates over constraints in order of variable name.
// If f returns false, iteration will be stopped.
func (s Set) Range(f func(string, Constraint) bool) {
	iter := s.sorted().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Constraint)) {
			return
		}
	}
}

// Meet combines two constraint sets key-wise. False is returned if any pair of constraints on the
// same variable has no meet.
func (s Set) Meet(o Set) (Set, bool) {
	if s.Len() < o.Len() {
		s, o = o, s
	}
	ok := true
	o.Range(func(name string, c Constraint) bool {
		if existing, exists := s.Get(name); exists {
			c, ok = Meet(existing, c)
			if !ok {
				return false
			}
		}
		s = s.With(name, c)
		return true
	})
	if !ok {
		return Set{}, false
	}
	return s, true
}

// Satisfiable checks if every constraint in s is individually satisfiable.
func (s Set) Satisfiable() bool {
	ok := true
	s.Range(func(_ string, c Constraint) bool {
		ok = Satisfiable(c)
		return ok
	})
	return ok
}

func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.Range(func(name string, c Constraint) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(c.String())
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
