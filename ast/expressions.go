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

package ast

import (
	"github.com/wdamron/vtype/types"
)

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	// Children returns the structural children of the expression, in order. The position of a
	// child within this slice is its index within a Path.
	Children() []Expr
}

var (
	_ Expr = (*Number)(nil)
	_ Expr = (*Boolean)(nil)
	_ Expr = (*String)(nil)
	_ Expr = (*Null)(nil)
	_ Expr = (*Hole)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Name)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Define)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*Letrec)(nil)
	_ Expr = (*Binding)(nil)
	_ Expr = (*Lambda)(nil)
	_ Expr = (*Sequence)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Cond)(nil)
	_ Expr = (*Clause)(nil)
	_ Expr = (*Set)(nil)
	_ Expr = (*The)(nil)
)

// Numeric literal: `42` or `4.2`
type Number struct {
	Value float64
}

// Boolean literal: `#t`
type Boolean struct {
	Value bool
}

// String literal: `"hello"`
type String struct {
	Value string
}

// Empty list: `'()`
type Null struct{}

// Unfilled slot: `_`
type Hole struct{}

// Variable reference: `x`
type Var struct {
	Name string
}

// Binding occurrence of a variable, within a definition, let-binding or lambda parameter list.
type Name struct {
	Name string
}

// Application: `(f x y)`
type Call struct {
	Func Expr
	Args []Expr
}

// Definition: `(define f (lambda (x) x))`
//
// A definition may declare its type: `(define (the (-> Integer Integer) f) (lambda (x) x))`
type Define struct {
	Name  *Name
	Type  types.Type // optional
	Value Expr
}

// Non-recursive let-bindings: `(let ((a 1) (b 2)) e)`
type Let struct {
	Bindings []*Binding
	Body     Expr
}

// Mutually-recursive let-bindings: `(letrec ((even? ...) (odd? ...)) e)`
type Letrec struct {
	Bindings []*Binding
	Body     Expr
}

// Binding within a let or letrec: `(a 1)`
type Binding struct {
	Name  *Name
	Value Expr
}

// Abstraction: `(lambda (x y) x)`
type Lambda struct {
	Params []*Name
	Body   Expr
}

// Sequence of expressions, evaluated in order: `(sequence a b c)`
type Sequence struct {
	Exprs []Expr
}

// Conditional: `(if c a b)`
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Multi-way conditional: `(cond (c1 a) (c2 b))`
type Cond struct {
	Clauses []*Clause
}

// Clause within a cond: `(c a)`
type Clause struct {
	Test  Expr
	Value Expr
}

// Assignment: `(set! x 1)`
type Set struct {
	Var   *Var
	Value Expr
}

// Type annotation: `(the Integer x)`
type The struct {
	Type  types.Type
	Value Expr
}

func (e *Number) ExprName() string   { return "Number" }
func (e *Boolean) ExprName() string  { return "Boolean" }
func (e *String) ExprName() string   { return "String" }
func (e *Null) ExprName() string     { return "Null" }
func (e *Hole) ExprName() string     { return "Hole" }
func (e *Var) ExprName() string      { return "Var" }
func (e *Name) ExprName() string     { return "Name" }
func (e *Call) ExprName() string     { return "Call" }
func (e *Define) ExprName() string   { return "Define" }
func (e *Let) ExprName() string      { return "Let" }
func (e *Letrec) ExprName() string   { return "Letrec" }
func (e *Binding) ExprName() string  { return "Binding" }
func (e *Lambda) ExprName() string   { return "Lambda" }
func (e *Sequence) ExprName() string { return "Sequence" }
func (e *If) ExprName() string       { return "If" }
func (e *Cond) ExprName() string     { return "Cond" }
func (e *Clause) ExprName() string   { return "Clause" }
func (e *Set) ExprName() string      { return "Set" }
func (e *The) ExprName() string      { return "The" }

func (e *Number) Children() []Expr  { return nil }
func (e *Boolean) Children() []Expr { return nil }
func (e *String) Children() []Expr  { return nil }
func (e *Null) Children() []Expr    { return nil }
func (e *Hole) Children() []Expr    { return nil }
func (e *Var) Children() []Expr     { return nil }
func (e *Name) Children() []Expr    { return nil }

func (e *Call) Children() []Expr {
	return append([]Expr{e.Func}, e.Args...)
}

func (e *Define) Children() []Expr { return []Expr{e.Name, e.Value} }

func (e *Let) Children() []Expr    { return bindingChildren(e.Bindings, e.Body) }
func (e *Letrec) Children() []Expr { return bindingChildren(e.Bindings, e.Body) }

func bindingChildren(bindings []*Binding, body Expr) []Expr {
	cs := make([]Expr, 0, len(bindings)+1)
	for _, b := range bindings {
		cs = append(cs, b)
	}
	return append(cs, body)
}

func (e *Binding) Children() []Expr { return []Expr{e.Name, e.Value} }

func (e *Lambda) Children() []Expr {
	cs := make([]Expr, 0, len(e.Params)+1)
	for _, p := range e.Params {
		cs = append(cs, p)
	}
	return append(cs, e.Body)
}

func (e *Sequence) Children() []Expr { return append([]Expr(nil), e.Exprs...) }
func (e *If) Children() []Expr       { return []Expr{e.Cond, e.Then, e.Else} }

func (e *Cond) Children() []Expr {
	cs := make([]Expr, len(e.Clauses))
	for i, c := range e.Clauses {
		cs[i] = c
	}
	return cs
}

func (e *Clause) Children() []Expr { return []Expr{e.Test, e.Value} }
func (e *Set) Children() []Expr    { return []Expr{e.Var, e.Value} }
func (e *The) Children() []Expr    { return []Expr{e.Value} }

// IsHole checks if e is an unfilled slot.
func IsHole(e Expr) bool {
	_, ok := e.(*Hole)
	return ok
}

// BindingName returns the name carried by a variable-binding node.
func BindingName(e Expr) (string, bool) {
	switch e := e.(type) {
	case *Name:
		return e.Name, true
	case *Define:
		return e.Name.Name, true
	case *Binding:
		return e.Name.Name, true
	}
	return "", false
}

// SetBindingName renames a variable-binding node. References to the previous name are not updated.
func SetBindingName(e Expr, name string) bool {
	switch e := e.(type) {
	case *Name:
		e.Name = name
	case *Define:
		e.Name.Name = name
	case *Binding:
		e.Name.Name = name
	default:
		return false
	}
	return true
}
