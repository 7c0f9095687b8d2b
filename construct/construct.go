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

package construct

import (
	"github.com/wdamron/vtype/ast"
	"github.com/wdamron/vtype/types"
)

// Types

// Type variable: `a`
func TVar(name string) *types.Var { return &types.Var{Name: name} }

// Type constant: `Integer`, `Boolean`, etc
func TConst(tag string) *types.Concrete { return types.Const(tag) }

func TInt() *types.Concrete  { return types.Const(types.IntegerTag) }
func TNum() *types.Concrete  { return types.Const(types.NumberTag) }
func TBool() *types.Concrete { return types.Const(types.BooleanTag) }
func TStr() *types.Concrete  { return types.Const(types.StringTag) }
func TNull() *types.Concrete { return types.Const(types.NullTag) }

// List type: `(List Integer)`
func TList(element types.Type) *types.Concrete { return types.NewList(element) }

// Pair type: `(Pair Integer String)`
func TPair(first, second types.Type) *types.Concrete { return types.NewPair(first, second) }

// Zero-argument function type: `() -> Integer`
func TProc(out types.Type) *types.Concrete { return types.NewProcedure(out) }

// One-argument function type: `Integer -> Integer`
func TFunc(in, out types.Type) *types.Concrete { return types.NewFunction(in, out) }

// Curried function type: `Integer -> Integer -> Integer`
func TArrow(args []types.Type, out types.Type) types.Type { return types.Curried(args, out) }

// Curried function type: `a -> b -> c`
func TArrow2(arg1, arg2, out types.Type) types.Type {
	return types.Curried([]types.Type{arg1, arg2}, out)
}

// Variadic function type: `(Number...) [1..] -> Number`
func TVariadic(args []types.Type, out types.Type, min, max int) *types.Variadic {
	return types.NewVariadic(args, out, min, max)
}

// Quantified type: `forall a. a -> a`
func TForall(vars []string, body types.Type) *types.Forall {
	return &types.Forall{Vars: vars, Body: body}
}

// Expressions

// Numeric literal: `42`
func Num(v float64) *ast.Number { return &ast.Number{Value: v} }

// Boolean literal: `#t`
func Bool(v bool) *ast.Boolean { return &ast.Boolean{Value: v} }

// String literal: `"hello"`
func Str(v string) *ast.String { return &ast.String{Value: v} }

// Empty list: `'()`
func Null() *ast.Null { return &ast.Null{} }

// Unfilled slot: `_`
func Hole() *ast.Hole { return &ast.Hole{} }

// Variable reference: `x`
func Ref(name string) *ast.Var { return &ast.Var{Name: name} }

// Application: `(f x y)`
func Call(fn ast.Expr, args ...ast.Expr) *ast.Call { return &ast.Call{Func: fn, Args: args} }

// Abstraction: `(lambda (x y) body)`
func Lambda(params []string, body ast.Expr) *ast.Lambda {
	names := make([]*ast.Name, len(params))
	for i, p := range params {
		names[i] = &ast.Name{Name: p}
	}
	return &ast.Lambda{Params: names, Body: body}
}

// One-parameter abstraction: `(lambda (x) body)`
func Lambda1(param string, body ast.Expr) *ast.Lambda { return Lambda([]string{param}, body) }

// Definition: `(define name value)`
func Define(name string, value ast.Expr) *ast.Define {
	return &ast.Define{Name: &ast.Name{Name: name}, Value: value}
}

// Definition with a declared type: `(define (the t name) value)`
func DefineTyped(name string, t types.Type, value ast.Expr) *ast.Define {
	return &ast.Define{Name: &ast.Name{Name: name}, Type: t, Value: value}
}

// Binding within a let or letrec: `(name value)`
func Bind(name string, value ast.Expr) *ast.Binding {
	return &ast.Binding{Name: &ast.Name{Name: name}, Value: value}
}

// Non-recursive let-bindings: `(let ((a 1) (b 2)) body)`
func Let(bindings []*ast.Binding, body ast.Expr) *ast.Let {
	return &ast.Let{Bindings: bindings, Body: body}
}

// Single non-recursive let-binding: `(let ((name value)) body)`
func Let1(name string, value, body ast.Expr) *ast.Let {
	return &ast.Let{Bindings: []*ast.Binding{Bind(name, value)}, Body: body}
}

// Mutually-recursive let-bindings: `(letrec ((f ...) (g ...)) body)`
func Letrec(bindings []*ast.Binding, body ast.Expr) *ast.Letrec {
	return &ast.Letrec{Bindings: bindings, Body: body}
}

// Sequence: `(sequence a b c)`
func Seq(exprs ...ast.Expr) *ast.Sequence { return &ast.Sequence{Exprs: exprs} }

// Conditional: `(if c a b)`
func If(cond, then, els ast.Expr) *ast.If { return &ast.If{Cond: cond, Then: then, Else: els} }

// Multi-way conditional: `(cond (c1 a) (c2 b))`
func Cond(clauses ...*ast.Clause) *ast.Cond { return &ast.Cond{Clauses: clauses} }

// Clause within a cond: `(c a)`
func Clause(test, value ast.Expr) *ast.Clause { return &ast.Clause{Test: test, Value: value} }

// Assignment: `(set! name value)`
func SetBang(name string, value ast.Expr) *ast.Set {
	return &ast.Set{Var: &ast.Var{Name: name}, Value: value}
}

// Type annotation: `(the t value)`
func The(t types.Type, value ast.Expr) *ast.The { return &ast.The{Type: t, Value: value} }
