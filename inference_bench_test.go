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

package vtype_test

import (
	"testing"

	. "github.com/wdamron/vtype"
	. "github.com/wdamron/vtype/construct"

	"github.com/wdamron/vtype/ast"
	"github.com/wdamron/vtype/types"
)

func benchEnv() *TypeEnv {
	env := NewTypeEnv()
	env.Declare("+", TVariadic([]types.Type{TNum()}, TNum(), 0, -1))
	env.Declare("-", TArrow2(TInt(), TInt(), TInt()))
	env.Declare("zero?", TFunc(TInt(), TBool()))
	env.Declare("cons", TArrow2(TVar("a"), TList(TVar("a")), TList(TVar("a"))))
	return env
}

func BenchmarkMutuallyRecursiveLetrec(b *testing.B) { // ~9000 ns/op
	env := benchEnv()
	ctx := NewContext()

	n := Ref("n")
	pred := Call(Ref("-"), n, Num(1))
	expr := Letrec(
		[]*ast.Binding{
			Bind("id", Lambda1("x", Ref("x"))),
			Bind("even?", Lambda1("n", If(Call(Ref("zero?"), n), Call(Ref("id"), Bool(true)), Call(Ref("odd?"), pred)))),
			Bind("odd?", Lambda1("n", If(Call(Ref("zero?"), n), Bool(false), Call(Ref("even?"), pred)))),
		},
		Seq(Call(Ref("id"), Str("s")), Call(Ref("even?"), Num(10))),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t, err := ctx.InferExpr(expr, env)
		if err != nil {
			b.Fatal(err)
		}
		if types.TypeString(t) != "Boolean" {
			b.Fatalf("expected Boolean, found %s", t)
		}
	}
}

func BenchmarkVariadicCalls(b *testing.B) { // ~4000 ns/op
	env := benchEnv()
	ctx := NewContext()

	expr := Let1("sum", Lambda([]string{"x", "y"}, Call(Ref("+"), Ref("x"), Ref("y"), Num(1.5))),
		Call(Ref("cons"), Call(Ref("sum"), Num(1), Num(2)), Null()))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ctx.InferExpr(expr, env); err == nil {
			b.Fatal("expected a type error")
		}
	}
}

func BenchmarkAnnotation(b *testing.B) { // ~6000 ns/op
	ctx := NewContext()
	a := TVar("a")
	expr := The(TForall([]string{"a"}, TArrow2(TFunc(a, a), a, a)), Lambda([]string{"f", "x"}, Call(Ref("f"), Call(Ref("f"), Ref("x")))))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t, err := ctx.InferExpr(expr, nil)
		if err != nil {
			b.Fatal(err)
		}
		if types.TypeString(t) != "(a -> a) -> a -> a" {
			b.Fatalf("unexpected type %s", t)
		}
	}
}

func BenchmarkCanvas(b *testing.B) { // ~15000 ns/op
	env := benchEnv()
	ctx := NewContext()
	trees := []*ast.Tree{
		ast.NewTree(Define("id", Lambda1("x", Ref("x")))),
		ast.NewTree(Define("twice", Lambda([]string{"f", "x"}, Call(Ref("f"), Call(Ref("f"), Ref("x")))))),
		ast.NewTree(Call(Ref("twice"), Ref("id"), Num(1))),
		ast.NewTree(Call(Num(1), Num(2))),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		canvas := ctx.InferCanvas(trees, env)
		if canvas.Diagnostics.Len() != 1 {
			b.Fatalf("expected 1 diagnostic, found %d", canvas.Diagnostics.Len())
		}
	}
}
