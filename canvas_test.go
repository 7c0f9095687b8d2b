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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/wdamron/vtype"
	. "github.com/wdamron/vtype/construct"

	"github.com/wdamron/vtype/ast"
	"github.com/wdamron/vtype/types"
)

func typeOf(t *testing.T, canvas *Canvas, tree *ast.Tree) string {
	t.Helper()
	ty, ok := canvas.TypeOf(tree)
	require.True(t, ok, "no type for %s", ast.ExprString(tree.Root()))
	return types.TypeString(ty)
}

func TestCanvasDefinitions(t *testing.T) {
	ctx := NewContext()
	use := ast.NewTree(Call(Ref("id"), Num(42)))
	def := ast.NewTree(Define("id", Lambda1("x", Ref("x"))))
	str := ast.NewTree(Call(Ref("id"), Str("s")))
	trees := []*ast.Tree{use, def, str}

	canvas := ctx.InferCanvas(trees, nil)
	require.Equal(t, 0, canvas.Diagnostics.Len())

	assert.Equal(t, "a -> a", typeOf(t, canvas, def))
	assert.Equal(t, "Integer", typeOf(t, canvas, use))
	assert.Equal(t, "String", typeOf(t, canvas, str))

	// Subexpression types remain available after the canvas is inferred:
	arg, ok := ctx.TypeAt(use, ast.Path{1})
	require.True(t, ok)
	assert.Equal(t, "Integer", types.TypeString(arg))
	name, ok := ctx.TypeAt(def, ast.Path{0})
	require.True(t, ok)
	assert.Equal(t, "a -> a", types.TypeString(name))
}

func TestCanvasMutualRecursion(t *testing.T) {
	ctx := NewContext()
	env := NewTypeEnv()
	env.Declare("zero?", TFunc(TInt(), TBool()))
	env.Declare("-", TArrow2(TInt(), TInt(), TInt()))

	n := Ref("n")
	pred := Call(Ref("-"), n, Num(1))
	even := ast.NewTree(Define("even?", Lambda1("n", If(Call(Ref("zero?"), n), Bool(true), Call(Ref("odd?"), pred)))))
	odd := ast.NewTree(Define("odd?", Lambda1("n", If(Call(Ref("zero?"), n), Bool(false), Call(Ref("even?"), pred)))))
	use := ast.NewTree(Call(Ref("odd?"), Num(3)))

	canvas := ctx.InferCanvas([]*ast.Tree{use, odd, even}, env)
	require.Equal(t, 0, canvas.Diagnostics.Len(), "%v", canvas.Diagnostics.All())
	assert.Equal(t, "Integer -> Boolean", typeOf(t, canvas, even))
	assert.Equal(t, "Integer -> Boolean", typeOf(t, canvas, odd))
	assert.Equal(t, "Boolean", typeOf(t, canvas, use))
}

func TestCanvasFailures(t *testing.T) {
	ctx := NewContext()
	bad := ast.NewTree(Define("bad", Call(Num(1), Num(2))))
	useBad := ast.NewTree(Call(Ref("bad"), Num(3)))
	good := ast.NewTree(Define("good", Num(1)))
	mismatch := ast.NewTree(If(Bool(true), Ref("good"), Str("s")))
	dup := ast.NewTree(Define("good", Str("s")))
	unbound := ast.NewTree(Ref("missing"))
	trees := []*ast.Tree{bad, useBad, good, mismatch, dup, unbound}

	canvas := ctx.InferCanvas(trees, nil)
	assert.Equal(t, 4, canvas.Diagnostics.Len())

	// A failed definition is Any, and its uses are unaffected:
	assert.True(t, canvas.Failed(bad))
	assert.Equal(t, "Any", typeOf(t, canvas, bad))
	diags := canvas.Diagnostics.ForTree(bad.ID())
	require.Len(t, diags, 1)
	assert.Equal(t, KindNotCallable, diags[0].Kind())
	assert.Equal(t, "1.0", diags[0].Path.String())

	assert.False(t, canvas.Failed(useBad))
	assert.Equal(t, "Any", typeOf(t, canvas, useBad))

	assert.False(t, canvas.Failed(good))
	assert.Equal(t, "Integer", typeOf(t, canvas, good))

	diags = canvas.Diagnostics.ForTree(mismatch.ID())
	require.Len(t, diags, 1)
	assert.Equal(t, KindTypeMismatch, diags[0].Kind())
	assert.Equal(t, "Any", typeOf(t, canvas, mismatch))

	diags = canvas.Diagnostics.ForTree(dup.ID())
	require.Len(t, diags, 1)
	assert.Equal(t, KindDuplicateDefinition, diags[0].Kind())
	assert.Equal(t, "Any", typeOf(t, canvas, dup))

	d, ok := canvas.Diagnostics.At(unbound.ID(), ast.Path{})
	require.True(t, ok)
	assert.Equal(t, KindUnboundVariable, d.Kind())
	assert.EqualError(t, d.Err, "Unbound variable missing")

	// Types of failed trees are not cached:
	_, ok = ctx.TypeAt(bad, ast.Path{1})
	assert.False(t, ok)
}

func TestCanvasFailureRollback(t *testing.T) {
	ctx := NewContext()
	// A failing tree leaves no bindings behind:
	def := ast.NewTree(Define("f", Lambda1("x", Ref("x"))))
	poly := ast.NewTree(Lambda1("g", Seq(Call(Ref("g"), Num(1)), Call(Ref("g"), Str("s")), Call(Ref("f"), Ref("g")))))
	use := ast.NewTree(Call(Ref("f"), Str("s")))

	canvas := ctx.InferCanvas([]*ast.Tree{def, poly, use}, nil)
	require.Equal(t, 1, canvas.Diagnostics.Len())
	assert.True(t, canvas.Failed(poly))
	assert.Equal(t, "String", typeOf(t, canvas, use))
	assert.Equal(t, "a -> a", typeOf(t, canvas, def))
}

func TestCanvasFailedSibling(t *testing.T) {
	alias := ast.NewTree(Define("a", Ref("b")))
	bad := ast.NewTree(Define("b", Seq(Ref("a"), Call(Num(1), Num(2)))))
	use := ast.NewTree(Call(Ref("a"), Num(1)))

	canvas := NewContext().InferCanvas([]*ast.Tree{alias, bad, use}, nil)
	require.Equal(t, 1, canvas.Diagnostics.Len())
	assert.True(t, canvas.Failed(bad))
	assert.False(t, canvas.Failed(alias))
	assert.Equal(t, "Any", typeOf(t, canvas, alias))
	assert.Equal(t, "Any", typeOf(t, canvas, bad))
	assert.Equal(t, "Any", typeOf(t, canvas, use))
}

func TestCanvasEmpty(t *testing.T) {
	canvas := NewContext().InferCanvas(nil, nil)
	assert.Equal(t, 0, canvas.Diagnostics.Len())
	assert.Empty(t, canvas.Types)
}
