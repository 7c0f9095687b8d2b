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

package prelude

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wdamron/vtype"
	"github.com/wdamron/vtype/ast"
	"github.com/wdamron/vtype/types"
)

func TestParseType(t *testing.T) {
	for _, tc := range []struct {
		src, want string
	}{
		{"Integer", "Integer"},
		{"a", "a"},
		{"Any", "Any"},
		{"(List a)", "(List a)"},
		{"(Pair Integer (List String))", "(Pair Integer (List String))"},
		{"(Procedure Boolean)", "() -> Boolean"},
		{"(-> a b c)", "a -> b -> c"},
		{"(-> (-> a b) (List a) (List b))", "(a -> b) -> (List a) -> (List b)"},
		{"(forall (a) (-> a a))", "forall a. a -> a"},
		{"(variadic 0 * (Number) Number)", "(Number...) [0..] -> Number"},
		{"(variadic 1 2 (Integer String) Boolean)", "(Integer, String...) [1..2] -> Boolean"},
		{"(Box Integer)", "(Box Integer)"},
		{"  ( List\n a )  ", "(List a)"},
	} {
		ty, err := ParseType(tc.src)
		require.NoError(t, err, tc.src)
		assert.Equal(t, tc.want, types.TypeString(ty), tc.src)
	}

	ty, err := ParseType("(variadic 1 * (Number) Number)")
	require.NoError(t, err)
	v, ok := ty.(*types.Variadic)
	require.True(t, ok)
	assert.Equal(t, 1, v.MinArgs)
	assert.Equal(t, -1, v.MaxArgs)

	for _, src := range []string{
		"",
		"(",
		"(List a",
		"(List a b)",
		"(-> a)",
		"Integer String",
		"(forall (A) A)",
		"(variadic x * (a) a)",
		"(variadic 2 1 (a) a)",
		")",
	} {
		_, err := ParseType(src)
		assert.Error(t, err, "%q", src)
	}
}

func TestParseYAML(t *testing.T) {
	env, err := ParseYAML([]byte(`
bindings:
  "+": "(variadic 0 * (Number) Number)"
  car: (-> (List a) a)
  pi: Number
`), "test.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, env.Len())

	car, ok := env.Lookup("car")
	require.True(t, ok)
	assert.Equal(t, "(List a) -> a", types.TypeString(car))

	_, err = ParseYAML([]byte("bindings:\n  bad: (List\n"), "bad.yaml", nil)
	assert.ErrorContains(t, err, "bad.yaml: binding bad")

	_, err = ParseYAML([]byte("bindings: [1, 2"), "broken.yaml", nil)
	assert.ErrorContains(t, err, "parsing broken.yaml")
}

func TestParseTOML(t *testing.T) {
	base := vtype.NewTypeEnv()
	base.Declare("pi", types.Const(types.IntegerTag))

	env, err := ParseTOML(`
[bindings]
"+" = "(variadic 0 * (Number) Number)"
pi = "Number"
`, "test.toml", base)
	require.NoError(t, err)
	assert.Equal(t, 2, env.Len())
	pi, _ := env.Lookup("pi")
	assert.Equal(t, "Number", types.TypeString(pi))

	_, err = ParseTOML(`[bindings`, "broken.toml", nil)
	assert.ErrorContains(t, err, "parsing broken.toml")
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "core.yaml")
	second := filepath.Join(dir, "extra.toml")
	require.NoError(t, os.WriteFile(first, []byte("bindings:\n  x: Integer\n  y: String\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("[bindings]\nx = \"Boolean\"\n"), 0o644))

	env, err := LoadAll([]string{first, second})
	require.NoError(t, err)
	x, _ := env.Lookup("x")
	y, _ := env.Lookup("y")
	assert.Equal(t, "Boolean", types.TypeString(x))
	assert.Equal(t, "String", types.TypeString(y))

	_, err = LoadAll([]string{filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)

	// Declaration order follows the argument order, however the files are read:
	var paths []string
	for i, ty := range []string{"Integer", "String", "Boolean", "Null", "(List Integer)", "Number"} {
		path := filepath.Join(dir, fmt.Sprintf("layer%d.yaml", i))
		require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("bindings:\n  x: %q\n", ty)), 0o644))
		paths = append(paths, path)
	}
	env, err = LoadAll(paths)
	require.NoError(t, err)
	x, _ = env.Lookup("x")
	assert.Equal(t, "Number", types.TypeString(x))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("bindings:\n  x: (List\n"), 0o644))
	_, err = LoadAll(append(paths, bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

const program = `
trees:
  - define:
      name: id
      value: {lambda: {params: [x], body: {ref: x}}}
  - call: [{ref: id}, {num: 42}]
  - let:
      bindings: [{name: s, value: {str: hi}}]
      body: {seq: [{null: ~}, {hole: ~}, {ref: s}]}
  - if: [{bool: true}, {num: 1.5}, {num: 2}]
  - cond: [{test: {bool: false}, value: {num: 1}}]
  - the: {type: (-> Integer Integer), value: {lambda: {params: [n], body: {ref: n}}}}
  - define: {name: n, type: Number, value: {num: 1}}
  - letrec:
      bindings: [{name: f, value: {lambda: {params: [x], body: {call: [{ref: f}, {ref: x}]}}}}]
      body: {set: {name: f, value: {ref: f}}}
`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(program), "program.yaml")
	require.NoError(t, err)
	exprs := doc.Exprs()
	require.Len(t, exprs, 8)

	want := []string{
		"(define id (lambda (x) x))",
		"(id 42)",
		`(let ((s "hi")) (sequence '() _ s))`,
		"(if #t 1.5 2)",
		"(cond (#f 1))",
		"(the Integer -> Integer (lambda (n) n))",
		"(define (the Number n) 1)",
		"(letrec ((f (lambda (x) (f x)))) (set! f f))",
	}
	for i, e := range exprs {
		assert.Equal(t, want[i], ast.ExprString(e))
	}

	canvas := vtype.NewContext().InferCanvas(treesOf(exprs), nil)
	assert.Equal(t, 0, canvas.Diagnostics.Len(), "%v", canvas.Diagnostics.All())
}

func treesOf(exprs []ast.Expr) []*ast.Tree {
	trees := make([]*ast.Tree, len(exprs))
	for i, e := range exprs {
		trees[i] = ast.NewTree(e)
	}
	return trees
}

func TestParseDocumentErrors(t *testing.T) {
	for _, src := range []string{
		"trees: [{num: 1, str: x}]",
		"trees: [{unknown: 1}]",
		"trees: [{call: []}]",
		"trees: [{if: [{num: 1}]}]",
		"trees: [{ref: ''}]",
		"trees: [{define: {name: f}}]",
		"trees: [{the: {type: '(List', value: {num: 1}}}]",
		"trees: [{lambda: {params: [x]}}]",
	} {
		_, err := ParseDocument([]byte(src), "bad.yaml")
		assert.Error(t, err, src)
	}
}
