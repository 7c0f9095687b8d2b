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
	"testing"

	set "github.com/hashicorp/go-set/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wdamron/vtype/types"
)

var (
	integer = types.Const(types.IntegerTag)
	number  = types.Const(types.NumberTag)
	str     = types.Const(types.StringTag)
	a       = &types.Var{Name: "a"}
	b       = &types.Var{Name: "b"}
)

func vars(names ...string) *set.Set[string] { return set.From(names) }

func TestMeetConstraints(t *testing.T) {
	c, ok := Meet(&Subtype{Lower: types.Never, Upper: number}, &Subtype{Lower: integer, Upper: types.Any})
	require.True(t, ok)
	assert.Equal(t, "Integer <: _ <: Number", c.String())

	_, ok = Meet(&Subtype{Lower: number, Upper: types.Any}, &Subtype{Lower: types.Never, Upper: integer})
	assert.False(t, ok)

	c, ok = Meet(&Equal{Type: integer}, &Subtype{Lower: types.Never, Upper: number})
	require.True(t, ok)
	assert.Equal(t, "= Integer", c.String())

	// Meet is commutative:
	c, ok = Meet(&Subtype{Lower: types.Never, Upper: number}, &Equal{Type: integer})
	require.True(t, ok)
	assert.Equal(t, "= Integer", c.String())

	_, ok = Meet(&Equal{Type: str}, &Subtype{Lower: types.Never, Upper: number})
	assert.False(t, ok)
	_, ok = Meet(&Equal{Type: str}, &Equal{Type: integer})
	assert.False(t, ok)

	assert.True(t, Satisfiable(Unconstrained()))
	assert.False(t, Satisfiable(&Subtype{Lower: str, Upper: integer}))
}

func TestSetMeet(t *testing.T) {
	s1 := Single("a", &Subtype{Lower: integer, Upper: types.Any}).With("b", &Equal{Type: str})
	s2 := Single("a", &Subtype{Lower: types.Never, Upper: number})
	s, ok := s1.Meet(s2)
	require.True(t, ok)
	assert.Equal(t, "{a: Integer <: _ <: Number, b: = String}", s.String())
	assert.Equal(t, 2, s.Len())

	_, ok = s1.Meet(Single("b", &Equal{Type: integer}))
	assert.False(t, ok)

	assert.Equal(t, "{}", NewSet().String())
}

func TestGenerate(t *testing.T) {
	for _, tc := range []struct {
		name       string
		vars       *set.Set[string]
		sub, super types.Type
		want       string
		ok         bool
	}{
		{"upper bound", vars("a"), a, integer, "{a: Never <: _ <: Integer}", true},
		{"lower bound", vars("a"), integer, a, "{a: Integer <: _ <: Any}", true},
		{"identity function", vars("a"), types.NewFunction(a, a), types.NewFunction(integer, integer), "{a: Integer <: _ <: Integer}", true},
		{"covariant list", vars("a"), types.NewList(a), types.NewList(number), "{a: Never <: _ <: Number}", true},
		{"fixed types", vars(), integer, number, "{}", true},
		{"fixed mismatch", vars(), number, integer, "", false},
		{"tag mismatch", vars("a"), types.NewList(a), str, "", false},
		{"rigid variable", vars("a"), b, integer, "", false},
		{"rigid identity", vars("a"), types.NewFunction(a, a), types.NewFunction(b, b), "{a: b <: _ <: b}", true},
		{"never", vars("a"), types.Never, types.NewList(a), "{}", true},
		{"variadic", vars("a"), types.NewVariadic([]types.Type{a}, integer, 2, -1), types.Curried([]types.Type{integer, number}, integer), "{a: Never <: _ <: Integer}", true},
		{"variadic procedure", vars("a"), types.NewVariadic([]types.Type{number}, a, 0, -1), types.NewProcedure(integer), "{a: Never <: _ <: Integer}", true},
		{"variadic range", vars("a"), types.NewVariadic([]types.Type{a}, a, 2, 3), types.NewFunction(integer, integer), "", false},
	} {
		cs, ok := Generate(tc.vars, tc.sub, tc.super)
		require.Equal(t, tc.ok, ok, tc.name)
		if ok {
			assert.Equal(t, tc.want, cs.String(), tc.name)
		}
	}
}

func TestMinimalSubstitution(t *testing.T) {
	goal := types.NewFunction(a, b)
	cs := Single("a", &Subtype{Lower: integer, Upper: number}).With("b", &Subtype{Lower: integer, Upper: number})
	sub, ok := MinimalSubstitution(cs, goal)
	require.True(t, ok)
	assert.Equal(t, "Number", types.TypeString(sub["a"]))
	assert.Equal(t, "Integer", types.TypeString(sub["b"]))

	// Unconstrained free variables of the goal are assigned Never or Any:
	sub, ok = MinimalSubstitution(NewSet(), goal)
	require.True(t, ok)
	assert.Equal(t, "Any", types.TypeString(sub["a"]))
	assert.Equal(t, "Never", types.TypeString(sub["b"]))

	_, ok = MinimalSubstitution(Single("a", &Subtype{Lower: str, Upper: integer}), goal)
	assert.False(t, ok)
}

func TestVarianceOf(t *testing.T) {
	assert.Equal(t, types.Covariant, VarianceOf("a", a))
	assert.Equal(t, types.Constant, VarianceOf("a", b))
	assert.Equal(t, types.Contravariant, VarianceOf("a", types.NewFunction(a, b)))
	assert.Equal(t, types.Covariant, VarianceOf("a", types.NewFunction(types.NewFunction(a, b), b)))
	assert.Equal(t, types.Invariant, VarianceOf("a", types.NewFunction(a, a)))
	assert.Equal(t, types.Constant, VarianceOf("a", &types.Forall{Vars: []string{"a"}, Body: a}))
	assert.Equal(t, types.Invariant, VarianceOf("a", types.NewConcrete("Box", types.Param{Name: "0", Type: a})))
}
