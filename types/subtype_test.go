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
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	integer = Const(IntegerTag)
	number  = Const(NumberTag)
	str     = Const(StringTag)
	boolean = Const(BooleanTag)
)

func TestNumericTower(t *testing.T) {
	for _, tc := range []struct {
		sub, super Type
		want       bool
	}{
		{integer, number, true},
		{number, integer, false},
		{integer, integer, true},
		{str, Any, true},
		{Never, str, true},
		{Any, str, false},
		{str, Never, false},
		{NewList(integer), NewList(number), true},
		{NewList(number), NewList(integer), false},
		{NewPair(integer, str), NewPair(number, str), true},
		{NewProcedure(integer), NewProcedure(number), true},
		{NewFunction(number, integer), NewFunction(integer, number), true},
		{NewFunction(integer, integer), NewFunction(number, integer), false},
		{NewConcrete("Box", Param{"0", integer}), NewConcrete("Box", Param{"0", number}), false},
		{NewConcrete("Box", Param{"0", integer}), NewConcrete("Box", Param{"0", integer}), true},
		{&Var{Name: "a"}, &Var{Name: "a"}, true},
		{&Var{Name: "a"}, &Var{Name: "b"}, false},
	} {
		assert.Equal(t, tc.want, IsSubtype(tc.sub, tc.super), "%s <: %s", tc.sub, tc.super)
	}
}

func TestVariadicSubtype(t *testing.T) {
	atLeastOne := NewVariadic([]Type{integer}, integer, 1, -1)
	assert.False(t, IsSubtype(atLeastOne, NewProcedure(integer)))
	assert.True(t, IsSubtype(atLeastOne, NewFunction(integer, integer)))
	assert.True(t, IsSubtype(atLeastOne, Curried([]Type{integer, integer}, number)))
	assert.False(t, IsSubtype(atLeastOne, NewFunction(str, integer)))

	open := NewVariadic([]Type{number}, integer, 0, -1)
	assert.True(t, IsSubtype(open, NewProcedure(integer)))
	assert.True(t, IsSubtype(open, NewFunction(number, number)))
	// Fixed parameters must be supertypes of the variadic parameters:
	assert.False(t, IsSubtype(open, NewFunction(integer, number)))

	bounded := NewVariadic([]Type{number}, number, 0, 2)
	assert.True(t, IsSubtype(open, bounded))
	assert.False(t, IsSubtype(bounded, open))
	assert.False(t, IsSubtype(NewVariadic([]Type{number}, number, 0, 1), Curried([]Type{number, number}, number)))
}

func TestMeetJoin(t *testing.T) {
	for _, tc := range []struct {
		a, b       Type
		meet, join string
	}{
		{integer, number, "Integer", "Number"},
		{integer, str, "Never", "Any"},
		{str, Any, "String", "Any"},
		{str, Never, "Never", "String"},
		{NewFunction(integer, integer), NewFunction(number, number), "Number -> Integer", "Integer -> Number"},
		{NewList(integer), NewList(number), "(List Integer)", "(List Number)"},
		{NewPair(integer, number), NewPair(number, integer), "(Pair Integer Integer)", "(Pair Number Number)"},
		{NewConcrete("Box", Param{"0", integer}), NewConcrete("Box", Param{"0", number}), "Never", "Any"},
	} {
		assert.Equal(t, tc.meet, TypeString(Meet(tc.a, tc.b)), "meet of %s and %s", tc.a, tc.b)
		assert.Equal(t, tc.join, TypeString(Join(tc.a, tc.b)), "join of %s and %s", tc.a, tc.b)
	}
}

func TestVariance(t *testing.T) {
	assert.Equal(t, Contravariant, Covariant.Flip())
	assert.Equal(t, Covariant, Contravariant.Compose(Contravariant))
	assert.Equal(t, Invariant, Covariant.Join(Contravariant))
	assert.Equal(t, Covariant, Constant.Join(Covariant))
	assert.Equal(t, []Variance{Contravariant, Covariant}, ParamVariance(NewFunction(integer, integer)))
	assert.Equal(t, []Variance{Invariant}, ParamVariance(NewConcrete("Box", Param{"0", integer})))
}
