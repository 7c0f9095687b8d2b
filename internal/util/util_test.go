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

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keepFirst(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func TestUnionFind(t *testing.T) {
	uf := NewUnionFind[int, string](keepFirst)
	for i := 0; i < 6; i++ {
		uf.AddSingleton(i, "")
	}
	uf.Set(2, "two")
	require.True(t, uf.Union(0, 1))
	require.True(t, uf.Union(1, 2))
	require.True(t, uf.Union(3, 4))
	assert.False(t, uf.Union(0, 9))

	for i := 0; i < 3; i++ {
		v, ok := uf.Representative(i)
		require.True(t, ok)
		assert.Equal(t, "two", v)
	}
	r0, _ := uf.Root(0)
	r2, _ := uf.Root(2)
	r3, _ := uf.Root(3)
	r4, _ := uf.Root(4)
	assert.Equal(t, r0, r2)
	assert.Equal(t, r3, r4)
	assert.NotEqual(t, r0, r3)

	// Existing keys are not replaced:
	uf.AddSingleton(2, "other")
	v, _ := uf.Representative(0)
	assert.Equal(t, "two", v)
	assert.Equal(t, 6, uf.Len())
	assert.False(t, uf.Has(6))
}

func TestUnionFindClone(t *testing.T) {
	uf := NewUnionFind[int, string](keepFirst)
	uf.AddSingleton(0, "zero")
	uf.AddSingleton(1, "")
	clone := uf.Clone()
	clone.Union(0, 1)
	clone.Set(0, "changed")

	v, _ := uf.Representative(1)
	assert.Equal(t, "", v)
	v, _ = uf.Representative(0)
	assert.Equal(t, "zero", v)
	v, _ = clone.Representative(1)
	assert.Equal(t, "changed", v)

	uf.Reset()
	assert.Equal(t, 0, uf.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestSCC(t *testing.T) {
	g := NewGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(0, 1)
	g.AddEdge(3, 2)
	g.AddEdge(4, 3)
	g.AddEdge(2, 4)
	g.AddEdge(1, 2)

	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(2, 0))
	assert.Len(t, g[0], 1)

	// Every component follows the components it depends on:
	assert.Equal(t, [][]int{{2, 3, 4}, {0, 1}}, g.SCC())

	g = NewGraph(3)
	g.AddEdge(0, 2)
	assert.Equal(t, [][]int{{2}, {0}, {1}}, g.SCC())
}
