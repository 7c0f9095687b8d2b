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

// MergeFunc combines the values of two classes when they are unioned.
type MergeFunc[V any] func(a, b V) V

type ufNode[K comparable, V any] struct {
	parent K
	rank   int
	value  V // only meaningful for class representatives
}

// UnionFind is a disjoint-set forest over keys, carrying a merged value for each class.
//
// A UnionFind cannot be used concurrently.
type UnionFind[K comparable, V any] struct {
	nodes map[K]*ufNode[K, V]
	merge MergeFunc[V]
}

// Create an empty UnionFind. Values of unioned classes are combined with merge.
func NewUnionFind[K comparable, V any](merge MergeFunc[V]) *UnionFind[K, V] {
	return &UnionFind[K, V]{nodes: make(map[K]*ufNode[K, V]), merge: merge}
}

// Len returns the number of keys in the structure.
func (uf *UnionFind[K, V]) Len() int { return len(uf.nodes) }

// Has checks if key has been added.
func (uf *UnionFind[K, V]) Has(key K) bool {
	_, ok := uf.nodes[key]
	return ok
}

// AddSingleton creates a new one-element class for key. An existing key is left unchanged.
func (uf *UnionFind[K, V]) AddSingleton(key K, value V) {
	if _, exists := uf.nodes[key]; exists {
		return
	}
	uf.nodes[key] = &ufNode[K, V]{parent: key, value: value}
}

// find returns the root of key's class, compressing the path from key to the root.
func (uf *UnionFind[K, V]) find(key K) (K, *ufNode[K, V], bool) {
	nd, ok := uf.nodes[key]
	if !ok {
		return key, nil, false
	}
	root, rootNode := key, nd
	for rootNode.parent != root {
		root = rootNode.parent
		rootNode = uf.nodes[root]
	}
	// Path compression:
	for nd.parent != root {
		next := nd.parent
		nd.parent = root
		nd = uf.nodes[next]
	}
	return root, rootNode, true
}

// Root returns the representative key of key's class.
func (uf *UnionFind[K, V]) Root(key K) (K, bool) {
	root, _, ok := uf.find(key)
	return root, ok
}

// Representative returns the merged value of key's class, or false if key has not been added.
func (uf *UnionFind[K, V]) Representative(key K) (V, bool) {
	_, root, ok := uf.find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return root.value, true
}

// Set replaces the value of key's class. Returns false if key has not been added.
func (uf *UnionFind[K, V]) Set(key K, value V) bool {
	_, root, ok := uf.find(key)
	if !ok {
		return false
	}
	root.value = value
	return true
}

// Union merges the classes containing a and b, combining their values with the merge function
// (the value of a's class is passed first). Returns false if either key has not been added.
func (uf *UnionFind[K, V]) Union(a, b K) bool {
	ra, na, ok := uf.find(a)
	if !ok {
		return false
	}
	rb, nb, ok := uf.find(b)
	if !ok {
		return false
	}
	if ra == rb {
		return true
	}
	merged := uf.merge(na.value, nb.value)
	// Union by rank:
	switch {
	case na.rank < nb.rank:
		na.parent = rb
		nb.value = merged
	case na.rank > nb.rank:
		nb.parent = ra
		na.value = merged
	default:
		nb.parent = ra
		na.rank++
		na.value = merged
	}
	return true
}

// Clone returns an independent copy of the structure, sharing the merge function.
func (uf *UnionFind[K, V]) Clone() *UnionFind[K, V] {
	c := &UnionFind[K, V]{nodes: make(map[K]*ufNode[K, V], len(uf.nodes)), merge: uf.merge}
	for k, nd := range uf.nodes {
		cp := *nd
		c.nodes[k] = &cp
	}
	return c
}

// Reset removes all keys.
func (uf *UnionFind[K, V]) Reset() {
	for k := range uf.nodes {
		delete(uf.nodes, k)
	}
}
