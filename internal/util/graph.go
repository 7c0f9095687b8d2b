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

import "slices"

// Graph is a directed graph over vertices 0..n-1, stored as adjacency lists.
type Graph [][]int

func NewGraph(numVerts int) Graph { return Graph(make([][]int, numVerts)) }

// AddEdge adds an edge from -> to, once.
func (g Graph) AddEdge(from, to int) {
	if !g.HasEdge(from, to) {
		g[from] = append(g[from], to)
	}
}

func (g Graph) HasEdge(from, to int) bool {
	for _, succ := range g[from] {
		if succ == to {
			return true
		}
	}
	return false
}

// SCC returns the strongly-connected components of g. When an edge u -> v means "u depends on v",
// components are returned in dependency order: every component follows the components it depends on.
// Vertices within a component are sorted.
func (g Graph) SCC() [][]int {
	s := sccState{
		index:   make([]int, len(g)),
		lowLink: make([]int, len(g)),
		onStack: make([]bool, len(g)),
	}
	for v := range g {
		if s.index[v] == 0 {
			g.strongConnect(&s, v)
		}
	}
	return s.sccs
}

type sccState struct {
	counter int
	index   []int // 1-based visitation order; 0 when unvisited
	lowLink []int
	onStack []bool
	stack   []int
	sccs    [][]int
}

// Tarjan's algorithm. Components are emitted after all components reachable from them.
func (g Graph) strongConnect(s *sccState, v int) {
	s.counter++
	s.index[v], s.lowLink[v] = s.counter, s.counter
	s.stack = append(s.stack, v)
	s.onStack[v] = true

	for _, w := range g[v] {
		switch {
		case s.index[w] == 0:
			g.strongConnect(s, w)
			if s.lowLink[w] < s.lowLink[v] {
				s.lowLink[v] = s.lowLink[w]
			}
		case s.onStack[w] && s.index[w] < s.lowLink[v]:
			s.lowLink[v] = s.index[w]
		}
	}

	if s.lowLink[v] != s.index[v] {
		return
	}
	var c []int
	for {
		w := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.onStack[w] = false
		c = append(c, w)
		if w == v {
			break
		}
	}
	slices.Sort(c)
	s.sccs = append(s.sccs, c)
}
