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

package vtype

import (
	"github.com/wdamron/vtype/ast"
	"github.com/wdamron/vtype/internal/util"
)

// Dependency analysis for grouped bindings which may be mutually-recursive; borrowed from Haskell.
// https://prime.haskell.org/wiki/RelaxedDependencyAnalysis
//
//   In Haskell 98, a group of bindings is sorted into strongly-connected components, and then type-checked
//   in dependency order (H98 s4.5.1). As each dependency group is type-checked, any binders of the group
//   that have an explicit type signature are put in the type environment with the specified polymorphic type,
//   and all others are monomorphic until the group is generalized (H98 s4.5.2).
//
// bindingGroups returns the indexes of the bindings, grouped into strongly-connected components in
// dependency order. names must be unique.
func bindingGroups(names []string, values []ast.Expr) [][]int {
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	g := util.NewGraph(len(names))
	for i, value := range values {
		for _, ref := range ast.FreeNames(value) {
			if j, ok := index[ref]; ok {
				g.AddEdge(i, j)
			}
		}
	}
	return g.SCC()
}

// Find the first name which occurs more than once. The index of the second occurrence is returned.
func firstDuplicate(names []string) (int, bool) {
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		if _, dup := seen[name]; dup {
			return i, true
		}
		seen[name] = struct{}{}
	}
	return 0, false
}
