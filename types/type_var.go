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
	"strconv"

	set "github.com/hashicorp/go-set/v3"
)

// FreeVars returns the names of the type variables in t which are not bound by a Forall.
func FreeVars(t Type) *set.Set[string] {
	free := set.New[string](4)
	collectFreeVars(t, nil, free)
	return free
}

// AddFreeVars inserts the names of the free type variables of t into free.
func AddFreeVars(t Type, free *set.Set[string]) { collectFreeVars(t, nil, free) }

func collectFreeVars(t Type, bound []string, free *set.Set[string]) {
	switch t := t.(type) {
	case *Var:
		for _, name := range bound {
			if name == t.Name {
				return
			}
		}
		free.Insert(t.Name)
	case *Forall:
		collectFreeVars(t.Body, append(bound[:len(bound):len(bound)], t.Vars...), free)
	case *Concrete, *Variadic:
		for _, p := range Params(t) {
			collectFreeVars(p.Type, bound, free)
		}
	}
}

// VarName returns the i-th generated type-variable name: `a` .. `z`, then `a1` .. `z1`, `a2`, ...
func VarName(i int) string {
	name := string(rune('a' + i%26))
	if i >= 26 {
		name += strconv.Itoa(i / 26)
	}
	return name
}

// VarNames generates fresh type-variable names in order, skipping names which are taken.
type VarNames struct {
	next int
}

// Next returns the next generated name which is not contained in taken. taken may be nil.
func (g *VarNames) Next(taken *set.Set[string]) string {
	for {
		name := VarName(g.next)
		g.next++
		if taken == nil || !taken.Contains(name) {
			return name
		}
	}
}

// Reset the generator to start again from `a`.
func (g *VarNames) Reset() { g.next = 0 }
