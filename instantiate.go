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
	"maps"
	"slices"

	"github.com/wdamron/vtype/types"
)

// Replace each type-variable within t by a fresh unknown. Occurrences of the same variable share an
// unknown through memo, except where a nested quantifier rebinds the name. Unknowns are left in place.
func (c *Context) instantiate(t types.Type, memo map[string]types.Type) types.Type {
	switch t := t.(type) {
	case *types.Var:
		if u, ok := memo[t.Name]; ok {
			return u
		}
		u := c.fresh()
		memo[t.Name] = u
		return u
	case *types.Unknown:
		return t
	case *types.Forall:
		inner := maps.Clone(memo)
		for _, name := range t.Vars {
			delete(inner, name)
		}
		body := c.instantiate(t.Body, inner)
		for name, u := range inner {
			if !slices.Contains(t.Vars, name) {
				memo[name] = u
			}
		}
		return body
	case *types.Concrete:
		if t.Params.Len() == 0 {
			return t
		}
	}
	return types.MapParams(t, func(p types.Type) types.Type { return c.instantiate(p, memo) })
}
