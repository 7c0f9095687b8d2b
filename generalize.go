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
	set "github.com/hashicorp/go-set/v3"
	"github.com/wdamron/vtype/internal/util"
	"github.com/wdamron/vtype/types"
)

// generalizer replaces the unsolved unknowns of types with type-variables, using a snapshot of the
// unification store. Names are chosen in order of first occurrence and are shared by every type
// generalized within one session, so that related types print with consistent variable names.
type generalizer struct {
	store *unificationStore
	names *util.UnionFind[int, string]
	gen   types.VarNames
	taken *set.Set[string]
}

// Names which are free within the environment are never chosen.
func newGeneralizer(snapshot *unificationStore, taken *set.Set[string]) *generalizer {
	return &generalizer{
		store: snapshot,
		names: util.NewUnionFind[int, string](preferNamed),
		taken: taken.Copy(),
	}
}

func preferNamed(a, b string) string {
	if a == "" {
		return b
	}
	return a
}

// Generalize t. ErrIncomplete is returned if t contains unknowns which do not belong to the snapshot.
func (g *generalizer) generalize(t types.Type) (types.Type, error) {
	t = g.replace(resolveIn(g.store, t))
	if types.ContainsUnknowns(t) {
		return nil, ErrIncomplete
	}
	return t, nil
}

func (g *generalizer) replace(t types.Type) types.Type {
	switch t := t.(type) {
	case *types.Unknown:
		root, ok := g.store.Root(t.Id)
		if !ok {
			return t
		}
		g.names.AddSingleton(root, "")
		g.names.AddSingleton(t.Id, "")
		g.names.Union(root, t.Id)
		name, _ := g.names.Representative(root)
		if name == "" {
			name = g.gen.Next(g.taken)
			g.taken.Insert(name)
			g.names.Set(root, name)
		}
		return &types.Var{Name: name}
	case *types.Var:
		return t
	case *types.Forall:
		return &types.Forall{Vars: t.Vars, Body: g.replace(t.Body)}
	}
	return types.MapParams(t, g.replace)
}

// Generalize the unknowns of t which do not occur within env, for a let-binding. Unknowns which
// occur within env remain monomorphic.
func (c *Context) generalizeLocal(t types.Type, env *TypeEnv) types.Type {
	t = c.resolve(t)
	if !types.ContainsUnknowns(t) {
		return t
	}
	fixed := env.unknowns(c.resolve)
	var (
		gen   types.VarNames
		names = make(map[int]string)
	)
	var replace func(types.Type) types.Type
	replace = func(t types.Type) types.Type {
		switch t := t.(type) {
		case *types.Unknown:
			if fixed.Contains(t.Id) {
				return t
			}
			name, ok := names[t.Id]
			if !ok {
				name = gen.Next(nil)
				names[t.Id] = name
			}
			return &types.Var{Name: name}
		case *types.Var:
			return t
		case *types.Forall:
			return &types.Forall{Vars: t.Vars, Body: replace(t.Body)}
		}
		return types.MapParams(t, replace)
	}
	g := replace(t)
	c.logger.Debug("generalized binding", "type", types.TypeString(t), "generalized", types.TypeString(g))
	return g
}
