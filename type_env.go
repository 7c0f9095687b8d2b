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
	"github.com/wdamron/vtype/types"
)

// TypeEnv is a persistent type-environment containing mappings from identifiers to declared types.
//
// Free type-variables within a declared type are implicitly quantified: each reference to the
// identifier receives fresh instances of them.
//
// Extending a type-environment with With never modifies the original, so a single environment
// may be shared across inference contexts.
type TypeEnv struct {
	types types.TypeMap
}

// Create an empty type-environment.
func NewTypeEnv() *TypeEnv { return &TypeEnv{types: types.NewTypeMap()} }

// Create a type-environment from a Go map.
func NewTypeEnvFrom(m map[string]types.Type) *TypeEnv {
	return &TypeEnv{types: types.NewTypeMapFrom(m)}
}

func (e *TypeEnv) typeMap() types.TypeMap {
	if e == nil {
		return types.NewTypeMap()
	}
	return e.types
}

// Declare binds name to t in place. Declare should only be used while building an environment,
// before it is shared.
func (e *TypeEnv) Declare(name string, t types.Type) { e.types = e.typeMap().Set(name, t) }

// With returns an extension of the environment with name bound to t.
func (e *TypeEnv) With(name string, t types.Type) *TypeEnv {
	return &TypeEnv{types: e.typeMap().Set(name, t)}
}

// WithAll returns an extension of the environment with each name bound to the corresponding type.
func (e *TypeEnv) WithAll(names []string, ts []types.Type) *TypeEnv {
	b := e.typeMap().Builder()
	for i, name := range names {
		b.Set(name, ts[i])
	}
	return &TypeEnv{types: b.Build()}
}

// Lookup the type declared for name.
func (e *TypeEnv) Lookup(name string) (types.Type, bool) { return e.typeMap().Get(name) }

// Len returns the number of declared names.
func (e *TypeEnv) Len() int { return e.typeMap().Len() }

// Range iterates over declarations in order of name.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) Range(f func(string, types.Type) bool) { e.typeMap().Range(f) }

// FreeTypeVars returns the names of the type-variables which occur free in any declared type.
func (e *TypeEnv) FreeTypeVars() *set.Set[string] {
	free := set.New[string](8)
	e.Range(func(_ string, t types.Type) bool {
		types.AddFreeVars(t, free)
		return true
	})
	return free
}

// Collect the canonical ids of the unknowns which occur in declared types, after resolution.
func (e *TypeEnv) unknowns(resolve func(types.Type) types.Type) *set.Set[int] {
	ids := set.New[int](8)
	e.Range(func(_ string, t types.Type) bool {
		if types.ContainsUnknowns(t) {
			types.WalkUnknowns(resolve(t), func(u *types.Unknown) { ids.Insert(u.Id) })
		}
		return true
	})
	return ids
}
