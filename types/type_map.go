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
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

var EmptyTypeMap = TypeMap{emptyMap}

// TypeMap contains immutable mappings from names to types. Entries are sorted by name.
type TypeMap struct {
	m *immutable.SortedMap
}

func NewTypeMap() TypeMap { return TypeMap{emptyMap} }

// Create a TypeMap with a single entry.
func SingletonTypeMap(name string, t Type) TypeMap {
	return TypeMap{emptyMap.Set(name, t)}
}

// Create a TypeMap from a Go map.
func NewTypeMapFrom(m map[string]Type) TypeMap {
	b := NewTypeMapBuilder()
	for name, t := range m {
		b.Set(name, t)
	}
	return b.Build()
}

func (m TypeMap) sorted() *immutable.SortedMap {
	if m.m == nil {
		return emptyMap
	}
	return m.m
}

// Get the number of entries in the map.
func (m TypeMap) Len() int { return m.sorted().Len() }

// Get the type for a name.
func (m TypeMap) Get(name string) (Type, bool) {
	t, ok := m.sorted().Get(name)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Set returns a copy of the map with name bound to t.
func (m TypeMap) Set(name string, t Type) TypeMap {
	return TypeMap{m.sorted().Set(name, t)}
}

// Delete returns a copy of the map without name.
func (m TypeMap) Delete(name string) TypeMap {
	return TypeMap{m.sorted().Delete(name)}
}

// Iterate over entries in the map, in sorted order.
// If f returns false, iteration will be stopped.
func (m TypeMap) Range(f func(string, Type) bool) {
	iter := m.sorted().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}

// Convert the map to a builder for modification, without mutating the existing map.
func (m TypeMap) Builder() TypeMapBuilder {
	return TypeMapBuilder{immutable.NewSortedMapBuilder(m.sorted())}
}

// TypeMapBuilder enables in-place updates of a map before finalization.
type TypeMapBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewTypeMapBuilder() TypeMapBuilder {
	return TypeMapBuilder{immutable.NewSortedMapBuilder(emptyMap)}
}

// Get the number of entries in the builder.
func (b TypeMapBuilder) Len() int { return b.b.Len() }

// Set the type for the given name in the builder.
func (b TypeMapBuilder) Set(name string, t Type) TypeMapBuilder {
	b.b.Set(name, t)
	return b
}

// Delete the given name from the builder.
func (b TypeMapBuilder) Delete(name string) TypeMapBuilder {
	b.b.Delete(name)
	return b
}

// Finalize the builder into an immutable map.
func (b TypeMapBuilder) Build() TypeMap { return TypeMap{b.b.Map()} }
