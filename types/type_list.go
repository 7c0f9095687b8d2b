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

var emptyList = immutable.NewList()

// Param is a named type parameter of a concrete type.
type Param struct {
	Name string
	Type Type
}

// ParamList is an immutable, ordered list of named type parameters.
type ParamList struct {
	l *immutable.List
}

// Create a ParamList containing params, in order.
func NewParamList(params ...Param) ParamList {
	if len(params) == 0 {
		return ParamList{}
	}
	b := immutable.NewListBuilder(emptyList)
	for _, p := range params {
		b.Append(p)
	}
	return ParamList{b.List()}
}

// Get the number of parameters in the list.
func (l ParamList) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

// Get the parameter at index i.
func (l ParamList) At(i int) Param { return l.l.Get(i).(Param) }

// Get the type of the parameter named name.
func (l ParamList) Get(name string) (Type, bool) {
	for i, n := 0, l.Len(); i < n; i++ {
		if p := l.At(i); p.Name == name {
			return p.Type, true
		}
	}
	return nil, false
}

// Iterate over parameters in the list.
// If f returns false, iteration will be stopped.
func (l ParamList) Range(f func(int, Param) bool) {
	if l.l == nil {
		return
	}
	iter := l.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(Param)) {
			return
		}
	}
}

// Copy the parameters into a new slice.
func (l ParamList) Slice() []Param {
	ps := make([]Param, 0, l.Len())
	l.Range(func(_ int, p Param) bool {
		ps = append(ps, p)
		return true
	})
	return ps
}

// Types returns the parameter types, in order.
func (l ParamList) Types() []Type {
	ts := make([]Type, 0, l.Len())
	l.Range(func(_ int, p Param) bool {
		ts = append(ts, p.Type)
		return true
	})
	return ts
}

// Map f over the parameter types, without mutating the existing list.
func (l ParamList) Map(f func(Type) Type) ParamList {
	if l.Len() == 0 {
		return l
	}
	b := immutable.NewListBuilder(l.l)
	l.Range(func(i int, p Param) bool {
		b.Set(i, Param{p.Name, f(p.Type)})
		return true
	})
	return ParamList{b.List()}
}

// Replace the type of the parameter at index i, without mutating the existing list.
func (l ParamList) Set(i int, t Type) ParamList {
	p := l.At(i)
	return ParamList{l.l.Set(i, Param{p.Name, t})}
}
