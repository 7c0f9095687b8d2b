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

package ast

// WalkExpr calls f for e and each of its descendants, in pre-order, along with their paths
// relative to e. Children of an expression are not visited when f returns false.
func WalkExpr(e Expr, f func(Path, Expr) bool) {
	walkExpr(Path{}, e, f)
}

func walkExpr(path Path, e Expr, f func(Path, Expr) bool) {
	if e == nil || !f(path, e) {
		return
	}
	for i, c := range e.Children() {
		walkExpr(path.Child(i), c, f)
	}
}

// FreeNames returns the names referenced within e which are not bound within e, in order of first
// reference.
func FreeNames(e Expr) []string {
	var (
		names []string
		seen  = make(map[string]bool)
	)
	freeNames(e, nil, seen, &names)
	return names
}

func freeNames(e Expr, bound []string, seen map[string]bool, names *[]string) {
	isBound := func(name string) bool {
		for i := len(bound) - 1; i >= 0; i-- {
			if bound[i] == name {
				return true
			}
		}
		return false
	}
	switch e := e.(type) {
	case *Var:
		if !isBound(e.Name) && !seen[e.Name] {
			seen[e.Name] = true
			*names = append(*names, e.Name)
		}
	case *Define:
		freeNames(e.Value, append(bound[:len(bound):len(bound)], e.Name.Name), seen, names)
	case *Let:
		inner := bound[:len(bound):len(bound)]
		for _, b := range e.Bindings {
			freeNames(b.Value, bound, seen, names)
			inner = append(inner, b.Name.Name)
		}
		freeNames(e.Body, inner, seen, names)
	case *Letrec:
		inner := bound[:len(bound):len(bound)]
		for _, b := range e.Bindings {
			inner = append(inner, b.Name.Name)
		}
		for _, b := range e.Bindings {
			freeNames(b.Value, inner, seen, names)
		}
		freeNames(e.Body, inner, seen, names)
	case *Lambda:
		inner := bound[:len(bound):len(bound)]
		for _, p := range e.Params {
			inner = append(inner, p.Name)
		}
		freeNames(e.Body, inner, seen, names)
	case nil:
	default:
		for _, c := range e.Children() {
			freeNames(c, bound, seen, names)
		}
	}
}
