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

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Path is the structural position of a node within a tree: the sequence of child indexes
// leading from the root to the node. The root is at the empty path.
type Path []int

// Child extends p by one child index. The receiver is never modified.
func (p Path) Child(i int) Path {
	c := make(Path, len(p)+1)
	copy(c, p)
	c[len(p)] = i
	return c
}

// String renders p as dot-separated indexes (`0.2.1`); the root path renders as ``.
func (p Path) String() string {
	var sb strings.Builder
	for i, idx := range p {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(idx))
	}
	return sb.String()
}

// ParsePath parses the output of Path.String.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	parts := strings.Split(s, ".")
	p := make(Path, len(parts))
	for i, part := range parts {
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 0 {
			return nil, errors.Errorf("Invalid path index %q", part)
		}
		p[i] = idx
	}
	return p, nil
}

// Tree is a root expression with a stable identity and a revision which changes on every mutation
// made through the tree.
//
// A tree cannot be mutated concurrently with inference.
type Tree struct {
	id       uuid.UUID
	root     Expr
	revision uint64
}

// Create a tree with a new identity.
func NewTree(root Expr) *Tree {
	return &Tree{id: uuid.New(), root: root}
}

// ID returns the identity of the tree.
func (t *Tree) ID() uuid.UUID { return t.id }

// Root returns the root expression of the tree.
func (t *Tree) Root() Expr { return t.root }

// Revision returns the number of mutations made through the tree.
func (t *Tree) Revision() uint64 { return t.revision }

// Touch records a mutation made directly to the tree's expressions.
func (t *Tree) Touch() { t.revision++ }

// At returns the expression at path.
func (t *Tree) At(path Path) (Expr, bool) { return At(t.root, path) }

// At returns the expression at path, relative to root.
func At(root Expr, path Path) (Expr, bool) {
	e := root
	for _, idx := range path {
		if e == nil {
			return nil, false
		}
		cs := e.Children()
		if idx < 0 || idx >= len(cs) {
			return nil, false
		}
		e = cs[idx]
	}
	return e, e != nil
}

// Replace the expression at path with e, returning the previous expression.
func (t *Tree) Replace(path Path, e Expr) (Expr, error) {
	if len(path) == 0 {
		prev := t.root
		t.root = e
		t.revision++
		return prev, nil
	}
	parent, ok := t.At(path[:len(path)-1])
	if !ok {
		return nil, errors.Errorf("Invalid path [%s]", path)
	}
	prev, err := replaceChild(parent, path[len(path)-1], e)
	if err != nil {
		return nil, err
	}
	t.revision++
	return prev, nil
}

// Clone returns a deep copy of the tree, with a new identity.
func (t *Tree) Clone() *Tree { return NewTree(CopyExpr(t.root)) }

var errChildIndex = errors.New("Child index out of range")

func replaceChild(parent Expr, i int, e Expr) (Expr, error) {
	if i < 0 || i >= len(parent.Children()) {
		return nil, errChildIndex
	}
	prev := parent.Children()[i]
	switch p := parent.(type) {
	case *Call:
		if i == 0 {
			p.Func = e
		} else {
			p.Args[i-1] = e
		}
	case *Define:
		if i == 0 {
			return replaceName(&p.Name, prev, e)
		}
		p.Value = e
	case *Let:
		return replaceBindingChild(p.Bindings, &p.Body, i, prev, e)
	case *Letrec:
		return replaceBindingChild(p.Bindings, &p.Body, i, prev, e)
	case *Binding:
		if i == 0 {
			return replaceName(&p.Name, prev, e)
		}
		p.Value = e
	case *Lambda:
		if i < len(p.Params) {
			return replaceName(&p.Params[i], prev, e)
		}
		p.Body = e
	case *Sequence:
		p.Exprs[i] = e
	case *If:
		switch i {
		case 0:
			p.Cond = e
		case 1:
			p.Then = e
		default:
			p.Else = e
		}
	case *Cond:
		c, ok := e.(*Clause)
		if !ok {
			return nil, errors.New("Cond children must be clauses")
		}
		p.Clauses[i] = c
	case *Clause:
		if i == 0 {
			p.Test = e
		} else {
			p.Value = e
		}
	case *Set:
		if i == 0 {
			v, ok := e.(*Var)
			if !ok {
				return nil, errors.New("Assignment target must be a variable")
			}
			p.Var = v
		} else {
			p.Value = e
		}
	case *The:
		p.Value = e
	default:
		return nil, errChildIndex
	}
	return prev, nil
}

func replaceName(slot **Name, prev, e Expr) (Expr, error) {
	n, ok := e.(*Name)
	if !ok {
		return nil, errors.New("Binding position requires a name")
	}
	*slot = n
	return prev, nil
}

func replaceBindingChild(bindings []*Binding, body *Expr, i int, prev, e Expr) (Expr, error) {
	if i == len(bindings) {
		*body = e
		return prev, nil
	}
	b, ok := e.(*Binding)
	if !ok {
		return nil, errors.New("Let children must be bindings")
	}
	bindings[i] = b
	return prev, nil
}
