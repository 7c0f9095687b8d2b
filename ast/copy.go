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

func copyName(n *Name) *Name {
	if n == nil {
		return nil
	}
	return &Name{n.Name}
}

func copyBindings(bs []*Binding) []*Binding {
	cp := make([]*Binding, len(bs))
	for i, b := range bs {
		cp[i] = &Binding{copyName(b.Name), CopyExpr(b.Value)}
	}
	return cp
}

func copyExprs(es []Expr) []Expr {
	cp := make([]Expr, len(es))
	for i, e := range es {
		cp[i] = CopyExpr(e)
	}
	return cp
}

// CopyExpr returns a deep copy of e. Type annotations are shared, since types are immutable.
func CopyExpr(e Expr) Expr {
	switch e := e.(type) {
	case *Number:
		return &Number{e.Value}

	case *Boolean:
		return &Boolean{e.Value}

	case *String:
		return &String{e.Value}

	case *Null:
		return &Null{}

	case *Hole:
		return &Hole{}

	case *Var:
		return &Var{e.Name}

	case *Name:
		return copyName(e)

	case *Call:
		return &Call{CopyExpr(e.Func), copyExprs(e.Args)}

	case *Define:
		return &Define{copyName(e.Name), e.Type, CopyExpr(e.Value)}

	case *Let:
		return &Let{copyBindings(e.Bindings), CopyExpr(e.Body)}

	case *Letrec:
		return &Letrec{copyBindings(e.Bindings), CopyExpr(e.Body)}

	case *Binding:
		return &Binding{copyName(e.Name), CopyExpr(e.Value)}

	case *Lambda:
		params := make([]*Name, len(e.Params))
		for i, p := range e.Params {
			params[i] = copyName(p)
		}
		return &Lambda{params, CopyExpr(e.Body)}

	case *Sequence:
		return &Sequence{copyExprs(e.Exprs)}

	case *If:
		return &If{CopyExpr(e.Cond), CopyExpr(e.Then), CopyExpr(e.Else)}

	case *Cond:
		clauses := make([]*Clause, len(e.Clauses))
		for i, c := range e.Clauses {
			clauses[i] = &Clause{CopyExpr(c.Test), CopyExpr(c.Value)}
		}
		return &Cond{clauses}

	case *Clause:
		return &Clause{CopyExpr(e.Test), CopyExpr(e.Value)}

	case *Set:
		return &Set{&Var{e.Var.Name}, CopyExpr(e.Value)}

	case *The:
		return &The{e.Type, CopyExpr(e.Value)}

	case nil:
		return nil
	}
	panic("unknown expression type: " + e.ExprName())
}
