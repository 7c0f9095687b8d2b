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

	"github.com/wdamron/vtype/types"
)

// ExprString returns the s-expression syntax of an expression.
func ExprString(expr Expr) string {
	var sb strings.Builder
	exprString(&sb, expr)
	return sb.String()
}

func exprString(sb *strings.Builder, e Expr) {
	switch e := e.(type) {
	case nil:
		sb.WriteString("<nil>")

	case *Number:
		sb.WriteString(strconv.FormatFloat(e.Value, 'g', -1, 64))

	case *Boolean:
		if e.Value {
			sb.WriteString("#t")
		} else {
			sb.WriteString("#f")
		}

	case *String:
		sb.WriteString(strconv.Quote(e.Value))

	case *Null:
		sb.WriteString("'()")

	case *Hole:
		sb.WriteByte('_')

	case *Var:
		sb.WriteString(e.Name)

	case *Name:
		sb.WriteString(e.Name)

	case *Call:
		sb.WriteByte('(')
		exprString(sb, e.Func)
		for _, arg := range e.Args {
			sb.WriteByte(' ')
			exprString(sb, arg)
		}
		sb.WriteByte(')')

	case *Define:
		sb.WriteString("(define ")
		if e.Type != nil {
			sb.WriteString("(the ")
			sb.WriteString(types.TypeString(e.Type))
			sb.WriteByte(' ')
			exprString(sb, e.Name)
			sb.WriteByte(')')
		} else {
			exprString(sb, e.Name)
		}
		sb.WriteByte(' ')
		exprString(sb, e.Value)
		sb.WriteByte(')')

	case *Let:
		sb.WriteString("(let ")
		bindingsString(sb, e.Bindings)
		sb.WriteByte(' ')
		exprString(sb, e.Body)
		sb.WriteByte(')')

	case *Letrec:
		sb.WriteString("(letrec ")
		bindingsString(sb, e.Bindings)
		sb.WriteByte(' ')
		exprString(sb, e.Body)
		sb.WriteByte(')')

	case *Binding:
		sb.WriteByte('(')
		exprString(sb, e.Name)
		sb.WriteByte(' ')
		exprString(sb, e.Value)
		sb.WriteByte(')')

	case *Lambda:
		sb.WriteString("(lambda (")
		for i, p := range e.Params {
			if i > 0 {
				sb.WriteByte(' ')
			}
			exprString(sb, p)
		}
		sb.WriteString(") ")
		exprString(sb, e.Body)
		sb.WriteByte(')')

	case *Sequence:
		sb.WriteString("(sequence")
		for _, x := range e.Exprs {
			sb.WriteByte(' ')
			exprString(sb, x)
		}
		sb.WriteByte(')')

	case *If:
		sb.WriteString("(if ")
		exprString(sb, e.Cond)
		sb.WriteByte(' ')
		exprString(sb, e.Then)
		sb.WriteByte(' ')
		exprString(sb, e.Else)
		sb.WriteByte(')')

	case *Cond:
		sb.WriteString("(cond")
		for _, c := range e.Clauses {
			sb.WriteByte(' ')
			exprString(sb, c)
		}
		sb.WriteByte(')')

	case *Clause:
		sb.WriteByte('(')
		exprString(sb, e.Test)
		sb.WriteByte(' ')
		exprString(sb, e.Value)
		sb.WriteByte(')')

	case *Set:
		sb.WriteString("(set! ")
		exprString(sb, e.Var)
		sb.WriteByte(' ')
		exprString(sb, e.Value)
		sb.WriteByte(')')

	case *The:
		sb.WriteString("(the ")
		sb.WriteString(types.TypeString(e.Type))
		sb.WriteByte(' ')
		exprString(sb, e.Value)
		sb.WriteByte(')')

	default:
		sb.WriteString(e.ExprName())
	}
}

func bindingsString(sb *strings.Builder, bindings []*Binding) {
	sb.WriteByte('(')
	for i, b := range bindings {
		if i > 0 {
			sb.WriteByte(' ')
		}
		exprString(sb, b)
	}
	sb.WriteByte(')')
}
