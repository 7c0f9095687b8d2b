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
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

type typePrinter struct {
	sb strings.Builder
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns a human-readable representation of a Type.
//
// Function types are printed with right-associative arrows (`Integer -> a -> a`), zero-argument
// procedures as `() -> T`, other parameterized types in prefix form (`(List Integer)`), and
// unknowns as `?N`.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

func (t *Concrete) String() string { return TypeString(t) }
func (t *Var) String() string      { return TypeString(t) }
func (t *Forall) String() string   { return TypeString(t) }
func (t *Variadic) String() string { return TypeString(t) }
func (t *Unknown) String() string  { return TypeString(t) }

// simple is set when t appears in a position where an arrow must be parenthesized.
func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case nil:
		p.sb.WriteString("<nil>")

	case *Var:
		p.sb.WriteString(t.Name)

	case *Unknown:
		p.sb.WriteByte('?')
		p.sb.WriteString(strconv.Itoa(t.Id))

	case *Forall:
		if simple {
			p.sb.WriteByte('(')
		}
		p.sb.WriteString("forall")
		for _, name := range t.Vars {
			p.sb.WriteByte(' ')
			p.sb.WriteString(name)
		}
		p.sb.WriteString(". ")
		typeString(p, false, t.Body)
		if simple {
			p.sb.WriteByte(')')
		}

	case *Variadic:
		if simple {
			p.sb.WriteByte('(')
		}
		p.sb.WriteByte('(')
		for i, arg := range t.Args {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			typeString(p, false, arg)
		}
		p.sb.WriteString("...)")
		p.sb.WriteString(" [")
		p.sb.WriteString(strconv.Itoa(t.MinArgs))
		p.sb.WriteString("..")
		if t.MaxArgs >= 0 {
			p.sb.WriteString(strconv.Itoa(t.MaxArgs))
		}
		p.sb.WriteString("] -> ")
		typeString(p, false, t.Out)
		if simple {
			p.sb.WriteByte(')')
		}

	case *Concrete:
		switch {
		case t.Tag == FunctionTag && t.Params.Len() == 2:
			if simple {
				p.sb.WriteByte('(')
			}
			typeString(p, true, t.Params.At(0).Type)
			p.sb.WriteString(" -> ")
			typeString(p, false, t.Params.At(1).Type)
			if simple {
				p.sb.WriteByte(')')
			}

		case t.Tag == ProcedureTag && t.Params.Len() == 1:
			if simple {
				p.sb.WriteByte('(')
			}
			p.sb.WriteString("() -> ")
			typeString(p, false, t.Params.At(0).Type)
			if simple {
				p.sb.WriteByte(')')
			}

		case t.Params.Len() == 0:
			p.sb.WriteString(t.Tag)

		default:
			p.sb.WriteByte('(')
			p.sb.WriteString(t.Tag)
			t.Params.Range(func(_ int, param Param) bool {
				p.sb.WriteByte(' ')
				typeString(p, true, param.Type)
				return true
			})
			p.sb.WriteByte(')')
		}

	default:
		p.sb.WriteString(t.TypeName())
	}
}
