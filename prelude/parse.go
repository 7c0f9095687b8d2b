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

package prelude

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/wdamron/vtype/types"
)

// ParseType parses the s-expression syntax of a type:
//
//	Integer                         ; constant
//	a                               ; type-variable (lower-case initial)
//	(List a)                        ; list
//	(Pair a b)                      ; pair
//	(Procedure a)                   ; zero-argument function
//	(-> a b c)                      ; curried function: a -> b -> c
//	(forall (a b) (-> a b))         ; quantified type
//	(variadic 1 * (Number) Number)  ; variadic function; `*` (or -1) for no upper limit
//	(Tag a b)                       ; any other tag, with positional parameters
func ParseType(src string) (types.Type, error) {
	p := &parser{src: src}
	p.tokenize()
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, p.errorf("unexpected %q after type", p.peek())
	}
	return t, nil
}

type parser struct {
	src    string
	tokens []string
	pos    int
}

func (p *parser) tokenize() {
	var tok strings.Builder
	flush := func() {
		if tok.Len() > 0 {
			p.tokens = append(p.tokens, tok.String())
			tok.Reset()
		}
	}
	for _, r := range p.src {
		switch {
		case r == '(' || r == ')':
			flush()
			p.tokens = append(p.tokens, string(r))
		case unicode.IsSpace(r):
			flush()
		default:
			tok.WriteRune(r)
		}
	}
	flush()
}

func (p *parser) done() bool { return p.pos >= len(p.tokens) }

func (p *parser) peek() string {
	if p.done() {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *parser) next() string {
	tok := p.peek()
	p.pos++
	return tok
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(errors.Errorf(format, args...), "invalid type %q", p.src)
}

func (p *parser) expect(tok string) error {
	if got := p.next(); got != tok {
		if got == "" {
			return p.errorf("expected %q, found end of input", tok)
		}
		return p.errorf("expected %q, found %q", tok, got)
	}
	return nil
}

func (p *parser) parseType() (types.Type, error) {
	switch tok := p.next(); tok {
	case "":
		return nil, p.errorf("unexpected end of input")
	case ")":
		return nil, p.errorf("unexpected %q", tok)
	case "(":
		return p.parseApplication()
	default:
		return atom(tok), nil
	}
}

func atom(tok string) types.Type {
	switch tok {
	case types.AnyTag:
		return types.Any
	case types.NeverTag:
		return types.Never
	}
	if unicode.IsLower([]rune(tok)[0]) {
		return &types.Var{Name: tok}
	}
	return types.Const(tok)
}

// Parse the remainder of a parenthesized type, after the opening parenthesis.
func (p *parser) parseApplication() (types.Type, error) {
	head := p.next()
	switch head {
	case "", "(", ")":
		return nil, p.errorf("expected a type constructor, found %q", head)
	case "forall":
		return p.parseForall()
	case "variadic":
		return p.parseVariadic()
	}
	args, err := p.parseUntilClose()
	if err != nil {
		return nil, err
	}
	arity := func(n int) error {
		if len(args) != n {
			return p.errorf("%s expects %d parameters, found %d", head, n, len(args))
		}
		return nil
	}
	switch head {
	case "->":
		if len(args) < 2 {
			return nil, p.errorf("-> expects at least 2 types, found %d", len(args))
		}
		return types.Curried(args[:len(args)-1], args[len(args)-1]), nil
	case types.ListTag:
		if err := arity(1); err != nil {
			return nil, err
		}
		return types.NewList(args[0]), nil
	case types.PairTag:
		if err := arity(2); err != nil {
			return nil, err
		}
		return types.NewPair(args[0], args[1]), nil
	case types.ProcedureTag:
		if err := arity(1); err != nil {
			return nil, err
		}
		return types.NewProcedure(args[0]), nil
	}
	params := make([]types.Param, len(args))
	for i, arg := range args {
		params[i] = types.Param{Name: strconv.Itoa(i), Type: arg}
	}
	return types.NewConcrete(head, params...), nil
}

func (p *parser) parseUntilClose() ([]types.Type, error) {
	var ts []types.Type
	for p.peek() != ")" {
		if p.done() {
			return nil, p.errorf("missing %q", ")")
		}
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	p.next()
	return ts, nil
}

func (p *parser) parseForall() (types.Type, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var vars []string
	for p.peek() != ")" {
		tok := p.next()
		if tok == "" || tok == "(" || !unicode.IsLower([]rune(tok)[0]) {
			return nil, p.errorf("expected a type-variable name, found %q", tok)
		}
		vars = append(vars, tok)
	}
	p.next()
	body, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err = p.expect(")"); err != nil {
		return nil, err
	}
	return &types.Forall{Vars: vars, Body: body}, nil
}

func (p *parser) parseVariadic() (types.Type, error) {
	min, err := strconv.Atoi(p.next())
	if err != nil || min < 0 {
		return nil, p.errorf("variadic minimum must be a non-negative integer")
	}
	max := -1
	if tok := p.next(); tok != "*" {
		if max, err = strconv.Atoi(tok); err != nil || (max >= 0 && max < min) {
			return nil, p.errorf("variadic maximum must be an integer no less than %d, or *", min)
		}
	}
	if err = p.expect("("); err != nil {
		return nil, err
	}
	args, err := p.parseUntilClose()
	if err != nil {
		return nil, err
	}
	out, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err = p.expect(")"); err != nil {
		return nil, err
	}
	if max < 0 {
		max = -1
	}
	return types.NewVariadic(args, out, min, max), nil
}
