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
	"os"

	"github.com/pkg/errors"
	"github.com/wdamron/vtype/ast"
	"gopkg.in/yaml.v3"
)

// Document is the decoded form of an expression document. Each tree is a mapping with a single key
// naming the kind of its root expression:
//
//	trees:
//	  - define:
//	      name: id
//	      value: {lambda: {params: [x], body: {ref: x}}}
//	  - call: [{ref: id}, {num: 42}]
//
// Kinds: num, bool, str, null, hole, ref, call, define, let, letrec, lambda, seq, if, cond, set, the.
type Document struct {
	Trees []Expr `yaml:"trees"`
}

// Expr decodes an expression from YAML.
type Expr struct {
	ast.Expr
}

// LoadDocument reads an expression document.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return ParseDocument(data, path)
}

// ParseDocument decodes an expression document.
// The name argument is used only for error messages.
func ParseDocument(data []byte, name string) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", name)
	}
	return &doc, nil
}

// Exprs returns the root expressions of the document.
func (d *Document) Exprs() []ast.Expr {
	exprs := make([]ast.Expr, len(d.Trees))
	for i, e := range d.Trees {
		exprs[i] = e.Expr
	}
	return exprs
}

type bindingNode struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Value Expr   `yaml:"value"`
}

type letNode struct {
	Bindings []bindingNode `yaml:"bindings"`
	Body     Expr          `yaml:"body"`
}

type lambdaNode struct {
	Params []string `yaml:"params"`
	Body   Expr     `yaml:"body"`
}

type clauseNode struct {
	Test  Expr `yaml:"test"`
	Value Expr `yaml:"value"`
}

func nodeError(node *yaml.Node, format string, args ...interface{}) error {
	return errors.Errorf("line %d: "+format, append([]interface{}{node.Line}, args...)...)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Expr) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return nodeError(node, "expression must be a mapping with a single key")
	}
	kind, value := node.Content[0].Value, node.Content[1]
	var err error
	e.Expr, err = decodeExpr(kind, value)
	return err
}

func decodeExpr(kind string, value *yaml.Node) (ast.Expr, error) {
	switch kind {
	case "num":
		var v float64
		if err := value.Decode(&v); err != nil {
			return nil, err
		}
		return &ast.Number{Value: v}, nil

	case "bool":
		var v bool
		if err := value.Decode(&v); err != nil {
			return nil, err
		}
		return &ast.Boolean{Value: v}, nil

	case "str":
		var v string
		if err := value.Decode(&v); err != nil {
			return nil, err
		}
		return &ast.String{Value: v}, nil

	case "null":
		return &ast.Null{}, nil

	case "hole":
		return &ast.Hole{}, nil

	case "ref":
		var name string
		if err := value.Decode(&name); err != nil || name == "" {
			return nil, nodeError(value, "ref requires a name")
		}
		return &ast.Var{Name: name}, nil

	case "call":
		var items []Expr
		if err := value.Decode(&items); err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, nodeError(value, "call requires a function")
		}
		args := make([]ast.Expr, len(items)-1)
		for i, item := range items[1:] {
			args[i] = item.Expr
		}
		return &ast.Call{Func: items[0].Expr, Args: args}, nil

	case "define":
		var b bindingNode
		if err := value.Decode(&b); err != nil {
			return nil, err
		}
		if b.Name == "" || b.Value.Expr == nil {
			return nil, nodeError(value, "define requires a name and a value")
		}
		d := &ast.Define{Name: &ast.Name{Name: b.Name}, Value: b.Value.Expr}
		if b.Type != "" {
			t, err := ParseType(b.Type)
			if err != nil {
				return nil, err
			}
			d.Type = t
		}
		return d, nil

	case "let", "letrec":
		var l letNode
		if err := value.Decode(&l); err != nil {
			return nil, err
		}
		if l.Body.Expr == nil {
			return nil, nodeError(value, "%s requires a body", kind)
		}
		bindings := make([]*ast.Binding, len(l.Bindings))
		for i, b := range l.Bindings {
			if b.Name == "" || b.Value.Expr == nil {
				return nil, nodeError(value, "%s binding %d requires a name and a value", kind, i)
			}
			bindings[i] = &ast.Binding{Name: &ast.Name{Name: b.Name}, Value: b.Value.Expr}
		}
		if kind == "letrec" {
			return &ast.Letrec{Bindings: bindings, Body: l.Body.Expr}, nil
		}
		return &ast.Let{Bindings: bindings, Body: l.Body.Expr}, nil

	case "lambda":
		var l lambdaNode
		if err := value.Decode(&l); err != nil {
			return nil, err
		}
		if l.Body.Expr == nil {
			return nil, nodeError(value, "lambda requires a body")
		}
		params := make([]*ast.Name, len(l.Params))
		for i, p := range l.Params {
			params[i] = &ast.Name{Name: p}
		}
		return &ast.Lambda{Params: params, Body: l.Body.Expr}, nil

	case "seq":
		var items []Expr
		if err := value.Decode(&items); err != nil {
			return nil, err
		}
		exprs := make([]ast.Expr, len(items))
		for i, item := range items {
			exprs[i] = item.Expr
		}
		return &ast.Sequence{Exprs: exprs}, nil

	case "if":
		var items []Expr
		if err := value.Decode(&items); err != nil {
			return nil, err
		}
		if len(items) != 3 {
			return nil, nodeError(value, "if requires a condition and two branches")
		}
		return &ast.If{Cond: items[0].Expr, Then: items[1].Expr, Else: items[2].Expr}, nil

	case "cond":
		var items []clauseNode
		if err := value.Decode(&items); err != nil {
			return nil, err
		}
		clauses := make([]*ast.Clause, len(items))
		for i, item := range items {
			if item.Test.Expr == nil || item.Value.Expr == nil {
				return nil, nodeError(value, "cond clause %d requires a test and a value", i)
			}
			clauses[i] = &ast.Clause{Test: item.Test.Expr, Value: item.Value.Expr}
		}
		return &ast.Cond{Clauses: clauses}, nil

	case "set":
		var b bindingNode
		if err := value.Decode(&b); err != nil {
			return nil, err
		}
		if b.Name == "" || b.Value.Expr == nil {
			return nil, nodeError(value, "set requires a name and a value")
		}
		return &ast.Set{Var: &ast.Var{Name: b.Name}, Value: b.Value.Expr}, nil

	case "the":
		var b bindingNode
		if err := value.Decode(&b); err != nil {
			return nil, err
		}
		if b.Type == "" || b.Value.Expr == nil {
			return nil, nodeError(value, "the requires a type and a value")
		}
		t, err := ParseType(b.Type)
		if err != nil {
			return nil, err
		}
		return &ast.The{Type: t, Value: b.Value.Expr}, nil
	}
	return nil, errors.Errorf("unknown expression kind %q", kind)
}
