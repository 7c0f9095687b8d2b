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
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/wdamron/vtype/ast"
	"github.com/wdamron/vtype/types"
)

// Canvas holds the results of inferring every tree on a canvas.
type Canvas struct {
	// Types maps each tree to the generalized type of its root, or Any if inference of the tree failed.
	Types       map[uuid.UUID]types.Type
	Diagnostics Diagnostics
}

// TypeOf returns the type inferred for the root of tree.
func (cv *Canvas) TypeOf(tree *ast.Tree) (types.Type, bool) {
	t, ok := cv.Types[tree.ID()]
	return t, ok
}

// Failed checks if inference of tree failed.
func (cv *Canvas) Failed(tree *ast.Tree) bool { return len(cv.Diagnostics.ForTree(tree.ID())) > 0 }

// InferCanvas infers the type of every tree on a canvas within env.
//
// Trees whose roots are definitions are visible to every tree on the canvas; they are inferred in
// dependency order, and each group of mutually-recursive definitions is generalized before the
// definitions which depend on it. A name defined by more than one tree is rejected for every tree
// after the first.
//
// When inference of a tree fails, its error is recorded as a diagnostic, the tree's type (and the
// type of its definition) becomes Any, and inference continues with the remaining trees. A
// definition which was unified with a failed definition of its own recursive group, as in
// (define a b), shares the failed definition's type and so is also typed Any, without a diagnostic
// of its own.
func (c *Context) InferCanvas(trees []*ast.Tree, env *TypeEnv) *Canvas {
	c.reset()
	cv := &Canvas{Types: make(map[uuid.UUID]types.Type, len(trees))}
	c.logger.Debug("infer canvas", "trees", len(trees))

	var (
		defs     []int // tree indexes
		defNames []string
		values   []ast.Expr
		seen     = make(map[string]struct{})
	)
	for i, tree := range trees {
		d, ok := tree.Root().(*ast.Define)
		if !ok {
			continue
		}
		if _, dup := seen[d.Name.Name]; dup {
			c.failTree(cv, tree, &DuplicateDefinition{Site: Site{d, ast.Path{}}, Name: d.Name.Name})
			continue
		}
		seen[d.Name.Name] = struct{}{}
		defs, defNames, values = append(defs, i), append(defNames, d.Name.Name), append(values, d.Value)
	}

	raw := make(map[int]types.Type, len(trees))
	shared := env
	for _, group := range bindingGroups(defNames, values) {
		names := make([]string, len(group))
		unknowns := make([]types.Type, len(group))
		for j, k := range group {
			names[j], unknowns[j] = defNames[k], c.fresh()
		}
		inner := shared.WithAll(names, unknowns)
		for j, k := range group {
			i := defs[k]
			t, err := c.inferIsolated(trees[i], func() (types.Type, error) {
				return c.inferDefine(inner, ast.Path{}, trees[i].Root().(*ast.Define), unknowns[j])
			})
			if err != nil {
				c.failTree(cv, trees[i], err)
				// Failed definitions are usable everywhere:
				c.store.Set(unknowns[j].(*types.Unknown).Id, types.Any)
				continue
			}
			raw[i] = t
		}
		general := make([]types.Type, len(group))
		for j := range group {
			general[j] = c.generalizeLocal(unknowns[j], shared)
		}
		shared = shared.WithAll(names, general)
	}

	for i, tree := range trees {
		if _, isDef := tree.Root().(*ast.Define); isDef || tree.Root() == nil {
			if tree.Root() == nil {
				c.failTree(cv, tree, errors.New("Empty expression"))
			}
			continue
		}
		t, err := c.inferIsolated(tree, func() (types.Type, error) {
			return c.infer(shared, ast.Path{}, tree.Root())
		})
		if err != nil {
			c.failTree(cv, tree, err)
			continue
		}
		raw[i] = t
	}

	for i, tree := range trees {
		t, ok := raw[i]
		if !ok {
			continue
		}
		g, err := c.finishTree(c.trees[tree.ID()], env, t)
		if err != nil {
			c.failTree(cv, tree, err)
			continue
		}
		cv.Types[tree.ID()] = g
	}
	return cv
}

// Infer one tree of a canvas. If inference fails, the unification store is restored to its state
// before the tree was inferred, and the tree's cached types are discarded.
func (c *Context) inferIsolated(tree *ast.Tree, infer func() (types.Type, error)) (types.Type, error) {
	snapshot := c.store.Clone()
	c.beginTree(tree)
	t, err := infer()
	if err != nil {
		c.store = snapshot
		delete(c.trees, tree.ID())
		return nil, err
	}
	return t, nil
}

func (c *Context) failTree(cv *Canvas, tree *ast.Tree, err error) {
	path := ast.Path{}
	var tagged Error
	if errors.As(err, &tagged) {
		path = tagged.Location().Path
	}
	cv.Diagnostics.Add(tree.ID(), path, err)
	cv.Types[tree.ID()] = types.Any
	delete(c.trees, tree.ID())
	c.fail(err)
}
