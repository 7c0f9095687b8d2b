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
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/wdamron/vtype/ast"
	"github.com/wdamron/vtype/types"
)

// DefaultMaxDepth is the default limit on expression nesting.
const DefaultMaxDepth = 4096

// Context is a reusable context for type inference.
//
// Each inference call begins by resetting the state of the context: the unification store,
// the unknown-id counter, the position-keyed cache, and the error slot.
//
// An inference context cannot be used concurrently.
type Context struct {
	logger   *slog.Logger
	maxDepth int

	store  *unificationStore
	nextId int
	trees  map[uuid.UUID]*treeCache
	tree   *treeCache // tree currently being inferred

	err         error
	invalid     ast.Expr
	invalidPath ast.Path
}

// Types computed for the expressions of one tree, keyed by path, for one revision of the tree.
type treeCache struct {
	id       uuid.UUID
	revision uint64
	raw      map[string]types.Type
	general  map[string]types.Type
	gen      *generalizer // nil until inference of the tree succeeds
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger which receives debug records from inference.
// By default, records are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) { c.logger = logger }
}

// WithMaxDepth limits the nesting of expressions. Inference of a deeper expression fails with a
// NestingTooDeep error. A limit <= 0 disables the check.
func WithMaxDepth(depth int) Option {
	return func(c *Context) { c.maxDepth = depth }
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext(opts ...Option) *Context {
	c := &Context{
		logger:   slog.New(slog.DiscardHandler),
		maxDepth: DefaultMaxDepth,
		store:    newUnificationStore(),
		trees:    make(map[uuid.UUID]*treeCache),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Context) reset() {
	c.store.Reset()
	for id := range c.trees {
		delete(c.trees, id)
	}
	c.nextId, c.tree = 0, nil
	c.err, c.invalid, c.invalidPath = nil, nil, nil
}

// Reset the state of the context. The context will be reset automatically before inference.
func (c *Context) Reset() { c.reset() }

// Get the error which caused the most recent inference to fail.
func (c *Context) Error() error { return c.err }

// Get the expression which caused the most recent inference to fail.
func (c *Context) InvalidExpr() ast.Expr { return c.invalid }

// Get the path of the expression which caused the most recent inference to fail.
func (c *Context) InvalidPath() ast.Path { return c.invalidPath }

// Record err in the error slot.
func (c *Context) fail(err error) error {
	c.err = err
	var tagged Error
	if errors.As(err, &tagged) {
		loc := tagged.Location()
		c.invalid, c.invalidPath = loc.Expr, loc.Path
		c.logger.Debug("inference failed", "kind", tagged.Kind(), "path", loc.Path.String(), "error", err)
	} else {
		c.invalid, c.invalidPath = nil, nil
		c.logger.Debug("inference failed", "error", err)
	}
	return err
}

// Infer the type of the root of tree within env. env may be nil.
//
// Types computed for the expressions of the tree remain available through TypeAt until the next
// inference call.
func (c *Context) Infer(tree *ast.Tree, env *TypeEnv) (types.Type, error) {
	c.reset()
	if tree == nil || tree.Root() == nil {
		return nil, c.fail(errors.New("Empty expression"))
	}
	c.logger.Debug("infer", "tree", tree.ID(), "revision", tree.Revision())
	t, err := c.inferTree(tree, env)
	if err != nil {
		return nil, c.fail(err)
	}
	return t, nil
}

// Infer the type of expr within env, as the root of an anonymous tree.
func (c *Context) InferExpr(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	if expr == nil {
		c.reset()
		return nil, c.fail(errors.New("Empty expression"))
	}
	return c.Infer(ast.NewTree(expr), env)
}

// Infer the type of the expression at path within tree. The whole tree is inferred, and the type
// of the expression is generalized with the same names as the type of the root.
func (c *Context) InferSubexpr(tree *ast.Tree, path ast.Path, env *TypeEnv) (types.Type, error) {
	if _, err := c.Infer(tree, env); err != nil {
		return nil, err
	}
	if _, ok := tree.At(path); !ok {
		return nil, c.fail(errors.Errorf("No expression at path [%s]", path))
	}
	t, err := c.typeAt(c.trees[tree.ID()], path)
	if err != nil {
		return nil, c.fail(err)
	}
	return t, nil
}

// TypeAt returns the generalized type computed for the expression at path by the most recent
// inference call, if the tree has not been modified since.
func (c *Context) TypeAt(tree *ast.Tree, path ast.Path) (types.Type, bool) {
	tc, ok := c.trees[tree.ID()]
	if !ok || tc.revision != tree.Revision() || tc.gen == nil {
		return nil, false
	}
	t, err := c.typeAt(tc, path)
	return t, err == nil
}

func (c *Context) typeAt(tc *treeCache, path ast.Path) (types.Type, error) {
	key := path.String()
	if t, ok := tc.general[key]; ok {
		return t, nil
	}
	raw, ok := tc.raw[key]
	if !ok {
		return nil, errors.Errorf("No type recorded at path [%s]", key)
	}
	t, err := tc.gen.generalize(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "at path [%s]", key)
	}
	tc.general[key] = t
	return t, nil
}

func (c *Context) beginTree(tree *ast.Tree) *treeCache {
	tc := &treeCache{
		id:       tree.ID(),
		revision: tree.Revision(),
		raw:      make(map[string]types.Type),
		general:  make(map[string]types.Type),
	}
	c.trees[tc.id], c.tree = tc, tc
	return tc
}

func (c *Context) inferTree(tree *ast.Tree, env *TypeEnv) (types.Type, error) {
	tc := c.beginTree(tree)
	t, err := c.infer(env, ast.Path{}, tree.Root())
	if err != nil {
		return nil, err
	}
	return c.finishTree(tc, env, t)
}

// Generalize the root type of a tree with a snapshot of the unification store. Later queries for the
// tree's expressions share the snapshot and its variable names.
func (c *Context) finishTree(tc *treeCache, env *TypeEnv, t types.Type) (types.Type, error) {
	tc.gen = newGeneralizer(c.store.Clone(), env.FreeTypeVars())
	g, err := tc.gen.generalize(t)
	if err != nil {
		return nil, err
	}
	tc.general[ast.Path{}.String()] = g
	c.logger.Debug("inferred", "tree", tc.id, "type", types.TypeString(g))
	return g, nil
}

// Record the type of the expression at path within the current tree.
func (c *Context) record(path ast.Path, t types.Type) {
	if c.tree != nil {
		c.tree.raw[path.String()] = t
	}
}
