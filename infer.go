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
	"math"

	set "github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
	"github.com/wdamron/vtype/ast"
	"github.com/wdamron/vtype/constraint"
	"github.com/wdamron/vtype/types"
)

// Infer the type of e, at path within the current tree, and record it.
func (c *Context) infer(env *TypeEnv, path ast.Path, e ast.Expr) (types.Type, error) {
	if c.maxDepth > 0 && len(path) > c.maxDepth {
		return nil, &NestingTooDeep{Site: Site{e, path}, Max: c.maxDepth}
	}
	t, err := c.inferExpr(env, path, e)
	if err != nil {
		return nil, err
	}
	c.record(path, t)
	return t, nil
}

func (c *Context) inferExpr(env *TypeEnv, path ast.Path, e ast.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *ast.Number:
		if e.Value == math.Trunc(e.Value) && !math.IsInf(e.Value, 0) {
			return types.Const(types.IntegerTag), nil
		}
		return types.Const(types.NumberTag), nil

	case *ast.Boolean:
		return types.Const(types.BooleanTag), nil

	case *ast.String:
		return types.Const(types.StringTag), nil

	case *ast.Null:
		return types.Const(types.NullTag), nil

	case *ast.Hole:
		return c.fresh(), nil

	case *ast.Var:
		t, ok := env.Lookup(e.Name)
		if !ok {
			return nil, &UnboundVariable{Site: Site{e, path}, Name: e.Name}
		}
		return c.instantiate(t, make(map[string]types.Type)), nil

	case *ast.Name:
		// Binding occurrences are recorded by their binders.
		if t, ok := env.Lookup(e.Name); ok {
			return t, nil
		}
		return c.fresh(), nil

	case *ast.Call:
		return c.inferCall(env, path, e)

	case *ast.Define:
		return c.inferDefine(env, path, e, c.fresh())

	case *ast.Let:
		return c.inferLet(env, path, e)

	case *ast.Letrec:
		return c.inferLetrec(env, path, e)

	case *ast.Lambda:
		return c.inferLambda(env, path, e)

	case *ast.Sequence:
		var t types.Type
		for i, x := range e.Exprs {
			xt, err := c.infer(env, path.Child(i), x)
			if err != nil {
				return nil, err
			}
			t = xt
		}
		if t == nil {
			return c.fresh(), nil
		}
		return t, nil

	case *ast.If:
		if _, err := c.infer(env, path.Child(0), e.Cond); err != nil {
			return nil, err
		}
		thenType, err := c.infer(env, path.Child(1), e.Then)
		if err != nil {
			return nil, err
		}
		elseType, err := c.infer(env, path.Child(2), e.Else)
		if err != nil {
			return nil, err
		}
		t, err := c.coerce(thenType, elseType, Site{e.Then, path.Child(1)}, Site{e.Else, path.Child(2)})
		if err != nil {
			return nil, err
		}
		return c.resolve(t), nil

	case *ast.Cond:
		result := types.Type(c.fresh())
		for i, clause := range e.Clauses {
			clausePath := path.Child(i)
			if _, err := c.infer(env, clausePath.Child(0), clause.Test); err != nil {
				return nil, err
			}
			vt, err := c.infer(env, clausePath.Child(1), clause.Value)
			if err != nil {
				return nil, err
			}
			if err = c.unify(result, vt, Site{e, path}, Site{clause.Value, clausePath.Child(1)}); err != nil {
				return nil, err
			}
			c.record(clausePath, vt)
		}
		return c.resolve(result), nil

	case *ast.Set:
		return c.inferSet(env, path, e)

	case *ast.The:
		return c.inferThe(env, path, e)

	case nil:
		return nil, errors.Errorf("Missing expression at path [%s]", path)
	}
	return nil, errors.Errorf("Unhandled expression type %s at path [%s]", e.ExprName(), path)
}

// Arguments are inferred from last to first; each argument is then applied to the callee's curried
// function type in order, so that constraints from later arguments inform earlier ones.
func (c *Context) inferCall(env *TypeEnv, path ast.Path, e *ast.Call) (types.Type, error) {
	calleeSite := Site{e.Func, path.Child(0)}
	ft, err := c.infer(env, calleeSite.Path, e.Func)
	if err != nil {
		return nil, err
	}
	argc := len(e.Args)
	argTypes := make([]types.Type, argc)
	for i := argc - 1; i >= 0; i-- {
		if argTypes[i], err = c.infer(env, path.Child(i+1), e.Args[i]); err != nil {
			return nil, err
		}
	}

	callee, _, _ := c.shallow(ft)
	switch callee := callee.(type) {
	case *types.Unknown:
		if argc == 0 {
			out := c.fresh()
			if err = c.unify(callee, types.NewProcedure(out), calleeSite, Site{e, path}); err != nil {
				return nil, err
			}
			return out, nil
		}

	case *types.Variadic:
		if !callee.Accepts(argc) {
			return nil, &VariadicArityMismatch{Site: Site{e, path}, Min: callee.MinArgs, Max: callee.MaxArgs, Actual: argc}
		}
		ft = callee.Fixed(argc)
		if argc == 0 {
			out, _ := ft.(*types.Concrete).Params.Get(types.OutParam)
			return c.resolve(out), nil
		}

	case *types.Concrete:
		switch callee.Tag {
		case types.AnyTag:
			return types.Any, nil
		case types.ProcedureTag:
			if argc != 0 {
				return nil, &ArityMismatch{Site: Site{e, path}, Expected: 0, Actual: argc}
			}
			out, _ := callee.Params.Get(types.OutParam)
			return c.resolve(out), nil
		case types.FunctionTag:
			if argc == 0 {
				return nil, &ArityMismatch{Site: Site{e, path}, Expected: 1, Actual: 0, AtLeast: true}
			}
		default:
			return nil, &NotCallable{Site: calleeSite, Type: c.resolve(callee)}
		}

	default:
		return nil, errors.Errorf("Type-variables must be instantiated before application: %s", types.TypeString(callee))
	}

	result := ft
	for i, at := range argTypes {
		if i > 0 {
			// An over-applied function runs out of parameters:
			if r, _, _ := c.shallow(result); types.HasTag(r, types.ProcedureTag) ||
				(!types.HasTag(r, types.FunctionTag) && !types.HasTag(r, types.AnyTag) && !types.IsUnknown(r)) {
				return nil, &ArityMismatch{Site: Site{e, path}, Expected: i, Actual: argc}
			} else if types.HasTag(r, types.AnyTag) {
				return types.Any, nil
			}
		}
		out := c.fresh()
		argSite := Site{e.Args[i], path.Child(i + 1)}
		if err = c.unify(result, types.NewFunction(at, out), calleeSite, argSite); err != nil {
			return nil, err
		}
		result = out
	}
	return c.resolve(result), nil
}

// The defined name is bound to nameType while its value is inferred, so that definitions may be
// recursive. A declared type is checked against the value as an annotation.
func (c *Context) inferDefine(env *TypeEnv, path ast.Path, e *ast.Define, nameType types.Type) (types.Type, error) {
	if e.Type != nil {
		if err := c.unify(nameType, c.instantiate(e.Type, make(map[string]types.Type)), Site{e.Name, path.Child(0)}, Site{e, path}); err != nil {
			return nil, err
		}
	}
	inner := env.With(e.Name.Name, nameType)
	valuePath := path.Child(1)
	var (
		vt  types.Type
		err error
	)
	if e.Type != nil {
		vt, err = c.inferAnnotated(inner, valuePath, e.Value, e.Type)
	} else {
		vt, err = c.infer(inner, valuePath, e.Value)
	}
	if err != nil {
		return nil, err
	}
	if err = c.unify(nameType, vt, Site{e.Name, path.Child(0)}, Site{e.Value, valuePath}); err != nil {
		return nil, err
	}
	t := c.resolve(nameType)
	c.record(path.Child(0), t)
	return t, nil
}

// Bindings of a let see only the enclosing environment.
func (c *Context) inferLet(env *TypeEnv, path ast.Path, e *ast.Let) (types.Type, error) {
	names := make([]string, len(e.Bindings))
	for i, b := range e.Bindings {
		names[i] = b.Name.Name
	}
	if i, dup := firstDuplicate(names); dup {
		b := e.Bindings[i]
		return nil, &DuplicateDefinition{Site: Site{b, path.Child(i)}, Name: b.Name.Name}
	}
	raw := make([]types.Type, len(e.Bindings))
	general := make([]types.Type, len(e.Bindings))
	for i, b := range e.Bindings {
		vt, err := c.infer(env, path.Child(i).Child(1), b.Value)
		if err != nil {
			return nil, err
		}
		raw[i], general[i] = vt, c.generalizeLocal(vt, env)
	}
	body := env.WithAll(names, general)
	for i := range e.Bindings {
		c.recordBinding(path.Child(i), raw[i])
	}
	return c.infer(body, path.Child(len(e.Bindings)), e.Body)
}

// Bindings of a letrec are inferred in dependency order. Each group of mutually-recursive bindings
// is monomorphic within the group, and generalized before later groups and the body are inferred.
func (c *Context) inferLetrec(env *TypeEnv, path ast.Path, e *ast.Letrec) (types.Type, error) {
	names := make([]string, len(e.Bindings))
	values := make([]ast.Expr, len(e.Bindings))
	for i, b := range e.Bindings {
		names[i], values[i] = b.Name.Name, b.Value
	}
	if i, dup := firstDuplicate(names); dup {
		b := e.Bindings[i]
		return nil, &DuplicateDefinition{Site: Site{b, path.Child(i)}, Name: b.Name.Name}
	}
	outer := env
	for _, group := range bindingGroups(names, values) {
		groupNames := make([]string, len(group))
		unknowns := make([]types.Type, len(group))
		for j, i := range group {
			groupNames[j], unknowns[j] = names[i], c.fresh()
		}
		inner := outer.WithAll(groupNames, unknowns)
		for j, i := range group {
			bindingPath := path.Child(i)
			vt, err := c.infer(inner, bindingPath.Child(1), values[i])
			if err != nil {
				return nil, err
			}
			if err = c.unify(unknowns[j], vt, Site{e.Bindings[i].Name, bindingPath.Child(0)}, Site{values[i], bindingPath.Child(1)}); err != nil {
				return nil, err
			}
		}
		general := make([]types.Type, len(group))
		for j, i := range group {
			c.recordBinding(path.Child(i), c.resolve(unknowns[j]))
			general[j] = c.generalizeLocal(unknowns[j], outer)
		}
		outer = outer.WithAll(groupNames, general)
	}
	return c.infer(outer, path.Child(len(e.Bindings)), e.Body)
}

// Record the type of a binding and its name.
func (c *Context) recordBinding(path ast.Path, t types.Type) {
	c.record(path, t)
	c.record(path.Child(0), t)
}

func (c *Context) inferLambda(env *TypeEnv, path ast.Path, e *ast.Lambda) (types.Type, error) {
	names := make([]string, len(e.Params))
	params := make([]types.Type, len(e.Params))
	for i, p := range e.Params {
		names[i], params[i] = p.Name, c.fresh()
	}
	if i, dup := firstDuplicate(names); dup {
		return nil, &DuplicateDefinition{Site: Site{e.Params[i], path.Child(i)}, Name: names[i]}
	}
	bodyType, err := c.infer(env.WithAll(names, params), path.Child(len(e.Params)), e.Body)
	if err != nil {
		return nil, err
	}
	for i := range e.Params {
		c.record(path.Child(i), params[i])
	}
	return c.resolve(types.Curried(params, bodyType)), nil
}

// An assignment must preserve the type of the variable. When both types are fully known, the value
// may be any subtype; otherwise the types are unified.
func (c *Context) inferSet(env *TypeEnv, path ast.Path, e *ast.Set) (types.Type, error) {
	varSite := Site{e.Var, path.Child(0)}
	declared, ok := env.Lookup(e.Var.Name)
	if !ok {
		return nil, &UnboundVariable{Site: varSite, Name: e.Var.Name}
	}
	xt := c.instantiate(declared, make(map[string]types.Type))
	c.record(varSite.Path, xt)
	valueSite := Site{e.Value, path.Child(1)}
	vt, err := c.infer(env, valueSite.Path, e.Value)
	if err != nil {
		return nil, err
	}
	rx, rv := c.resolve(xt), c.resolve(vt)
	if types.ContainsUnknowns(rx) || types.ContainsUnknowns(rv) {
		if err = c.unify(xt, vt, varSite, valueSite); err != nil {
			return nil, err
		}
		return c.resolve(xt), nil
	}
	if !types.IsSubtype(rv, rx) {
		return nil, &InvalidAssignment{Site: Site{e, path}, Name: e.Var.Name, Type: rv, Expected: rx}
	}
	return rx, nil
}

func (c *Context) inferThe(env *TypeEnv, path ast.Path, e *ast.The) (types.Type, error) {
	return c.inferAnnotated(env, path.Child(0), e.Value, e.Type)
}

// Infer the value at path, and check that some instantiation of its type is a subtype of the
// annotated type. The unknowns of the value's type are bound to a minimal solution of the subtype
// constraints, and the result is an instance of the annotated type.
func (c *Context) inferAnnotated(env *TypeEnv, path ast.Path, value ast.Expr, annotated types.Type) (types.Type, error) {
	vt, err := c.infer(env, path, value)
	if err != nil {
		return nil, err
	}
	site := Site{value, path}

	expected := annotated
	if fa, ok := annotated.(*types.Forall); ok {
		expected = fa.Body
	}

	// Name the unknowns of the value's type, avoiding the annotation's own variables:
	taken := types.FreeVars(expected)
	var (
		gen      types.VarNames
		unknowns = make(map[string]*types.Unknown)
		names    = make(map[int]string)
	)
	var replace func(types.Type) types.Type
	replace = func(t types.Type) types.Type {
		switch t := t.(type) {
		case *types.Unknown:
			name, ok := names[t.Id]
			if !ok {
				name = gen.Next(taken)
				names[t.Id], unknowns[name] = name, t
			}
			return &types.Var{Name: name}
		case *types.Var:
			return t
		}
		return types.MapParams(t, replace)
	}
	rv := c.resolve(vt)
	gv := replace(rv)
	vars := set.New[string](len(unknowns))
	for name := range unknowns {
		vars.Insert(name)
	}

	cs, ok := constraint.Generate(vars, gv, expected)
	if !ok {
		return nil, &InvalidAssignmentToType{Site: site, Type: rv, Expected: annotated}
	}
	sub, ok := constraint.MinimalSubstitution(cs, gv)
	if !ok {
		return nil, &InvalidAssignmentToType{Site: site, Type: rv, Expected: annotated}
	}
	c.logger.Debug("solved annotation", "constraints", cs.String(), "type", types.TypeString(gv))

	memo := make(map[string]types.Type)
	for name, u := range unknowns {
		s, ok := sub[name]
		if !ok || types.HasTag(s, types.NeverTag) || types.HasTag(s, types.AnyTag) {
			continue
		}
		if err = c.unify(u, c.instantiate(s, memo), site, site); err != nil {
			return nil, err
		}
	}
	return c.resolve(c.instantiate(expected, memo)), nil
}
