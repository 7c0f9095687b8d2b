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
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/wdamron/vtype/ast"
	"github.com/wdamron/vtype/types"
)

// ErrIncomplete is returned when a type still contains inference placeholders after generalization.
var ErrIncomplete = errors.New("type could not be completely inferred")

// ErrorKind tags each inference error.
type ErrorKind string

const (
	KindUnboundVariable         ErrorKind = "UnboundVariable"
	KindArityMismatch           ErrorKind = "ArityMismatch"
	KindVariadicArityMismatch   ErrorKind = "VariadicArityMismatch"
	KindNotCallable             ErrorKind = "NotCallable"
	KindTypeMismatch            ErrorKind = "TypeMismatch"
	KindOccursCheckFailure      ErrorKind = "OccursCheckFailure"
	KindInvalidAssignmentToType ErrorKind = "InvalidAssignmentToType"
	KindInvalidAssignment       ErrorKind = "InvalidAssignment"
	KindDuplicateDefinition     ErrorKind = "DuplicateDefinition"
	KindNestingTooDeep          ErrorKind = "NestingTooDeep"
)

// Site locates an expression within the tree being inferred.
type Site struct {
	Expr ast.Expr
	Path ast.Path
}

// Location returns the site of the expression which caused an error.
func (s Site) Location() Site { return s }

func (s Site) describe() string {
	if s.Expr == nil {
		return "<unknown>"
	}
	return ast.ExprString(s.Expr) + " at [" + s.Path.String() + "]"
}

// Error is implemented by all tagged inference errors.
type Error interface {
	error
	Kind() ErrorKind
	Location() Site
}

var (
	_ Error = (*UnboundVariable)(nil)
	_ Error = (*ArityMismatch)(nil)
	_ Error = (*VariadicArityMismatch)(nil)
	_ Error = (*NotCallable)(nil)
	_ Error = (*TypeMismatch)(nil)
	_ Error = (*OccursCheckFailure)(nil)
	_ Error = (*InvalidAssignmentToType)(nil)
	_ Error = (*InvalidAssignment)(nil)
	_ Error = (*DuplicateDefinition)(nil)
	_ Error = (*NestingTooDeep)(nil)
)

// Reference to a name which is not bound: `x`
type UnboundVariable struct {
	Site
	Name string
}

// Call with an argument count incompatible with the callee's fixed arity.
type ArityMismatch struct {
	Site
	Expected int
	Actual   int
	// AtLeast is set when the callee requires Expected arguments or more.
	AtLeast bool
}

// Call with an argument count outside of a variadic callee's range.
type VariadicArityMismatch struct {
	Site
	Min, Max int // Max < 0 when unbounded
	Actual   int
}

// Call of a value which is not a function.
type NotCallable struct {
	Site
	Type types.Type
}

// Unification of two types with different tags.
type TypeMismatch struct {
	Site
	Other       Site
	Left, Right types.Type
}

// Unification which would create an infinite type.
type OccursCheckFailure struct {
	Site
	Other   Site
	Unknown types.Type
	Type    types.Type
}

// Value whose type admits no instantiation which is a subtype of an annotated type.
type InvalidAssignmentToType struct {
	Site
	Type     types.Type
	Expected types.Type
}

// Assignment of a value which is not a subtype of the variable's type.
type InvalidAssignment struct {
	Site
	Name     string
	Type     types.Type
	Expected types.Type
}

// Name bound more than once within the same scope.
type DuplicateDefinition struct {
	Site
	Name string
}

// Expression nested deeper than the context's limit.
type NestingTooDeep struct {
	Site
	Max int
}

func (e *UnboundVariable) Kind() ErrorKind         { return KindUnboundVariable }
func (e *ArityMismatch) Kind() ErrorKind           { return KindArityMismatch }
func (e *VariadicArityMismatch) Kind() ErrorKind   { return KindVariadicArityMismatch }
func (e *NotCallable) Kind() ErrorKind             { return KindNotCallable }
func (e *TypeMismatch) Kind() ErrorKind            { return KindTypeMismatch }
func (e *OccursCheckFailure) Kind() ErrorKind      { return KindOccursCheckFailure }
func (e *InvalidAssignmentToType) Kind() ErrorKind { return KindInvalidAssignmentToType }
func (e *InvalidAssignment) Kind() ErrorKind       { return KindInvalidAssignment }
func (e *DuplicateDefinition) Kind() ErrorKind     { return KindDuplicateDefinition }
func (e *NestingTooDeep) Kind() ErrorKind          { return KindNestingTooDeep }

func (e *UnboundVariable) Error() string { return "Unbound variable " + e.Name }

func (e *ArityMismatch) Error() string {
	expected := strconv.Itoa(e.Expected)
	if e.AtLeast {
		expected = "at least " + expected
	}
	return "Expected " + expected + " arguments, found " + strconv.Itoa(e.Actual) + " in " + e.describe()
}

func (e *VariadicArityMismatch) Error() string {
	max := "any"
	if e.Max >= 0 {
		max = strconv.Itoa(e.Max)
	}
	return "Expected between " + strconv.Itoa(e.Min) + " and " + max + " arguments, found " +
		strconv.Itoa(e.Actual) + " in " + e.describe()
}

func (e *NotCallable) Error() string {
	return "Type " + types.TypeString(e.Type) + " is not callable in " + e.describe()
}

func (e *TypeMismatch) Error() string {
	return "Failed to unify " + types.TypeString(e.Left) + " with " + types.TypeString(e.Right) +
		" in " + e.describe()
}

func (e *OccursCheckFailure) Error() string {
	return "Recursive type: " + types.TypeString(e.Unknown) + " occurs in " + types.TypeString(e.Type) +
		" in " + e.describe()
}

func (e *InvalidAssignmentToType) Error() string {
	return "Type " + types.TypeString(e.Type) + " cannot be used as " + types.TypeString(e.Expected) +
		" in " + e.describe()
}

func (e *InvalidAssignment) Error() string {
	return "Cannot assign " + types.TypeString(e.Type) + " to " + e.Name + " of type " +
		types.TypeString(e.Expected)
}

func (e *DuplicateDefinition) Error() string { return "Duplicate definition of " + e.Name }

func (e *NestingTooDeep) Error() string {
	return "Expression nesting exceeds " + strconv.Itoa(e.Max) + " levels at [" + e.Path.String() + "]"
}

// Diagnostic records an inference error for one tree.
type Diagnostic struct {
	Tree uuid.UUID
	Path ast.Path
	Err  error
}

// Kind returns the tag of the diagnostic's error, or the empty string for untagged errors.
func (d Diagnostic) Kind() ErrorKind {
	var tagged Error
	if errors.As(d.Err, &tagged) {
		return tagged.Kind()
	}
	return ""
}

// Diagnostics collects inference errors, at most one per (tree, path).
type Diagnostics struct {
	byKey map[diagnosticKey]Diagnostic
}

type diagnosticKey struct {
	tree uuid.UUID
	path string
}

// Add records err for the expression at path within tree, replacing any existing diagnostic there.
func (ds *Diagnostics) Add(tree uuid.UUID, path ast.Path, err error) {
	if ds.byKey == nil {
		ds.byKey = make(map[diagnosticKey]Diagnostic)
	}
	ds.byKey[diagnosticKey{tree, path.String()}] = Diagnostic{Tree: tree, Path: path, Err: err}
}

// Len returns the number of diagnostics.
func (ds *Diagnostics) Len() int { return len(ds.byKey) }

// At returns the diagnostic for the expression at path within tree.
func (ds *Diagnostics) At(tree uuid.UUID, path ast.Path) (Diagnostic, bool) {
	d, ok := ds.byKey[diagnosticKey{tree, path.String()}]
	return d, ok
}

// ForTree returns the diagnostics for tree, ordered by path.
func (ds *Diagnostics) ForTree(tree uuid.UUID) []Diagnostic {
	var out []Diagnostic
	for k, d := range ds.byKey {
		if k.tree == tree {
			out = append(out, d)
		}
	}
	sortDiagnostics(out)
	return out
}

// All returns every diagnostic, ordered by tree and path.
func (ds *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(ds.byKey))
	for _, d := range ds.byKey {
		out = append(out, d)
	}
	sortDiagnostics(out)
	return out
}

func sortDiagnostics(ds []Diagnostic) {
	sort.Slice(ds, func(i, j int) bool {
		if ds[i].Tree != ds[j].Tree {
			return ds[i].Tree.String() < ds[j].Tree.String()
		}
		return ds[i].Path.String() < ds[j].Path.String()
	})
}
