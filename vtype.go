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

// vtype provides bidirectional, constraint-based type inference for a block-structured Scheme whose
// programs are expression trees edited in place.
//
// The type-system combines Hindley-Milner style unification and let-generalization with
// structural subtyping over a small numeric tower (`Integer` <: `Number`), a top type (`Any`),
// a bottom type (`Never`), and variadic function types with bounded argument counts.
// Type annotations are checked by local type inference: subtype constraints over the type
// variables of the annotated value are generated and solved for a minimal substitution.
//
// Supported Features:
//
//   * Curried functions and zero-argument procedures
//   * Variadic functions with argument-count ranges
//   * Non-recursive and mutually-recursive (letrec) bindings, generalized by dependency order
//   * Assignment and type annotations checked against subtyping
//   * Re-inference of any subexpression, with results cached by tree position and revision
//   * Canvas-wide inference isolating failures to the tree which caused them
//
// Links:
//
// Local Type Inference (Pierce, Turner, 2000): https://www.cis.upenn.edu/~bcpierce/papers/lti-toplas.pdf
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Disjoint-set data structure: https://en.wikipedia.org/wiki/Disjoint-set_data_structure
package vtype
