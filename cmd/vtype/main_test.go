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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInferCommand(t *testing.T) {
	dir := t.TempDir()
	prelude := writeFile(t, dir, "prelude.yaml", "bindings:\n  \"+\": \"(variadic 0 * (Number) Number)\"\n")
	program := writeFile(t, dir, "program.yaml", `
trees:
  - define:
      name: id
      value: {lambda: {params: [x], body: {ref: x}}}
  - call: [{ref: id}, {num: 42}]
  - call: [{ref: +}, {num: 1}, {num: 2}]
`)

	var stdout, stderr bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"infer", "--prelude", prelude, program})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "0: a -> a\n1: Integer\n2: Number\n", stdout.String())
}

func TestInferDiagnostics(t *testing.T) {
	dir := t.TempDir()
	program := writeFile(t, dir, "program.yaml", `
trees:
  - call: [{num: 1}, {num: 2}]
  - ref: missing
  - str: ok
`)

	var stdout, stderr bytes.Buffer
	err := runInfer(&stdout, &stderr, program, Config{})
	assert.EqualError(t, err, "2 type errors")
	out := stdout.String()
	assert.Contains(t, out, "0: Any\n  not-callable [0]: ")
	assert.Contains(t, out, "1: Any\n  unbound-variable []: Unbound variable missing\n")
	assert.Contains(t, out, "2: String\n")
}

func TestInferPath(t *testing.T) {
	dir := t.TempDir()
	program := writeFile(t, dir, "program.yaml", `
trees:
  - lambda: {params: [f, x], body: {call: [{ref: f}, {ref: x}]}}
  - num: 1
`)

	var stdout, stderr bytes.Buffer
	require.NoError(t, runInfer(&stdout, &stderr, program, Config{Path: "2.0"}))
	assert.Equal(t, "0 [2.0]: a -> b\n1 [2.0]: no type\n", stdout.String())

	stdout.Reset()
	require.NoError(t, runInfer(&stdout, &stderr, program, Config{Dump: true}))
	assert.Contains(t, stdout.String(), "1: Integer\n&types.Concrete{")

	assert.Error(t, runInfer(&stdout, &stderr, program, Config{Path: "x"}))
	assert.Error(t, runInfer(&stdout, &stderr, filepath.Join(dir, "missing.yaml"), Config{}))
}

func TestInferDebugLogging(t *testing.T) {
	dir := t.TempDir()
	program := writeFile(t, dir, "program.yaml", "trees:\n  - let: {bindings: [{name: x, value: {num: 1}}], body: {ref: x}}\n")

	var stdout, stderr bytes.Buffer
	require.NoError(t, runInfer(&stdout, &stderr, program, Config{Debug: true}))
	assert.Contains(t, stderr.String(), "level=DEBUG")
	assert.Contains(t, stderr.String(), "msg=inferred")

	stderr.Reset()
	require.NoError(t, runInfer(&stdout, &stderr, program, Config{}))
	assert.Empty(t, stderr.String())
}

func TestEnvCommand(t *testing.T) {
	dir := t.TempDir()
	prelude := writeFile(t, dir, "prelude.toml", "[bindings]\ncar = \"(-> (List a) a)\"\nnil = \"(List a)\"\n")

	var stdout bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"env", prelude})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "car : (List a) -> a\nnil : (List a)\n", stdout.String())
}

func TestPaint(t *testing.T) {
	assert.Equal(t, "x", paint(false, "x", red))
	assert.Equal(t, "\x1b[31mx\x1b[0m", paint(true, "x", red))
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
