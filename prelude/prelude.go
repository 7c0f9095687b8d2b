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

// Package prelude loads type-environments and expression trees from YAML and TOML documents.
//
// A prelude declares the types of predefined names, in the type syntax accepted by ParseType:
//
//	bindings:
//	  +: (variadic 0 * (Number) Number)
//	  car: (-> (List a) a)
//
// The same declarations may be written in TOML:
//
//	[bindings]
//	"+" = "(variadic 0 * (Number) Number)"
//	car = "(-> (List a) a)"
package prelude

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/wdamron/vtype"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// File is the decoded form of a prelude document.
type File struct {
	// Bindings maps each predefined name to the source of its type.
	Bindings map[string]string `yaml:"bindings" toml:"bindings"`
}

// Load reads a prelude file, choosing the format by extension (.toml, or YAML otherwise), and
// declares its bindings in env. A nil env is replaced by a new environment.
func Load(path string, env *vtype.TypeEnv) (*vtype.TypeEnv, error) {
	f, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	return f.Declare(env, path)
}

func decodeFile(path string) (*File, error) {
	var f File
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, &f); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		return &f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if err = yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return &f, nil
}

// LoadAll loads each prelude file in order. Later files override the bindings of earlier files.
// Files are read and decoded concurrently; their bindings are declared in order once all have been
// decoded.
func LoadAll(paths []string) (*vtype.TypeEnv, error) {
	files := make([]*File, len(paths))
	var eg errgroup.Group
	for i, path := range paths {
		eg.Go(func() (err error) {
			files[i], err = decodeFile(path)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	env := vtype.NewTypeEnv()
	for i, f := range files {
		var err error
		if env, err = f.Declare(env, paths[i]); err != nil {
			return nil, err
		}
	}
	return env, nil
}

// ParseYAML decodes a YAML prelude document and declares its bindings in env.
// The name argument is used only for error messages.
func ParseYAML(data []byte, name string, env *vtype.TypeEnv) (*vtype.TypeEnv, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", name)
	}
	return f.Declare(env, name)
}

// ParseTOML decodes a TOML prelude document and declares its bindings in env.
// The name argument is used only for error messages.
func ParseTOML(data string, name string, env *vtype.TypeEnv) (*vtype.TypeEnv, error) {
	var f File
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", name)
	}
	return f.Declare(env, name)
}

// Declare parses the type of each binding, in order of name, and declares it in env.
func (f *File) Declare(env *vtype.TypeEnv, name string) (*vtype.TypeEnv, error) {
	if env == nil {
		env = vtype.NewTypeEnv()
	}
	names := make([]string, 0, len(f.Bindings))
	for binding := range f.Bindings {
		names = append(names, binding)
	}
	sort.Strings(names)
	for _, binding := range names {
		t, err := ParseType(f.Bindings[binding])
		if err != nil {
			return nil, errors.Wrapf(err, "%s: binding %s", name, binding)
		}
		env.Declare(binding, t)
	}
	return env, nil
}
