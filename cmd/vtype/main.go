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
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/iancoleman/strcase"
	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/wdamron/vtype"
	"github.com/wdamron/vtype/ast"
	"github.com/wdamron/vtype/prelude"
	"github.com/wdamron/vtype/types"
)

type Config struct {
	Debug    bool
	Dump     bool
	Color    bool
	Path     string
	Preludes []string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vtype",
		Short:         "Type inference for block-structured Scheme programs",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(inferCmd(), envCmd())
	return cmd
}

func inferCmd() *cobra.Command {
	var cfg Config

	cmd := &cobra.Command{
		Use:   "infer [flags] FILE",
		Short: "Infer the types of the expression trees in a YAML document",
		Long: `Infer the types of the expression trees in a YAML document.

All trees in the document are inferred together, as a canvas: definitions are
visible to every tree, and a tree which fails to type-check does not affect
the others. Each tree's type is printed, followed by its diagnostics.`,
		Example: `  # Infer with a prelude of predefined names
  vtype infer --prelude prelude.yaml program.yaml

  # Print the type of one subexpression of each tree
  vtype infer --path 1.0 program.yaml

  # Log unification and generalization
  vtype infer --debug program.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Color = isTerminal(cmd.OutOrStdout())
			return runInfer(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], cfg)
		},
	}

	cmd.Flags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	cmd.Flags().BoolVar(&cfg.Dump, "dump", false, "Dump the structure of each inferred type")
	cmd.Flags().StringVar(&cfg.Path, "path", "", "Print the type of the subexpression at this path (e.g. 0.1.2)")
	cmd.Flags().StringArrayVarP(&cfg.Preludes, "prelude", "p", nil, "Prelude file declaring predefined names (YAML or TOML)")

	return cmd
}

func envCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env FILE...",
		Short: "Print the type-environment declared by prelude files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := prelude.LoadAll(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			env.Range(func(name string, t types.Type) bool {
				fmt.Fprintf(out, "%s : %s\n", name, types.TypeString(t))
				return true
			})
			return nil
		},
	}
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func runInfer(stdout, stderr io.Writer, file string, cfg Config) error {
	env, err := prelude.LoadAll(cfg.Preludes)
	if err != nil {
		return err
	}
	doc, err := prelude.LoadDocument(file)
	if err != nil {
		return err
	}
	var path ast.Path
	if cfg.Path != "" {
		if path, err = ast.ParsePath(cfg.Path); err != nil {
			return err
		}
	}

	logger := newLogger(stderr, cfg.Debug)
	ctx := vtype.NewContext(vtype.WithLogger(logger))

	trees := make([]*ast.Tree, len(doc.Trees))
	for i, e := range doc.Exprs() {
		trees[i] = ast.NewTree(e)
	}
	canvas := ctx.InferCanvas(trees, env)

	failed := 0
	for i, tree := range trees {
		t, _ := canvas.TypeOf(tree)
		if cfg.Path != "" && !canvas.Failed(tree) {
			var ok bool
			if t, ok = ctx.TypeAt(tree, path); !ok {
				fmt.Fprintf(stdout, "%d [%s]: %s\n", i, cfg.Path, paint(cfg.Color, "no type", red))
				continue
			}
		}
		label := fmt.Sprintf("%d", i)
		if cfg.Path != "" {
			label += " [" + cfg.Path + "]"
		}
		fmt.Fprintf(stdout, "%s: %s\n", label, types.TypeString(t))
		if cfg.Dump {
			fmt.Fprintf(stdout, "%# v\n", pretty.Formatter(t))
		}
		for _, d := range canvas.Diagnostics.ForTree(tree.ID()) {
			failed++
			kind := strcase.ToKebab(string(d.Kind()))
			if kind == "" {
				kind = "error"
			}
			fmt.Fprintf(stdout, "  %s [%s]: %s\n", paint(cfg.Color, kind, red), d.Path, d.Err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d type errors", failed)
	}
	return nil
}

const red = "31"

func paint(color bool, s, code string) string {
	if !color {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}
