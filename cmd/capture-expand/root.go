// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"go/ast"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"fillmore-labs.com/capture/internal/check"
	"fillmore-labs.com/capture/internal/expand"
	"fillmore-labs.com/capture/internal/syntax"
)

// options hold the command line flags.
type options struct {
	resultType string
	strict     bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	o := options{strict: true}

	cmd := &cobra.Command{
		Use:   "capture-expand [flags] [clauses...]",
		Short: "Print the expansion of capture clause lists",
		Long: `capture-expand expands each argument, or standard input without arguments,
as a capture clause list into nested shadowing scopes and prints the result.`,
		Example: `  capture-expand --type int "move x, ref y in x + *y"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.resultType, "type", "t", "", "result type of the expansion, inferred from the body when empty")
	flags.BoolVar(&o.strict, "strict-aliasing", o.strict, "reject mutable references aliased by other references")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func (o options) run(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if len(args) == 0 {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("can't read clauses: %w", err)
		}

		args = []string{strings.TrimSpace(string(src))}
	}

	out := cmd.OutOrStdout()

	for i, src := range args {
		expansion, err := o.expand(logger, src)
		if err != nil {
			printCaret(cmd.ErrOrStderr(), src, err)

			return fmt.Errorf("clause list %d: %w", i+1, err)
		}

		if _, err := fmt.Fprintf(out, "%s\n", expansion); err != nil {
			return err
		}
	}

	return nil
}

func (o options) expand(logger *slog.Logger, src string) ([]byte, error) {
	list, err := syntax.Parse(src)
	if err != nil {
		return nil, err
	}

	logger.Debug("Parsed capture clauses", slog.Any("list", list))

	if o.strict {
		if err := check.Aliasing(list); err != nil {
			return nil, err
		}
	}

	var result ast.Expr
	if o.resultType != "" {
		if result, err = list.ParseExpr(o.resultType); err != nil {
			return nil, fmt.Errorf("invalid result type %q: %w", o.resultType, err)
		}
	}

	expansion, err := expand.Source(list, result)
	if err != nil {
		return nil, err
	}

	logger.Debug("Expanded capture clauses", slog.Int("bytes", len(expansion)))

	return expansion, nil
}

// printCaret marks the offending position of a single line clause list.
func printCaret(w io.Writer, src string, err error) {
	var syntaxErr *syntax.Error
	if !errors.As(err, &syntaxErr) || strings.ContainsAny(src, "\n\t") || syntaxErr.Offset > len(src) {
		return
	}

	fmt.Fprintf(w, "  %s\n  %s^\n", src, strings.Repeat(" ", syntaxErr.Offset)) // ignore error
}
