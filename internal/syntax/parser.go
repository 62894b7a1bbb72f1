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

package syntax

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"strconv"
	"strings"
)

// Parse parses a capture list.
//
// Productions are tried in priority order on the unconsumed input:
//
//  1. a leading "," is skipped
//  2. "move" IDENT
//  3. "ref" "mut" IDENT
//  4. "ref" IDENT
//  5. "in" EXPR, terminating the list
//  6. IDENT IDENT, a method clause
//
// Any other input is reported as an *[Error] wrapping [ErrMalformed].
func Parse(src string) (*List, error) {
	fset := token.NewFileSet()
	p := capParser{src: src, fset: fset, tokens: newTokenizer(fset, src)}

	list, err := p.parse()
	if err != nil {
		return nil, err
	}

	return list, nil
}

type capParser struct {
	src    string
	fset   *token.FileSet
	tokens *tokenizer
}

func (p *capParser) parse() (*List, *Error) {
	var clauses []Clause

	for {
		t := p.tokens.peek(0)

		switch {
		case t.tok == token.COMMA:
			p.tokens.skip(1)

		case t.is(kwMove):
			name, err := p.binding(1, kwMove)
			if err != nil {
				return nil, err
			}

			clauses = append(clauses, Clause{Mode: Move, Name: name})
			p.tokens.skip(2)

		case t.is(kwRef) && p.tokens.peek(1).is(kwMut):
			name, err := p.binding(2, kwRef+" "+kwMut)
			if err != nil {
				return nil, err
			}

			clauses = append(clauses, Clause{Mode: RefMut, Name: name})
			p.tokens.skip(3)

		case t.is(kwRef):
			name, err := p.binding(1, kwRef)
			if err != nil {
				return nil, err
			}

			clauses = append(clauses, Clause{Mode: Ref, Name: name})
			p.tokens.skip(2)

		case t.is(kwIn):
			return p.terminal(clauses, t)

		case t.bindable():
			name, err := p.binding(1, "method name "+strconv.Quote(t.lit))
			if err != nil {
				err.Hint = suggest(t.lit)

				return nil, err
			}

			method := Ident{Name: t.lit, Offset: t.offset}
			clauses = append(clauses, Clause{Mode: Method, Method: method, Name: name})
			p.tokens.skip(2)

		case t.tok == token.EOF:
			return nil, &Error{Offset: t.offset, Msg: `missing terminal "in" expression`}

		default:
			return nil, p.unexpected(t)
		}
	}
}

// binding returns the n-th unconsumed token as a rebound identifier.
func (p *capParser) binding(n int, after string) (Ident, *Error) {
	t := p.tokens.peek(n)
	if !t.bindable() {
		if t.tok == token.ILLEGAL && p.tokens.err != nil {
			return Ident{}, p.tokens.err
		}

		return Ident{}, &Error{Offset: t.offset, Msg: fmt.Sprintf("expected identifier after %s, found %s", after, t)}
	}

	return Ident{Name: t.lit, Offset: t.offset}, nil
}

func (p *capParser) unexpected(t item) *Error {
	if t.tok == token.ILLEGAL && p.tokens.err != nil {
		return p.tokens.err
	}

	return &Error{Offset: t.offset, Msg: "unexpected " + t.String()}
}

// terminal parses the body following the "in" keyword t.
func (p *capParser) terminal(clauses []Clause, t item) (*List, *Error) {
	offset := t.offset + len(kwIn)

	src := p.src[offset:]
	if strings.TrimSpace(src) == "" {
		return nil, &Error{Offset: len(p.src), Msg: `expected expression after "in"`}
	}

	body, err := parser.ParseExprFrom(p.fset, "body", src, parser.SkipObjectResolution)
	if err != nil {
		return nil, exprError(err, offset)
	}

	list := &List{
		Clauses:    clauses,
		Body:       body,
		BodyOffset: offset + p.fset.Position(body.Pos()).Offset,
		Fset:       p.fset,
	}

	return list, nil
}

// ParseExpr parses an auxiliary expression, such as a result type, into the file set of the list.
func (l *List) ParseExpr(src string) (ast.Expr, error) {
	return parser.ParseExprFrom(l.Fset, "expr", src, parser.SkipObjectResolution)
}

// exprError converts a Go parser error at the given base offset.
func exprError(err error, offset int) *Error {
	var list scanner.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		return &Error{Offset: offset + list[0].Pos.Offset, Msg: list[0].Msg}
	}

	return &Error{Offset: offset, Msg: err.Error()}
}
