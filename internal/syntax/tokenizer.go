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
	"go/scanner"
	"go/token"
	"slices"
	"strconv"
)

// Reserved words of the capture grammar.
const (
	kwMove = "move"
	kwRef  = "ref"
	kwMut  = "mut"
	kwIn   = "in"
)

var keywords = []string{kwMove, kwRef, kwMut, kwIn}

// Reserved reports whether name is a keyword of the capture grammar.
func Reserved(name string) bool { return slices.Contains(keywords, name) }

// item is a scanned token with its byte offset.
type item struct {
	tok    token.Token
	lit    string
	offset int
}

// is reports whether the token is the keyword kw.
func (t item) is(kw string) bool { return t.tok == token.IDENT && t.lit == kw }

// bindable reports whether the token can name a method or a rebound identifier.
func (t item) bindable() bool { return t.tok == token.IDENT && t.lit != "_" && !Reserved(t.lit) }

func (t item) String() string {
	switch {
	case t.tok == token.EOF:
		return "end of input"

	case t.tok == token.IDENT && Reserved(t.lit):
		return "keyword " + strconv.Quote(t.lit)

	case t.tok == token.IDENT:
		return "identifier " + strconv.Quote(t.lit)

	case t.tok.IsLiteral():
		return t.lit

	default:
		return strconv.Quote(t.tok.String())
	}
}

// tokenizer is a lazy token stream over a capture list.
//
// Tokens are only scanned on demand, so everything after the terminal "in" is left
// to the expression parser.
type tokenizer struct {
	file  *token.File
	sc    scanner.Scanner
	err   *Error // first scan error
	ahead []item
}

func newTokenizer(fset *token.FileSet, src string) *tokenizer {
	t := &tokenizer{file: fset.AddFile("capture", -1, len(src))}
	t.sc.Init(t.file, []byte(src), t.handleError, 0)

	return t
}

func (t *tokenizer) handleError(pos token.Position, msg string) {
	if t.err == nil {
		t.err = &Error{Offset: pos.Offset, Msg: msg}
	}
}

func (t *tokenizer) scan() item {
	for {
		pos, tok, lit := t.sc.Scan()
		if tok == token.SEMICOLON && lit == "\n" {
			continue // automatically inserted, newlines are whitespace
		}

		return item{tok: tok, lit: lit, offset: t.file.Offset(pos)}
	}
}

// peek returns the n-th unconsumed token.
func (t *tokenizer) peek(n int) item {
	for len(t.ahead) <= n {
		t.ahead = append(t.ahead, t.scan())
	}

	return t.ahead[n]
}

// skip consumes n tokens.
func (t *tokenizer) skip(n int) {
	t.peek(n - 1)
	t.ahead = t.ahead[n:]
}
