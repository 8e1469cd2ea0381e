// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
// Package sexpr reads and prints the s-expression syntax the CLI uses for
// Expressions: decimal constants, "#n" opaque leaves, and "(OPCODE
// arg...)" operator nodes, e.g. "(ADD #0 7)". Grounded on a
// recursive-descent, rune-at-a-time tokenizer design, adapted to this
// package's own three-shape grammar rather than a generic S-expression
// tree.
package sexpr

import (
	"fmt"
	"math/big"

	"github.com/jacky860226/lity/pkg/expr"
	"github.com/jacky860226/lity/pkg/opcode"
	"github.com/jacky860226/lity/pkg/word"
)

// Print renders e as an s-expression. Equivalent to e.String(), exposed
// here so callers of this package don't also need to import pkg/expr.
func Print(e expr.Expression) string {
	return e.String()
}

// Parse reads a single Expression from s, rejecting any trailing input.
func Parse(s string) (expr.Expression, error) {
	p := &parser{text: []rune(s)}

	e, err := p.parseExpr()
	if err != nil {
		return expr.Expression{}, err
	}

	p.skipSpace()

	if p.index != len(p.text) {
		return expr.Expression{}, fmt.Errorf("offset %d: unexpected trailing input", p.index)
	}

	return e, nil
}

type parser struct {
	text  []rune
	index int
}

func (p *parser) skipSpace() {
	for p.index < len(p.text) && isSpace(p.text[p.index]) {
		p.index++
	}
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func (p *parser) parseExpr() (expr.Expression, error) {
	p.skipSpace()

	if p.index >= len(p.text) {
		return expr.Expression{}, fmt.Errorf("offset %d: unexpected end of input", p.index)
	}

	switch p.text[p.index] {
	case '(':
		return p.parseOp()
	case '#':
		return p.parseOpaque()
	default:
		return p.parseConst()
	}
}

func (p *parser) parseOp() (expr.Expression, error) {
	p.index++ // consume '('
	p.skipSpace()

	start := p.index
	for p.index < len(p.text) && !isSpace(p.text[p.index]) && p.text[p.index] != ')' && p.text[p.index] != '(' {
		p.index++
	}

	if start == p.index {
		return expr.Expression{}, fmt.Errorf("offset %d: expected an opcode name", start)
	}

	name := string(p.text[start:p.index])

	code, ok := opcode.Lookup(name)
	if !ok {
		return expr.Expression{}, fmt.Errorf("offset %d: unknown opcode %q", start, name)
	}

	var args []expr.Expression

	for {
		p.skipSpace()

		if p.index >= len(p.text) {
			return expr.Expression{}, fmt.Errorf("offset %d: unexpected end of input inside (%s ...)", p.index, name)
		}

		if p.text[p.index] == ')' {
			p.index++
			break
		}

		arg, err := p.parseExpr()
		if err != nil {
			return expr.Expression{}, err
		}

		args = append(args, arg)
	}

	return expr.Op(code, args...), nil
}

func (p *parser) parseOpaque() (expr.Expression, error) {
	start := p.index
	p.index++ // consume '#'

	digitsStart := p.index
	for p.index < len(p.text) && isDigit(p.text[p.index]) {
		p.index++
	}

	if digitsStart == p.index {
		return expr.Expression{}, fmt.Errorf("offset %d: expected digits after '#'", start)
	}

	n := new(big.Int)
	if _, ok := n.SetString(string(p.text[digitsStart:p.index]), 10); !ok {
		return expr.Expression{}, fmt.Errorf("offset %d: malformed opaque id", start)
	}

	return expr.Opaque(n.Uint64()), nil
}

func (p *parser) parseConst() (expr.Expression, error) {
	start := p.index

	if p.index < len(p.text) && p.text[p.index] == '-' {
		p.index++
	}

	digitsStart := p.index
	for p.index < len(p.text) && isDigit(p.text[p.index]) {
		p.index++
	}

	if digitsStart == p.index {
		return expr.Expression{}, fmt.Errorf("offset %d: expected a constant, opaque leaf, or '('", start)
	}

	n := new(big.Int)
	if _, ok := n.SetString(string(p.text[start:p.index]), 10); !ok {
		return expr.Expression{}, fmt.Errorf("offset %d: malformed constant", start)
	}

	return expr.Const(word.FromBig(n)), nil
}
