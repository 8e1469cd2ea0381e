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
// Package pattern extends expr.Expression with typed placeholders and a
// deterministic matching/binding protocol, used to describe the left-hand
// side of every rule in the catalog.
package pattern

import (
	"fmt"
	"strings"

	"github.com/jacky860226/lity/pkg/expr"
	"github.com/jacky860226/lity/pkg/opcode"
	"github.com/jacky860226/lity/pkg/word"
)

// PlaceholderKind distinguishes the two placeholder flavours spec.md §3
// defines.
type PlaceholderKind uint8

const (
	// ConstantPlaceholder binds only to a Const expression.
	ConstantPlaceholder PlaceholderKind = iota
	// WildcardPlaceholder binds to any expression.
	WildcardPlaceholder
)

// ID names one of the five placeholder identities the catalog is built
// against (spec.md §4.D): A, B, C are ConstantPlaceholders, X, Y are
// WildcardPlaceholders. An ID is stable only within a single rule; TryMatch
// allocates a fresh set of bindings per match attempt.
type ID uint8

// The five conventional placeholder identities.
const (
	A ID = iota
	B
	C
	X
	Y
)

var idNames = [...]string{"A", "B", "C", "X", "Y"}

func (id ID) String() string { return idNames[id] }

// kind discriminates Pattern's node shapes: the Const and Op shapes of
// Expression plus Placeholder (which takes the place of Opaque).
type kind uint8

const (
	kindConst kind = iota
	kindOp
	kindPlaceholder
)

// Pattern mirrors expr.Expression but permits placeholder leaves in place of
// Opaque leaves. A pattern never contains a free variable that is not one of
// the five placeholder identities (spec.md §3).
type Pattern struct {
	k     kind
	value word.Word
	op    opcode.Opcode
	args  []Pattern
	id    ID
	pkind PlaceholderKind
}

// Const constructs a pattern node that matches only the exact given literal.
func Const(w word.Word) Pattern {
	return Pattern{k: kindConst, value: w}
}

// Op constructs a pattern node that matches an Op expression with the given
// opcode and, recursively, each of the given argument sub-patterns. Panics
// if the number of sub-patterns does not match the opcode's arity — a
// catalog-construction bug, not a runtime condition.
func Op(code opcode.Opcode, args ...Pattern) Pattern {
	if want := code.Arity(); uint(len(args)) != want {
		panic(fmt.Sprintf("%s: invalid pattern arity (have %d, want %d)", code, len(args), want))
	}

	return Pattern{k: kindOp, op: code, args: args}
}

// Var constructs a placeholder leaf with the given identity and kind.
func Var(id ID, pkind PlaceholderKind) Pattern {
	return Pattern{k: kindPlaceholder, id: id, pkind: pkind}
}

// String renders the pattern as an s-expression using placeholder letters
// for leaves, e.g. "(ADD X A)". Used by the catalog dump and by tests that
// assert on rule ordering.
func (p Pattern) String() string {
	switch p.k {
	case kindConst:
		return p.value.String()
	case kindPlaceholder:
		return p.id.String()
	default: // kindOp
		var b strings.Builder

		b.WriteByte('(')
		b.WriteString(p.op.String())

		for _, a := range p.args {
			b.WriteByte(' ')
			b.WriteString(a.String())
		}

		b.WriteByte(')')

		return b.String()
	}
}

// Bindings is the finite mapping from placeholder identity to the
// Expression it was bound to during a single match attempt.
type Bindings map[ID]expr.Expression

// Get returns the expression bound to id, or the zero Expression if id is
// not present (e.g. a placeholder never appearing in the matched pattern).
func (b Bindings) Get(id ID) expr.Expression {
	return b[id]
}

// D projects the Word value of a ConstantPlaceholder's binding. Panics if id
// is unbound or bound to a non-Const expression — both indicate the pattern
// was not actually matched against the expression that produced b, since
// try_match guarantees ConstantPlaceholder identities only ever bind to
// Const expressions (spec.md §4.C, invariant 4).
func (b Bindings) D(id ID) word.Word {
	e, bound := b[id]
	if !bound {
		panic(fmt.Sprintf("pattern.Bindings.D(%s): unbound placeholder", id))
	}

	w, ok := e.IsConst()
	if !ok {
		panic(fmt.Sprintf("pattern.Bindings.D(%s): not bound to a constant", id))
	}

	return w
}

// TryMatch attempts to bind the placeholders of pattern p against expression
// e. Matching is deterministic, left-to-right, top-down, with no
// backtracking: every placeholder appearing in p is bound on success, and a
// placeholder appearing more than once in p must bind structurally-equal
// (expr.Equals) sub-expressions each time.
func TryMatch(p Pattern, e expr.Expression) (Bindings, bool) {
	b := make(Bindings)
	if match(p, e, b) {
		return b, true
	}

	return nil, false
}

func match(p Pattern, e expr.Expression, b Bindings) bool {
	switch p.k {
	case kindConst:
		w, ok := e.IsConst()
		return ok && w.Equals(p.value)
	case kindPlaceholder:
		if p.pkind == ConstantPlaceholder {
			if _, ok := e.IsConst(); !ok {
				return false
			}
		}

		if bound, ok := b[p.id]; ok {
			return bound.Equals(e)
		}

		b[p.id] = e

		return true
	default: // kindOp
		op, args, ok := e.IsOp()
		if !ok || op != p.op || len(args) != len(p.args) {
			return false
		}

		for i := range p.args {
			if !match(p.args[i], args[i], b) {
				return false
			}
		}

		return true
	}
}
