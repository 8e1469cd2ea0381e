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
// Package expr defines Expression, the immutable tagged term the simplifier
// rewrites: a tree whose internal nodes are algebra opcodes and whose leaves
// are either known 256-bit constants or opaque sub-expressions supplied by
// an external caller.
//
// Expression deliberately uses a single closed sum type with three cases
// rather than a virtual-dispatch class hierarchy: the algebra has exactly
// three leaf/node shapes and exhaustive type switches on them are both
// simpler and cheaper than an interface satisfied by dozens of per-opcode
// structs.
package expr

import (
	"fmt"
	"strings"

	"github.com/jacky860226/lity/pkg/opcode"
	"github.com/jacky860226/lity/pkg/word"
)

// Kind discriminates the three shapes an Expression can take.
type Kind uint8

// The three node shapes of the algebra (spec.md §3).
const (
	KindConst Kind = iota
	KindOp
	KindOpaque
)

// Expression is an immutable node in an expression tree. Rewriting never
// mutates an Expression in place; it always produces a new value. The zero
// value is not a valid Expression — use Const/Op/Opaque to build one.
type Expression struct {
	kind  Kind
	value word.Word    // populated when kind == KindConst
	op    opcode.Opcode // populated when kind == KindOp
	args  []Expression  // populated when kind == KindOp
	id    uint64        // populated when kind == KindOpaque
}

// Const constructs a fully known literal.
func Const(w word.Word) Expression {
	return Expression{kind: KindConst, value: w}
}

// Op constructs an operator node. It panics with InvalidArity if len(args)
// does not match the opcode's fixed arity (spec.md invariant 1) — this is a
// construction-time invariant violation, not a runtime condition the caller
// can recover from, so it is reported by panicking rather than via an error
// return (spec.md §7).
func Op(code opcode.Opcode, args ...Expression) Expression {
	if want := code.Arity(); uint(len(args)) != want {
		panic(fmt.Sprintf("%s: invalid arity (have %d, want %d)", code, len(args), want))
	}

	return Expression{kind: KindOp, op: code, args: args}
}

// Opaque constructs a leaf whose value is unknown to the simplifier,
// identified only by a caller-assigned id. Two Opaque leaves are considered
// equal, for pattern-binding purposes, iff their ids match.
func Opaque(id uint64) Expression {
	return Expression{kind: KindOpaque, id: id}
}

// IsConst reports whether this expression is a Const node, returning its
// Word and true if so.
func (e Expression) IsConst() (word.Word, bool) {
	if e.kind == KindConst {
		return e.value, true
	}

	return word.Zero, false
}

// IsOp reports whether this expression is an Op node, returning its opcode
// and arguments if so.
func (e Expression) IsOp() (opcode.Opcode, []Expression, bool) {
	if e.kind == KindOp {
		return e.op, e.args, true
	}

	return 0, nil, false
}

// IsOpaque reports whether this expression is an Opaque leaf, returning its
// id if so.
func (e Expression) IsOpaque() (uint64, bool) {
	if e.kind == KindOpaque {
		return e.id, true
	}

	return 0, false
}

// Kind returns this expression's node shape.
func (e Expression) Kind() Kind { return e.kind }

// Opcode returns the opcode of an Op node; panics if e is not an Op.
func (e Expression) Opcode() opcode.Opcode {
	if e.kind != KindOp {
		panic("Opcode() called on non-Op expression")
	}

	return e.op
}

// Args returns the arguments of an Op node; panics if e is not an Op.
func (e Expression) Args() []Expression {
	if e.kind != KindOp {
		panic("Args() called on non-Op expression")
	}

	return e.args
}

// Word returns the value of a Const node; panics if e is not a Const.
func (e Expression) Word() word.Word {
	if e.kind != KindConst {
		panic("Word() called on non-Const expression")
	}

	return e.value
}

// OpaqueID returns the id of an Opaque leaf; panics if e is not Opaque.
func (e Expression) OpaqueID() uint64 {
	if e.kind != KindOpaque {
		panic("OpaqueID() called on non-Opaque expression")
	}

	return e.id
}

// Equals implements structural equality (spec.md §3): opcode and arguments
// recursively for Op nodes, Word value for Const, id for Opaque.
func (e Expression) Equals(other Expression) bool {
	if e.kind != other.kind {
		return false
	}

	switch e.kind {
	case KindConst:
		return e.value.Equals(other.value)
	case KindOpaque:
		return e.id == other.id
	default: // KindOp
		if e.op != other.op || len(e.args) != len(other.args) {
			return false
		}

		for i := range e.args {
			if !e.args[i].Equals(other.args[i]) {
				return false
			}
		}

		return true
	}
}

// Hash computes a structural hash consistent with Equals.
func (e Expression) Hash() uint64 {
	const prime = 1099511628211

	switch e.kind {
	case KindConst:
		return e.value.Hash()*prime + 1
	case KindOpaque:
		return e.id*prime + 2
	default: // KindOp
		h := uint64(e.op)*prime + 3
		for _, a := range e.args {
			h = h*prime + a.Hash()
		}

		return h
	}
}

// String renders the expression as an s-expression, e.g. "(ADD #0 7)".
func (e Expression) String() string {
	switch e.kind {
	case KindConst:
		return e.value.String()
	case KindOpaque:
		return fmt.Sprintf("#%d", e.id)
	default: // KindOp
		var b strings.Builder

		b.WriteByte('(')
		b.WriteString(e.op.String())

		for _, a := range e.args {
			b.WriteByte(' ')
			b.WriteString(a.String())
		}

		b.WriteByte(')')

		return b.String()
	}
}

// Walk calls fn on e and then, for Op nodes, recursively on every argument
// (pre-order). It does not descend into the result of fn; fn cannot affect
// the traversal.
func (e Expression) Walk(fn func(Expression)) {
	fn(e)

	if _, args, ok := e.IsOp(); ok {
		for _, a := range args {
			a.Walk(fn)
		}
	}
}
