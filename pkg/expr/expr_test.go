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
package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacky860226/lity/pkg/expr"
	"github.com/jacky860226/lity/pkg/opcode"
	"github.com/jacky860226/lity/pkg/word"
)

func TestOpRejectsWrongArity(t *testing.T) {
	assert.Panics(t, func() {
		expr.Op(opcode.ADD, expr.Const(word.Zero))
	})
}

func TestStructuralEquality(t *testing.T) {
	a := expr.Op(opcode.ADD, expr.Opaque(0), expr.Const(word.FromUint64(3)))
	b := expr.Op(opcode.ADD, expr.Opaque(0), expr.Const(word.FromUint64(3)))
	c := expr.Op(opcode.ADD, expr.Opaque(0), expr.Const(word.FromUint64(4)))
	d := expr.Op(opcode.ADD, expr.Opaque(1), expr.Const(word.FromUint64(3)))

	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(d))
}

func TestStringRendersSExpression(t *testing.T) {
	e := expr.Op(opcode.ADD, expr.Opaque(0), expr.Const(word.FromUint64(7)))
	assert.Equal(t, "(ADD #0 7)", e.String())
}

func TestWalkVisitsPreOrder(t *testing.T) {
	e := expr.Op(opcode.ADD, expr.Opaque(0), expr.Op(opcode.MUL, expr.Const(word.FromUint64(2)), expr.Const(word.FromUint64(3))))

	var seen []string
	e.Walk(func(v expr.Expression) { seen = append(seen, v.String()) })

	assert.Equal(t, []string{"(ADD #0 (MUL 2 3))", "#0", "(MUL 2 3)", "2", "3"}, seen)
}

func TestAccessorsPanicOnWrongKind(t *testing.T) {
	c := expr.Const(word.Zero)

	assert.Panics(t, func() { c.Opcode() })
	assert.Panics(t, func() { c.Args() })

	op := expr.Op(opcode.NOT, c)
	assert.Panics(t, func() { op.Word() })
	assert.Panics(t, func() { op.OpaqueID() })
}
