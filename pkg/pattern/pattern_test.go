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
package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacky860226/lity/pkg/expr"
	"github.com/jacky860226/lity/pkg/opcode"
	"github.com/jacky860226/lity/pkg/pattern"
	"github.com/jacky860226/lity/pkg/word"
)

func cv(id pattern.ID) pattern.Pattern { return pattern.Var(id, pattern.ConstantPlaceholder) }
func wv(id pattern.ID) pattern.Pattern { return pattern.Var(id, pattern.WildcardPlaceholder) }

func TestConstantPlaceholderRejectsNonConst(t *testing.T) {
	p := pattern.Op(opcode.MUL, wv(pattern.X), cv(pattern.A))
	e := expr.Op(opcode.MUL, expr.Opaque(0), expr.Opaque(1))

	_, ok := pattern.TryMatch(p, e)
	assert.False(t, ok)
}

func TestRepeatedWildcardRequiresStructuralEquality(t *testing.T) {
	p := pattern.Op(opcode.AND, wv(pattern.X), wv(pattern.X))

	matching := expr.Op(opcode.AND, expr.Opaque(0), expr.Opaque(0))
	b, ok := pattern.TryMatch(p, matching)
	assert.True(t, ok)
	assert.True(t, b.Get(pattern.X).Equals(expr.Opaque(0)))

	mismatching := expr.Op(opcode.AND, expr.Opaque(0), expr.Opaque(1))
	_, ok = pattern.TryMatch(p, mismatching)
	assert.False(t, ok)
}

func TestSuccessfulMatchBindsEveryPlaceholder(t *testing.T) {
	p := pattern.Op(opcode.ADD, wv(pattern.X), cv(pattern.A))
	e := expr.Op(opcode.ADD, expr.Opaque(7), expr.Const(word.FromUint64(3)))

	b, ok := pattern.TryMatch(p, e)
	assert.True(t, ok)
	assert.True(t, b.Get(pattern.X).Equals(expr.Opaque(7)))
	assert.True(t, b.D(pattern.A).Equals(word.FromUint64(3)))
}

func TestOpcodeMustMatch(t *testing.T) {
	p := pattern.Op(opcode.ADD, wv(pattern.X), cv(pattern.A))

	_, ok := pattern.TryMatch(p, expr.Op(opcode.SUB, expr.Opaque(0), expr.Const(word.Zero)))
	assert.False(t, ok)
}

func TestBindingsDPanicsOnUnboundPlaceholder(t *testing.T) {
	b := make(pattern.Bindings)
	assert.Panics(t, func() { b.D(pattern.A) })
}

func TestStringRendersPlaceholderLetters(t *testing.T) {
	p := pattern.Op(opcode.ADD, wv(pattern.X), cv(pattern.A))
	assert.Equal(t, "(ADD X A)", p.String())
}
