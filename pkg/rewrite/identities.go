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
package rewrite

import (
	"github.com/jacky860226/lity/pkg/expr"
	"github.com/jacky860226/lity/pkg/opcode"
	"github.com/jacky860226/lity/pkg/pattern"
	"github.com/jacky860226/lity/pkg/word"
)

func identity(op opcode.Opcode) Rule {
	return Rule{
		LHS: pattern.Op(op, wv(pattern.X), pattern.Const(word.Zero)),
		Build: func(b pattern.Bindings) expr.Expression {
			return b.Get(pattern.X)
		},
	}
}

func identityMirrored(op opcode.Opcode) Rule {
	return Rule{
		LHS: pattern.Op(op, pattern.Const(word.Zero), wv(pattern.X)),
		Build: func(b pattern.Bindings) expr.Expression {
			return b.Get(pattern.X)
		},
	}
}

func zeroRemoving(lhs pattern.Pattern) Rule {
	return Rule{
		LHS: lhs,
		Build: func(pattern.Bindings) expr.Expression {
			return expr.Const(word.Zero)
		},
		Discards: []pattern.ID{pattern.X},
	}
}

func negate(sub opcode.Opcode, lhs pattern.Pattern) Rule {
	return Rule{
		LHS: lhs,
		Build: func(b pattern.Bindings) expr.Expression {
			return expr.Op(sub, expr.Const(word.Zero), b.Get(pattern.X))
		},
	}
}

// groupConstantIdentities is catalog Group 2: the absorptions and units
// collected in spec.md §4.D Group 2.
func groupConstantIdentities() []Rule {
	negOne := word.Not(word.Zero)
	allOnes := word.AllOnes

	rules := []Rule{
		identity(opcode.ADD), identityMirrored(opcode.ADD),
		identity(opcode.SADD), identityMirrored(opcode.SADD),

		identity(opcode.SUB),
		identity(opcode.SSUB),

		zeroRemoving(pattern.Op(opcode.MUL, wv(pattern.X), pattern.Const(word.Zero))),
		zeroRemoving(pattern.Op(opcode.MUL, pattern.Const(word.Zero), wv(pattern.X))),

		{
			LHS: pattern.Op(opcode.MUL, wv(pattern.X), pattern.Const(word.One)),
			Build: func(b pattern.Bindings) expr.Expression { return b.Get(pattern.X) },
		},
		{
			LHS: pattern.Op(opcode.MUL, pattern.Const(word.One), wv(pattern.X)),
			Build: func(b pattern.Bindings) expr.Expression { return b.Get(pattern.X) },
		},
		{
			LHS: pattern.Op(opcode.SMUL, wv(pattern.X), pattern.Const(word.One)),
			Build: func(b pattern.Bindings) expr.Expression { return b.Get(pattern.X) },
		},
		{
			LHS: pattern.Op(opcode.SMUL, pattern.Const(word.One), wv(pattern.X)),
			Build: func(b pattern.Bindings) expr.Expression { return b.Get(pattern.X) },
		},

		negate(opcode.SUB, pattern.Op(opcode.MUL, wv(pattern.X), pattern.Const(negOne))),
		negate(opcode.SUB, pattern.Op(opcode.MUL, pattern.Const(negOne), wv(pattern.X))),
		negate(opcode.SSUB, pattern.Op(opcode.SMUL, wv(pattern.X), pattern.Const(negOne))),
		negate(opcode.SSUB, pattern.Op(opcode.SMUL, pattern.Const(negOne), wv(pattern.X))),

		zeroRemoving(pattern.Op(opcode.DIV, wv(pattern.X), pattern.Const(word.Zero))),
		zeroRemoving(pattern.Op(opcode.DIV, pattern.Const(word.Zero), wv(pattern.X))),
		{
			LHS: pattern.Op(opcode.DIV, wv(pattern.X), pattern.Const(word.One)),
			Build: func(b pattern.Bindings) expr.Expression { return b.Get(pattern.X) },
		},
		zeroRemoving(pattern.Op(opcode.SDIV, wv(pattern.X), pattern.Const(word.Zero))),
		zeroRemoving(pattern.Op(opcode.SDIV, pattern.Const(word.Zero), wv(pattern.X))),
		{
			LHS: pattern.Op(opcode.SDIV, wv(pattern.X), pattern.Const(word.One)),
			Build: func(b pattern.Bindings) expr.Expression { return b.Get(pattern.X) },
		},

		{
			LHS: pattern.Op(opcode.AND, wv(pattern.X), pattern.Const(allOnes)),
			Build: func(b pattern.Bindings) expr.Expression { return b.Get(pattern.X) },
		},
		{
			LHS: pattern.Op(opcode.AND, pattern.Const(allOnes), wv(pattern.X)),
			Build: func(b pattern.Bindings) expr.Expression { return b.Get(pattern.X) },
		},
		zeroRemoving(pattern.Op(opcode.AND, wv(pattern.X), pattern.Const(word.Zero))),
		zeroRemoving(pattern.Op(opcode.AND, pattern.Const(word.Zero), wv(pattern.X))),

		identity(opcode.OR), identityMirrored(opcode.OR),
		{
			LHS: pattern.Op(opcode.OR, wv(pattern.X), pattern.Const(allOnes)),
			Build: func(pattern.Bindings) expr.Expression { return expr.Const(allOnes) },
			Discards: []pattern.ID{pattern.X},
		},
		{
			LHS: pattern.Op(opcode.OR, pattern.Const(allOnes), wv(pattern.X)),
			Build: func(pattern.Bindings) expr.Expression { return expr.Const(allOnes) },
			Discards: []pattern.ID{pattern.X},
		},

		identity(opcode.XOR), identityMirrored(opcode.XOR),

		zeroRemoving(pattern.Op(opcode.MOD, wv(pattern.X), pattern.Const(word.Zero))),
		zeroRemoving(pattern.Op(opcode.MOD, pattern.Const(word.Zero), wv(pattern.X))),

		{
			LHS: pattern.Op(opcode.EQ, wv(pattern.X), pattern.Const(word.Zero)),
			Build: func(b pattern.Bindings) expr.Expression {
				return expr.Op(opcode.ISZERO, b.Get(pattern.X))
			},
		},
		{
			LHS: pattern.Op(opcode.EQ, pattern.Const(word.Zero), wv(pattern.X)),
			Build: func(b pattern.Bindings) expr.Expression {
				return expr.Op(opcode.ISZERO, b.Get(pattern.X))
			},
		},
	}

	return rules
}
