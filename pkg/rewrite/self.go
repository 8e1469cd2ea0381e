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

func selfToZero(op opcode.Opcode) Rule {
	return Rule{
		LHS: pattern.Op(op, wv(pattern.X), wv(pattern.X)),
		Build: func(pattern.Bindings) expr.Expression {
			return expr.Const(word.Zero)
		},
		Discards: []pattern.ID{pattern.X},
	}
}

func selfToOne(op opcode.Opcode) Rule {
	return Rule{
		LHS: pattern.Op(op, wv(pattern.X), wv(pattern.X)),
		Build: func(pattern.Bindings) expr.Expression {
			return expr.Const(word.One)
		},
		Discards: []pattern.ID{pattern.X},
	}
}

func selfToSelf(op opcode.Opcode) Rule {
	return Rule{
		LHS: pattern.Op(op, wv(pattern.X), wv(pattern.X)),
		Build: func(b pattern.Bindings) expr.Expression {
			return b.Get(pattern.X)
		},
		Discards: []pattern.ID{pattern.X},
	}
}

// groupSelfIdentities is catalog Group 3: removing identities that fire
// when both operands of a binary opcode are the same term.
func groupSelfIdentities() []Rule {
	return []Rule{
		selfToSelf(opcode.AND),
		selfToSelf(opcode.OR),
		selfToZero(opcode.XOR),
		selfToZero(opcode.SUB),
		selfToZero(opcode.SSUB),
		selfToOne(opcode.EQ),
		selfToZero(opcode.LT),
		selfToZero(opcode.SLT),
		selfToZero(opcode.GT),
		selfToZero(opcode.SGT),
		selfToZero(opcode.MOD),
	}
}
