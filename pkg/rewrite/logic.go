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

// groupLogicalCombinators is catalog Group 4: double negation, the four
// orderings of the XOR-cancellation identity, the eight orderings of
// AND/OR absorption, and the four orderings of the complement identities.
func groupLogicalCombinators() []Rule {
	rules := []Rule{
		{
			LHS: pattern.Op(opcode.NOT, pattern.Op(opcode.NOT, wv(pattern.X))),
			Build: func(b pattern.Bindings) expr.Expression { return b.Get(pattern.X) },
		},
	}

	xorCancel := func(lhs pattern.Pattern) Rule {
		return Rule{
			LHS: lhs,
			Build: func(b pattern.Bindings) expr.Expression { return b.Get(pattern.Y) },
			Discards: []pattern.ID{pattern.X},
		}
	}

	xy := pattern.Op(opcode.XOR, wv(pattern.X), wv(pattern.Y))
	yx := pattern.Op(opcode.XOR, wv(pattern.Y), wv(pattern.X))

	rules = append(rules,
		xorCancel(pattern.Op(opcode.XOR, wv(pattern.X), xy)),
		xorCancel(pattern.Op(opcode.XOR, wv(pattern.X), yx)),
		xorCancel(pattern.Op(opcode.XOR, xy, wv(pattern.X))),
		xorCancel(pattern.Op(opcode.XOR, yx, wv(pattern.X))),
	)

	absorb := func(lhs pattern.Pattern) Rule {
		return Rule{
			LHS: lhs,
			Build: func(b pattern.Bindings) expr.Expression { return b.Get(pattern.X) },
			Discards: []pattern.ID{pattern.X, pattern.Y},
		}
	}

	andXY := pattern.Op(opcode.AND, wv(pattern.X), wv(pattern.Y))
	andYX := pattern.Op(opcode.AND, wv(pattern.Y), wv(pattern.X))
	orXY := pattern.Op(opcode.OR, wv(pattern.X), wv(pattern.Y))
	orYX := pattern.Op(opcode.OR, wv(pattern.Y), wv(pattern.X))

	rules = append(rules,
		absorb(pattern.Op(opcode.OR, wv(pattern.X), andXY)),
		absorb(pattern.Op(opcode.OR, wv(pattern.X), andYX)),
		absorb(pattern.Op(opcode.OR, andXY, wv(pattern.X))),
		absorb(pattern.Op(opcode.OR, andYX, wv(pattern.X))),
		absorb(pattern.Op(opcode.AND, wv(pattern.X), orXY)),
		absorb(pattern.Op(opcode.AND, wv(pattern.X), orYX)),
		absorb(pattern.Op(opcode.AND, orXY, wv(pattern.X))),
		absorb(pattern.Op(opcode.AND, orYX, wv(pattern.X))),
	)

	notX := pattern.Op(opcode.NOT, wv(pattern.X))

	rules = append(rules,
		Rule{
			LHS: pattern.Op(opcode.AND, wv(pattern.X), notX),
			Build: func(pattern.Bindings) expr.Expression { return expr.Const(word.Zero) },
			Discards: []pattern.ID{pattern.X},
		},
		Rule{
			LHS: pattern.Op(opcode.AND, notX, wv(pattern.X)),
			Build: func(pattern.Bindings) expr.Expression { return expr.Const(word.Zero) },
			Discards: []pattern.ID{pattern.X},
		},
		Rule{
			LHS: pattern.Op(opcode.OR, wv(pattern.X), notX),
			Build: func(pattern.Bindings) expr.Expression { return expr.Const(word.AllOnes) },
			Discards: []pattern.ID{pattern.X},
		},
		Rule{
			LHS: pattern.Op(opcode.OR, notX, wv(pattern.X)),
			Build: func(pattern.Bindings) expr.Expression { return expr.Const(word.AllOnes) },
			Discards: []pattern.ID{pattern.X},
		},
	)

	return rules
}
