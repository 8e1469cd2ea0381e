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
)

var associativeOpcodes = []opcode.Opcode{
	opcode.ADD, opcode.SADD, opcode.MUL, opcode.SMUL, opcode.AND, opcode.OR, opcode.XOR,
}

// groupAssociativity is catalog Group 8: for each associative/commutative
// binary opcode, the four coalesce-or-float shape rules, generated for
// both orderings of the inner node's (X,A) operands. Within one opcode the
// two coalescing shapes (which collapse two adjacent constants) are listed
// before the two floating shapes (which only relocate a constant), so a
// doubly-nested constant collapses before either of its constants is
// floated further outward.
func groupAssociativity() []Rule {
	rules := make([]Rule, 0, len(associativeOpcodes)*8)

	for _, op := range associativeOpcodes {
		op := op

		inner := func(order bool) pattern.Pattern {
			if order {
				return pattern.Op(op, wv(pattern.X), cv(pattern.A))
			}

			return pattern.Op(op, cv(pattern.A), wv(pattern.X))
		}

		coalesce := func(b pattern.Bindings) expr.Expression {
			return expr.Op(op, b.Get(pattern.X), expr.Const(foldAssoc(op, b.D(pattern.A), b.D(pattern.B))))
		}

		for _, order := range []bool{true, false} {
			in := inner(order)

			rules = append(rules,
				Rule{LHS: pattern.Op(op, in, cv(pattern.B)), Build: coalesce},
				Rule{LHS: pattern.Op(op, cv(pattern.B), in), Build: coalesce},
			)
		}

		floatOut1 := func(b pattern.Bindings) expr.Expression {
			return expr.Op(op, expr.Op(op, b.Get(pattern.X), b.Get(pattern.Y)), expr.Const(b.D(pattern.A)))
		}
		floatOut2 := func(b pattern.Bindings) expr.Expression {
			return expr.Op(op, expr.Op(op, b.Get(pattern.Y), b.Get(pattern.X)), expr.Const(b.D(pattern.A)))
		}

		for _, order := range []bool{true, false} {
			in := inner(order)

			rules = append(rules,
				Rule{LHS: pattern.Op(op, in, wv(pattern.Y)), Build: floatOut1},
				Rule{LHS: pattern.Op(op, wv(pattern.Y), in), Build: floatOut2},
			)
		}
	}

	return rules
}
