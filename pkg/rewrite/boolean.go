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

// groupBooleanDoubleNegation is catalog Group 7: ISZERO(ISZERO(.)) cancels
// around every comparator, around a bare ISZERO, and XOR-under-ISZERO
// rewrites to EQ.
func groupBooleanDoubleNegation() []Rule {
	rules := make([]Rule, 0, len(opcode.Comparators())+2)

	for _, cmp := range opcode.Comparators() {
		cmp := cmp
		inner := pattern.Op(cmp, wv(pattern.X), wv(pattern.Y))

		rules = append(rules, Rule{
			LHS: pattern.Op(opcode.ISZERO, pattern.Op(opcode.ISZERO, inner)),
			Build: func(b pattern.Bindings) expr.Expression {
				return expr.Op(cmp, b.Get(pattern.X), b.Get(pattern.Y))
			},
		})
	}

	rules = append(rules,
		Rule{
			LHS: pattern.Op(opcode.ISZERO, pattern.Op(opcode.ISZERO, pattern.Op(opcode.ISZERO, wv(pattern.X)))),
			Build: func(b pattern.Bindings) expr.Expression {
				return expr.Op(opcode.ISZERO, b.Get(pattern.X))
			},
		},
		Rule{
			LHS: pattern.Op(opcode.ISZERO, pattern.Op(opcode.XOR, wv(pattern.X), wv(pattern.Y))),
			Build: func(b pattern.Bindings) expr.Expression {
				return expr.Op(opcode.EQ, b.Get(pattern.X), b.Get(pattern.Y))
			},
		},
	)

	return rules
}
