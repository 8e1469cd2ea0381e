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

type addSubPair struct {
	add opcode.Opcode
	sub opcode.Opcode
}

var addSubPairs = []addSubPair{
	{opcode.ADD, opcode.SUB},
	{opcode.SADD, opcode.SSUB},
}

// groupAddSubInteraction is catalog Group 9: rewrites that cancel a
// constant shared between a nested ADD/SUB (or SADD/SSUB) pair, choosing
// whichever of ADD/SUB keeps the folded constant's sign "natural"; both
// branches are equal modulo 2**256, so the choice only affects output
// shape, never soundness.
func groupAddSubInteraction() []Rule {
	var rules []Rule

	for _, p := range addSubPairs {
		add, sub := p.add, p.sub

		addPattern := func(order bool) pattern.Pattern {
			if order {
				return pattern.Op(add, wv(pattern.X), cv(pattern.A))
			}

			return pattern.Op(add, cv(pattern.A), wv(pattern.X))
		}
		subXA := pattern.Op(sub, wv(pattern.X), cv(pattern.A))
		subAX := pattern.Op(sub, cv(pattern.A), wv(pattern.X))

		// sub(add(X,A), B) -> sub(X, B-A) if A<B else add(X, A-B); both
		// orderings of the inner add.
		t1 := func(b pattern.Bindings) expr.Expression {
			a, bb := b.D(pattern.A), b.D(pattern.B)
			if word.Ult(a, bb) {
				return expr.Op(sub, b.Get(pattern.X), expr.Const(word.Sub(bb, a)))
			}

			return expr.Op(add, b.Get(pattern.X), expr.Const(word.Sub(a, bb)))
		}

		for _, order := range []bool{true, false} {
			rules = append(rules, Rule{LHS: pattern.Op(sub, addPattern(order), cv(pattern.B)), Build: t1})
		}

		// sub(B, add(X,A)) -> sub(B-A, X); both orderings of the inner add.
		t2 := func(b pattern.Bindings) expr.Expression {
			return expr.Op(sub, expr.Const(word.Sub(b.D(pattern.B), b.D(pattern.A))), b.Get(pattern.X))
		}

		for _, order := range []bool{true, false} {
			rules = append(rules, Rule{LHS: pattern.Op(sub, cv(pattern.B), addPattern(order)), Build: t2})
		}

		// add(sub(X,A), B) -> sub(X, A-B) if B<A else add(X, B-A); and the
		// commuted add(B, sub(X,A)).
		t3 := func(b pattern.Bindings) expr.Expression {
			a, bb := b.D(pattern.A), b.D(pattern.B)
			if word.Ult(bb, a) {
				return expr.Op(sub, b.Get(pattern.X), expr.Const(word.Sub(a, bb)))
			}

			return expr.Op(add, b.Get(pattern.X), expr.Const(word.Sub(bb, a)))
		}

		rules = append(rules,
			Rule{LHS: pattern.Op(add, subXA, cv(pattern.B)), Build: t3},
			Rule{LHS: pattern.Op(add, cv(pattern.B), subXA), Build: t3},
		)

		// sub(sub(X,A), B) -> sub(X, A+B).
		rules = append(rules, Rule{
			LHS: pattern.Op(sub, subXA, cv(pattern.B)),
			Build: func(b pattern.Bindings) expr.Expression {
				return expr.Op(sub, b.Get(pattern.X), expr.Const(word.Add(b.D(pattern.A), b.D(pattern.B))))
			},
		})

		// sub(sub(A,X), B) -> sub(A-B, X).
		rules = append(rules, Rule{
			LHS: pattern.Op(sub, subAX, cv(pattern.B)),
			Build: func(b pattern.Bindings) expr.Expression {
				return expr.Op(sub, expr.Const(word.Sub(b.D(pattern.A), b.D(pattern.B))), b.Get(pattern.X))
			},
		})

		// sub(add(X,A), Y) -> add(sub(X,Y), A); both orderings of the inner
		// add.
		t6 := func(b pattern.Bindings) expr.Expression {
			return expr.Op(add, expr.Op(sub, b.Get(pattern.X), b.Get(pattern.Y)), expr.Const(b.D(pattern.A)))
		}

		for _, order := range []bool{true, false} {
			rules = append(rules, Rule{LHS: pattern.Op(sub, addPattern(order), wv(pattern.Y)), Build: t6})
		}

		// sub(X, add(Y,A)) -> sub(sub(X,Y), A); both orderings of the inner
		// add.
		t7 := func(b pattern.Bindings) expr.Expression {
			return expr.Op(sub, expr.Op(sub, b.Get(pattern.X), b.Get(pattern.Y)), expr.Const(b.D(pattern.A)))
		}

		addYA := pattern.Op(add, wv(pattern.Y), cv(pattern.A))
		addAY := pattern.Op(add, cv(pattern.A), wv(pattern.Y))

		rules = append(rules,
			Rule{LHS: pattern.Op(sub, wv(pattern.X), addYA), Build: t7},
			Rule{LHS: pattern.Op(sub, wv(pattern.X), addAY), Build: t7},
		)
	}

	return rules
}
