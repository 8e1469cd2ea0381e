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
	"github.com/sirupsen/logrus"

	"github.com/jacky860226/lity/pkg/expr"
	"github.com/jacky860226/lity/pkg/pattern"
	"github.com/jacky860226/lity/pkg/purity"
)

// Simplify repeatedly rewrites e against cat until a fixed point (spec.md
// §4.E): bottom-up, first to last matching rule, until no rule fires
// anywhere in the term. oracle resolves the purity of Opaque leaves for
// rules that discard a wildcard-bound subterm (§4.F); a nil oracle treats
// every Opaque leaf as impure. Equivalent to SimplifyWithBudget with
// DefaultBudgetFactor.
func Simplify(e expr.Expression, cat Catalog, oracle purity.Oracle) expr.Expression {
	return SimplifyWithBudget(e, cat, oracle, DefaultBudgetFactor)
}

// SimplifyWithBudget is Simplify with an explicit iteration-budget safety
// margin (the CLI's --budget flag), in case the default proves too tight
// for some caller's term shapes.
func SimplifyWithBudget(e expr.Expression, cat Catalog, oracle purity.Oracle, budgetFactor int) expr.Expression {
	b := newBudget(e, len(cat.rules), budgetFactor)

	return fix(e, cat, oracle, b, newSeenSet())
}

// fix implements one root position's Dirty -> Scanning -> Fired/Clean
// state machine (spec.md "State machine (rewriter)"). seen accumulates
// across the Fired->Dirty self-recursion at this position, so a genuine
// A->B->A cycle is caught even when the budget would otherwise tolerate
// it; a fresh seenSet is used for each child position, since a cycle at
// one position says nothing about another.
func fix(e expr.Expression, cat Catalog, oracle purity.Oracle, b *budget, seen *seenSet) expr.Expression {
	if op, args, ok := e.IsOp(); ok {
		newArgs := make([]expr.Expression, len(args))
		changed := false

		for i, a := range args {
			s := fix(a, cat, oracle, b, newSeenSet())
			newArgs[i] = s

			if !s.Equals(a) {
				changed = true
			}
		}

		if changed {
			e = expr.Op(op, newArgs...)
		}
	}

	if !b.consume() {
		return e
	}

	for _, r := range cat.rules {
		bnd, ok := pattern.TryMatch(r.LHS, e)
		if !ok {
			continue
		}

		if !admissible(r, bnd, oracle) {
			continue
		}

		result := r.Build(bnd)

		if seen.insert(result) {
			logrus.Errorf("rewrite: cycle detected, catalog re-produced %s; leaving term unrewritten at this position", result)
			return e
		}

		return fix(result, cat, oracle, b, seen)
	}

	return e
}

// admissible reports whether rule r may fire given its match bindings
// (spec.md §4.F): every wildcard it discards must be pure.
func admissible(r Rule, b pattern.Bindings, oracle purity.Oracle) bool {
	for _, id := range r.Discards {
		if !purity.IsPure(b.Get(id), oracle) {
			return false
		}
	}

	return true
}
