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
)

// budget bounds the number of rewrite-attempt steps a single Simplify call
// may take, proportional to the input's size and the catalog's size
// (spec.md §4.E: "bound the iteration count, e.g. depth x catalog size").
// Exhausting it is IterationBudgetExhausted (spec.md §7): a non-fatal
// diagnostic, not a panic — the rewriter returns the best term it has.
type budget struct {
	remaining int
	exhausted bool
}

// DefaultBudgetFactor is the safety margin applied on top of term size
// (node count) x catalog size when a caller does not override it via
// SimplifyWithBudget.
const DefaultBudgetFactor = 4

func newBudget(e expr.Expression, catalogSize, factor int) *budget {
	n := 0
	e.Walk(func(expr.Expression) { n++ })

	return &budget{remaining: (n + 1) * (catalogSize + 1) * factor}
}

// consume reports whether the caller may attempt one more rewrite step. The
// first call after the budget is spent logs the diagnostic; subsequent
// calls stay silent.
func (b *budget) consume() bool {
	if b.remaining <= 0 {
		if !b.exhausted {
			b.exhausted = true
			logrus.Warn("rewrite: iteration budget exhausted, returning best term found so far")
		}

		return false
	}

	b.remaining--

	return true
}
