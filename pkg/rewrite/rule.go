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
// Package rewrite implements the rule catalog and the bottom-up fixed-point
// rewriter that applies it to an Expression.
package rewrite

import (
	"github.com/jacky860226/lity/pkg/expr"
	"github.com/jacky860226/lity/pkg/pattern"
)

// Rule pairs a match template with a builder. Build constructs the
// replacement from the bindings produced by a successful match against
// LHS; it may inspect bound ConstantPlaceholder Words and emit further
// nested Op/Const terms, but must never itself consult anything outside
// those bindings.
//
// Discards lists the WildcardPlaceholder identities whose bound
// sub-expression this rule drops when it fires — the catalog author's
// static answer to which occurrences the rule removes (spec.md §4.F). A
// rule with an empty Discards is non-removing and always admissible; a rule
// with a non-empty Discards requires every listed placeholder's binding to
// be pure before it may fire.
type Rule struct {
	LHS      pattern.Pattern
	Build    func(pattern.Bindings) expr.Expression
	Discards []pattern.ID
}

// Catalog is the static, ordered rule list built once by BuildCatalog.
type Catalog struct {
	rules []Rule
}

// Rules returns the catalog's rules in source order — the order in which
// the rewriter tries them at every node.
func (c Catalog) Rules() []Rule {
	return c.rules
}

// Lisp renders every rule's left-hand side as an s-expression, in catalog
// order, for introspection (e.g. a CLI "list rules" command).
func (c Catalog) Lisp() []string {
	out := make([]string, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.LHS.String()
	}

	return out
}

func cv(id pattern.ID) pattern.Pattern { return pattern.Var(id, pattern.ConstantPlaceholder) }
func wv(id pattern.ID) pattern.Pattern { return pattern.Var(id, pattern.WildcardPlaceholder) }
