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
	"math/big"

	"github.com/jacky860226/lity/pkg/expr"
	"github.com/jacky860226/lity/pkg/opcode"
	"github.com/jacky860226/lity/pkg/pattern"
	"github.com/jacky860226/lity/pkg/word"
)

// addressMask is 2**160-1, the mask that leaves a 160-bit address
// zero-extended to 256 bits unchanged.
var addressMask = word.FromBig(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 160), big.NewInt(1)))

// groupAddressMasking is catalog Group 6: ANDing a nullary environment
// opcode with the 160-bit address mask is a no-op, since those opcodes
// already return a zero-extended 160-bit value.
func groupAddressMasking() []Rule {
	rules := make([]Rule, 0, len(opcode.EnvironmentOpcodes())*2)

	for _, op := range opcode.EnvironmentOpcodes() {
		op := op
		leaf := expr.Op(op)
		build := func(pattern.Bindings) expr.Expression { return leaf }

		rules = append(rules,
			Rule{LHS: pattern.Op(opcode.AND, pattern.Op(op), pattern.Const(addressMask)), Build: build},
			Rule{LHS: pattern.Op(opcode.AND, pattern.Const(addressMask), pattern.Op(op)), Build: build},
		)
	}

	return rules
}
