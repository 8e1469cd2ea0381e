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

// groupPowerOfTwoMod is catalog Group 5: MOD(X, 2^i) rewrites to a
// bit-mask AND for every power of two representable in 256 bits.
func groupPowerOfTwoMod() []Rule {
	rules := make([]Rule, 0, 256)

	one := big.NewInt(1)

	for i := 0; i < 256; i++ {
		pow := word.FromBig(new(big.Int).Lsh(one, uint(i)))
		mask := word.FromBig(new(big.Int).Sub(new(big.Int).Lsh(one, uint(i)), one))

		rules = append(rules, Rule{
			LHS: pattern.Op(opcode.MOD, wv(pattern.X), pattern.Const(pow)),
			Build: func(b pattern.Bindings) expr.Expression {
				return expr.Op(opcode.AND, b.Get(pattern.X), expr.Const(mask))
			},
		})
	}

	return rules
}
