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
// Package purity classifies whether evaluating an expression can be safely
// dropped from a program without changing its observable behaviour: no
// trap, no read of or write to anything outside the expression's own
// operands (spec.md §4.F).
package purity

import (
	"github.com/jacky860226/lity/pkg/expr"
	"github.com/jacky860226/lity/pkg/opcode"
)

// Oracle resolves the purity of an Opaque leaf by its caller-assigned id.
// known is false when the caller has no information about id; the
// classifier then treats the leaf as impure (spec.md §4.F, OracleUnknown),
// since assuming purity it cannot justify would make dropping the leaf
// unsound.
type Oracle func(id uint64) (pure bool, known bool)

// Always returns an Oracle that reports every Opaque leaf as pure or
// impure, regardless of id. Mainly useful in tests.
func Always(pure bool) Oracle {
	return func(uint64) (bool, bool) { return pure, true }
}

// IsPure reports whether evaluating e can be dropped without changing
// program behaviour. A nil oracle treats every Opaque leaf as impure, the
// same conservative default as an oracle returning known=false for
// everything.
func IsPure(e expr.Expression, oracle Oracle) bool {
	switch e.Kind() {
	case expr.KindConst:
		return true
	case expr.KindOpaque:
		if oracle == nil {
			return false
		}

		pure, known := oracle(e.OpaqueID())

		return known && pure
	default: // expr.KindOp
		if e.Opcode().Arity() == 0 {
			// Nullary opcodes (ADDRESS, CALLER, ORIGIN, COINBASE) read
			// environment state but never trap and are never written to by
			// anything this algebra can express, so they are pure reads.
			return !isEffectful(e)
		}

		if isEffectful(e) {
			return false
		}

		for _, a := range e.Args() {
			if !IsPure(a, oracle) {
				return false
			}
		}

		return true
	}
}

func isEffectful(e expr.Expression) bool {
	op, _, ok := e.IsOp()
	if !ok {
		return false
	}

	return opcode.Effectful[op]
}
