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
	"fmt"

	"github.com/jacky860226/lity/pkg/expr"
	"github.com/jacky860226/lity/pkg/opcode"
	"github.com/jacky860226/lity/pkg/pattern"
	"github.com/jacky860226/lity/pkg/word"
)

// fold evaluates op over fully-known operands using §4.A's word arithmetic
// exactly. SADD/SSUB/SMUL carry no arithmetic distinct from ADD/SUB/MUL —
// both wrap modulo 2**256 — so they fold through the same functions.
func fold(op opcode.Opcode, args []word.Word) word.Word {
	switch op {
	case opcode.ADD, opcode.SADD:
		return word.Add(args[0], args[1])
	case opcode.SUB, opcode.SSUB:
		return word.Sub(args[0], args[1])
	case opcode.MUL, opcode.SMUL:
		return word.Mul(args[0], args[1])
	case opcode.DIV:
		return word.Udiv(args[0], args[1])
	case opcode.SDIV:
		return word.Sdiv(args[0], args[1])
	case opcode.MOD:
		return word.Umod(args[0], args[1])
	case opcode.SMOD:
		return word.Smod(args[0], args[1])
	case opcode.EXP:
		return word.Exp(args[0], args[1])
	case opcode.ADDMOD:
		return word.Addmod(args[0], args[1], args[2])
	case opcode.MULMOD:
		return word.Mulmod(args[0], args[1], args[2])
	case opcode.SIGNEXTEND:
		return word.Signextend(args[0], args[1])
	case opcode.LT:
		return word.BoolWord(word.Ult(args[0], args[1]))
	case opcode.GT:
		return word.BoolWord(word.Ugt(args[0], args[1]))
	case opcode.SLT:
		return word.BoolWord(word.Slt(args[0], args[1]))
	case opcode.SGT:
		return word.BoolWord(word.Sgt(args[0], args[1]))
	case opcode.EQ:
		return word.BoolWord(word.Eq(args[0], args[1]))
	case opcode.ISZERO:
		return word.BoolWord(args[0].IsZero())
	case opcode.AND:
		return word.And(args[0], args[1])
	case opcode.OR:
		return word.Or(args[0], args[1])
	case opcode.XOR:
		return word.Xor(args[0], args[1])
	case opcode.NOT:
		return word.Not(args[0])
	case opcode.BYTE:
		return word.Byte(args[0], args[1])
	case opcode.SHL:
		return word.Shl(args[0], args[1])
	case opcode.SHR:
		return word.Shr(args[0], args[1])
	default:
		panic(fmt.Sprintf("%s: no constant-folding rule registered", op))
	}
}

// foldableOpcodes lists every operator that takes at least one operand — the
// nullary environment opcodes have no constant form and are excluded.
var foldableOpcodes = []opcode.Opcode{
	opcode.ADD, opcode.SUB, opcode.MUL, opcode.DIV, opcode.SDIV, opcode.MOD, opcode.SMOD,
	opcode.EXP, opcode.ADDMOD, opcode.MULMOD, opcode.SIGNEXTEND, opcode.LT, opcode.GT,
	opcode.SLT, opcode.SGT, opcode.EQ, opcode.ISZERO, opcode.AND, opcode.OR, opcode.XOR,
	opcode.NOT, opcode.BYTE, opcode.SHL, opcode.SHR, opcode.SADD, opcode.SSUB, opcode.SMUL,
}

var foldPlaceholders = [3]pattern.ID{pattern.A, pattern.B, pattern.C}

// groupConstantFolding is catalog Group 1: for every foldable opcode, a
// rule matching it with every operand a ConstantPlaceholder, reducing to
// the single folded Const.
func groupConstantFolding() []Rule {
	rules := make([]Rule, 0, len(foldableOpcodes))

	for _, op := range foldableOpcodes {
		op := op
		arity := op.Arity()
		ids := make([]pattern.ID, arity)
		args := make([]pattern.Pattern, arity)

		for i := uint(0); i < arity; i++ {
			ids[i] = foldPlaceholders[i]
			args[i] = cv(foldPlaceholders[i])
		}

		rules = append(rules, Rule{
			LHS: pattern.Op(op, args...),
			Build: func(b pattern.Bindings) expr.Expression {
				vals := make([]word.Word, len(ids))
				for i, id := range ids {
					vals[i] = b.D(id)
				}

				return expr.Const(fold(op, vals))
			},
		})
	}

	return rules
}

// foldAssoc evaluates one of the associative Group 8 opcodes over two
// constants, used by the catalog's constant-coalescing builders.
func foldAssoc(op opcode.Opcode, a, b word.Word) word.Word {
	switch op {
	case opcode.ADD, opcode.SADD:
		return word.Add(a, b)
	case opcode.MUL, opcode.SMUL:
		return word.Mul(a, b)
	case opcode.AND:
		return word.And(a, b)
	case opcode.OR:
		return word.Or(a, b)
	case opcode.XOR:
		return word.Xor(a, b)
	default:
		panic(fmt.Sprintf("%s: not an associative opcode", op))
	}
}
