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
// Package word implements the 256-bit modular arithmetic underlying the
// stack-machine algebra: an unsigned integer in [0, 2**256), with a
// two's-complement signed interpretation of the same bits. All binary
// operations are total and match the target machine's conventions exactly
// (division/modulo by zero yield zero; shifts by more than 255 yield zero).
package word

import (
	"math/big"

	"github.com/holiman/uint256"
)

// modulus is 2**256, used only to reduce arbitrary big.Int values (e.g.
// negative literals) into canonical [0, 2**256) form before handing them to
// uint256.Int, which otherwise only accepts unsigned, non-overflowing input.
var modulus = new(big.Int).Lsh(big.NewInt(1), 256)

// Word is an immutable 256-bit machine word. The zero value is the word 0.
type Word struct {
	v uint256.Int
}

// Zero is the additive identity.
var Zero Word

// One is the multiplicative identity.
var One = FromUint64(1)

// AllOnes is the word with all 256 bits set, i.e. 2**256-1. This is the mask
// used by the catalog's AND/OR absorption and complement rules (spec Group 2,
// Group 4).
var AllOnes = func() Word {
	var w Word
	w.v.SetAllOne()
	return w
}()

// FromUint64 constructs a Word from a uint64.
func FromUint64(val uint64) Word {
	var w Word
	w.v.SetUint64(val)
	return w
}

// FromBig constructs a Word from a big.Int of any sign and magnitude,
// reducing it modulo 2**256 (invariant 2 of spec.md §3). Negative values wrap
// around via two's complement, matching how the compiler front-end lowers
// literal negative constants.
func FromBig(val *big.Int) Word {
	var (
		reduced big.Int
		buf     [32]byte
		w       Word
	)
	reduced.Mod(val, modulus)
	reduced.FillBytes(buf[:])
	w.v.SetBytes(buf[:])
	//
	return w
}

// Big returns the unsigned big.Int value of this word.
func (w Word) Big() *big.Int {
	bytes := w.v.Bytes32()
	return new(big.Int).SetBytes(bytes[:])
}

// String renders the word as an unsigned decimal number.
func (w Word) String() string {
	return w.Big().String()
}

// Equals reports whether two words hold the same value, matching structural
// equality (spec.md §3: "two Const leaves [are equal] iff their Word values
// match").
func (w Word) Equals(other Word) bool {
	return w.v == other.v
}

// Hash returns a hash of the word consistent with Equals.
func (w Word) Hash() uint64 {
	return w.v[0] ^ w.v[1] ^ w.v[2] ^ w.v[3]
}

// IsZero reports whether this word is 0.
func (w Word) IsZero() bool {
	return w.v.IsZero()
}

// IsOne reports whether this word is 1.
func (w Word) IsOne() bool {
	return w.v.Eq(&One.v)
}

// Add computes a+b mod 2**256.
func Add(a, b Word) Word {
	var r Word
	r.v.Add(&a.v, &b.v)
	return r
}

// Sub computes a-b mod 2**256.
func Sub(a, b Word) Word {
	var r Word
	r.v.Sub(&a.v, &b.v)
	return r
}

// Mul computes a*b mod 2**256.
func Mul(a, b Word) Word {
	var r Word
	r.v.Mul(&a.v, &b.v)
	return r
}

// Udiv computes the unsigned quotient of a/b, or 0 if b is zero.
func Udiv(a, b Word) Word {
	var r Word
	r.v.Div(&a.v, &b.v)
	return r
}

// Sdiv computes the signed (two's-complement) quotient of a/b, or 0 if b is
// zero. Sdiv(min, -1) wraps back around to min, matching the target
// machine's overflow convention.
func Sdiv(a, b Word) Word {
	var r Word
	r.v.SDiv(&a.v, &b.v)
	return r
}

// Umod computes the unsigned remainder of a/b, or 0 if b is zero.
func Umod(a, b Word) Word {
	var r Word
	r.v.Mod(&a.v, &b.v)
	return r
}

// Smod computes the signed remainder of a/b, or 0 if b is zero.
func Smod(a, b Word) Word {
	var r Word
	r.v.SMod(&a.v, &b.v)
	return r
}

// Not computes the bitwise complement of a.
func Not(a Word) Word {
	var r Word
	r.v.Not(&a.v)
	return r
}

// And computes the bitwise AND of a and b.
func And(a, b Word) Word {
	var r Word
	r.v.And(&a.v, &b.v)
	return r
}

// Or computes the bitwise OR of a and b.
func Or(a, b Word) Word {
	var r Word
	r.v.Or(&a.v, &b.v)
	return r
}

// Xor computes the bitwise XOR of a and b.
func Xor(a, b Word) Word {
	var r Word
	r.v.Xor(&a.v, &b.v)
	return r
}

// Ult computes the unsigned comparison a < b.
func Ult(a, b Word) bool {
	return a.v.Lt(&b.v)
}

// Ugt computes the unsigned comparison a > b.
func Ugt(a, b Word) bool {
	return a.v.Gt(&b.v)
}

// Slt computes the signed comparison a < b.
func Slt(a, b Word) bool {
	return a.v.Slt(&b.v)
}

// Sgt computes the signed comparison a > b.
func Sgt(a, b Word) bool {
	return a.v.Sgt(&b.v)
}

// Eq computes the equality a == b.
func Eq(a, b Word) bool {
	return a.v.Eq(&b.v)
}

// boolWord lifts a Go bool to the machine's canonical boolean encoding (1 or
// 0), the form every comparator opcode in the catalog folds to.
func boolWord(b bool) Word {
	if b {
		return One
	}
	return Zero
}

// BoolWord exposes boolWord for callers (the opcode folder) that need the
// canonical 0/1 encoding of a predicate.
func BoolWord(b bool) Word { return boolWord(b) }

// Exp computes a**b mod 2**256 via modular exponentiation.
func Exp(a, b Word) Word {
	var r Word
	r.v.Exp(&a.v, &b.v)
	return r
}

// Addmod computes (a+b) mod n, with the addition performed in a wider domain
// so it cannot itself overflow, or 0 if n is zero.
func Addmod(a, b, n Word) Word {
	var r Word
	r.v.AddMod(&a.v, &b.v, &n.v)
	return r
}

// Mulmod computes (a*b) mod n, with the multiplication performed in a wider
// domain so it cannot itself overflow, or 0 if n is zero.
func Mulmod(a, b, n Word) Word {
	var r Word
	r.v.MulMod(&a.v, &b.v, &n.v)
	return r
}

// Signextend sign-extends x from its i-th byte (0-indexed from the least
// significant byte): if i >= 31, x is returned unchanged; otherwise bit
// 8*i+7 of x is copied into every higher bit.
func Signextend(i, x Word) Word {
	var r Word
	r.v.Set(&x.v)
	r.v.ExtendSign(&r.v, &i.v)
	return r
}

// Byte returns the i-th byte of x, numbered from the most significant byte
// (byte 0), or 0 if i >= 32.
func Byte(i, x Word) Word {
	var r Word
	r.v.Set(&x.v)
	r.v.Byte(&i.v)
	return r
}

// smallShift extracts a shift/index amount as a plain uint, returning
// (amount, true) if it fits and is in range, or (0, false) if it exceeds the
// given bound (in which case callers return the zero word, per spec.md §4.A).
func smallShift(k Word, max uint64) (uint, bool) {
	if !k.v.IsUint64() {
		return 0, false
	}

	u := k.v.Uint64()
	if u > max {
		return 0, false
	}

	return uint(u), true
}

// Shl computes x<<k, or 0 if k > 255.
func Shl(k, x Word) Word {
	amt, ok := smallShift(k, 255)
	if !ok {
		return Zero
	}

	var r Word
	r.v.Lsh(&x.v, amt)

	return r
}

// Shr computes the unsigned x>>k, or 0 if k > 255.
func Shr(k, x Word) Word {
	amt, ok := smallShift(k, 255)
	if !ok {
		return Zero
	}

	var r Word
	r.v.Rsh(&x.v, amt)

	return r
}
