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
package word_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacky860226/lity/pkg/word"
)

func TestArithmeticTotality(t *testing.T) {
	three := word.FromUint64(3)
	zero := word.Zero

	assert.True(t, word.Udiv(three, zero).IsZero())
	assert.True(t, word.Sdiv(three, zero).IsZero())
	assert.True(t, word.Umod(three, zero).IsZero())
	assert.True(t, word.Smod(three, zero).IsZero())
	assert.True(t, word.Addmod(three, three, zero).IsZero())
	assert.True(t, word.Mulmod(three, three, zero).IsZero())
}

func TestSignedDivisionWraps(t *testing.T) {
	min := word.FromBig(new(big.Int).Lsh(big.NewInt(1), 255))
	negOne := word.Not(word.Zero)

	got := word.Sdiv(min, negOne)
	assert.True(t, got.Equals(min))
}

func TestSignextend(t *testing.T) {
	// signextend(0, 0xff) sign-extends from the low byte: the result is
	// all-ones.
	x := word.FromUint64(0xff)
	got := word.Signextend(word.Zero, x)
	assert.True(t, got.Equals(word.AllOnes))

	// signextend(0, 0x7f) leaves a positive low byte unchanged.
	x = word.FromUint64(0x7f)
	got = word.Signextend(word.Zero, x)
	assert.True(t, got.Equals(x))

	// i >= 31 is a no-op.
	big31 := word.FromUint64(31)
	assert.True(t, word.Signextend(big31, x).Equals(x))
}

func TestByte(t *testing.T) {
	x := word.FromUint64(0x0102)
	// Byte 31 (least significant) is 0x02; byte 30 is 0x01; byte 0 is 0.
	assert.Equal(t, "2", word.Byte(word.FromUint64(31), x).String())
	assert.Equal(t, "1", word.Byte(word.FromUint64(30), x).String())
	assert.True(t, word.Byte(word.Zero, x).IsZero())
	assert.True(t, word.Byte(word.FromUint64(32), x).IsZero())
}

func TestShiftsSaturateBeyond255(t *testing.T) {
	x := word.FromUint64(1)

	assert.True(t, word.Shl(word.FromUint64(256), x).IsZero())
	assert.True(t, word.Shr(word.FromUint64(256), x).IsZero())

	got := word.Shl(word.FromUint64(4), x)
	assert.Equal(t, "16", got.String())
}

func TestFromBigCanonicalizesNegative(t *testing.T) {
	neg := big.NewInt(-1)
	got := word.FromBig(neg)
	assert.True(t, got.Equals(word.Not(word.Zero)))
}

func TestEqualsAndHash(t *testing.T) {
	a := word.FromUint64(42)
	b := word.FromUint64(42)
	c := word.FromUint64(43)

	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equals(c))
}
