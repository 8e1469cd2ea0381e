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
package opcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacky860226/lity/pkg/opcode"
)

func TestStringAndLookupRoundTrip(t *testing.T) {
	for _, op := range []opcode.Opcode{opcode.ADD, opcode.MULMOD, opcode.ADDRESS, opcode.SIGNEXTEND} {
		name := op.String()

		got, ok := opcode.Lookup(name)
		assert.True(t, ok)
		assert.Equal(t, op, got)
	}
}

func TestLookupRejectsUnknownName(t *testing.T) {
	_, ok := opcode.Lookup("NOPE")
	assert.False(t, ok)
}

func TestArities(t *testing.T) {
	assert.EqualValues(t, 2, opcode.ADD.Arity())
	assert.EqualValues(t, 1, opcode.ISZERO.Arity())
	assert.EqualValues(t, 3, opcode.ADDMOD.Arity())
	assert.EqualValues(t, 0, opcode.ADDRESS.Arity())
}

func TestEnvironmentOpcodesAreAllNullary(t *testing.T) {
	for _, op := range opcode.EnvironmentOpcodes() {
		assert.EqualValues(t, 0, op.Arity())
	}
}

func TestAssociativeMarksExpectedOpcodes(t *testing.T) {
	assert.True(t, opcode.ADD.IsAssociative())
	assert.True(t, opcode.AND.IsAssociative())
	assert.False(t, opcode.SUB.IsAssociative())
	assert.False(t, opcode.DIV.IsAssociative())
}
