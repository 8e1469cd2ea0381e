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
package sexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacky860226/lity/pkg/expr"
	"github.com/jacky860226/lity/pkg/opcode"
	"github.com/jacky860226/lity/pkg/sexpr"
	"github.com/jacky860226/lity/pkg/word"
)

func TestParsesConstOpaqueAndOp(t *testing.T) {
	e, err := sexpr.Parse("(ADD #7 3)")
	require.NoError(t, err)

	want := expr.Op(opcode.ADD, expr.Opaque(7), expr.Const(word.FromUint64(3)))
	assert.True(t, e.Equals(want))
}

func TestParsesNegativeConstantAsTwosComplement(t *testing.T) {
	e, err := sexpr.Parse("-1")
	require.NoError(t, err)

	assert.True(t, e.Equals(expr.Const(word.Not(word.Zero))))
}

func TestParsesNestedOps(t *testing.T) {
	e, err := sexpr.Parse("(ADD (ADD #0 3) 4)")
	require.NoError(t, err)

	assert.Equal(t, "(ADD (ADD #0 3) 4)", sexpr.Print(e))
}

func TestRejectsUnknownOpcode(t *testing.T) {
	_, err := sexpr.Parse("(NOPE #0)")
	assert.Error(t, err)
}

func TestRejectsTrailingInput(t *testing.T) {
	_, err := sexpr.Parse("3 4")
	assert.Error(t, err)
}

func TestRejectsUnterminatedList(t *testing.T) {
	_, err := sexpr.Parse("(ADD 1 2")
	assert.Error(t, err)
}

func TestPrintRoundTripsThroughParse(t *testing.T) {
	e, err := sexpr.Parse("(ISZERO (EQ #0 5))")
	require.NoError(t, err)

	again, err := sexpr.Parse(sexpr.Print(e))
	require.NoError(t, err)

	assert.True(t, e.Equals(again))
}
