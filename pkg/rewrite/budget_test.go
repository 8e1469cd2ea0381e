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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacky860226/lity/pkg/expr"
	"github.com/jacky860226/lity/pkg/opcode"
	"github.com/jacky860226/lity/pkg/word"
)

func TestBudgetScalesWithTermSizeAndCatalogSize(t *testing.T) {
	leaf := expr.Const(word.Zero)
	tree := expr.Op(opcode.ADD, leaf, leaf)

	small := newBudget(leaf, 10, DefaultBudgetFactor)
	big := newBudget(tree, 10, DefaultBudgetFactor)
	largerCatalog := newBudget(leaf, 20, DefaultBudgetFactor)

	assert.Greater(t, big.remaining, small.remaining)
	assert.Greater(t, largerCatalog.remaining, small.remaining)
}

func TestBudgetFactorScalesTheAllowance(t *testing.T) {
	leaf := expr.Const(word.Zero)

	tight := newBudget(leaf, 10, 1)
	loose := newBudget(leaf, 10, 8)

	assert.Greater(t, loose.remaining, tight.remaining)
}

func TestBudgetExhaustsAfterItsAllowance(t *testing.T) {
	b := newBudget(expr.Const(word.Zero), 0, DefaultBudgetFactor)
	b.remaining = 2

	assert.True(t, b.consume())
	assert.True(t, b.consume())
	assert.False(t, b.consume())
	assert.False(t, b.consume())
	assert.True(t, b.exhausted)
}
