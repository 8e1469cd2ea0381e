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

func TestSeenSetDetectsStructuralRepeat(t *testing.T) {
	s := newSeenSet()

	a := expr.Op(opcode.ADD, expr.Opaque(0), expr.Const(word.FromUint64(1)))
	b := expr.Op(opcode.ADD, expr.Opaque(0), expr.Const(word.FromUint64(1)))
	c := expr.Op(opcode.ADD, expr.Opaque(0), expr.Const(word.FromUint64(2)))

	assert.False(t, s.insert(a))
	assert.True(t, s.insert(b))
	assert.False(t, s.insert(c))
}
