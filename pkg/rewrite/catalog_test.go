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
package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacky860226/lity/pkg/rewrite"
)

func TestCatalogIsLargeAndDeterministic(t *testing.T) {
	first := rewrite.BuildCatalog()
	second := rewrite.BuildCatalog()

	assert.Greater(t, len(first.Rules()), 100)
	assert.Equal(t, first.Lisp(), second.Lisp())
}

func TestCatalogConstantFoldingGroupLeadsTheCatalog(t *testing.T) {
	cat := rewrite.BuildCatalog()
	lisp := cat.Lisp()

	assert.Equal(t, "(ADD A B)", lisp[0])
}

func TestCatalogLispMatchesRuleCount(t *testing.T) {
	cat := rewrite.BuildCatalog()
	assert.Len(t, cat.Lisp(), len(cat.Rules()))
}
