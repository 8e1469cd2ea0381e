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

// BuildCatalog constructs the full rule catalog once. Rules are assembled
// group by group in the order spec.md §4.D lists them, and the original
// source's split of the catalog into two halves (a workaround for a
// compiler stack limit) is not reproduced — this builds a single ordered
// list.
func BuildCatalog() Catalog {
	var rules []Rule

	rules = append(rules, groupConstantFolding()...)
	rules = append(rules, groupConstantIdentities()...)
	rules = append(rules, groupSelfIdentities()...)
	rules = append(rules, groupLogicalCombinators()...)
	rules = append(rules, groupPowerOfTwoMod()...)
	rules = append(rules, groupAddressMasking()...)
	rules = append(rules, groupBooleanDoubleNegation()...)
	rules = append(rules, groupAssociativity()...)
	rules = append(rules, groupAddSubInteraction()...)

	return Catalog{rules: rules}
}
