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

import "github.com/jacky860226/lity/pkg/expr"

// seenSet detects rewrite cycles within a single root position's
// fire-chain: if the catalog rewrites a term back to something already
// produced at this position, it is looping rather than converging, which
// is a catalog bug distinct from merely running past the iteration budget
// on a large term. Adapted from a generic bucketed hash-set design (see
// DESIGN.md) and specialised directly to expr.Expression, its only
// consumer.
type seenSet struct {
	buckets map[uint64][]expr.Expression
}

func newSeenSet() *seenSet {
	return &seenSet{buckets: make(map[uint64][]expr.Expression)}
}

// insert records e, reporting whether a structurally equal expression was
// already present.
func (s *seenSet) insert(e expr.Expression) bool {
	h := e.Hash()

	for _, o := range s.buckets[h] {
		if o.Equals(e) {
			return true
		}
	}

	s.buckets[h] = append(s.buckets[h], e)

	return false
}
