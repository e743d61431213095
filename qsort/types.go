// Copyright 2026 sifchain-assessment Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package qsort

import "cmp"

// Ordered is a constraint for types with a natural order under < and >.
//
// Integers and strings are totally ordered. Floats are too, except for NaN,
// which is never greater than anything and so always lands on the lesser
// side of a partition.
type Ordered interface {
	cmp.Ordered
}

// Record is a keyed element. ID orders the record; Value is carried along
// unchanged.
type Record[V any] struct {
	ID    int
	Value V
}

// Key returns the record's sort key.
func (r Record[V]) Key() int {
	return r.ID
}

// identity is the key function of naturally ordered values.
func identity[T Ordered](v T) T {
	return v
}
