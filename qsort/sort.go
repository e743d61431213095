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

import "slices"

// Sort returns a new slice holding the elements of s in non-decreasing
// order. s is not modified.
//
// Elements equal to a pivot are placed in its lesser partition. For most
// types this is invisible in the result; it matters for values that compare
// equal but are distinguishable, such as -0.0 and +0.0.
func Sort[T Ordered](s []T) []T {
	return naturalOrder[T]().sort(s)
}

// SortByKey returns a new slice holding the elements of s ordered by
// non-decreasing key(e). Elements with equal keys keep their relative
// order from s. s is not modified.
//
// key is called on every element at every level of the partition tree, so
// it should be cheap and must return the same key for the same element.
func SortByKey[E any, K Ordered](s []E, key func(E) K) []E {
	return keyOrder(key).sort(s)
}

// SortRecords returns a new slice holding the records of s ordered by ID.
// Records with equal IDs keep their relative order from s.
func SortRecords[V any](s []Record[V]) []Record[V] {
	return SortByKey(s, Record[V].Key)
}

func (o order[E, K]) sort(s []E) []E {
	if len(s) <= 1 {
		return slices.Clone(s)
	}
	return o.quickSort(s)
}

// quickSort never writes to s. Segments of length <= 1 are returned as is,
// so the caller owns the result only when len(s) > 1.
func (o order[E, K]) quickSort(s []E) []E {
	if len(s) <= 1 {
		return s
	}

	lesser, pivot, greater := o.partition(s)

	// Partitions are allocated by partition, so the sorted lesser side
	// can be extended in place.
	sorted := o.quickSort(lesser)
	sorted = append(sorted, pivot)
	return append(sorted, o.quickSort(greater)...)
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[T Ordered](s []T) bool {
	return IsSortedByKey(s, identity[T])
}

// IsSortedByKey reports whether s is in non-decreasing order of key(e).
func IsSortedByKey[E any, K Ordered](s []E, key func(E) K) bool {
	for i := 1; i < len(s); i++ {
		if key(s[i]) < key(s[i-1]) {
			return false
		}
	}
	return true
}
