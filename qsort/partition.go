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

// order decides which partition an element joins.
type order[E any, K Ordered] struct {
	key func(E) K

	// stable routes keys equal to the pivot's into the greater partition.
	stable bool
}

func naturalOrder[T Ordered]() order[T, T] {
	return order[T, T]{key: identity[T]}
}

func keyOrder[E any, K Ordered](key func(E) K) order[E, K] {
	return order[E, K]{key: key, stable: true}
}

// greater reports whether e belongs after a pivot whose key is pk.
func (o order[E, K]) greater(e E, pk K) bool {
	k := o.key(e)
	if o.stable {
		return k >= pk
	}
	return k > pk
}

// partition splits a non-empty segment around its first element.
// Both partitions keep the relative order the elements had in s.
func (o order[E, K]) partition(s []E) (lesser []E, pivot E, greater []E) {
	pivot = s[0]
	pk := o.key(pivot)
	for _, e := range s[1:] {
		if o.greater(e, pk) {
			greater = append(greater, e)
		} else {
			lesser = append(lesser, e)
		}
	}
	return lesser, pivot, greater
}

// Partition performs one partition step of Sort on s.
// It returns the first element of s as the pivot, the remaining elements
// greater than the pivot, and all other remaining elements, each in input
// order. ok is false if s is empty.
func Partition[T Ordered](s []T) (lesser []T, pivot T, greater []T, ok bool) {
	if len(s) == 0 {
		return nil, pivot, nil, false
	}
	lesser, pivot, greater = naturalOrder[T]().partition(s)
	return lesser, pivot, greater, true
}

// PartitionByKey performs one partition step of SortByKey on s.
// Elements whose key is greater than or equal to the pivot's key go to the
// greater partition. ok is false if s is empty.
func PartitionByKey[E any, K Ordered](s []E, key func(E) K) (lesser []E, pivot E, greater []E, ok bool) {
	if len(s) == 0 {
		return nil, pivot, nil, false
	}
	lesser, pivot, greater = keyOrder(key).partition(s)
	return lesser, pivot, greater, true
}
