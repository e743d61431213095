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

// Segment is a run of unsorted elements together with the index its sorted
// form starts at in the final output.
type Segment[E any] struct {
	Elems  []E
	Offset int
}

// SortIterative returns the same result as Sort without recursing.
func SortIterative[T Ordered](s []T) []T {
	return naturalOrder[T]().sortIterative(s)
}

// SortByKeyIterative returns the same result as SortByKey without
// recursing.
func SortByKeyIterative[E any, K Ordered](s []E, key func(E) K) []E {
	return keyOrder(key).sortIterative(s)
}

func (o order[E, K]) sortIterative(s []E) []E {
	if len(s) <= 1 {
		return slices.Clone(s)
	}
	out := make([]E, len(s))
	stack := []Segment[E]{{Elems: s}}
	for len(stack) > 0 {
		seg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = o.step(out, seg, stack)
	}
	return out
}

// step sorts seg one level into out. A segment of length <= 1 is copied to
// its final position; otherwise the pivot is written to its final position
// and both partitions are pushed onto stack, lesser on top.
func (o order[E, K]) step(out []E, seg Segment[E], stack []Segment[E]) []Segment[E] {
	if len(seg.Elems) <= 1 {
		copy(out[seg.Offset:], seg.Elems)
		return stack
	}
	lesser, pivot, greater := o.partition(seg.Elems)
	mid := seg.Offset + len(lesser)
	out[mid] = pivot
	return append(stack,
		Segment[E]{Elems: greater, Offset: mid + 1},
		Segment[E]{Elems: lesser, Offset: seg.Offset},
	)
}

// Split partitions s as Sort would until at least n segments are pending or
// every pending segment is shorter than minLen. Pivots are written to their
// final positions in out, which must have len(s) elements. The returned
// segments are disjoint; sorting each one with Sort and copying the result
// to out[seg.Offset:] completes the sort.
func Split[T Ordered](out, s []T, n, minLen int) []Segment[T] {
	return naturalOrder[T]().split(out, s, n, minLen)
}

// SplitByKey is Split for SortByKey.
func SplitByKey[E any, K Ordered](out, s []E, key func(E) K, n, minLen int) []Segment[E] {
	return keyOrder(key).split(out, s, n, minLen)
}

func (o order[E, K]) split(out, s []E, n, minLen int) []Segment[E] {
	if len(out) != len(s) {
		panic("qsort: Split output length mismatch")
	}
	var done []Segment[E]
	pending := []Segment[E]{{Elems: s}}
	for len(pending) > 0 && len(pending)+len(done) < n {
		seg := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		switch {
		case len(seg.Elems) == 0:
		case len(seg.Elems) < minLen || len(seg.Elems) == 1:
			done = append(done, seg)
		default:
			pending = o.step(out, seg, pending)
		}
	}
	for _, seg := range pending {
		if len(seg.Elems) > 0 {
			done = append(done, seg)
		}
	}
	return done
}
