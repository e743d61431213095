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

package parallel

import (
	"slices"
	"sync/atomic"

	"github.com/pgoos/sifchain-assessment/qsort"
	"github.com/pgoos/sifchain-assessment/qsort/contrib/workerpool"
)

// Sort returns the same result as qsort.Sort(s), sorting independent
// partitions on pool. A nil or closed pool sorts on the calling goroutine.
func Sort[T qsort.Ordered](pool *workerpool.Pool, s []T) []T {
	if !useParallel(pool, len(s)) {
		return qsort.SortIterative(s)
	}
	out := make([]T, len(s))
	segs := qsort.Split(out, s, splitTarget(pool), minParallelSegment)
	sortSegments(pool, out, segs, qsort.SortIterative[T])
	return out
}

// SortByKey returns the same result as qsort.SortByKey(s, key), sorting
// independent partitions on pool. key is called concurrently and must be
// safe for that. A nil or closed pool sorts on the calling goroutine.
func SortByKey[E any, K qsort.Ordered](pool *workerpool.Pool, s []E, key func(E) K) []E {
	if !useParallel(pool, len(s)) {
		return qsort.SortByKeyIterative(s, key)
	}
	out := make([]E, len(s))
	segs := qsort.SplitByKey(out, s, key, splitTarget(pool), minParallelSegment)
	sortSegments(pool, out, segs, func(seg []E) []E {
		return qsort.SortByKeyIterative(seg, key)
	})
	return out
}

// SortRecords returns the same result as qsort.SortRecords(s).
func SortRecords[V any](pool *workerpool.Pool, s []qsort.Record[V]) []qsort.Record[V] {
	return SortByKey(pool, s, qsort.Record[V].Key)
}

// IsSorted reports whether s is in non-decreasing order, checking chunks
// of s on pool.
func IsSorted[T qsort.Ordered](pool *workerpool.Pool, s []T) bool {
	if pool == nil || len(s) < pool.NumWorkers()*minCheckChunk {
		return qsort.IsSorted(s)
	}

	var unsorted atomic.Bool
	pool.ParallelFor(len(s), func(start, end int) {
		// Each chunk also checks the pair straddling its left edge.
		if start > 0 {
			start--
		}
		if !qsort.IsSorted(s[start:end]) {
			unsorted.Store(true)
		}
	})
	return !unsorted.Load()
}

func useParallel(pool *workerpool.Pool, n int) bool {
	return pool != nil && !pool.Closed() && pool.NumWorkers() > 1 && n >= minParallelSegment
}

func splitTarget(pool *workerpool.Pool) int {
	return pool.NumWorkers() * segmentsPerWorker
}

// sortSegments sorts every segment into its window of out. Windows are
// disjoint, so workers never write the same index.
func sortSegments[E any](pool *workerpool.Pool, out []E, segs []qsort.Segment[E], sortFn func([]E) []E) {
	// Largest first, so the long tail is not left to one worker.
	slices.SortFunc(segs, func(a, b qsort.Segment[E]) int {
		return len(b.Elems) - len(a.Elems)
	})
	pool.ParallelForAtomic(len(segs), func(i int) {
		seg := segs[i]
		copy(out[seg.Offset:], sortFn(seg.Elems))
	})
}
