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

// Stats describes the partition tree a sort builds for an input.
type Stats struct {
	// Depth is the number of nested partition steps on the longest path.
	// It is 0 for inputs of length <= 1 and len-1 for sorted input.
	Depth int

	// Partitions is the number of partition steps, one per pivot.
	Partitions int

	// Comparisons is the number of key comparisons made.
	Comparisons int

	// Leaves is the number of segments of length <= 1 reached, including
	// empty ones. It is always Partitions+1.
	Leaves int
}

// Profile returns the shape of the partition tree Sort builds for s.
func Profile[T Ordered](s []T) Stats {
	return naturalOrder[T]().profile(s)
}

// ProfileByKey returns the shape of the partition tree SortByKey builds
// for s.
func ProfileByKey[E any, K Ordered](s []E, key func(E) K) Stats {
	return keyOrder(key).profile(s)
}

func (o order[E, K]) profile(s []E) Stats {
	type node struct {
		elems []E
		depth int
	}

	var st Stats
	stack := []node{{elems: s}}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(n.elems) <= 1 {
			st.Leaves++
			continue
		}
		st.Partitions++
		st.Comparisons += len(n.elems) - 1
		st.Depth = max(st.Depth, n.depth+1)

		lesser, _, greater := o.partition(n.elems)
		stack = append(stack, node{greater, n.depth + 1}, node{lesser, n.depth + 1})
	}
	return st
}
