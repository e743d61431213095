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

package qsort_test

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pgoos/sifchain-assessment/qsort"
	"github.com/pgoos/sifchain-assessment/qsort/contrib/verify"
)

type person = qsort.Record[string]

func TestSortExamples(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"mixed", []int{5, 4, 3, 10, 2, 1}, []int{1, 2, 3, 4, 5, 10}},
		{"empty", []int{}, []int{}},
		{"all equal", []int{3, 3, 3}, []int{3, 3, 3}},
		{"negatives", []int{-22, -11, 1, -50, 4}, []int{-50, -22, -11, 1, 4}},
		{"pair", []int{5, 4}, []int{4, 5}},
		{"already sorted", []int{1, 2, 3, 4, 5, 6}, []int{1, 2, 3, 4, 5, 6}},
		{"single", []int{50}, []int{50}},
		{"duplicates", []int{5, 8, 5, 12, 5, 19, 5, 2, 3, 4, 6, 5}, []int{2, 3, 4, 5, 5, 5, 5, 5, 6, 8, 12, 19}},
		{"partially sorted", []int{1, 2, 3, 4, 5, 6, 20, 11, 14, 9}, []int{1, 2, 3, 4, 5, 6, 9, 11, 14, 20}},
		{"reverse sorted", []int{10, 9, 7, 5, 3, 2, 1}, []int{1, 2, 3, 5, 7, 9, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := qsort.Sort(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Sort(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
			if diff := cmp.Diff(tt.want, qsort.SortIterative(tt.in)); diff != "" {
				t.Errorf("SortIterative(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

// TestSortNil checks that nil-ness survives the sort.
func TestSortNil(t *testing.T) {
	if got := qsort.Sort[int](nil); got != nil {
		t.Errorf("Sort(nil) = %#v, want nil", got)
	}
	if got := qsort.Sort([]int{}); got == nil || len(got) != 0 {
		t.Errorf("Sort([]int{}) = %#v, want empty non-nil slice", got)
	}
	if got := qsort.SortRecords[string](nil); got != nil {
		t.Errorf("SortRecords(nil) = %#v, want nil", got)
	}
}

// TestSortDoesNotModifyInput checks that inputs of every length are left
// alone and never aliased by the result.
func TestSortDoesNotModifyInput(t *testing.T) {
	for _, in := range [][]int{{1}, {2, 1}, {9, 3, 7, 3, 1}} {
		orig := slices.Clone(in)
		got := qsort.Sort(in)
		if diff := cmp.Diff(orig, in); diff != "" {
			t.Errorf("Sort modified its input (-want +got):\n%s", diff)
		}
		got[0] = -1
		if in[0] == -1 {
			t.Errorf("Sort(%v) result aliases its input", orig)
		}
	}
}

func TestSortFloats(t *testing.T) {
	tests := [][]float64{
		{1.23, 4.67, 2.11, 8.59, 0.001, 2.00001, 10.333333333},
		{1.23, 60, 600, 4.67, 10, 9, 2.11, 8.59, 0.001, 2.00001, 10.333333333, 11, 9},
	}
	for _, in := range tests {
		got := qsort.Sort(in)
		if err := verify.Sort(in, got); err != nil {
			t.Errorf("Sort(%v) = %v: %v", in, got, err)
		}
	}
}

func TestSortStrings(t *testing.T) {
	in := []string{"dog", "cat", "", "cattle", "Dog"}
	want := []string{"", "Dog", "cat", "cattle", "dog"}
	if diff := cmp.Diff(want, qsort.Sort(in)); diff != "" {
		t.Errorf("Sort(%q) mismatch (-want +got):\n%s", in, diff)
	}
}

// TestSortSignedZero observes the ties-to-lesser policy: -0 and +0 compare
// equal, so each one following the pivot lands before it.
func TestSortSignedZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	got := qsort.Sort([]float64{0, negZero, 1})

	if len(got) != 3 || !math.Signbit(got[0]) || math.Signbit(got[1]) || got[2] != 1 {
		t.Errorf("Sort([0 -0 1]) = %v (signbits %v %v), want [-0 0 1]",
			got, math.Signbit(got[0]), math.Signbit(got[1]))
	}
}

func TestSortRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(12345, 67890))

	tests := []struct {
		name      string
		n         int
		low, high int64
	}{
		{"natural with zeros", 20, 0, 100},
		{"big array", 10000, 1, 10000},
		{"big numbers", 50, 1_000_000_000_000_000, 9_000_000_000_000_000},
		{"narrow range", 1000, -3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := verify.RandomInts(rng, tt.n, tt.low, tt.high)
			got := qsort.Sort(in)
			if err := verify.Sort(in, got); err != nil {
				t.Fatalf("Sort(n=%d): %v", tt.n, err)
			}
			if diff := cmp.Diff(got, qsort.SortIterative(in)); diff != "" {
				t.Errorf("SortIterative differs from Sort (-sort +iterative):\n%s", diff)
			}
		})
	}
}

func TestSortProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for _, n := range []int{0, 1, 2, 3, 7, 8, 31, 32, 100, 257} {
		in := verify.RandomInts(rng, n, -20, 20)
		got := qsort.Sort(in)

		if len(got) != len(in) {
			t.Errorf("len(Sort(n=%d)) = %d", n, len(got))
		}
		if err := verify.Permutation(in, got); err != nil {
			t.Errorf("Sort(n=%d): %v", n, err)
		}
		if !qsort.IsSorted(got) {
			t.Errorf("Sort(n=%d) produced unsorted result: %v", n, got)
		}
		if diff := cmp.Diff(got, qsort.Sort(got)); diff != "" {
			t.Errorf("Sort(Sort(n=%d)) not idempotent (-once +twice):\n%s", n, diff)
		}
	}
}

// TestSortDeepInput sorts input whose partition tree is as deep as the
// input is long.
func TestSortDeepInput(t *testing.T) {
	n := 5000
	in := make([]int, n)
	for i := range in {
		in[i] = n - i
	}

	got := qsort.SortIterative(in)
	if err := verify.Sort(in, got); err != nil {
		t.Fatalf("SortIterative(reverse, n=%d): %v", n, err)
	}
	if diff := cmp.Diff(got, qsort.Sort(in)); diff != "" {
		t.Errorf("Sort differs from SortIterative on reverse input (-iterative +sort):\n%s", diff)
	}
}

func TestSortByKeyExample(t *testing.T) {
	in := []person{{ID: 5, Value: "A"}, {ID: 8, Value: "B"}, {ID: 5, Value: "C"}}
	want := []person{{ID: 5, Value: "A"}, {ID: 5, Value: "C"}, {ID: 8, Value: "B"}}

	if diff := cmp.Diff(want, qsort.SortRecords(in)); diff != "" {
		t.Errorf("SortRecords(%v) mismatch (-want +got):\n%s", in, diff)
	}
	if diff := cmp.Diff(want, qsort.SortByKeyIterative(in, person.Key)); diff != "" {
		t.Errorf("SortByKeyIterative(%v) mismatch (-want +got):\n%s", in, diff)
	}
}

func TestSortByKeyStable(t *testing.T) {
	in := []person{
		{ID: 5, Value: "paul"},
		{ID: 8, Value: "eva"},
		{ID: 2, Value: "john"},
		{ID: 10, Value: "nick"},
		{ID: 5, Value: "kevin"},
		{ID: 5, Value: "mike"},
		{ID: 18, Value: "peter"},
		{ID: 1, Value: "adam"},
	}
	got := qsort.SortRecords(in)

	if err := verify.SortByKey(in, got, person.Key); err != nil {
		t.Fatalf("SortRecords: %v", err)
	}

	name := func(p person) string { return p.Value }
	idx := verify.Indexes(got, name, "paul", "kevin", "mike")
	if !slices.IsSorted(idx) {
		t.Errorf("key-5 records at %v, want paul, kevin, mike in that order", idx)
	}
	if diff := cmp.Diff([]int{2, 3, 4}, idx); diff != "" {
		t.Errorf("key-5 positions mismatch (-want +got):\n%s", diff)
	}
}

func TestSortByKeyRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	for _, n := range []int{0, 1, 2, 10, 100, 1000, 5000} {
		in := verify.RandomRecords(rng, n, max(n/10, 1))
		got := qsort.SortRecords(in)
		if err := verify.SortByKey(in, got, qsort.Record[int].Key); err != nil {
			t.Errorf("SortRecords(n=%d): %v", n, err)
		}
		if diff := cmp.Diff(got, qsort.SortByKeyIterative(in, qsort.Record[int].Key)); diff != "" {
			t.Errorf("SortByKeyIterative(n=%d) differs from SortRecords (-recursive +iterative):\n%s", n, diff)
		}
	}
}

// TestSortByKeyDerivedKey sorts by a key that is not a stored field.
func TestSortByKeyDerivedKey(t *testing.T) {
	words := []string{"pear", "fig", "banana", "kiwi", "apple", "date"}
	got := qsort.SortByKey(words, func(s string) int { return len(s) })
	want := []string{"fig", "pear", "kiwi", "date", "apple", "banana"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortByKey(len) mismatch (-want +got):\n%s", diff)
	}
}

func TestPartition(t *testing.T) {
	lesser, pivot, greater, ok := qsort.Partition([]int{5, 8, 5, 12, 5, 2})
	if !ok {
		t.Fatal("Partition(non-empty) ok = false")
	}
	if pivot != 5 {
		t.Errorf("pivot = %d, want 5", pivot)
	}
	if diff := cmp.Diff([]int{5, 5, 2}, lesser); diff != "" {
		t.Errorf("lesser mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{8, 12}, greater); diff != "" {
		t.Errorf("greater mismatch (-want +got):\n%s", diff)
	}

	if _, _, _, ok := qsort.Partition([]int{}); ok {
		t.Error("Partition(empty) ok = true")
	}
}

func TestPartitionByKey(t *testing.T) {
	in := []person{{ID: 5, Value: "A"}, {ID: 8, Value: "B"}, {ID: 5, Value: "C"}, {ID: 1, Value: "D"}}
	lesser, pivot, greater, ok := qsort.PartitionByKey(in, person.Key)
	if !ok {
		t.Fatal("PartitionByKey(non-empty) ok = false")
	}
	if pivot.Value != "A" {
		t.Errorf("pivot = %v, want A", pivot)
	}
	if diff := cmp.Diff([]person{{ID: 1, Value: "D"}}, lesser); diff != "" {
		t.Errorf("lesser mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]person{{ID: 8, Value: "B"}, {ID: 5, Value: "C"}}, greater); diff != "" {
		t.Errorf("greater mismatch (-want +got):\n%s", diff)
	}
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		data []int
		want bool
	}{
		{nil, true},
		{[]int{1}, true},
		{[]int{1, 1, 2}, true},
		{[]int{2, 1}, false},
		{[]int{1, 3, 2, 4}, false},
	}
	for _, tt := range tests {
		if got := qsort.IsSorted(tt.data); got != tt.want {
			t.Errorf("IsSorted(%v) = %v, want %v", tt.data, got, tt.want)
		}
	}

	recs := []person{{ID: 1}, {ID: 3}, {ID: 3}}
	if !qsort.IsSortedByKey(recs, person.Key) {
		t.Errorf("IsSortedByKey(%v) = false, want true", recs)
	}
}
