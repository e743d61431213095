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

// Package verify checks sort results against the properties every correct
// sort must have, and against the standard library as an oracle.
//
// Each check returns nil on success or an error wrapping one of the
// sentinel errors below, describing the first violation found.
package verify

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/samber/lo"

	"github.com/pgoos/sifchain-assessment/qsort"
)

var (
	ErrLength         = errors.New("length mismatch")
	ErrNotSorted      = errors.New("not sorted")
	ErrNotPermutation = errors.New("not a permutation of the input")
	ErrNotStable      = errors.New("equal keys reordered")
	ErrMismatch       = errors.New("differs from reference sort")
)

// Sorted checks that s is in non-decreasing order.
func Sorted[T qsort.Ordered](s []T) error {
	return SortedByKey(s, func(v T) T { return v })
}

// SortedByKey checks that s is in non-decreasing order of key(e).
func SortedByKey[E any, K qsort.Ordered](s []E, key func(E) K) error {
	for i := 1; i < len(s); i++ {
		if key(s[i]) < key(s[i-1]) {
			return fmt.Errorf("%w: key %v at index %d follows %v", ErrNotSorted, key(s[i]), i, key(s[i-1]))
		}
	}
	return nil
}

// Permutation checks that out holds exactly the elements of in, with the
// same multiplicities.
func Permutation[T comparable](in, out []T) error {
	if len(in) != len(out) {
		return fmt.Errorf("%w: input has %d elements, output %d", ErrLength, len(in), len(out))
	}
	want, got := lo.CountValues(in), lo.CountValues(out)
	if maps.Equal(want, got) {
		return nil
	}
	for v, n := range want {
		if got[v] != n {
			return fmt.Errorf("%w: %v appears %d times in input, %d in output", ErrNotPermutation, v, n, got[v])
		}
	}
	for v, n := range got {
		if _, ok := want[v]; !ok {
			return fmt.Errorf("%w: %v appears %d times in output only", ErrNotPermutation, v, n)
		}
	}
	return ErrNotPermutation
}

// Stable checks that, for every key, the elements of out sharing that key
// appear in the same relative order as in in.
func Stable[E comparable, K qsort.Ordered](in, out []E, key func(E) K) error {
	want, got := lo.GroupBy(in, key), lo.GroupBy(out, key)
	for k, run := range want {
		if !slices.Equal(run, got[k]) {
			return fmt.Errorf("%w: key %v: input order %v, output order %v", ErrNotStable, k, run, got[k])
		}
	}
	return nil
}

// Sort checks every property of a natural-order sort of in: length,
// permutation, order, and agreement with slices.Sort.
func Sort[T qsort.Ordered](in, out []T) error {
	if err := Permutation(in, out); err != nil {
		return err
	}
	if err := Sorted(out); err != nil {
		return err
	}
	return MatchesReference(in, out)
}

// SortByKey checks every property of a stable keyed sort of in: length,
// permutation, order, stability, and agreement with slices.SortStableFunc.
func SortByKey[E comparable, K qsort.Ordered](in, out []E, key func(E) K) error {
	if err := Permutation(in, out); err != nil {
		return err
	}
	if err := SortedByKey(out, key); err != nil {
		return err
	}
	if err := Stable(in, out, key); err != nil {
		return err
	}
	return MatchesStableReference(in, out, key)
}

// MatchesReference compares out with the standard library's sort of in.
func MatchesReference[T qsort.Ordered](in, out []T) error {
	return mismatch(slices.Sorted(slices.Values(in)), out)
}

// MatchesStableReference compares out with the standard library's stable
// sort of in by key.
func MatchesStableReference[E comparable, K qsort.Ordered](in, out []E, key func(E) K) error {
	ref := slices.Clone(in)
	slices.SortStableFunc(ref, func(a, b E) int {
		return cmp.Compare(key(a), key(b))
	})
	return mismatch(ref, out)
}

func mismatch[E comparable](want, got []E) error {
	if len(want) != len(got) {
		return fmt.Errorf("%w: want %d elements, got %d", ErrLength, len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			return fmt.Errorf("%w: index %d is %v, want %v", ErrMismatch, i, got[i], want[i])
		}
	}
	return nil
}
