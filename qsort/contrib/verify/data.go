package verify

import (
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/pgoos/sifchain-assessment/qsort"
)

// Integers is a constraint for the integer types RandomInts can generate.
type Integers interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// RandomInts returns n integers drawn uniformly from [low, high).
// It panics if high <= low.
func RandomInts[T Integers](rng *rand.Rand, n int, low, high T) []T {
	data := make([]T, n)
	span := int64(high) - int64(low)
	for i := range data {
		data[i] = low + T(rng.Int64N(span))
	}
	return data
}

// RandomFloats returns n floats drawn uniformly from [low, high).
func RandomFloats(rng *rand.Rand, n int, low, high float64) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = low + rng.Float64()*(high-low)
	}
	return data
}

// RandomRecords returns n records with IDs drawn from [0, maxID). Each
// record's Value is its input position, which makes every record distinct
// and lets stability checks tell equal-ID records apart.
func RandomRecords(rng *rand.Rand, n, maxID int) []qsort.Record[int] {
	ids := RandomInts(rng, n, 0, maxID)
	return lo.Map(ids, func(id, i int) qsort.Record[int] {
		return qsort.Record[int]{ID: id, Value: i}
	})
}

// Indexes returns the position in s of the first element matching each
// target, or -1 where none does.
func Indexes[E any, N comparable](s []E, name func(E) N, targets ...N) []int {
	return lo.Map(targets, func(target N, _ int) int {
		_, idx, _ := lo.FindIndexOf(s, func(e E) bool {
			return name(e) == target
		})
		return idx
	})
}
