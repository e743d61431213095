// Package qsort provides an out-of-place, first-element-pivot quicksort.
//
// Two variants share a single partition-and-recurse skeleton:
//   - Sort orders naturally ordered values (integers, floats, strings).
//   - SortByKey orders arbitrary elements by an extracted key and keeps
//     elements with equal keys in their input order.
//
// # Algorithm
//
// Every step takes the first element of the current segment as the pivot
// and scans the remaining elements once, left to right, appending each to
// either the lesser or the greater partition. Both partitions are sorted
// the same way and the result is
//
//	sort(lesser) ++ [pivot] ++ sort(greater)
//
// Sort routes elements equal to the pivot into the lesser partition.
// SortByKey routes equal keys into the greater partition: the pivot is the
// earliest element of its segment, so placing its equal-key successors
// after it is what keeps the sort stable.
//
// # Example Usage
//
//	import "github.com/pgoos/sifchain-assessment/qsort"
//
//	sorted := qsort.Sort([]int{5, 4, 3, 10, 2, 1}) // [1 2 3 4 5 10]
//
//	people := []qsort.Record[string]{{ID: 5, Value: "A"}, {ID: 8, Value: "B"}, {ID: 5, Value: "C"}}
//	byID := qsort.SortRecords(people) // A(5) C(5) B(8)
//
// # Resources
//
// Inputs are never modified; each call allocates its result and the
// partitions of every level. Sort and SortByKey recurse once per level of
// the partition tree, which is as deep as the input is long for sorted or
// reverse-sorted data. SortIterative and SortByKeyIterative produce the same
// output from an explicit work-list and do not grow the goroutine stack.
//
// See package qsort/contrib/parallel for sorting partitions concurrently on
// a worker pool.
package qsort
