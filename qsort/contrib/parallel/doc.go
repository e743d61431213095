// Package parallel sorts with package qsort on a shared worker pool.
//
// The input is partitioned on the calling goroutine until there is enough
// independent work to keep every worker busy. The remaining segments are
// then sorted concurrently, each into its own window of the output. Pivots
// and partition order are exactly those of the sequential sort, so results
// are identical to qsort.Sort and qsort.SortByKey, including the relative
// order of equal keys.
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	sorted := parallel.Sort(pool, data)
package parallel
