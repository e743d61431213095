// Copyright 2026 The sifchain-assessment Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for sorting
// independent partitions concurrently. A Pool is created once and shared by
// many sort calls, so no goroutines are spawned per call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, batch := range batches {
//	    sorted := parallel.Sort(pool, batch)
//	    ...
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Pool is a fixed set of worker goroutines fed through a shared queue.
// Workers are spawned by New and run until Close.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is one unit of work; done is signalled when fn returns.
type task struct {
	fn   func()
	done *sync.WaitGroup
}

// counter is a work-stealing cursor on its own cache line, so workers
// claiming indices do not contend with neighbouring memory.
type counter struct {
	_    cpu.CacheLinePad
	next atomic.Int64
	_    cpu.CacheLinePad
}

// claim returns the next unclaimed index.
func (c *counter) claim() int {
	return int(c.next.Add(1)) - 1
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Closed reports whether Close has been called. Closed pools still accept
// work but run it on the calling goroutine.
func (p *Pool) Closed() bool {
	return p.closed.Load()
}

// Close stops the workers after queued work completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous ranges and
// calls fn once per range. Blocks until all calls return.
//
// fn must not submit work to the same pool.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.Closed() {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		p.workC <- task{
			fn:   func() { fn(start, end) },
			done: &wg,
		}
	}
	wg.Wait()
}

// ParallelForAtomic calls fn for each index in [0, n). Workers claim
// indices one at a time, which balances load when the cost per index
// varies widely, as it does for quicksort segments of different sizes.
// Blocks until all calls return.
//
// fn must not submit work to the same pool.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.Closed() {
		for i := range n {
			fn(i)
		}
		return
	}

	var c counter
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- task{
			fn: func() {
				for i := c.claim(); i < n; i = c.claim() {
					fn(i)
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}
