// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides the persistent worker pool pipelines use for
// parallel schedules. A Pool is created once and shared by every Func
// realized with it, so a run does not pay for goroutine spawning.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForAtomicBatched(n, hwy.MaxLanes[float32](), func(start, end int) {
//	    for x := start; x < end; x++ {
//	        out[x] = def(run, x)
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and live until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers, or GOMAXPROCS workers if
// numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes. Calling Close
// multiple times is safe; a closed pool runs everything on the caller's
// goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	return p.closed.Load()
}

// run hands fn to `workers` workers and blocks until all of them return.
func (p *Pool) run(workers int, fn func(worker int)) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		p.workC <- workItem{
			fn:      func() { fn(w) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. Blocks until all ranges are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers
	p.run(workers, func(w int) {
		start := w * chunkSize
		if start >= n {
			return
		}
		fn(start, min(start+chunkSize, n))
	})
}

// ParallelForAtomic calls fn(i) for each i in [0, n), with workers pulling
// indices from a shared counter. This balances load when the cost per index
// varies. Blocks until all indices are done.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	p.ParallelForAtomicBatched(n, 1, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// ParallelForAtomicBatched is ParallelForAtomic pulling batchSize indices at
// a time; fn receives [start, end). Batches are aligned to multiples of
// batchSize.
func (p *Pool) ParallelForAtomicBatched(n int, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	p.run(workers, func(int) {
		for {
			start := int(next.Add(1)-1) * batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	})
}
