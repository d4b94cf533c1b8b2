// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * i
		}
	})

	for i := range n {
		if results[i] != i*i {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*i)
		}
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	var visits [100]atomic.Int32
	pool.ParallelForAtomic(n, func(i int) {
		visits[i].Add(1)
	})

	for i := range n {
		if got := visits[i].Load(); got != 1 {
			t.Errorf("index %d visited %d times, want 1", i, got)
		}
	}
}

func TestParallelForAtomicBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 103
	batch := 8
	var mu sync.Mutex
	covered := make([]int, n)
	pool.ParallelForAtomicBatched(n, batch, func(start, end int) {
		if start%batch != 0 {
			t.Errorf("batch start %d not aligned to %d", start, batch)
		}
		mu.Lock()
		defer mu.Unlock()
		for i := start; i < end; i++ {
			covered[i]++
		}
	})

	for i, c := range covered {
		if c != 1 {
			t.Errorf("index %d covered %d times, want 1", i, c)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	n := 3
	var count atomic.Int32
	pool.ParallelFor(n, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZero(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) { called = true })
	pool.ParallelForAtomicBatched(-1, 4, func(start, end int) { called = true })
	if called {
		t.Error("fn called for empty range")
	}
}

func TestClosedPoolRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	if !pool.Closed() {
		t.Fatal("Closed() = false after Close")
	}

	var calls int
	pool.ParallelFor(50, func(start, end int) {
		calls++
		if start != 0 || end != 50 {
			t.Errorf("got range [%d, %d), want [0, 50)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestPoolReuse(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for iter := range 100 {
		var sum atomic.Int64
		pool.ParallelFor(1000, func(start, end int) {
			var local int64
			for i := start; i < end; i++ {
				local += int64(i)
			}
			sum.Add(local)
		})
		if sum.Load() != 999*1000/2 {
			t.Fatalf("iteration %d: sum = %d, want %d", iter, sum.Load(), 999*1000/2)
		}
	}
}
