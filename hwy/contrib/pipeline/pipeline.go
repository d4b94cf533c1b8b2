// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package pipeline realizes element-wise numeric funcs over one- and
// two-dimensional domains, with print support wired through hwy.Run.
//
// A Func is defined by a function computing the value of one element. The
// definition receives the run's *hwy.Run so it can instrument itself with
// hwy.Print or hwy.PrintWhen:
//
//	f := pipeline.New("f", func(r *hwy.Run, x int) int32 {
//	    v := int32(x)
//	    return hwy.Print(r, v*v, hwy.Str("the answer is"), hwy.Float32(42))
//	})
//	f.SetCustomPrint(collector.Sink())
//	out, err := f.Realize(10)
//
// Print configuration is captured when Realize starts; changing it while a
// realization is in progress does not affect that realization.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ajroetker/go-hwyprint/hwy"
	"github.com/ajroetker/go-hwyprint/hwy/contrib/image"
	"github.com/ajroetker/go-hwyprint/hwy/contrib/workerpool"
)

var (
	// ErrUndefined is returned when realizing a func over a dimensionality
	// it has no definition for.
	ErrUndefined = errors.New("pipeline: func not defined for this dimensionality")

	// ErrDimensions is returned for negative extents.
	ErrDimensions = errors.New("pipeline: invalid extent")
)

// Schedule selects how elements are evaluated.
type Schedule int

const (
	// Sequential evaluates elements in order on the calling goroutine.
	// Messages arrive at the sink in element order.
	Sequential Schedule = iota

	// Parallel evaluates elements on a worker pool. Message order across
	// elements is unspecified.
	Parallel
)

func (s Schedule) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// SequentialEnv reports whether HWY_PRINT_SEQUENTIAL is set, which forces
// every func onto the sequential schedule. Useful for getting messages in
// element order while debugging.
func SequentialEnv() bool {
	val := os.Getenv("HWY_PRINT_SEQUENTIAL")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Func is a pipeline stage over a 1-D or 2-D domain.
type Func[T hwy.Lanes] struct {
	name string
	def1 func(r *hwy.Run, x int) T
	def2 func(r *hwy.Run, x, y int) T

	mu          sync.Mutex
	sink        hwy.Sink
	userContext any
	logger      *zap.Logger
	pool        *workerpool.Pool
}

// New returns a one-dimensional func whose element x is def(r, x).
func New[T hwy.Lanes](name string, def func(r *hwy.Run, x int) T) *Func[T] {
	return &Func[T]{name: name, def1: def, logger: zap.NewNop()}
}

// New2D returns a two-dimensional func whose element (x, y) is
// def(r, x, y).
func New2D[T hwy.Lanes](name string, def func(r *hwy.Run, x, y int) T) *Func[T] {
	return &Func[T]{name: name, def2: def, logger: zap.NewNop()}
}

// Name returns the name given at construction.
func (f *Func[T]) Name() string {
	return f.name
}

// SetCustomPrint routes messages from subsequent realizations to s instead
// of standard error. A nil sink restores the default.
func (f *Func[T]) SetCustomPrint(s hwy.Sink) *Func[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sink = s
	return f
}

// SetUserContext sets the opaque value handed to the sink with every
// message.
func (f *Func[T]) SetUserContext(ctx any) *Func[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userContext = ctx
	return f
}

// SetLogger sets the logger for realization events and sink failures.
func (f *Func[T]) SetLogger(l *zap.Logger) *Func[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	f.logger = l
	return f
}

// Parallel evaluates subsequent realizations on pool. A nil pool restores
// the sequential schedule.
func (f *Func[T]) Parallel(pool *workerpool.Pool) *Func[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pool = pool
	return f
}

// realization is the configuration snapshot one Realize call runs with.
type realization struct {
	run      *hwy.Run
	pool     *workerpool.Pool
	schedule Schedule
	logger   *zap.Logger
}

func (f *Func[T]) begin(width, height int) realization {
	f.mu.Lock()
	defer f.mu.Unlock()

	rz := realization{
		run: hwy.NewRun(
			hwy.WithSink(f.sink),
			hwy.WithUserContext(f.userContext),
			hwy.WithLogger(f.logger),
		),
		pool:   f.pool,
		logger: f.logger,
	}
	if rz.pool != nil && !SequentialEnv() {
		rz.schedule = Parallel
	}
	rz.logger.Debug("realize",
		zap.String("func", f.name),
		zap.Stringer("run", rz.run.ID()),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Stringer("schedule", rz.schedule),
		zap.String("target", hwy.CurrentName()))
	return rz
}

func (f *Func[T]) end(rz realization, start time.Time) {
	rz.logger.Debug("realized",
		zap.String("func", f.name),
		zap.Stringer("run", rz.run.ID()),
		zap.Int64("messages", rz.run.Emitted()),
		zap.Duration("elapsed", time.Since(start)))
}

// Realize evaluates a one-dimensional func over x in [0, n) and returns the
// results as a 1-row image.
func (f *Func[T]) Realize(n int) (*image.Image[T], error) {
	if f.def1 == nil {
		return nil, fmt.Errorf("%w: %q is not one-dimensional", ErrUndefined, f.name)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrDimensions, n)
	}

	start := time.Now()
	rz := f.begin(n, 1)
	out := image.NewImage[T](n, 1)
	row := out.RowSlice(0)
	eval := func(lo, hi int) {
		for x := lo; x < hi; x++ {
			row[x] = f.def1(rz.run, x)
		}
	}

	if rz.schedule == Parallel {
		rz.pool.ParallelForAtomicBatched(n, hwy.MaxLanes[T](), eval)
	} else {
		eval(0, n)
	}
	f.end(rz, start)
	return out, nil
}

// Realize2D evaluates a two-dimensional func over [0, width) x [0, height),
// x innermost. The parallel schedule splits rows across workers.
func (f *Func[T]) Realize2D(width, height int) (*image.Image[T], error) {
	if f.def2 == nil {
		return nil, fmt.Errorf("%w: %q is not two-dimensional", ErrUndefined, f.name)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}

	start := time.Now()
	rz := f.begin(width, height)
	out := image.NewImage[T](width, height)
	eval := func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := out.RowSlice(y)
			for x := range row {
				row[x] = f.def2(rz.run, x, y)
			}
		}
	}

	if rz.schedule == Parallel {
		rz.pool.ParallelFor(out.Height(), eval)
	} else {
		eval(0, out.Height())
	}
	f.end(rz, start)
	return out, nil
}
