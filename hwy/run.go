// Copyright 2025 go-highway Authors
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


package hwy

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Run carries the print configuration of one pipeline run: where messages
// go and the opaque context handed to the sink. It is built once before the
// run starts and cannot be changed afterwards; every element of the run
// dispatches through the same Run, so all its methods are safe for
// concurrent use.
//
// A nil *Run is valid and prints to standard error.
type Run struct {
	id          uuid.UUID
	sink        Sink
	userContext any
	logger      *zap.Logger
	emitted     atomic.Int64
}

// RunOption configures a Run at construction.
type RunOption func(*Run)

// WithSink replaces the default standard error sink. A nil sink keeps the
// default.
func WithSink(s Sink) RunOption {
	return func(r *Run) {
		if s != nil {
			r.sink = s
		}
	}
}

// WithUserContext sets the opaque value passed to the sink with every
// message.
func WithUserContext(ctx any) RunOption {
	return func(r *Run) {
		r.userContext = ctx
	}
}

// WithLogger sets the logger used to report misbehaving sinks.
func WithLogger(l *zap.Logger) RunOption {
	return func(r *Run) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRun returns a Run with a fresh ID, the standard error sink and a no-op
// logger, adjusted by opts.
func NewRun(opts ...RunOption) *Run {
	r := &Run{
		id:     uuid.New(),
		sink:   StderrSink,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ID identifies the run in logs.
func (r *Run) ID() uuid.UUID {
	if r == nil {
		return uuid.Nil
	}
	return r.id
}

// UserContext returns the value passed to the sink with every message.
func (r *Run) UserContext() any {
	if r == nil {
		return nil
	}
	return r.userContext
}

// Emitted returns how many messages the run has dispatched so far.
func (r *Run) Emitted() int64 {
	if r == nil {
		return 0
	}
	return r.emitted.Load()
}

// String implements fmt.Stringer for log fields.
func (r *Run) String() string {
	return r.ID().String()
}

// emit assembles one message from first and rest and hands it to the sink.
// The buffer goes back to the pool once the sink returns, including when it
// panics.
func (r *Run) emit(first Value, rest []Value) {
	m := acquireMessage()
	defer releaseMessage(m)
	m.assemble(first, rest)
	r.dispatch(m.bytes())
}

// dispatch calls the sink exactly once. A panicking sink is logged and
// otherwise ignored so it cannot abort the pipeline.
func (r *Run) dispatch(msg []byte) {
	if r == nil {
		StderrSink(nil, msg)
		return
	}
	r.emitted.Add(1)
	defer func() {
		if p := recover(); p != nil {
			r.logger.Warn("print sink panicked",
				zap.Stringer("run", r.id),
				zap.String("panic", fmt.Sprint(p)),
				zap.Int("message_len", len(msg)))
		}
	}()
	r.sink(r.userContext, msg)
}
