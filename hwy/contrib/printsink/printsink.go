// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package printsink provides hwy.Sink implementations beyond the standard
// error default: an in-memory Collector and a zap adapter.
package printsink

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-hwyprint/hwy"
)

// Collector records every message it receives, in arrival order. It is safe
// for parallel pipelines.
type Collector struct {
	mu   sync.Mutex
	msgs []string
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Sink returns the hwy.Sink feeding c.
func (c *Collector) Sink() hwy.Sink {
	return c.record
}

func (c *Collector) record(_ any, msg []byte) {
	s := string(msg)
	c.mu.Lock()
	c.msgs = append(c.msgs, s)
	c.mu.Unlock()
}

// Messages returns a copy of the recorded messages.
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.msgs...)
}

// Len returns the number of recorded messages.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.msgs)
}

// Reset drops all recorded messages.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.msgs = nil
	c.mu.Unlock()
}

// Replay writes the recorded messages to w in arrival order.
func (c *Collector) Replay(w io.Writer) error {
	for _, m := range c.Messages() {
		if _, err := io.WriteString(w, m); err != nil {
			return fmt.Errorf("replaying messages: %w", err)
		}
	}
	return nil
}

// Zap returns a sink that logs each message as one entry at level. The
// trailing newline is dropped; a user context implementing fmt.Stringer is
// attached as the "run" field and cut messages get truncated=true.
func Zap(logger *zap.Logger, level zapcore.Level) hwy.Sink {
	return func(userContext any, msg []byte) {
		if !logger.Core().Enabled(level) {
			return
		}
		ce := logger.Check(level, string(bytes.TrimSuffix(msg, []byte{'\n'})))
		if ce == nil {
			return
		}
		fields := make([]zap.Field, 0, 2)
		if s, ok := userContext.(fmt.Stringer); ok {
			fields = append(fields, zap.Stringer("run", s))
		}
		if hwy.Truncated(msg) {
			fields = append(fields, zap.Bool("truncated", true))
		}
		ce.Write(fields...)
	}
}
