// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package printsink

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ajroetker/go-hwyprint/hwy"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	r := hwy.NewRun(hwy.WithSink(c.Sink()))

	hwy.Print(r, int8(1), hwy.Str("a"))
	hwy.Print(r, int8(2), hwy.Str("b"))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"1 a\n", "2 b\n"}, c.Messages())

	var out bytes.Buffer
	require.NoError(t, c.Replay(&out))
	assert.Equal(t, "1 a\n2 b\n", out.String())

	c.Reset()
	assert.Zero(t, c.Len())
}

func TestCollectorCopiesMessages(t *testing.T) {
	c := NewCollector()
	buf := []byte("mutable\n")
	c.Sink()(nil, buf)
	copy(buf, "XXXXXXX")

	assert.Equal(t, []string{"mutable\n"}, c.Messages())
}

func TestCollectorConcurrent(t *testing.T) {
	c := NewCollector()
	r := hwy.NewRun(hwy.WithSink(c.Sink()))

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				hwy.Print(r, int32(w*100+i))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, c.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReplayError(t *testing.T) {
	c := NewCollector()
	c.Sink()(nil, []byte("x\n"))
	err := c.Replay(failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestZap(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	run := hwy.NewRun()
	r := hwy.NewRun(
		hwy.WithSink(Zap(zap.New(core), zapcore.InfoLevel)),
		hwy.WithUserContext(run),
	)

	hwy.Print(r, 42.0, hwy.Str("%s"))
	r.PrintValues(hwy.Str(strings.Repeat("y", hwy.MaxMessageSize)))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "4.200000e+01 %s", entries[0].Message)
	assert.Equal(t, run.ID().String(), entries[0].ContextMap()["run"])
	assert.NotContains(t, entries[0].ContextMap(), "truncated")
	assert.Len(t, entries[1].Message, hwy.MaxMessageLen)
	assert.Equal(t, true, entries[1].ContextMap()["truncated"])
}

func TestZapDisabledLevel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	sink := Zap(zap.New(core), zapcore.DebugLevel)
	sink(nil, []byte("quiet\n"))
	assert.Zero(t, logs.Len())
}
