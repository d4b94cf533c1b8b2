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
	"io"
	"sync"
)

// Sink receives every message a Run emits.
//
// userContext is the opaque value the Run was configured with. msg holds the
// visible text, newline included unless the message was truncated; in its
// backing array it is followed by a 0 terminator. msg is only valid for the
// duration of the call and must be copied if retained.
//
// When elements are evaluated in parallel a Sink is called concurrently and
// must be safe for that. Sinks cannot fail: nothing they return or do stops
// the pipeline.
type Sink func(userContext any, msg []byte)

// StderrSink is the default sink. It writes each message to the process's
// standard error with a single write, so concurrent messages never
// interleave.
func StderrSink(_ any, msg []byte) {
	stderrMu.Lock()
	defer stderrMu.Unlock()
	writeStderr(msg)
}

var stderrMu sync.Mutex

// WriterSink returns a Sink writing each message to w. Writes are
// serialized, which makes the sink safe for parallel pipelines even when w
// is not. Write errors are dropped.
func WriterSink(w io.Writer) Sink {
	var mu sync.Mutex
	return func(_ any, msg []byte) {
		mu.Lock()
		defer mu.Unlock()
		_, _ = w.Write(msg)
	}
}

// DiscardSink drops every message.
func DiscardSink(any, []byte) {}
