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

import "sync"

const (
	// MaxMessageSize is the capacity of a message buffer, terminator included.
	MaxMessageSize = 8192

	// MaxMessageLen is the longest message a sink can receive. Longer
	// renderings are cut at this length, dropping the trailing newline.
	MaxMessageLen = MaxMessageSize - 1
)

// message is the fixed-capacity buffer one print call assembles into.
// Writes past MaxMessageLen are dropped; buf[n] is kept at 0 so the visible
// bytes are always followed by a terminator.
type message struct {
	buf [MaxMessageSize]byte
	n   int
}

var messagePool = sync.Pool{
	New: func() any { return new(message) },
}

// acquireMessage returns an empty buffer owned by the caller until
// releaseMessage.
func acquireMessage() *message {
	return messagePool.Get().(*message)
}

// releaseMessage wipes the used prefix so no content survives into the next
// call, then returns m to the pool.
func releaseMessage(m *message) {
	clear(m.buf[:m.n])
	m.n = 0
	messagePool.Put(m)
}

func (m *message) full() bool {
	return m.n >= MaxMessageLen
}

func (m *message) write(p []byte) {
	m.n += copy(m.buf[m.n:MaxMessageLen], p)
}

func (m *message) writeString(s string) {
	m.n += copy(m.buf[m.n:MaxMessageLen], s)
}

func (m *message) writeByte(c byte) {
	if m.n < MaxMessageLen {
		m.buf[m.n] = c
		m.n++
	}
}

// writeValue appends the token for v. Strings take the verbatim copy path
// and never pass through a formatting routine.
func (m *message) writeValue(v Value) {
	if v.kind == KindString {
		m.writeString(v.str)
		return
	}
	var scratch [maxNumericToken]byte
	m.write(AppendToken(scratch[:0], v))
}

// assemble writes first and rest separated by single spaces and ends the
// message with a newline, truncating at MaxMessageLen.
func (m *message) assemble(first Value, rest []Value) {
	m.writeValue(first)
	for _, v := range rest {
		if m.full() {
			break
		}
		m.writeByte(' ')
		m.writeValue(v)
	}
	m.writeByte('\n')
	m.buf[m.n] = 0
}

// bytes returns the visible content with the terminator kept inside the
// capacity, so msg[:len(msg)+1] ends in 0.
func (m *message) bytes() []byte {
	return m.buf[:m.n:m.n+1]
}

// AssembleMessage appends to dst the message a print call with args would
// deliver: tokens joined by single spaces, a trailing newline, truncated to
// MaxMessageLen bytes. It returns dst unchanged when args is empty.
func AssembleMessage(dst []byte, args ...Value) []byte {
	if len(args) == 0 {
		return dst
	}
	m := acquireMessage()
	defer releaseMessage(m)
	m.assemble(args[0], args[1:])
	return append(dst, m.bytes()...)
}

// Truncated reports whether msg, as received by a Sink, was cut at
// MaxMessageLen. A message cut exactly after a newline inside a string
// argument is indistinguishable from a complete one and reports false.
func Truncated(msg []byte) bool {
	return len(msg) == MaxMessageLen && msg[len(msg)-1] != '\n'
}
