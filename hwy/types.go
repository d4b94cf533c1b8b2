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


// Package hwy provides the print primitive for data-parallel numeric
// pipelines.
//
// A pipeline element that wants to report intermediate values wraps its
// result in Print or PrintWhen. The call formats every argument into a single
// bounded, newline-terminated message, hands it to the sink configured on the
// Run, and returns its first argument untouched so the wrapped expression
// computes exactly what it did before:
//
//	run := hwy.NewRun(hwy.WithSink(hwy.WriterSink(os.Stdout)))
//	sq := hwy.Print(run, x*x, hwy.Str("the answer is"), hwy.Float32(42))
//
// Values are rendered the way C's printf renders them: integers in base 10,
// float32 as %f, float64 as %e, strings verbatim and pointers as 0x-prefixed
// hex. Messages are capped at MaxMessageLen bytes and silently truncated.
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types a pipeline element can compute.
type Lanes interface {
	Floats | Integers
}

// Scalar is the constraint for the first argument of Print and PrintWhen,
// the value handed back to the surrounding computation.
type Scalar interface {
	Lanes
}
