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
	"math"
	"unsafe"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindPointer
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindString:  "string",
	KindPointer: "pointer",
}

// String returns the Go type name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool {
	return k >= KindInt8 && k <= KindInt64
}

// IsUnsigned reports whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool {
	return k >= KindUint8 && k <= KindUint64
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// Value is one print argument. It is a closed tagged union: numeric
// payloads live in bits (sign-extended for signed kinds, IEEE-754 bits for
// floats), string literals in str. The zero Value is KindInvalid.
//
// Values are immutable and cheap to copy.
type Value struct {
	str  string
	bits uint64
	kind Kind
}

func Int8(v int8) Value   { return Value{kind: KindInt8, bits: uint64(int64(v))} }
func Int16(v int16) Value { return Value{kind: KindInt16, bits: uint64(int64(v))} }
func Int32(v int32) Value { return Value{kind: KindInt32, bits: uint64(int64(v))} }
func Int64(v int64) Value { return Value{kind: KindInt64, bits: uint64(v)} }

func Uint8(v uint8) Value   { return Value{kind: KindUint8, bits: uint64(v)} }
func Uint16(v uint16) Value { return Value{kind: KindUint16, bits: uint64(v)} }
func Uint32(v uint32) Value { return Value{kind: KindUint32, bits: uint64(v)} }
func Uint64(v uint64) Value { return Value{kind: KindUint64, bits: v} }

// Float32 returns a Value rendered like C's %f.
func Float32(v float32) Value {
	return Value{kind: KindFloat32, bits: uint64(math.Float32bits(v))}
}

// Float64 returns a Value rendered like C's %e.
func Float64(v float64) Value {
	return Value{kind: KindFloat64, bits: math.Float64bits(v)}
}

// Str returns a string literal Value. The text is copied into the message
// byte for byte; sequences such as "%s" are not interpreted.
func Str(s string) Value {
	return Value{kind: KindString, str: s}
}

// Pointer returns a Value holding the address of p. The pointee is never
// read; only the address is printed.
func Pointer(p unsafe.Pointer) Value {
	return Value{kind: KindPointer, bits: uint64(uintptr(p))}
}

// Handle returns a pointer Value for an opaque handle such as one passed in
// from outside the pipeline.
func Handle(h uintptr) Value {
	return Value{kind: KindPointer, bits: uint64(h)}
}

// ValueOf wraps a pipeline scalar in the Value of the matching kind.
// Named types are classified by their underlying type.
func ValueOf[T Scalar](v T) Value {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8(int8(v))
	case int16:
		return Int16(int16(v))
	case int32:
		return Int32(int32(v))
	case int64:
		return Int64(int64(v))
	case uint8:
		return Uint8(uint8(v))
	case uint16:
		return Uint16(uint16(v))
	case uint32:
		return Uint32(uint32(v))
	case uint64:
		return Uint64(uint64(v))
	case float32:
		return Float32(float32(v))
	case float64:
		return Float64(float64(v))
	}
	return valueOfNamed(v)
}

// valueOfNamed handles named types (type Celsius float32 and the like), which
// a type switch on the dynamic type cannot match.
func valueOfNamed[T Scalar](v T) Value {
	size := unsafe.Sizeof(v)
	var one T = 1
	var half T = one / 2
	switch {
	case half != 0: // floating point
		if size == 4 {
			return Float32(float32(v))
		}
		return Float64(float64(v))
	case -one < 0: // signed
		switch size {
		case 1:
			return Int8(int8(v))
		case 2:
			return Int16(int16(v))
		case 4:
			return Int32(int32(v))
		}
		return Int64(int64(v))
	}
	switch size {
	case 1:
		return Uint8(uint8(v))
	case 2:
		return Uint16(uint16(v))
	case 4:
		return Uint32(uint32(v))
	}
	return Uint64(uint64(v))
}

// Kind returns the variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

// Int returns the payload of a signed integer Value, 0 for other kinds.
func (v Value) Int() int64 {
	if !v.kind.IsSigned() {
		return 0
	}
	return int64(v.bits)
}

// Uint returns the payload of an unsigned integer Value, 0 for other kinds.
func (v Value) Uint() uint64 {
	if !v.kind.IsUnsigned() {
		return 0
	}
	return v.bits
}

// Float returns the payload of a floating-point Value widened to float64,
// 0 for other kinds.
func (v Value) Float() float64 {
	switch v.kind {
	case KindFloat32:
		return float64(math.Float32frombits(uint32(v.bits)))
	case KindFloat64:
		return math.Float64frombits(v.bits)
	}
	return 0
}

// Addr returns the address held by a pointer Value, 0 for other kinds.
func (v Value) Addr() uintptr {
	if v.kind != KindPointer {
		return 0
	}
	return uintptr(v.bits)
}

// Text returns the literal held by a string Value, "" for other kinds.
func (v Value) Text() string {
	return v.str
}

// String returns the token v renders to in a message.
func (v Value) String() string {
	return Token(v)
}
