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
	"strconv"
)

// maxNumericToken bounds the longest numeric token: -FLT_MAX as %f is 47
// bytes, every other kind is shorter.
const maxNumericToken = 64

// Token returns the text v renders to in a message. A KindInvalid Value
// renders as the empty string.
func Token(v Value) string {
	if v.kind == KindString {
		return v.str
	}
	var scratch [maxNumericToken]byte
	return string(AppendToken(scratch[:0], v))
}

// AppendToken appends the token for v to dst and returns the extended
// buffer.
//
//   - signed and unsigned integers: exact base 10
//   - float32: fixed point with six fractional digits (%f)
//   - float64: scientific with six fractional digits and a signed exponent
//     of at least two digits (%e)
//   - non-finite floats: inf, -inf and nan (the sign of a NaN is dropped)
//   - strings: the literal bytes
//   - pointers: 0x followed by lowercase hex without padding, 0x0 for nil
func AppendToken(dst []byte, v Value) []byte {
	switch v.kind {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return strconv.AppendInt(dst, int64(v.bits), 10)
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return strconv.AppendUint(dst, v.bits, 10)
	case KindFloat32:
		return appendFloat(dst, float64(math.Float32frombits(uint32(v.bits))), 'f')
	case KindFloat64:
		return appendFloat(dst, math.Float64frombits(v.bits), 'e')
	case KindString:
		return append(dst, v.str...)
	case KindPointer:
		dst = append(dst, "0x"...)
		return strconv.AppendUint(dst, v.bits, 16)
	}
	return dst
}

// appendFloat renders f with six fractional digits in the given strconv
// format, spelling non-finite values the way the C library does.
func appendFloat(dst []byte, f float64, format byte) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, "nan"...)
	case math.IsInf(f, 1):
		return append(dst, "inf"...)
	case math.IsInf(f, -1):
		return append(dst, "-inf"...)
	}
	// float32 payloads were widened exactly, so formatting the float64 with
	// bitSize 64 yields the same correctly rounded digits printf produces
	// after default argument promotion.
	return strconv.AppendFloat(dst, f, format, 6, 64)
}
