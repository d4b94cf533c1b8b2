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


package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-hwyprint/hwy"
)

func newTokenCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "token kind:value...",
		Short: "Assemble the message print would emit for the given values",
		Long: `Assemble the message print would emit for the given values and send it
to the configured sink.

Kinds: i8 i16 i32 i64 u8 u16 u32 u64 f32 f64 str ptr.
Float values accept inf, -inf and nan; ptr takes a base-prefixed integer.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]hwy.Value, len(args))
			for i, arg := range args {
				v, err := parseValue(arg)
				if err != nil {
					return err
				}
				values[i] = v
			}
			sink, err := a.sink()
			if err != nil {
				return err
			}
			hwy.NewRun(hwy.WithSink(sink), hwy.WithLogger(a.logger)).PrintValues(values...)
			return nil
		},
	}
}

// parseValue parses one kind:value argument.
func parseValue(arg string) (hwy.Value, error) {
	kind, text, ok := strings.Cut(arg, ":")
	if !ok {
		return hwy.Value{}, fmt.Errorf("argument %q: want kind:value", arg)
	}

	var (
		v   hwy.Value
		err error
	)
	switch kind {
	case "i8", "i16", "i32", "i64":
		var n int64
		n, err = strconv.ParseInt(text, 10, kindBits(kind))
		switch kind {
		case "i8":
			v = hwy.Int8(int8(n))
		case "i16":
			v = hwy.Int16(int16(n))
		case "i32":
			v = hwy.Int32(int32(n))
		default:
			v = hwy.Int64(n)
		}
	case "u8", "u16", "u32", "u64":
		var n uint64
		n, err = strconv.ParseUint(text, 10, kindBits(kind))
		switch kind {
		case "u8":
			v = hwy.Uint8(uint8(n))
		case "u16":
			v = hwy.Uint16(uint16(n))
		case "u32":
			v = hwy.Uint32(uint32(n))
		default:
			v = hwy.Uint64(n)
		}
	case "f32":
		var f float64
		f, err = strconv.ParseFloat(text, 32)
		v = hwy.Float32(float32(f))
	case "f64":
		var f float64
		f, err = strconv.ParseFloat(text, 64)
		v = hwy.Float64(f)
	case "str":
		v = hwy.Str(text)
	case "ptr":
		var p uint64
		p, err = strconv.ParseUint(text, 0, 64)
		v = hwy.Handle(uintptr(p))
	default:
		return hwy.Value{}, fmt.Errorf("argument %q: unknown kind %q", arg, kind)
	}
	if err != nil {
		return hwy.Value{}, fmt.Errorf("argument %q: %w", arg, err)
	}
	return v, nil
}

// kindBits returns the bit size encoded in an integer kind such as "u16".
func kindBits(kind string) int {
	bits, _ := strconv.Atoi(kind[1:])
	return bits
}
