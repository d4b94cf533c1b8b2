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

import "errors"

// ErrNoArguments is the panic value of PrintValues and PrintValuesWhen when
// called without arguments. Print and PrintWhen require a first argument
// and cannot hit it.
var ErrNoArguments = errors.New("hwy: print requires at least one argument")

// Print formats first and rest into one message, delivers it to r's sink
// and returns first unchanged. Substituting first for the call never changes
// what the surrounding computation produces.
func Print[T Scalar](r *Run, first T, rest ...Value) T {
	r.emit(ValueOf(first), rest)
	return first
}

// PrintWhen is Print gated by cond. When cond is false no argument is
// formatted and no message is produced, but first is still returned.
func PrintWhen[T Scalar](r *Run, cond bool, first T, rest ...Value) T {
	if cond {
		r.emit(ValueOf(first), rest)
	}
	return first
}

// PrintValues is Print for argument lists built at run time. It returns
// args[0].
func (r *Run) PrintValues(args ...Value) Value {
	return r.PrintValuesWhen(true, args...)
}

// PrintValuesWhen is PrintWhen for argument lists built at run time. It
// returns args[0] whether or not cond holds.
func (r *Run) PrintValuesWhen(cond bool, args ...Value) Value {
	if len(args) == 0 {
		panic(ErrNoArguments)
	}
	if cond {
		r.emit(args[0], args[1:])
	}
	return args[0]
}
