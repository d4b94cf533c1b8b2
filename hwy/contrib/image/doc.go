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


// Package image provides the output storage pipelines realize into.
//
// An Image is a single-channel 2D array whose rows are padded to a multiple
// of the SIMD vector width. One-dimensional funcs realize into an image of
// height 1.
//
//	out, err := f.Realize(10)
//	for x := range out.Width() {
//	    fmt.Println(out.At(x, 0))
//	}
package image
