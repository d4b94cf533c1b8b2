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


package image

import (
	"github.com/ajroetker/go-hwyprint/hwy"
)

// Image is a single-channel 2D array with vector-aligned rows.
type Image[T hwy.Lanes] struct {
	data   []T
	width  int
	height int
	stride int // elements per row, padding included
}

// NewImage returns a zeroed width x height image. Non-positive dimensions
// yield an empty 0x0 image.
func NewImage[T hwy.Lanes](width, height int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}

	lanes := max(hwy.MaxLanes[T](), 1)
	stride := ((width + lanes - 1) / lanes) * lanes
	return &Image[T]{
		data:   make([]T, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// FromSlice returns a 1-row image holding a copy of values.
func FromSlice[T hwy.Lanes](values []T) *Image[T] {
	img := NewImage[T](len(values), 1)
	copy(img.RowSlice(0), values)
	return img
}

// Width returns the number of columns.
func (img *Image[T]) Width() int {
	return img.width
}

// Height returns the number of rows.
func (img *Image[T]) Height() int {
	return img.height
}

// Stride returns the number of elements per row, padding included.
func (img *Image[T]) Stride() int {
	return img.stride
}

// Len returns width * height.
func (img *Image[T]) Len() int {
	return img.width * img.height
}

// Row returns row y including its padding, or nil if y is out of range.
// Padding elements may be written but are not part of the image.
func (img *Image[T]) Row(y int) []T {
	if y < 0 || y >= img.height {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.stride]
}

// RowSlice returns row y limited to the image width, or nil if y is out of
// range.
func (img *Image[T]) RowSlice(y int) []T {
	if y < 0 || y >= img.height {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.width]
}

// At returns the value at (x, y), or zero outside the image.
func (img *Image[T]) At(x, y int) T {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		var zero T
		return zero
	}
	return img.data[y*img.stride+x]
}

// Set stores value at (x, y). Out-of-range coordinates are ignored.
func (img *Image[T]) Set(x, y int, value T) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	img.data[y*img.stride+x] = value
}

// Values returns the image contents row by row without padding.
func (img *Image[T]) Values() []T {
	out := make([]T, 0, img.Len())
	for y := range img.height {
		out = append(out, img.RowSlice(y)...)
	}
	return out
}

// Fill sets every element, padding included, to value.
func (img *Image[T]) Fill(value T) {
	for i := range img.data {
		img.data[i] = value
	}
}

// Clone returns a deep copy.
func (img *Image[T]) Clone() *Image[T] {
	clone := *img
	clone.data = append([]T(nil), img.data...)
	return &clone
}

// SameSize reports whether a and b have the same dimensions.
func SameSize[T, U hwy.Lanes](a *Image[T], b *Image[U]) bool {
	return a.width == b.width && a.height == b.height
}

// Equal reports whether a and b have the same dimensions and the same
// values, ignoring padding. Floats compare with ==, so NaN never matches.
func Equal[T hwy.Lanes](a, b *Image[T]) bool {
	if !SameSize(a, b) {
		return false
	}
	for y := range a.height {
		ra, rb := a.RowSlice(y), b.RowSlice(y)
		for x := range ra {
			if ra[x] != rb[x] {
				return false
			}
		}
	}
	return true
}
