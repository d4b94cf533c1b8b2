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
	"testing"

	"github.com/ajroetker/go-hwyprint/hwy"
)

func TestNewImage(t *testing.T) {
	img := NewImage[float32](100, 50)

	if img.Width() != 100 {
		t.Errorf("Width: got %d, want 100", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Height: got %d, want 50", img.Height())
	}

	lanes := hwy.MaxLanes[float32]()
	if img.Stride() < 100 {
		t.Errorf("Stride: got %d, want >= 100", img.Stride())
	}
	if img.Stride()%lanes != 0 {
		t.Errorf("Stride not aligned: got %d, want multiple of %d", img.Stride(), lanes)
	}
}

func TestNewImage_ZeroDimensions(t *testing.T) {
	img := NewImage[float32](0, 0)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Zero dimensions: got %dx%d, want 0x0", img.Width(), img.Height())
	}

	img = NewImage[float32](-1, 10)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Negative width: got %dx%d, want 0x0", img.Width(), img.Height())
	}
	if img.Row(0) != nil || img.RowSlice(0) != nil {
		t.Error("empty image returned a row")
	}
}

func TestImage_RowsAreIndependent(t *testing.T) {
	img := NewImage[int32](10, 5)

	row0 := img.RowSlice(0)
	for i := range row0 {
		row0[i] = int32(i)
	}
	img.RowSlice(1)[0] = 999

	if img.At(0, 0) != 0 {
		t.Errorf("At(0,0) = %d, want 0", img.At(0, 0))
	}
	if img.At(0, 1) != 999 {
		t.Errorf("At(0,1) = %d, want 999", img.At(0, 1))
	}
	if len(img.Row(2)) != img.Stride() {
		t.Errorf("len(Row) = %d, want stride %d", len(img.Row(2)), img.Stride())
	}
}

func TestImage_AtSetBounds(t *testing.T) {
	img := NewImage[uint8](4, 3)
	img.Set(3, 2, 7)
	img.Set(4, 0, 9)
	img.Set(-1, 0, 9)

	if img.At(3, 2) != 7 {
		t.Errorf("At(3,2) = %d, want 7", img.At(3, 2))
	}
	if img.At(4, 0) != 0 || img.At(0, -1) != 0 {
		t.Error("out-of-range At should return zero")
	}
}

func TestFromSliceAndValues(t *testing.T) {
	in := []float64{1.5, -2, 3.25}
	img := FromSlice(in)

	if img.Width() != 3 || img.Height() != 1 {
		t.Fatalf("got %dx%d, want 3x1", img.Width(), img.Height())
	}
	got := img.Values()
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("Values()[%d] = %v, want %v", i, got[i], in[i])
		}
	}
}

func TestCloneAndEqual(t *testing.T) {
	img := NewImage[int16](7, 2)
	img.Fill(3)
	clone := img.Clone()

	if !Equal(img, clone) {
		t.Fatal("clone differs from original")
	}
	clone.Set(6, 1, 4)
	if Equal(img, clone) {
		t.Error("modifying the clone changed the original")
	}
	if !SameSize(img, NewImage[float32](7, 2)) {
		t.Error("SameSize = false for equal dimensions")
	}
	if Equal(img, NewImage[int16](7, 3)) {
		t.Error("Equal = true for different dimensions")
	}
}
