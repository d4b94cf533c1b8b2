package hwy

import "testing"

func TestDispatchDetected(t *testing.T) {
	if CurrentWidth() < 16 {
		t.Errorf("CurrentWidth() = %d, want >= 16", CurrentWidth())
	}
	if CurrentName() == "unknown" {
		t.Errorf("CurrentName() = %q for level %d", CurrentName(), CurrentLevel())
	}
}

func TestMaxLanes(t *testing.T) {
	w := CurrentWidth()
	if got := MaxLanes[float32](); got != w/4 {
		t.Errorf("MaxLanes[float32]() = %d, want %d", got, w/4)
	}
	if got := MaxLanes[float64](); got != w/8 {
		t.Errorf("MaxLanes[float64]() = %d, want %d", got, w/8)
	}
	if got := MaxLanes[uint8](); got != w {
		t.Errorf("MaxLanes[uint8]() = %d, want %d", got, w)
	}
}

func TestNoSimdEnv(t *testing.T) {
	for val, want := range map[string]bool{"": false, "1": true, "true": true, "0": false, "false": false, "yes": true} {
		t.Setenv("HWY_NO_SIMD", val)
		if got := NoSimdEnv(); got != want {
			t.Errorf("HWY_NO_SIMD=%q: NoSimdEnv() = %v, want %v", val, got, want)
		}
	}
}
