package downsampling

import (
	"math"
	"testing"
)

// lorenzLike is a convex, non-decreasing curve on [0, 1]
func lorenzLike(n int) ([]float64, []float64) {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i) / float64(n-1)
		y[i] = x[i] * x[i]
	}
	return x, y
}

func assertAscending(t *testing.T, idx []int, n int) {
	t.Helper()
	for i := range idx {
		if idx[i] < 0 || idx[i] >= n {
			t.Fatalf("index %d out of range [0, %d)", idx[i], n)
		}
		if i > 0 && idx[i] <= idx[i-1] {
			t.Fatalf("indices not strictly ascending at %d: %v", i, idx[i-1:i+1])
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
		ok    bool
	}{
		{"", ModeNone, true},
		{"none", ModeNone, true},
		{"LTTB", ModeLTTB, true},
		{" m4 ", ModeM4, true},
		{"minmax", ModeMinMax, true},
		{"auto", ModeAuto, true},
		{"avg", "", false},
		{"invalid", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err == nil) != tt.ok {
				t.Fatalf("ParseMode(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSelect_KeepsShortSeries(t *testing.T) {
	x, y := lorenzLike(301)
	for _, mode := range ValidModes() {
		idx, err := Select(x, y, mode, 1000)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", mode, err)
		}
		if len(idx) != 301 {
			t.Errorf("%s: expected all 301 points, got %d", mode, len(idx))
		}
	}

	idx, err := Select(x, y, ModeNone, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(idx) != 301 {
		t.Errorf("none: expected all points, got %d", len(idx))
	}
}

func TestSelect_LTTB(t *testing.T) {
	x, y := lorenzLike(10001)

	for _, mode := range []Mode{ModeLTTB, ModeAuto} {
		idx, err := Select(x, y, mode, 200)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(idx) != 200 {
			t.Errorf("%s: expected 200 points, got %d", mode, len(idx))
		}
		assertAscending(t, idx, len(y))
		if idx[0] != 0 || idx[len(idx)-1] != len(y)-1 {
			t.Errorf("%s: endpoints must be kept, got %d and %d", mode, idx[0], idx[len(idx)-1])
		}
	}
}

func TestSelect_MinMax(t *testing.T) {
	n := 1000
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range y {
		x[i] = float64(i)
		y[i] = math.Sin(float64(i) / 10)
	}
	y[500] = 100

	idx, err := Select(x, y, ModeMinMax, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(idx) > 100 {
		t.Errorf("expected at most 100 points, got %d", len(idx))
	}
	assertAscending(t, idx, n)

	found := false
	for _, i := range idx {
		if i == 500 {
			found = true
		}
	}
	if !found {
		t.Error("expected the spike to survive")
	}
}

func TestSelect_M4(t *testing.T) {
	x, y := lorenzLike(5000)

	idx, err := Select(x, y, ModeM4, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(idx) > 100 {
		t.Errorf("expected at most 100 points, got %d", len(idx))
	}
	assertAscending(t, idx, len(y))
	if idx[0] != 0 || idx[len(idx)-1] != len(y)-1 {
		t.Errorf("expected first and last points, got %d and %d", idx[0], idx[len(idx)-1])
	}
}

func TestSelect_Errors(t *testing.T) {
	if _, err := Select([]float64{1, 2}, []float64{1}, ModeLTTB, 10); err == nil {
		t.Error("expected error for mismatched lengths")
	}
	x, y := lorenzLike(100)
	if _, err := Select(x, y, Mode("avg"), 10); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestSelect_TinyThreshold(t *testing.T) {
	x, y := lorenzLike(50)
	idx, err := Select(x, y, ModeLTTB, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(idx) != minThreshold {
		t.Errorf("expected %d points, got %d", minThreshold, len(idx))
	}
}

func TestGather(t *testing.T) {
	xs := []float64{10, 11, 12, 13}
	got := Gather(xs, []int{0, 2, 3})
	want := []float64{10, 12, 13}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Gather()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if Gather(nil, []int{0}) != nil {
		t.Error("expected nil for a nil series")
	}
}
