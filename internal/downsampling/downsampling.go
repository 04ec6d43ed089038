// Package downsampling thins plot series for rendering. Algorithms return the
// indices of the points they keep, so several series sharing an x axis (a
// curve and its reference lines) can be thinned together.
package downsampling

import (
	"fmt"
	"math"
	"strings"
)

// Mode represents the downsampling mode
type Mode string

const (
	// ModeNone keeps every point
	ModeNone Mode = "none"
	// ModeAuto thins with LTTB only when the series exceeds the threshold
	ModeAuto Mode = "auto"
	// ModeLTTB uses Largest-Triangle-Three-Buckets
	ModeLTTB Mode = "lttb"
	// ModeMinMax keeps min and max values per bucket
	ModeMinMax Mode = "minmax"
	// ModeM4 keeps first, min, max and last per bucket
	ModeM4 Mode = "m4"
)

// DefaultAutoThreshold is the target point count when none is given
const DefaultAutoThreshold = 1000

// minThreshold keeps both endpoints and at least one interior point
const minThreshold = 3

// ValidModes returns all valid downsampling modes
func ValidModes() []Mode {
	return []Mode{ModeNone, ModeAuto, ModeLTTB, ModeMinMax, ModeM4}
}

// ParseMode parses a mode name; the empty string is ModeNone
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeNone, nil
	}
	for _, m := range ValidModes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown downsampling mode %q (valid: %v)", s, ValidModes())
}

// Select returns the ascending indices of the points of (x, y) kept when
// thinning to about threshold points. Series at or below the threshold are
// returned whole. threshold <= 0 selects DefaultAutoThreshold.
func Select(x, y []float64, mode Mode, threshold int) ([]int, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y must have same length (%d != %d)", len(x), len(y))
	}
	if threshold <= 0 {
		threshold = DefaultAutoThreshold
	}
	threshold = max(threshold, minThreshold)

	if mode == ModeNone || len(y) <= threshold {
		return all(len(y)), nil
	}

	switch mode {
	case ModeAuto, ModeLTTB:
		return lttb(x, y, threshold), nil
	case ModeMinMax:
		return minmax(y, threshold), nil
	case ModeM4:
		return m4(y, threshold), nil
	}
	return nil, fmt.Errorf("unknown downsampling mode: %s", mode)
}

// Gather returns xs at the selected indices. A nil slice stays nil.
func Gather(xs []float64, idx []int) []float64 {
	if xs == nil {
		return nil
	}
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = xs[j]
	}
	return out
}

func all(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// lttb keeps the first and last points and, per bucket, the point forming
// the largest triangle with the previous pick and the next bucket's average
func lttb(x, y []float64, threshold int) []int {
	n := len(y)
	sampled := make([]int, 0, threshold)
	sampled = append(sampled, 0)

	bucketSize := float64(n-2) / float64(threshold-2)
	a := 0

	for i := 0; i < threshold-2; i++ {
		avgStart := int(math.Floor(float64(i+1)*bucketSize)) + 1
		avgEnd := min(int(math.Floor(float64(i+2)*bucketSize))+1, n)

		avgX, avgY := 0.0, 0.0
		for j := avgStart; j < avgEnd; j++ {
			avgX += x[j]
			avgY += y[j]
		}
		count := float64(avgEnd - avgStart)
		avgX /= count
		avgY /= count

		from := int(math.Floor(float64(i)*bucketSize)) + 1
		to := int(math.Floor(float64(i+1)*bucketSize)) + 1

		maxArea := -1.0
		pick := from
		for j := from; j < to; j++ {
			area := math.Abs((x[a]-avgX)*(y[j]-y[a])-(x[a]-x[j])*(avgY-y[a])) * 0.5
			if area > maxArea {
				maxArea = area
				pick = j
			}
		}

		sampled = append(sampled, pick)
		a = pick
	}

	return append(sampled, n-1)
}

// buckets splits n points into count contiguous [start, end) ranges
func buckets(n, count int) [][2]int {
	count = max(count, 1)
	size := float64(n) / float64(count)
	out := make([][2]int, 0, count)
	for i := 0; i < count; i++ {
		start := int(float64(i) * size)
		end := min(int(float64(i+1)*size), n)
		if start < end {
			out = append(out, [2]int{start, end})
		}
	}
	return out
}

func extremes(y []float64, start, end int) (lo, hi int) {
	lo, hi = start, start
	for j := start + 1; j < end; j++ {
		if y[j] < y[lo] {
			lo = j
		}
		if y[j] > y[hi] {
			hi = j
		}
	}
	return lo, hi
}

// minmax keeps the min and max of each bucket, in index order
func minmax(y []float64, threshold int) []int {
	sampled := make([]int, 0, threshold)
	for _, b := range buckets(len(y), threshold/2) {
		lo, hi := extremes(y, b[0], b[1])
		sampled = appendOrdered(sampled, lo, hi)
	}
	return sampled
}

// m4 keeps first, min, max and last of each bucket, in index order
func m4(y []float64, threshold int) []int {
	sampled := make([]int, 0, threshold)
	for _, b := range buckets(len(y), threshold/4) {
		lo, hi := extremes(y, b[0], b[1])
		sampled = appendOrdered(sampled, b[0], lo, hi, b[1]-1)
	}
	return sampled
}

// appendOrdered appends the distinct indices in ascending order
func appendOrdered(dst []int, idx ...int) []int {
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && idx[j] < idx[j-1]; j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
	for i, v := range idx {
		if i > 0 && v == idx[i-1] {
			continue
		}
		dst = append(dst, v)
	}
	return dst
}
