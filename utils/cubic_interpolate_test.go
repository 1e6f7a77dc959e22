// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x              float32
		want           float32
	}{
		{"start hits y1", 0.3, -0.2, 0.9, 0.1, 0, -0.2},
		{"end hits y2", 0.3, -0.2, 0.9, 0.1, 1, 0.9},
		{"flat line", 0.4, 0.4, 0.4, 0.4, 0.37, 0.4},
		{"straight line midpoint", 0, 1, 2, 3, 0.5, 1.5},
		{"straight line quarter", -3, -1, 1, 3, 0.25, -0.5},
		{"symmetric bump", 0, 1, 1, 0, 0.5, 1.125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("CubicInterpolate(%v, %v, %v, %v, %v) = %v, want %v",
					tt.y0, tt.y1, tt.y2, tt.y3, tt.x, got, tt.want)
			}
		})
	}
}

// A line through four points stays a line between the inner two.
func TestCubicInterpolate_Linear(t *testing.T) {
	t.Parallel()

	for i := range 11 {
		x := float32(i) / 10
		got := CubicInterpolate(0.1, 0.2, 0.3, 0.4, x)
		want := 0.2 + 0.1*x
		if math.Abs(float64(got-want)) > 1e-6 {
			t.Errorf("x=%v: got %v, want %v", x, got, want)
		}
	}
}

func TestCubicInterpolate_ZeroAllocs(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = CubicInterpolate(0.5, 1.0, 0.8, 0.3, 0.5)
	})
	if allocs != 0 {
		t.Errorf("CubicInterpolate allocated %v times, want 0", allocs)
	}
}

func BenchmarkCubicInterpolate(b *testing.B) {
	var sink float32
	for i := 0; i < b.N; i++ {
		sink = CubicInterpolate(0.1, 0.5, -0.3, 0.2, float32(i%100)/100)
	}
	_ = sink
}
