// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestInterpolation_Endpoints(t *testing.T) {
	t.Parallel()

	curves := []struct {
		name string
		f    Interpolation
	}{
		{"linear", Linear},
		{"smooth", Smooth},
		{"smoother", Smoother},
		{"pow2In", Pow2In},
		{"pow2Out", Pow2Out},
		{"pow3In", Pow3In},
		{"pow3Out", Pow3Out},
		{"sine", Sine},
		{"sineIn", SineIn},
		{"sineOut", SineOut},
	}

	const tolerance = 1e-6

	for _, tt := range curves {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.f(0); math.Abs(float64(got)) > tolerance {
				t.Errorf("f(0) = %v, want 0", got)
			}
			if got := tt.f(1); math.Abs(float64(got-1)) > tolerance {
				t.Errorf("f(1) = %v, want 1", got)
			}
		})
	}
}

// TestInterpolation_Monotonic checks every curve only ever grows over [0,1].
func TestInterpolation_Monotonic(t *testing.T) {
	t.Parallel()

	for name, f := range map[string]Interpolation{
		"linear": Linear, "smooth": Smooth, "smoother": Smoother,
		"pow2In": Pow2In, "pow3Out": Pow3Out, "sine": Sine,
	} {
		prev := f(0)
		for i := 1; i <= 100; i++ {
			v := f(float32(i) / 100)
			if v < prev {
				t.Errorf("%s: f(%v) = %v < previous %v", name, float32(i)/100, v, prev)
				break
			}
			prev = v
		}
	}
}

func TestInterpolation_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		start, end, a float32
		want          float32
	}{
		{"fade in midpoint", 0, 0.8, 0.5, 0.4},
		{"fade out quarter", 1, 0, 0.25, 0.75},
		{"start", 0.3, 0.9, 0, 0.3},
		{"end", 0.3, 0.9, 1, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Linear.Apply(tt.start, tt.end, tt.a)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("Apply(%v, %v, %v) = %v, want %v", tt.start, tt.end, tt.a, got, tt.want)
			}
		})
	}
}

func TestOrLinear(t *testing.T) {
	t.Parallel()

	if got := OrLinear(nil)(0.3); got != 0.3 {
		t.Errorf("OrLinear(nil)(0.3) = %v, want 0.3", got)
	}
	if got := OrLinear(Pow2In)(0.5); got != 0.25 {
		t.Errorf("OrLinear(Pow2In)(0.5) = %v, want 0.25", got)
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v, lo, hi, want float32
	}{
		{0.5, 0, 1, 0.5},
		{-0.1, 0, 1, 0},
		{1.2, 0, 1, 1},
		{-3, -1, 1, -1},
	}

	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
