// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Interpolation maps a progress ratio in [0,1] onto a curve, also in [0,1]
// at both ends.
type Interpolation func(a float32) float32

// Apply interpolates between start and end at ratio a.
func (f Interpolation) Apply(start, end, a float32) float32 {
	return start + (end-start)*f(a)
}

// OrLinear returns f, or Linear when f is nil.
func OrLinear(f Interpolation) Interpolation {
	if f == nil {
		return Linear
	}
	return f
}

var (
	Linear Interpolation = func(a float32) float32 { return a }

	// Smooth is the smoothstep curve.
	Smooth Interpolation = func(a float32) float32 { return a * a * (3 - 2*a) }

	// Smoother is Ken Perlin's smootherstep curve.
	Smoother Interpolation = func(a float32) float32 { return a * a * a * (a*(a*6-15) + 10) }

	Pow2In  Interpolation = powIn(2)
	Pow2Out Interpolation = powOut(2)
	Pow3In  Interpolation = powIn(3)
	Pow3Out Interpolation = powOut(3)

	Sine Interpolation = func(a float32) float32 {
		return float32((1 - math.Cos(float64(a)*math.Pi)) / 2)
	}
	SineIn Interpolation = func(a float32) float32 {
		return float32(1 - math.Cos(float64(a)*math.Pi/2))
	}
	SineOut Interpolation = func(a float32) float32 {
		return float32(math.Sin(float64(a) * math.Pi / 2))
	}
)

func powIn(p float64) Interpolation {
	return func(a float32) float32 {
		return float32(math.Pow(float64(a), p))
	}
}

func powOut(p float64) Interpolation {
	return func(a float32) float32 {
		return float32(1 - math.Pow(float64(1-a), p))
	}
}
