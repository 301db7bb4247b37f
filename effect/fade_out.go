// SPDX-License-Identifier: EPL-2.0

package effect

import "github.com/ik5/audsfx/utils"

// FadeOut ramps its target down to 0 over the last Duration seconds of the
// target, or from the position given to Stop.
type FadeOut struct {
	base

	// from is the volume the ramp starts at, captured on entering the
	// window. Negative until then.
	from      float32
	beginning float32
}

// Attach binds t and schedules the fade for the tail of t.
func (f *FadeOut) Attach(t Target) {
	f.base.Attach(t)
	if t != nil {
		f.beginning = t.Duration() - f.duration
	}
}

func (f *FadeOut) Update(position float32) bool { return f.update(position, f) }

// Stop moves the start of the ramp to position. The ramp starts again from
// the target's current volume.
func (f *FadeOut) Stop(position float32) {
	f.beginning = position
	f.from = -1
}

// Beginning is the position where the ramp starts.
func (f *FadeOut) Beginning() float32 { return f.beginning }

func (f *FadeOut) Reset() {
	f.reset()
	f.from = 0
	f.beginning = 0
}

func (f *FadeOut) begin() {
	f.from = -1
}

func (f *FadeOut) apply(position float32) bool {
	if position < f.beginning {
		return false
	}
	if f.duration <= 0 {
		return true
	}
	ratio := (position - f.beginning) / f.duration
	if ratio > 1 {
		return true
	}
	if f.from < 0 {
		f.from = f.target.Volume()
	}
	f.target.SetVolume(utils.Clamp(f.Interpolation().Apply(f.from, 0, ratio), 0, 1))
	return false
}

func (f *FadeOut) end() {
	if f.target != nil {
		f.target.SetVolume(0)
	}
}
