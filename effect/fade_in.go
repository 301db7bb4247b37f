// SPDX-License-Identifier: EPL-2.0

package effect

import "github.com/ik5/audsfx/utils"

// FadeIn ramps its target from 0 up to the volume the target had when the
// fade began.
type FadeIn struct {
	base

	baseline float32
}

func (f *FadeIn) Update(position float32) bool { return f.update(position, f) }

// Stop does nothing: a fade-in has no early ending.
func (f *FadeIn) Stop(float32) {}

func (f *FadeIn) Reset() {
	f.reset()
	f.baseline = 0
}

func (f *FadeIn) begin() {
	f.baseline = f.target.Volume()
}

func (f *FadeIn) apply(position float32) bool {
	if f.duration <= 0 {
		return true
	}
	ratio := position / f.duration
	if ratio > 1 {
		return true
	}
	f.target.SetVolume(utils.Clamp(f.Interpolation().Apply(0, f.baseline, ratio), 0, 1))
	return false
}

func (f *FadeIn) end() {
	if f.target != nil {
		f.target.SetVolume(f.baseline)
	}
}
