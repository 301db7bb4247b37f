// SPDX-License-Identifier: EPL-2.0

package effect

import "github.com/ik5/audsfx/utils"

// Target is what an effect reads and adjusts.
type Target interface {
	Volume() float32
	SetVolume(volume float32)
	// Duration of the target in seconds.
	Duration() float32
}

// Effect is a volume effect bound to at most one Target.
type Effect interface {
	Target() Target
	// Attach binds the effect to t. Effects that depend on the target's
	// duration read it here.
	Attach(t Target)
	// Detach unbinds the effect and hands it back to its pool, if any.
	Detach()

	Releaser() func()
	SetReleaser(release func())

	Duration() float32
	SetDuration(duration float32)

	Interpolation() utils.Interpolation
	SetInterpolation(curve utils.Interpolation)

	// Update advances the effect to position and reports completion.
	Update(position float32) bool
	// Stop asks the effect to wind down from position on.
	Stop(position float32)
	// Restart clears the activation so the next Update begins again.
	Restart()
	Reset()
}

type phases interface {
	begin()
	apply(position float32) bool
	end()
}

// base carries the state every effect shares. Concrete effects embed it and
// pass themselves to update for their phase hooks.
type base struct {
	target   Target
	release  func()
	duration float32
	curve    utils.Interpolation

	began    bool
	complete bool
}

func (b *base) Target() Target { return b.target }

func (b *base) Attach(t Target) { b.target = t }

func (b *base) Detach() {
	b.target = nil
	if release := b.release; release != nil {
		b.release = nil
		release()
	}
}

func (b *base) Releaser() func() { return b.release }

func (b *base) SetReleaser(release func()) { b.release = release }

func (b *base) Duration() float32 { return b.duration }

func (b *base) SetDuration(duration float32) { b.duration = duration }

func (b *base) Interpolation() utils.Interpolation { return utils.OrLinear(b.curve) }

func (b *base) SetInterpolation(curve utils.Interpolation) { b.curve = curve }

func (b *base) Restart() {
	b.began = false
	b.complete = false
}

func (b *base) reset() {
	b.target = nil
	b.release = nil
	b.curve = nil
	b.duration = 0
	b.Restart()
}

func (b *base) update(position float32, p phases) bool {
	if b.complete {
		return true
	}
	if b.target == nil {
		return true
	}

	release := b.release
	b.release = nil
	defer func() { b.release = release }()

	if !b.began {
		p.begin()
		b.began = true
	}
	b.complete = p.apply(position)
	if b.complete {
		p.end()
	}
	return b.complete
}

var (
	_ Effect = (*FadeIn)(nil)
	_ Effect = (*FadeOut)(nil)
)
