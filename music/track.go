// SPDX-License-Identifier: EPL-2.0

package music

import (
	"fmt"
	"slices"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/effect"
)

// Track is a stateful wrapper over a backend stream. It keeps its own clock,
// which the backend does not reliably report, and drives attached effects
// from it.
type Track struct {
	stream   audio.Stream
	title    string
	duration float32

	effects  []effect.Effect
	position float32
	pan      float32
	pitch    float32

	paused      bool
	stopPending bool
	// active is set while a play is in progress, so completion fires once.
	active bool

	onCompletion func(Music)
}

// NewTrack wraps s. duration is in seconds and is trusted from then on.
func NewTrack(s audio.Stream, title string, duration float32) *Track {
	return &Track{
		stream:   s,
		title:    title,
		duration: duration,
		pitch:    1,
	}
}

func (t *Track) Title() string     { return t.title }
func (t *Track) Duration() float32 { return t.duration }

// Stream returns the wrapped backend stream.
func (t *Track) Stream() audio.Stream { return t.stream }

// Play starts the track from the beginning, or resumes it when paused.
func (t *Track) Play() {
	t.stream.Play()
	if t.paused {
		t.paused = false
	} else {
		t.position = 0
		for _, e := range t.effects {
			e.Restart()
		}
	}
	t.stopPending = false
	t.active = t.stream.IsPlaying()
}

func (t *Track) Pause() {
	if !t.stream.IsPlaying() {
		return
	}
	t.paused = true
	t.stream.Pause()
}

func (t *Track) Resume() {
	if t.paused {
		t.Play()
	}
}

// Stop stops the track. With effects attached the stop is deferred until
// every effect has completed, and each effect is told to wind down from the
// current position.
func (t *Track) Stop() {
	switch {
	case t.stopPending:
	case t.paused:
		t.doStop()
	case !t.stream.IsPlaying():
	case len(t.effects) > 0:
		t.stopPending = true
		for _, e := range t.effects {
			e.Stop(t.position)
		}
	default:
		t.doStop()
	}
}

func (t *Track) doStop() {
	t.stream.Stop()
	t.paused = false
	t.stopPending = false
	t.position = 0
	t.complete()
}

func (t *Track) complete() {
	if !t.active {
		return
	}
	t.active = false
	if t.onCompletion != nil {
		t.onCompletion(t)
	}
}

func (t *Track) IsPlaying() bool { return t.stream.IsPlaying() }

// IsPaused reports whether Resume would continue playback.
func (t *Track) IsPaused() bool { return t.paused }

// StopPending reports whether a Stop is waiting for effects to finish.
func (t *Track) StopPending() bool { return t.stopPending }

func (t *Track) IsLooping() bool         { return t.stream.IsLooping() }
func (t *Track) SetLooping(looping bool) { t.stream.SetLooping(looping) }

func (t *Track) Volume() float32          { return t.stream.Volume() }
func (t *Track) SetVolume(volume float32) { t.stream.SetVolume(volume) }

func (t *Track) Pan() float32 { return t.pan }

func (t *Track) SetPan(pan, volume float32) {
	t.pan = pan
	t.stream.SetPan(pan, volume)
}

func (t *Track) Pitch() float32 { return t.pitch }

// SetPitch is forwarded to streams that implement audio.Pitcher and only
// remembered otherwise.
func (t *Track) SetPitch(pitch float32) {
	t.pitch = pitch
	if p, ok := t.stream.(audio.Pitcher); ok {
		p.SetPitch(pitch)
	}
}

func (t *Track) Position() float32 { return t.position }

func (t *Track) SetPosition(position float32) {
	t.stream.SetPosition(position)
	t.position = position
}

func (t *Track) SetOnCompletion(fn func(Music)) { t.onCompletion = fn }

// Effects returns a copy of the attached effects.
func (t *Track) Effects() []effect.Effect { return slices.Clone(t.effects) }

func (t *Track) HasEffects() bool { return len(t.effects) > 0 }

// AddEffect attaches e. Adding an effect twice does nothing.
func (t *Track) AddEffect(e effect.Effect) {
	if slices.Contains(t.effects, e) {
		return
	}
	e.Attach(t)
	t.effects = append(t.effects, e)
}

// RemoveEffect detaches e, which hands a pooled effect back to its pool.
func (t *Track) RemoveEffect(e effect.Effect) {
	i := slices.Index(t.effects, e)
	if i < 0 {
		return
	}
	t.effects = slices.Delete(t.effects, i, i+1)
	e.Detach()
}

func (t *Track) ClearEffects() {
	for i := len(t.effects) - 1; i >= 0; i-- {
		t.effects[i].Detach()
	}
	t.effects = nil
}

// Update advances the track clock by delta and drives its effects. It
// returns true once the track is not playing, and false while paused.
func (t *Track) Update(delta float32) bool {
	if t.paused {
		return false
	}
	if !t.stream.IsPlaying() {
		t.position = 0
		t.stopPending = false
		t.complete()
		return true
	}

	t.position += delta

	effectsOver := true
	for _, e := range t.effects {
		effectsOver = e.Update(t.position) && effectsOver
	}

	if t.stopPending && effectsOver {
		t.doStop()
		return true
	}
	if t.stream.IsLooping() && t.duration > 0 && t.position > t.duration {
		t.position -= t.duration
		for _, e := range t.effects {
			e.Restart()
		}
	}
	return false
}

// Dispose detaches every effect and disposes the backend stream.
func (t *Track) Dispose() error {
	t.ClearEffects()
	if err := t.stream.Dispose(); err != nil {
		return fmt.Errorf("dispose %q: %w", t.title, err)
	}
	return nil
}

func (t *Track) String() string {
	return fmt.Sprintf("%s [%.2f/%.2f]", t.title, t.position, t.duration)
}
