// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"fmt"
	"math/rand/v2"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/utils"
)

// Clip is a loaded sound. It forwards to the backend sound, optionally
// varying the pitch of every voice it starts.
type Clip struct {
	sound    audio.Sound
	title    string
	duration float32

	minPitch float32
	maxPitch float32
	rng      *rand.Rand
}

// NewClip wraps s. duration is in seconds.
func NewClip(s audio.Sound, title string, duration float32) *Clip {
	return &Clip{
		sound:    s,
		title:    title,
		duration: duration,
		minPitch: 1,
		maxPitch: 1,
	}
}

// NewPitchShiftingClip wraps s so that each voice plays at a random pitch in
// [1-pitchRange/2, 1+pitchRange/2]. pitchRange is clamped to [0,1].
func NewPitchShiftingClip(s audio.Sound, title string, duration, pitchRange float32, rng *rand.Rand) *Clip {
	c := NewClip(s, title, duration)
	half := utils.Clamp(pitchRange, 0, 1) / 2
	c.minPitch = 1 - half
	c.maxPitch = 1 + half
	c.rng = rng
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return c
}

func (c *Clip) Title() string     { return c.title }
func (c *Clip) Duration() float32 { return c.duration }

// PitchRange returns the bounds of the pitch variation.
func (c *Clip) PitchRange() (minPitch, maxPitch float32) { return c.minPitch, c.maxPitch }

func (c *Clip) shift(pitch float32) float32 {
	if c.rng == nil || c.minPitch == c.maxPitch {
		return pitch
	}
	return pitch * (c.minPitch + c.rng.Float32()*(c.maxPitch-c.minPitch))
}

func (c *Clip) Play(volume, pitch, pan float32) audio.Handle {
	return c.sound.Play(volume, c.shift(pitch), pan)
}

func (c *Clip) Loop(volume, pitch, pan float32) audio.Handle {
	return c.sound.Loop(volume, c.shift(pitch), pan)
}

func (c *Clip) Stop(h audio.Handle)   { c.sound.Stop(h) }
func (c *Clip) Pause(h audio.Handle)  { c.sound.Pause(h) }
func (c *Clip) Resume(h audio.Handle) { c.sound.Resume(h) }

func (c *Clip) SetLooping(h audio.Handle, looping bool) { c.sound.SetLooping(h, looping) }

func (c *Clip) SetPitch(h audio.Handle, pitch float32) { c.sound.SetPitch(h, c.shift(pitch)) }

func (c *Clip) SetVolume(h audio.Handle, volume float32) { c.sound.SetVolume(h, volume) }

func (c *Clip) SetPan(h audio.Handle, pan, volume float32) { c.sound.SetPan(h, pan, volume) }

func (c *Clip) Dispose() error {
	if err := c.sound.Dispose(); err != nil {
		return fmt.Errorf("dispose %q: %w", c.title, err)
	}
	return nil
}

func (c *Clip) String() string {
	return fmt.Sprintf("%s [%.2f]", c.title, c.duration)
}

var _ audio.Sound = (*Clip)(nil)
