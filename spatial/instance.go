// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/sound"
)

// notFading is the fade progress of an instance that is not fading.
const notFading float32 = -1

// Instance is one spatialized voice. Its emitted volume is always its
// realtime volume times its intrinsic volume.
type Instance[T any] struct {
	clip     *sound.Clip
	handle   audio.Handle
	duration float32
	position T

	intrinsic float32
	volume    float32
	pitch     float32
	pan       float32

	elapsed float32
	running bool
	looping bool

	fadeTime     float32
	fadeProgress float32
	fadeIn       bool
	// fadeTarget is the realtime volume at the loud end of the fade.
	fadeTarget float32
	stopping   bool
}

func newInstance[T any]() *Instance[T] {
	i := &Instance[T]{}
	i.Reset()
	return i
}

// Reset stops the voice, if any, and clears the instance for reuse.
func (i *Instance[T]) Reset() {
	if i.clip != nil {
		i.clip.Stop(i.handle)
	}
	*i = Instance[T]{
		handle:       audio.InvalidHandle,
		intrinsic:    1,
		volume:       1,
		pitch:        1,
		fadeProgress: notFading,
	}
}

func (i *Instance[T]) initialize(c *sound.Clip, position T, intrinsic, pitch, fadeTime float32, fadeIn bool) audio.Handle {
	i.clip = c
	i.duration = c.Duration()
	i.position = position
	i.intrinsic = intrinsic
	i.volume = 0
	i.pitch = pitch
	i.pan = 0
	i.elapsed = 0
	i.running = true
	i.fadeTime = fadeTime

	i.handle = c.Play(0, pitch, 0)
	if fadeIn && fadeTime > 0 {
		i.startFadeIn()
	}
	return i.handle
}

func (i *Instance[T]) Handle() audio.Handle { return i.handle }
func (i *Instance[T]) Clip() *sound.Clip    { return i.clip }
func (i *Instance[T]) Duration() float32    { return i.duration }
func (i *Instance[T]) Elapsed() float32     { return i.elapsed }

func (i *Instance[T]) Position() T            { return i.position }
func (i *Instance[T]) SetPosition(position T) { i.position = position }

func (i *Instance[T]) IsRunning() bool { return i.running }
func (i *Instance[T]) IsFading() bool  { return i.fadeProgress > notFading }

// Volume is the realtime volume, before the intrinsic volume is applied.
func (i *Instance[T]) Volume() float32 { return i.volume }

func (i *Instance[T]) IntrinsicVolume() float32 { return i.intrinsic }

// EffectiveVolume is what the backend is told.
func (i *Instance[T]) EffectiveVolume() float32 { return i.volume * i.intrinsic }

func (i *Instance[T]) SetVolume(volume float32) {
	if i.IsFading() && i.fadeIn {
		i.fadeTarget = volume
		return
	}
	i.applyVolume(volume)
}

func (i *Instance[T]) applyVolume(volume float32) {
	if i.volume == volume || i.clip == nil {
		return
	}
	i.volume = volume
	i.clip.SetVolume(i.handle, i.EffectiveVolume())
}

func (i *Instance[T]) Pan() float32 { return i.pan }

// SetPan sets pan and realtime volume together. While fading in, volume
// becomes the level the fade is heading for and only the pan changes now.
func (i *Instance[T]) SetPan(pan, volume float32) {
	if i.clip == nil {
		return
	}
	if i.IsFading() {
		if i.fadeIn {
			i.fadeTarget = volume
		}
		if i.pan != pan {
			i.pan = pan
			i.clip.SetPan(i.handle, pan, i.EffectiveVolume())
		}
		return
	}
	if i.pan == pan && i.volume == volume {
		return
	}
	i.pan = pan
	i.volume = volume
	i.clip.SetPan(i.handle, pan, i.EffectiveVolume())
}

func (i *Instance[T]) Pitch() float32 { return i.pitch }

func (i *Instance[T]) SetPitch(pitch float32) {
	if i.pitch == pitch || i.clip == nil {
		return
	}
	i.pitch = pitch
	i.clip.SetPitch(i.handle, pitch)
}

func (i *Instance[T]) IsLooping() bool { return i.looping }

func (i *Instance[T]) SetLooping(looping bool) {
	if i.looping == looping || i.clip == nil {
		return
	}
	i.looping = looping
	i.clip.SetLooping(i.handle, looping)
}

// Update advances the fade and the clock by delta seconds. It returns true
// when the instance is over and can be reclaimed.
func (i *Instance[T]) Update(delta float32) bool {
	if i.clip == nil {
		return true
	}

	if i.IsFading() {
		i.fadeProgress += delta
		if i.fadeProgress >= i.fadeTime {
			if i.finishFade() {
				return true
			}
		} else {
			progress := i.fadeProgress / i.fadeTime
			if !i.fadeIn {
				progress = 1 - progress
			}
			i.applyVolume(progress * i.fadeTarget)
		}
	}

	if i.running {
		i.elapsed += delta
	}
	if i.elapsed < i.duration {
		return false
	}
	if i.looping && i.duration > 0 {
		i.elapsed -= i.duration
		return false
	}
	i.running = false
	return true
}

// finishFade lands the fade and reports whether the instance is now over.
func (i *Instance[T]) finishFade() bool {
	i.fadeProgress = notFading
	if i.fadeIn {
		i.applyVolume(i.fadeTarget)
		return false
	}

	i.applyVolume(0)
	if i.stopping {
		i.halt()
		return true
	}
	i.clip.Pause(i.handle)
	i.running = false
	return false
}

// Stop halts the instance, fading out first when it has a fade time.
func (i *Instance[T]) Stop() {
	if i.clip == nil {
		return
	}
	if i.fadeTime > 0 && i.running {
		i.stopping = true
		i.startFadeOut()
		return
	}
	i.halt()
}

// Pause parks the instance, fading out first when it has a fade time.
func (i *Instance[T]) Pause() {
	if i.clip == nil || !i.running {
		return
	}
	if i.fadeTime > 0 {
		i.stopping = false
		i.startFadeOut()
		return
	}
	i.clip.Pause(i.handle)
	i.running = false
}

// Resume continues a paused instance, fading in when it has a fade time.
// A running instance is only affected while it fades out.
func (i *Instance[T]) Resume() {
	if i.clip == nil {
		return
	}
	if i.running && !(i.IsFading() && !i.fadeIn) {
		return
	}
	i.stopping = false
	parked := !i.running
	if parked {
		i.clip.Resume(i.handle)
		i.running = true
	}
	if i.fadeTime <= 0 {
		return
	}
	if parked && !i.IsFading() {
		// Without a respatialization since the pause, fadeTarget still
		// holds the level the pause faded out from.
		if i.volume > 0 {
			i.fadeTarget = i.volume
		}
		i.applyVolume(0)
		i.fadeIn = true
		i.fadeProgress = 0
		return
	}
	i.startFadeIn()
}

func (i *Instance[T]) startFadeIn() {
	switch {
	case i.IsFading() && i.fadeIn:
		return
	case i.IsFading():
		i.fadeProgress = i.fadeTime - i.fadeProgress
	default:
		i.fadeTarget = i.volume
		i.fadeProgress = 0
		i.applyVolume(0)
	}
	i.fadeIn = true
}

func (i *Instance[T]) startFadeOut() {
	switch {
	case i.IsFading() && !i.fadeIn:
		return
	case i.IsFading():
		i.fadeProgress = i.fadeTime - i.fadeProgress
	default:
		i.fadeTarget = i.volume
		i.fadeProgress = 0
	}
	i.fadeIn = false
}

// halt stops the backend voice and marks the instance over.
func (i *Instance[T]) halt() {
	i.clip.Stop(i.handle)
	i.retire()
}

// retire marks the instance over without touching the backend voice.
func (i *Instance[T]) retire() {
	i.clip = nil
	i.running = false
	i.looping = false
	i.fadeProgress = notFading
}
