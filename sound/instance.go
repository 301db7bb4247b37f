// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/utils"
)

// Instance is one voice started from a Clip.
type Instance struct {
	clip     *Clip
	handle   audio.Handle
	duration float32
	elapsed  float32

	volume float32
	pan    float32

	looping bool
	running bool
	// stopped instances are reclaimed without firing the completion callback.
	stopped bool

	onCompletion func(*Instance)
}

func newInstance(c *Clip, volume float32) *Instance {
	return &Instance{
		clip:     c,
		handle:   c.Play(volume, 1, 0),
		duration: c.Duration(),
		volume:   volume,
		running:  true,
	}
}

func (i *Instance) Clip() *Clip          { return i.clip }
func (i *Instance) Handle() audio.Handle { return i.handle }
func (i *Instance) Duration() float32    { return i.duration }

// Elapsed is the time played within the current pass of the clip.
func (i *Instance) Elapsed() float32 { return i.elapsed }

func (i *Instance) IsRunning() bool { return i.running }

// IsStopped reports whether Stop was called.
func (i *Instance) IsStopped() bool { return i.stopped }

// Update counts delta seconds down. It returns true when the instance is
// over, firing the completion callback when it ended on its own.
func (i *Instance) Update(delta float32) bool {
	if i.stopped {
		return true
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
	i.elapsed = 0
	if i.onCompletion != nil {
		i.onCompletion(i)
	}
	return true
}

func (i *Instance) IsLooping() bool { return i.looping }

func (i *Instance) SetLooping(looping bool) {
	i.looping = looping
	i.clip.SetLooping(i.handle, looping)
}

func (i *Instance) Volume() float32 { return i.volume }

// SetVolume clamps volume to [0,1].
func (i *Instance) SetVolume(volume float32) {
	i.volume = utils.Clamp(volume, 0, 1)
	i.clip.SetVolume(i.handle, i.volume)
}

func (i *Instance) Pan() float32 { return i.pan }

// SetPan clamps pan to [-1,1].
func (i *Instance) SetPan(pan float32) {
	i.pan = utils.Clamp(pan, -1, 1)
	i.clip.SetPan(i.handle, i.pan, i.volume)
}

// SetOnCompletion sets the function called when the instance ends on its
// own. nil removes it.
func (i *Instance) SetOnCompletion(fn func(*Instance)) { i.onCompletion = fn }

func (i *Instance) Stop() {
	i.clip.Stop(i.handle)
	i.retire()
}

// retire marks the instance over without touching the backend voice.
func (i *Instance) retire() {
	i.running = false
	i.looping = false
	i.stopped = true
}

func (i *Instance) Pause() {
	i.clip.Pause(i.handle)
	i.running = false
}

func (i *Instance) Resume() {
	if i.stopped {
		return
	}
	i.clip.Resume(i.handle)
	i.running = true
}
