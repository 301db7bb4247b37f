// SPDX-License-Identifier: EPL-2.0

package beepaudio

import (
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// voice is one playback of a source through the mixer. Its state is
// guarded by the mutex of the stream or sound that owns it, which is also
// taken while the mixer pulls from it.
type voice struct {
	mtx    *sync.Mutex
	source beep.StreamSeeker

	// rate converts the source rate to the output rate.
	rate float64

	looping  bool
	stopped  bool
	finished bool

	resampler *beep.Resampler
	ctrl      *beep.Ctrl
	gain      *effects.Gain
	pan       *effects.Pan
}

func newVoice(mtx *sync.Mutex, source beep.StreamSeeker, rate float64, quality int) *voice {
	v := &voice{
		mtx:    mtx,
		source: source,
		rate:   rate,
	}
	v.resampler = beep.ResampleRatio(quality, rate, looper{v})
	v.ctrl = &beep.Ctrl{Streamer: v.resampler}
	v.gain = &effects.Gain{Streamer: v.ctrl}
	v.pan = &effects.Pan{Streamer: v.gain}
	return v
}

func (v *voice) Stream(samples [][2]float64) (int, bool) {
	v.mtx.Lock()
	defer v.mtx.Unlock()

	if v.stopped || v.finished {
		return 0, false
	}
	n, ok := v.pan.Stream(samples)
	// The mixer drops a streamer after a short read and never pulls it
	// again.
	if !ok || n < len(samples) {
		v.finished = true
	}
	return n, ok
}

func (v *voice) Err() error {
	return v.source.Err()
}

// The setters below expect the owner's mutex to be held.

func (v *voice) alive() bool { return !v.stopped && !v.finished }

func (v *voice) setVolume(volume float32) {
	// Gain scales by 1+Gain.
	v.gain.Gain = float64(volume) - 1
}

func (v *voice) setPan(pan float32) { v.pan.Pan = float64(pan) }

func (v *voice) setPitch(pitch float32) {
	if pitch <= 0 {
		pitch = 1
	}
	v.resampler.SetRatio(v.rate * float64(pitch))
}

// looper restarts the source at its end while the voice loops.
type looper struct {
	v *voice
}

func (l looper) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		sn, sok := l.v.source.Stream(samples[n:])
		n += sn
		if sok && sn > 0 {
			continue
		}
		if !l.v.looping || l.v.source.Len() == 0 {
			return n, n > 0
		}
		if err := l.v.source.Seek(0); err != nil {
			return n, n > 0
		}
	}
	return n, true
}

func (l looper) Err() error {
	return l.v.source.Err()
}
