// SPDX-License-Identifier: EPL-2.0

package beepaudio

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/rs/zerolog"
)

// Output mixes the voices of its streams and sounds at one sample rate.
type Output struct {
	rate    beep.SampleRate
	mixer   *beep.Mixer
	locker  sync.Locker
	logger  zerolog.Logger
	quality int

	maxVoices int
}

func NewOutput(rate beep.SampleRate, opts ...Option) *Output {
	s := newSettings(opts)
	return &Output{
		rate:      rate,
		mixer:     &beep.Mixer{},
		locker:    s.locker,
		logger:    s.logger,
		quality:   s.quality,
		maxVoices: s.maxVoices,
	}
}

func (o *Output) SampleRate() beep.SampleRate { return o.rate }

// Mixer is the streamer to play. It must only be pulled while the locker
// given through WithLocker is held.
func (o *Output) Mixer() *beep.Mixer { return o.mixer }

// Voices counts the voices the mixer still holds. Finished voices leave
// on the next pull.
func (o *Output) Voices() int {
	o.locker.Lock()
	defer o.locker.Unlock()

	return o.mixer.Len()
}

// Advance renders d of audio and throws it away, moving every voice
// forward. It is meant for headless use and tests.
func (o *Output) Advance(d time.Duration) {
	o.locker.Lock()
	defer o.locker.Unlock()

	buf := make([][2]float64, 512)
	for left := o.rate.N(d); left > 0; {
		n := min(left, len(buf))
		o.mixer.Stream(buf[:n])
		left -= n
	}
}

func (o *Output) add(v *voice) {
	o.locker.Lock()
	defer o.locker.Unlock()

	o.mixer.Add(v)
}

// ratio converts from to the output rate.
func (o *Output) ratio(from beep.SampleRate) float64 {
	if from <= 0 {
		return 1
	}
	return float64(from) / float64(o.rate)
}
