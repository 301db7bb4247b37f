// SPDX-License-Identifier: EPL-2.0

package beepaudio

import (
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/rs/zerolog"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/utils"
)

// Sound keeps a clip in memory and plays any number of voices of it, up
// to the output's voice cap.
type Sound struct {
	output *Output
	buffer *beep.Buffer
	logger zerolog.Logger

	voices map[audio.Handle]*voice
	next   audio.Handle

	disposed bool

	mtx *sync.Mutex
}

var _ audio.Sound = (*Sound)(nil)

// NewSound reads source to its end into memory.
func (o *Output) NewSound(source beep.Streamer, format beep.Format) *Sound {
	buffer := beep.NewBuffer(format)
	buffer.Append(source)

	return &Sound{
		output: o,
		buffer: buffer,
		logger: o.logger,
		voices: make(map[audio.Handle]*voice),
		mtx:    &sync.Mutex{},
	}
}

// Duration is the clip length, in seconds.
func (s *Sound) Duration() float32 {
	return float32(s.buffer.Format().SampleRate.D(s.buffer.Len()).Seconds())
}

func (s *Sound) Play(volume, pitch, pan float32) audio.Handle {
	return s.start(volume, pitch, pan, false)
}

func (s *Sound) Loop(volume, pitch, pan float32) audio.Handle {
	return s.start(volume, pitch, pan, true)
}

func (s *Sound) start(volume, pitch, pan float32, looping bool) audio.Handle {
	s.mtx.Lock()
	if s.disposed {
		s.mtx.Unlock()
		return audio.InvalidHandle
	}

	s.prune()
	if len(s.voices) >= s.output.maxVoices {
		s.mtx.Unlock()
		s.logger.Debug().Int("voices", s.output.maxVoices).Msg("voice limit reached")
		return audio.InvalidHandle
	}

	source := s.buffer.Streamer(0, s.buffer.Len())
	v := newVoice(s.mtx, source, s.output.ratio(s.buffer.Format().SampleRate), s.output.quality)
	v.looping = looping
	v.setVolume(utils.Clamp(volume, 0, 1))
	v.setPan(utils.Clamp(pan, -1, 1))
	v.setPitch(pitch)

	h := s.next
	s.next++
	s.voices[h] = v
	s.mtx.Unlock()

	s.output.add(v)
	return h
}

// Active counts voices that have not ended.
func (s *Sound) Active() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.prune()
	return len(s.voices)
}

func (s *Sound) Stop(h audio.Handle) {
	s.with(h, func(v *voice) {
		v.stopped = true
		delete(s.voices, h)
	})
}

func (s *Sound) Pause(h audio.Handle) {
	s.with(h, func(v *voice) { v.ctrl.Paused = true })
}

func (s *Sound) Resume(h audio.Handle) {
	s.with(h, func(v *voice) { v.ctrl.Paused = false })
}

func (s *Sound) SetLooping(h audio.Handle, looping bool) {
	s.with(h, func(v *voice) { v.looping = looping })
}

func (s *Sound) SetPitch(h audio.Handle, pitch float32) {
	s.with(h, func(v *voice) { v.setPitch(pitch) })
}

func (s *Sound) SetVolume(h audio.Handle, volume float32) {
	s.with(h, func(v *voice) { v.setVolume(utils.Clamp(volume, 0, 1)) })
}

func (s *Sound) SetPan(h audio.Handle, pan, volume float32) {
	s.with(h, func(v *voice) {
		v.setPan(utils.Clamp(pan, -1, 1))
		v.setVolume(utils.Clamp(volume, 0, 1))
	})
}

// Dispose stops every voice. Later Play and Loop calls are refused.
func (s *Sound) Dispose() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for h, v := range s.voices {
		v.stopped = true
		delete(s.voices, h)
	}
	s.disposed = true
	return nil
}

// with runs fn on the live voice for h. Unknown and ended handles are
// ignored.
func (s *Sound) with(h audio.Handle, fn func(v *voice)) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	v, ok := s.voices[h]
	if !ok {
		return
	}
	if !v.alive() {
		delete(s.voices, h)
		return
	}
	fn(v)
}

func (s *Sound) prune() {
	for h, v := range s.voices {
		if !v.alive() {
			delete(s.voices, h)
		}
	}
}
