// SPDX-License-Identifier: EPL-2.0

package beepaudio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/rs/zerolog"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/utils"
)

// Stream plays a decoded source, usually music, one voice at a time.
type Stream struct {
	output *Output
	source beep.StreamSeeker
	format beep.Format
	logger zerolog.Logger

	voice *voice

	looping bool
	volume  float32
	pan     float32
	pitch   float32

	disposed bool

	mtx *sync.Mutex
}

var (
	_ audio.Stream  = (*Stream)(nil)
	_ audio.Pitcher = (*Stream)(nil)
)

// NewStream wraps source, decoded with format. When source is also an
// io.Closer, Dispose closes it.
func (o *Output) NewStream(source beep.StreamSeeker, format beep.Format) *Stream {
	return &Stream{
		output: o,
		source: source,
		format: format,
		logger: o.logger,
		volume: 1,
		pitch:  1,
		mtx:    &sync.Mutex{},
	}
}

// Play starts from the current position, or resumes a paused voice. A
// source that played to its end starts over.
func (s *Stream) Play() {
	s.mtx.Lock()
	if s.disposed {
		s.mtx.Unlock()
		return
	}
	if s.voice != nil && s.voice.alive() {
		s.voice.ctrl.Paused = false
		s.mtx.Unlock()
		return
	}

	if s.source.Position() >= s.source.Len() {
		s.seek(0)
	}
	v := newVoice(s.mtx, s.source, s.output.ratio(s.format.SampleRate), s.output.quality)
	v.looping = s.looping
	v.setVolume(s.volume)
	v.setPan(s.pan)
	v.setPitch(s.pitch)
	s.voice = v
	s.mtx.Unlock()

	// The mixer pulls under the output lock and then takes s.mtx, so the
	// voice is added without holding s.mtx.
	s.output.add(v)
}

func (s *Stream) Pause() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.voice != nil && s.voice.alive() {
		s.voice.ctrl.Paused = true
	}
}

// Stop ends the voice and rewinds.
func (s *Stream) Stop() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.voice != nil {
		s.voice.stopped = true
	}
	s.seek(0)
}

func (s *Stream) IsPlaying() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.voice != nil && s.voice.alive() && !s.voice.ctrl.Paused
}

func (s *Stream) SetLooping(looping bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.looping = looping
	if s.voice != nil {
		s.voice.looping = looping
	}
}

func (s *Stream) IsLooping() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.looping
}

func (s *Stream) SetVolume(volume float32) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.volume = utils.Clamp(volume, 0, 1)
	if s.voice != nil {
		s.voice.setVolume(s.volume)
	}
}

func (s *Stream) Volume() float32 {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.volume
}

func (s *Stream) SetPan(pan, volume float32) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.pan = utils.Clamp(pan, -1, 1)
	s.volume = utils.Clamp(volume, 0, 1)
	if s.voice != nil {
		s.voice.setPan(s.pan)
		s.voice.setVolume(s.volume)
	}
}

// SetPitch changes the playback rate; 1 is the recorded speed.
func (s *Stream) SetPitch(pitch float32) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.pitch = pitch
	if s.voice != nil {
		s.voice.setPitch(pitch)
	}
}

func (s *Stream) SetPosition(position float32) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	p := s.format.SampleRate.N(time.Duration(float64(position) * float64(time.Second)))
	s.seek(max(0, min(p, s.source.Len())))
}

func (s *Stream) Position() float32 {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return float32(s.format.SampleRate.D(s.source.Position()).Seconds())
}

// Duration is the length of the source, in seconds.
func (s *Stream) Duration() float32 {
	return float32(s.format.SampleRate.D(s.source.Len()).Seconds())
}

func (s *Stream) Dispose() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.disposed {
		return nil
	}
	s.disposed = true
	if s.voice != nil {
		s.voice.stopped = true
	}

	if c, ok := s.source.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("closing stream: %w", err)
		}
	}
	return nil
}

func (s *Stream) seek(p int) {
	if err := s.source.Seek(p); err != nil {
		s.logger.Error().Err(err).Int("position", p).Msg("stream seek failed")
	}
}
