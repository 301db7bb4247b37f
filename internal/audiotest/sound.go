// SPDX-License-Identifier: EPL-2.0

package audiotest

import "github.com/ik5/audsfx/audio"

// Voice is what the fake Sound remembers about one Play or Loop call.
type Voice struct {
	Volume  float32
	Pitch   float32
	Pan     float32
	Looping bool
	Paused  bool
	Stopped bool
}

// Sound is an in-memory audio.Sound. Handles count up from zero unless
// NextHandle is set.
type Sound struct {
	voices map[audio.Handle]*Voice
	next   audio.Handle
	refuse bool
	plays  int

	disposed bool
}

func NewSound() *Sound {
	return &Sound{voices: make(map[audio.Handle]*Voice)}
}

// Refuse makes Play and Loop return audio.InvalidHandle.
func (s *Sound) Refuse(refuse bool) { s.refuse = refuse }

// NextHandle forces the handle issued by the next Play or Loop, to simulate
// backends that recycle handles.
func (s *Sound) NextHandle(h audio.Handle) { s.next = h }

// Voice returns the voice for h, or nil.
func (s *Sound) Voice(h audio.Handle) *Voice { return s.voices[h] }

// Plays counts accepted Play and Loop calls.
func (s *Sound) Plays() int { return s.plays }

func (s *Sound) Disposed() bool { return s.disposed }

func (s *Sound) Play(volume, pitch, pan float32) audio.Handle {
	return s.start(volume, pitch, pan, false)
}

func (s *Sound) Loop(volume, pitch, pan float32) audio.Handle {
	return s.start(volume, pitch, pan, true)
}

func (s *Sound) start(volume, pitch, pan float32, looping bool) audio.Handle {
	if s.refuse {
		return audio.InvalidHandle
	}
	h := s.next
	s.next++
	s.plays++
	s.voices[h] = &Voice{Volume: volume, Pitch: pitch, Pan: pan, Looping: looping}
	return h
}

func (s *Sound) Stop(h audio.Handle) {
	if v, ok := s.voices[h]; ok {
		v.Stopped = true
	}
}

func (s *Sound) Pause(h audio.Handle) {
	if v, ok := s.voices[h]; ok {
		v.Paused = true
	}
}

func (s *Sound) Resume(h audio.Handle) {
	if v, ok := s.voices[h]; ok {
		v.Paused = false
	}
}

func (s *Sound) SetLooping(h audio.Handle, looping bool) {
	if v, ok := s.voices[h]; ok {
		v.Looping = looping
	}
}

func (s *Sound) SetPitch(h audio.Handle, pitch float32) {
	if v, ok := s.voices[h]; ok {
		v.Pitch = pitch
	}
}

func (s *Sound) SetVolume(h audio.Handle, volume float32) {
	if v, ok := s.voices[h]; ok {
		v.Volume = volume
	}
}

func (s *Sound) SetPan(h audio.Handle, pan, volume float32) {
	if v, ok := s.voices[h]; ok {
		v.Pan = pan
		v.Volume = volume
	}
}

func (s *Sound) Dispose() error {
	s.disposed = true
	return nil
}
