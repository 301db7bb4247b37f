// SPDX-License-Identifier: EPL-2.0

package audiotest

// Stream is an in-memory audio.Stream (and audio.Pitcher). It never ends on
// its own: call Finish to simulate the backend reaching the end of the clip.
type Stream struct {
	playing bool
	paused  bool
	looping bool
	refuse  bool

	volume   float32
	pan      float32
	pitch    float32
	position float32

	plays    int
	pauses   int
	stops    int
	disposed bool
}

// NewStream creates a stopped stream at full volume.
func NewStream() *Stream {
	return &Stream{volume: 1, pitch: 1}
}

// Refuse makes subsequent Play calls silently do nothing, like a backend
// that ran out of voices.
func (s *Stream) Refuse(refuse bool) { s.refuse = refuse }

// Finish simulates natural completion.
func (s *Stream) Finish() {
	s.playing = false
	s.paused = false
	s.position = 0
}

func (s *Stream) Play() {
	if s.refuse {
		return
	}
	s.playing = true
	s.paused = false
	s.plays++
}

func (s *Stream) Pause() {
	if !s.playing {
		return
	}
	s.playing = false
	s.paused = true
	s.pauses++
}

func (s *Stream) Stop() {
	s.playing = false
	s.paused = false
	s.position = 0
	s.stops++
}

func (s *Stream) IsPlaying() bool            { return s.playing }
func (s *Stream) IsPaused() bool             { return s.paused }
func (s *Stream) SetLooping(looping bool)    { s.looping = looping }
func (s *Stream) IsLooping() bool            { return s.looping }
func (s *Stream) SetVolume(volume float32)   { s.volume = volume }
func (s *Stream) Volume() float32            { return s.volume }
func (s *Stream) Pan() float32               { return s.pan }
func (s *Stream) SetPitch(pitch float32)     { s.pitch = pitch }
func (s *Stream) Pitch() float32             { return s.pitch }
func (s *Stream) SetPosition(p float32)      { s.position = p }
func (s *Stream) Position() float32          { return s.position }
func (s *Stream) Plays() int                 { return s.plays }
func (s *Stream) Pauses() int                { return s.pauses }
func (s *Stream) Stops() int                 { return s.stops }
func (s *Stream) Disposed() bool             { return s.disposed }
func (s *Stream) SetPan(pan, volume float32) { s.pan, s.volume = pan, volume }

func (s *Stream) Dispose() error {
	s.disposed = true
	return nil
}
