// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"time"
)

// Handle identifies one playing voice of a Sound. Backends issue it at play
// time; InvalidHandle reports that nothing was started.
type Handle int64

// InvalidHandle is returned by a backend that refused to play.
const InvalidHandle Handle = -1

// UnknownDuration is what a DurationResolver returns when it cannot tell.
const UnknownDuration float32 = -1

// Stream is a streamed clip owned by the platform backend, usually music.
type Stream interface {
	Play()
	Pause()
	Stop()
	IsPlaying() bool

	SetLooping(looping bool)
	IsLooping() bool

	// SetVolume sets the volume in [0,1].
	SetVolume(volume float32)
	Volume() float32

	// SetPan sets pan in [-1,1] and volume in [0,1] together.
	SetPan(pan, volume float32)

	// SetPosition seeks, in seconds.
	SetPosition(position float32)
	Position() float32

	Dispose() error
}

// Pitcher is implemented by streams that can change their playback rate.
type Pitcher interface {
	SetPitch(pitch float32)
}

// Sound is a fire-and-forget clip. Every Play or Loop starts a new voice and
// returns its handle; the remaining methods address one voice.
type Sound interface {
	Play(volume, pitch, pan float32) Handle
	Loop(volume, pitch, pan float32) Handle

	Stop(h Handle)
	Pause(h Handle)
	Resume(h Handle)

	SetLooping(h Handle, looping bool)
	SetPitch(h Handle, pitch float32)
	SetVolume(h Handle, volume float32)
	SetPan(h Handle, pan, volume float32)

	Dispose() error
}

// Playable is the control surface of a stateful track.
type Playable interface {
	Play()
	Pause()
	Stop()
	Resume()
	IsPlaying() bool

	IsLooping() bool
	SetLooping(looping bool)

	Volume() float32
	SetVolume(volume float32)

	Pan() float32
	SetPan(pan, volume float32)

	Pitch() float32
	SetPitch(pitch float32)

	// Position is the elapsed time in seconds.
	Position() float32
	SetPosition(position float32)

	// Duration in seconds, resolved once when the track was loaded.
	Duration() float32

	Dispose() error
}

// DurationResolver finds the length of an opened audio file. name is the
// source file name and r its content. It returns UnknownDuration (or any
// value <= 0) when the length cannot be found.
type DurationResolver interface {
	ResolveDuration(name string, r io.Reader) float32
}

// StreamInfo describes an audio container without decoding it.
type StreamInfo struct {
	SampleRate int
	Channels   int
	Duration   time.Duration
}

// Prober reads enough of a container to describe it.
type Prober interface {
	Probe(r io.Reader) (StreamInfo, error)
}
