// SPDX-License-Identifier: EPL-2.0

package beepaudio

import (
	"sync"

	"github.com/rs/zerolog"
)

const (
	// DefaultQuality is the resampling quality handed to beep.
	DefaultQuality = 4
	// DefaultMaxVoices caps the voices a Sound plays at once.
	DefaultMaxVoices = 16
)

type settings struct {
	logger    zerolog.Logger
	locker    sync.Locker
	quality   int
	maxVoices int
}

type Option func(*settings)

func newSettings(opts []Option) settings {
	s := settings{
		logger:    zerolog.Nop(),
		locker:    &sync.Mutex{},
		quality:   DefaultQuality,
		maxVoices: DefaultMaxVoices,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithLocker guards the mixer. Pass the speaker lock when the mixer is
// played by the speaker.
func WithLocker(l sync.Locker) Option {
	return func(s *settings) {
		if l != nil {
			s.locker = l
		}
	}
}

// WithQuality sets the resampling quality, from 1 to 64.
func WithQuality(q int) Option {
	return func(s *settings) {
		if q >= 1 && q <= 64 {
			s.quality = q
		}
	}
}

// WithMaxVoices caps the voices each Sound plays at once. Further Play
// calls are refused with audio.InvalidHandle.
func WithMaxVoices(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxVoices = n
		}
	}
}
