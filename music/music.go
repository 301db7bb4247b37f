// SPDX-License-Identifier: EPL-2.0

package music

import (
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/effect"
)

// Music is a playable that a Playlist can sequence: a Track, or another
// Playlist.
type Music interface {
	audio.Playable

	Title() string

	AddEffect(e effect.Effect)
	RemoveEffect(e effect.Effect)

	// Update advances the music by delta seconds. It returns true when the
	// music is no longer playing.
	Update(delta float32) bool

	SetOnCompletion(fn func(Music))
}

type settings struct {
	registry *audio.Registry
	logger   zerolog.Logger
	rng      *rand.Rand
}

func newSettings(opts []Option) settings {
	s := settings{
		registry: audio.DefaultRegistry,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Option configures a Playlist, a Player or a Loader.
type Option func(*settings)

// WithRegistry sets the registry used to keep music in one playlist at a
// time. It defaults to audio.DefaultRegistry.
func WithRegistry(r *audio.Registry) Option {
	return func(s *settings) {
		if r != nil {
			s.registry = r
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithRand sets the source used for shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(s *settings) { s.rng = rng }
}
