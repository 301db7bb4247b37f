// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
)

type settings struct {
	logger zerolog.Logger
	rng    *rand.Rand
}

func newSettings(opts []Option) settings {
	s := settings{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Option configures a Player, a Loop or a Loader.
type Option func(*settings)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithRand sets the source of pitch variations of the clips a Loader builds.
func WithRand(rng *rand.Rand) Option {
	return func(s *settings) { s.rng = rng }
}
