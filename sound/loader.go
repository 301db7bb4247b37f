// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ik5/audsfx/audio"
)

// DefaultDuration is used for clips whose length nobody could tell, in
// seconds.
const DefaultDuration float32 = 1

// Params overrides what a Loader would otherwise work out.
type Params struct {
	// Title defaults to the file name.
	Title string
	// Duration in seconds; <= 0 asks the resolver.
	Duration float32
	// PitchRange > 0 builds a pitch-shifting clip. At most 1.
	PitchRange float32
}

type Loader struct {
	resolver        audio.DurationResolver
	defaultDuration float32

	logger zerolog.Logger
	rng    *rand.Rand
}

// NewLoader returns a loader asking resolver, which may be nil, for
// durations. defaultDuration <= 0 means DefaultDuration.
func NewLoader(resolver audio.DurationResolver, defaultDuration float32, opts ...Option) *Loader {
	if defaultDuration <= 0 {
		defaultDuration = DefaultDuration
	}
	s := newSettings(opts)
	return &Loader{
		resolver:        resolver,
		defaultDuration: defaultDuration,
		logger:          s.logger,
		rng:             s.rng,
	}
}

// Load wraps s, opened from the file name whose content r holds. r may be
// nil when the duration is given.
func (l *Loader) Load(s audio.Sound, name string, r io.Reader, params Params) *Clip {
	title := params.Title
	if title == "" {
		title = filepath.Base(name)
	}

	duration := params.Duration
	if duration <= 0 && l.resolver != nil && r != nil {
		duration = l.resolver.ResolveDuration(name, r)
	}
	if duration <= 0 {
		l.logger.Debug().Str("sound", title).Float32("default", l.defaultDuration).Msg("duration unknown, using default")
		duration = l.defaultDuration
	}

	if params.PitchRange > 0 {
		return NewPitchShiftingClip(s, title, duration, params.PitchRange, l.rng)
	}
	return NewClip(s, title, duration)
}

// LoadFile is Load with the content read from path.
func (l *Loader) LoadFile(s audio.Sound, path string, params Params) (*Clip, error) {
	if params.Duration > 0 || l.resolver == nil {
		return l.Load(s, path, nil, params), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return l.Load(s, path, f, params), nil
}
