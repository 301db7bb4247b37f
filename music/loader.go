// SPDX-License-Identifier: EPL-2.0

package music

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ik5/audsfx/audio"
)

// DefaultDuration is used for tracks whose length nobody could tell, in
// seconds.
const DefaultDuration float32 = 60

// Params overrides what a Loader would otherwise work out.
type Params struct {
	// Title defaults to the file name.
	Title string
	// Duration in seconds; <= 0 asks the resolver.
	Duration float32
}

// Loader builds tracks, resolving their duration once at load time.
type Loader struct {
	resolver        audio.DurationResolver
	defaultDuration float32
	logger          zerolog.Logger
}

// NewLoader returns a loader asking resolver for durations. resolver may be
// nil; defaultDuration <= 0 means DefaultDuration.
func NewLoader(resolver audio.DurationResolver, defaultDuration float32, opts ...Option) *Loader {
	if defaultDuration <= 0 {
		defaultDuration = DefaultDuration
	}
	s := newSettings(opts)
	return &Loader{
		resolver:        resolver,
		defaultDuration: defaultDuration,
		logger:          s.logger,
	}
}

// Load wraps s, which was opened from the file name whose content r holds.
// r is only read when the duration has to be resolved, and may be nil.
func (l *Loader) Load(s audio.Stream, name string, r io.Reader, params Params) *Track {
	title := params.Title
	if title == "" {
		title = filepath.Base(name)
	}

	duration := params.Duration
	if duration <= 0 && l.resolver != nil && r != nil {
		duration = l.resolver.ResolveDuration(name, r)
	}
	if duration <= 0 {
		l.logger.Debug().Str("track", title).Float32("default", l.defaultDuration).Msg("duration unknown, using default")
		duration = l.defaultDuration
	}

	return NewTrack(s, title, duration)
}

// LoadFile is Load with the content read from path.
func (l *Loader) LoadFile(s audio.Stream, path string, params Params) (*Track, error) {
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
