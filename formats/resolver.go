// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/formats/aiff"
	"github.com/ik5/audsfx/formats/mp3"
	"github.com/ik5/audsfx/formats/vorbis"
	"github.com/ik5/audsfx/formats/wav"
)

// Resolver picks a Prober by file extension (e.g., "wav", "mp3", "ogg") and
// turns what it reports into seconds.
type Resolver struct {
	probers map[string]audio.Prober
	logger  zerolog.Logger

	mtx *sync.Mutex
}

var _ audio.DurationResolver = (*Resolver)(nil)

func NewResolver(logger zerolog.Logger) *Resolver {
	return &Resolver{
		probers: make(map[string]audio.Prober),
		logger:  logger,
		mtx:     &sync.Mutex{},
	}
}

// NewDefaultResolver knows WAV, MP3, Ogg Vorbis and AIFF.
func NewDefaultResolver(logger zerolog.Logger) *Resolver {
	r := NewResolver(logger)
	r.Register("wav", wav.Prober{})
	r.Register("mp3", mp3.Prober{})
	r.Register("ogg", vorbis.Prober{})
	r.Register("aiff", aiff.Prober{})
	r.Register("aif", aiff.Prober{})
	return r
}

// Register binds ext, with or without its leading dot and in any case, to
// p. A later registration replaces an earlier one.
func (r *Resolver) Register(ext string, p audio.Prober) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.probers[normalize(ext)] = p
}

func (r *Resolver) Get(ext string) (audio.Prober, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, ok := r.probers[normalize(ext)]
	return p, ok
}

// Probe describes r using the prober registered for the extension of name.
func (r *Resolver) Probe(name string, rd io.Reader) (audio.StreamInfo, error) {
	ext := filepath.Ext(name)
	p, ok := r.Get(ext)
	if !ok {
		return audio.StreamInfo{}, audio.ErrUnknownFormat
	}
	return p.Probe(rd)
}

// ResolveDuration returns the length of rd in seconds, or
// audio.UnknownDuration when the format is unknown or the probe fails.
func (r *Resolver) ResolveDuration(name string, rd io.Reader) float32 {
	info, err := r.Probe(name, rd)
	if err != nil {
		r.logger.Debug().Err(err).Str("file", name).Msg("cannot resolve duration")
		return audio.UnknownDuration
	}
	if info.Duration <= 0 {
		return audio.UnknownDuration
	}
	return float32(info.Duration.Seconds())
}

func normalize(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
