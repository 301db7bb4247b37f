// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"
	"time"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/internal/readseek"
)

// Prober reads the Vorbis identification header and the granule position
// of the last Ogg page.
type Prober struct{}

var _ audio.Prober = Prober{}

func (Prober) Probe(r io.Reader) (audio.StreamInfo, error) {
	rs, err := readseek.From(r)
	if err != nil {
		return audio.StreamInfo{}, err
	}

	dec, err := oggvorbis.NewReader(rs)
	if err != nil {
		return audio.StreamInfo{}, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	rate := dec.SampleRate()
	frames := dec.Length()
	if rate <= 0 || frames <= 0 {
		return audio.StreamInfo{}, ErrUnknownVorbisLength
	}

	return audio.StreamInfo{
		SampleRate: rate,
		Channels:   dec.Channels(),
		Duration:   time.Duration(frames) * time.Second / time.Duration(rate),
	}, nil
}
