// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/internal/readseek"
)

// Prober reads the COMM chunk of an AIFF file.
type Prober struct{}

var _ audio.Prober = Prober{}

func (Prober) Probe(r io.Reader) (audio.StreamInfo, error) {
	// go-audio requires io.ReadSeeker
	rs, err := readseek.From(r)
	if err != nil {
		return audio.StreamInfo{}, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return audio.StreamInfo{}, ErrNotAiffFile
	}

	dec.ReadInfo()
	format := dec.Format()
	if format == nil || format.SampleRate <= 0 || format.NumChannels <= 0 {
		return audio.StreamInfo{}, ErrUnsupportedAiffLayout
	}

	d, err := dec.Duration()
	if err != nil {
		return audio.StreamInfo{}, fmt.Errorf("%w: %w", ErrUnknownAiffLength, err)
	}

	return audio.StreamInfo{
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		Duration:   d,
	}, nil
}
