// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"time"

	"github.com/go-audio/wav"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/internal/readseek"
)

// Prober reads the RIFF header and the data chunk size of a WAV file.
type Prober struct{}

var _ audio.Prober = Prober{}

func (Prober) Probe(r io.Reader) (audio.StreamInfo, error) {
	rs, err := readseek.From(r)
	if err != nil {
		return audio.StreamInfo{}, err
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return audio.StreamInfo{}, ErrNotWavFile
	}

	dec.ReadInfo()
	format := dec.Format()
	if format == nil || format.SampleRate <= 0 || format.NumChannels <= 0 {
		return audio.StreamInfo{}, ErrUnsupportedWavLayout
	}

	// Duration() counts the whole RIFF chunk, so the length comes from the
	// data chunk alone.
	if err := dec.FwdToPCM(); err != nil {
		return audio.StreamInfo{}, fmt.Errorf("%w: %w", ErrUnknownWavLength, err)
	}
	frameSize := int(dec.NumChans) * int(dec.BitDepth) / 8
	if frameSize <= 0 || dec.PCMSize < 0 {
		return audio.StreamInfo{}, ErrUnsupportedWavLayout
	}
	frames := dec.PCMSize / frameSize

	return audio.StreamInfo{
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		Duration:   time.Duration(frames) * time.Second / time.Duration(format.SampleRate),
	}, nil
}
