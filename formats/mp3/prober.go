// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"
	"time"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/internal/readseek"
)

// go-mp3 always decodes to 16-bit little-endian stereo.
const (
	channels      = 2
	bytesPerFrame = channels * 2
)

// Prober scans the MPEG frames of an MP3 file to find its length.
type Prober struct{}

var _ audio.Prober = Prober{}

func (Prober) Probe(r io.Reader) (audio.StreamInfo, error) {
	// Length is only known when the decoder can seek.
	rs, err := readseek.From(r)
	if err != nil {
		return audio.StreamInfo{}, err
	}

	dec, err := gomp3.NewDecoder(rs)
	if err != nil {
		return audio.StreamInfo{}, fmt.Errorf("%w: %w", ErrNotMp3File, err)
	}

	rate := dec.SampleRate()
	size := dec.Length()
	if rate <= 0 || size < 0 {
		return audio.StreamInfo{}, ErrUnknownMp3Length
	}

	frames := size / bytesPerFrame

	return audio.StreamInfo{
		SampleRate: rate,
		Channels:   channels,
		Duration:   time.Duration(frames) * time.Second / time.Duration(rate),
	}, nil
}
