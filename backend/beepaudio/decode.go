// SPDX-License-Identifier: EPL-2.0

package beepaudio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ik5/audsfx/audio"
)

// Decode picks a beep decoder by the extension of name. rc should also be
// an io.Seeker for SetPosition and looping to work.
func Decode(name string, rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		s      beep.StreamSeekCloser
		format beep.Format
		err    error
	)

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".wav":
		s, format, err = wav.Decode(rc)
	case ".mp3":
		s, format, err = mp3.Decode(rc)
	case ".ogg":
		s, format, err = vorbis.Decode(rc)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", audio.ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("decoding %s: %w", name, err)
	}
	return s, format, nil
}

// OpenStream decodes rc into a stream of o.
func (o *Output) OpenStream(name string, rc io.ReadCloser) (*Stream, error) {
	s, format, err := Decode(name, rc)
	if err != nil {
		return nil, err
	}
	return o.NewStream(s, format), nil
}

// OpenSound decodes rc fully into a sound of o and closes the decoder.
func (o *Output) OpenSound(name string, rc io.ReadCloser) (*Sound, error) {
	s, format, err := Decode(name, rc)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return o.NewSound(s, format), nil
}
