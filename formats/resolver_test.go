// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/internal/audiotest"
)

type fixedProber struct {
	info audio.StreamInfo
	err  error
}

func (f fixedProber) Probe(io.Reader) (audio.StreamInfo, error) { return f.info, f.err }

func TestResolver_RegisterNormalizesExtension(t *testing.T) {
	t.Parallel()

	r := NewResolver(zerolog.Nop())
	r.Register(".FLAC", fixedProber{})

	for _, ext := range []string{"flac", ".flac", "FLAC", ".Flac"} {
		if _, ok := r.Get(ext); !ok {
			t.Errorf("Get(%q) found = false, want true", ext)
		}
	}
	if _, ok := r.Get("wav"); ok {
		t.Error("Get(\"wav\") found = true on an empty resolver, want false")
	}
}

func TestNewDefaultResolver_Extensions(t *testing.T) {
	t.Parallel()

	r := NewDefaultResolver(zerolog.Nop())
	for _, ext := range []string{"wav", "mp3", "ogg", "aiff", "aif"} {
		if _, ok := r.Get(ext); !ok {
			t.Errorf("Get(%q) found = false, want true", ext)
		}
	}
}

func TestResolver_ResolveDuration(t *testing.T) {
	t.Parallel()

	r := NewResolver(zerolog.Nop())
	r.Register("ok", fixedProber{info: audio.StreamInfo{Duration: 1500 * time.Millisecond}})
	r.Register("zero", fixedProber{})
	r.Register("bad", fixedProber{err: errors.New("broken header")})

	tests := []struct {
		name string
		want float32
	}{
		{"sfx/jump.ok", 1.5},
		{"SFX/JUMP.OK", 1.5},
		{"sfx/jump.zero", audio.UnknownDuration},
		{"sfx/jump.bad", audio.UnknownDuration},
		{"sfx/jump.unknown", audio.UnknownDuration},
		{"sfx/jump", audio.UnknownDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := r.ResolveDuration(tt.name, bytes.NewReader(nil)); got != tt.want {
				t.Errorf("ResolveDuration(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestResolver_ProbeUnknownFormat(t *testing.T) {
	t.Parallel()

	r := NewResolver(zerolog.Nop())
	_, err := r.Probe("theme.xm", bytes.NewReader(nil))
	if !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("Probe() error = %v, want %v", err, audio.ErrUnknownFormat)
	}
}

func TestDefaultResolver_WAV(t *testing.T) {
	t.Parallel()

	r := NewDefaultResolver(zerolog.Nop())
	data := audiotest.WAV16(44100, 2, 44100*2)

	if got := r.ResolveDuration("music/theme.WAV", bytes.NewReader(data)); got != 2 {
		t.Errorf("ResolveDuration() = %v, want 2", got)
	}
	if got := r.ResolveDuration("music/theme.mp3", bytes.NewReader(data)); got != audio.UnknownDuration {
		t.Errorf("ResolveDuration() of WAV content named .mp3 = %v, want %v", got, audio.UnknownDuration)
	}
}
