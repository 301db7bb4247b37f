// SPDX-License-Identifier: EPL-2.0

package config

import (
	"strings"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/music"
	"github.com/ik5/audsfx/sound"
	"github.com/ik5/audsfx/spatial"
	"github.com/ik5/audsfx/utils"
)

var curves = map[string]utils.Interpolation{
	"linear":   utils.Linear,
	"smooth":   utils.Smooth,
	"smoother": utils.Smoother,
	"pow2in":   utils.Pow2In,
	"pow2out":  utils.Pow2Out,
	"pow3in":   utils.Pow3In,
	"pow3out":  utils.Pow3Out,
	"sine":     utils.Sine,
	"sinein":   utils.SineIn,
	"sineout":  utils.SineOut,
}

// Curve looks an interpolation up by name, ignoring case, dashes and
// underscores. The empty name is linear.
func Curve(name string) (utils.Interpolation, bool) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name))
	if key == "" {
		return utils.Linear, true
	}
	f, ok := curves[key]
	return f, ok
}

func (m Music) ApplyPlayer(p *music.Player) {
	p.SetVolume(m.Volume)
	p.SetPan(m.Pan)
	p.SetFading(m.Fade)
	p.SetFadeDuration(m.FadeDuration)
	if f, ok := Curve(m.FadeCurve); ok {
		p.SetFadeInterpolation(f)
	}
	p.SetShuffle(m.Shuffle)
	p.SetRepeat(m.Repeat)
}

func (m Music) ApplyPlaylist(p *music.Playlist) {
	p.SetPan(m.Pan, m.Volume)
	p.SetShuffle(m.Shuffle)
	p.SetLooping(m.Repeat)
}

func (m Music) Loader(resolver audio.DurationResolver, opts ...music.Option) *music.Loader {
	return music.NewLoader(resolver, m.DefaultDuration, opts...)
}

func (s Sound) Player(opts ...sound.Option) *sound.Player {
	return sound.NewPlayer(s.Volume, opts...)
}

func (s Sound) Loader(resolver audio.DurationResolver, opts ...sound.Option) *sound.Loader {
	return sound.NewLoader(resolver, s.DefaultDuration, opts...)
}

// Options turns the section into spatial player options.
func (s Spatial) Options() []spatial.Option {
	return []spatial.Option{
		spatial.WithPoolSize(s.PoolSize),
		spatial.WithFadeTime(s.FadeTime),
	}
}

// Planar builds the spatializer for the configured ranges.
func (s Spatial) Planar() *spatial.Planar {
	return spatial.NewPlanar(s.HorizontalRange, s.VerticalRange)
}

// ApplySpatial sets the volume and fade time of a running player.
func ApplySpatial[T any](s Spatial, p *spatial.Player[T]) {
	p.SetVolume(s.Volume)
	p.SetFadeTime(s.FadeTime)
}
