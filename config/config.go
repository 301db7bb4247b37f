// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audsfx/music"
	"github.com/ik5/audsfx/sound"
	"github.com/ik5/audsfx/spatial"
)

// Config is the audio section of a game's settings file.
type Config struct {
	Music   Music   `yaml:"music"`
	Sound   Sound   `yaml:"sound"`
	Spatial Spatial `yaml:"spatial"`
}

type Music struct {
	Volume float32 `yaml:"volume"`
	Pan    float32 `yaml:"pan"`

	Fade         bool    `yaml:"fade"`
	FadeDuration float32 `yaml:"fade_duration"`
	// FadeCurve names one of the utils interpolations, e.g. "smooth".
	FadeCurve string `yaml:"fade_curve"`

	Shuffle bool `yaml:"shuffle"`
	Repeat  bool `yaml:"repeat"`

	// DefaultDuration is used for tracks of unknown length, in seconds.
	DefaultDuration float32 `yaml:"default_duration"`
}

type Sound struct {
	Volume          float32 `yaml:"volume"`
	DefaultDuration float32 `yaml:"default_duration"`
}

type Spatial struct {
	Volume   float32 `yaml:"volume"`
	FadeTime float32 `yaml:"fade_time"`
	PoolSize int     `yaml:"pool_size"`

	HorizontalRange float32 `yaml:"horizontal_range"`
	VerticalRange   float32 `yaml:"vertical_range"`
}

// Default matches the defaults of the players and loaders.
func Default() Config {
	return Config{
		Music: Music{
			Volume:          1,
			Fade:            true,
			FadeDuration:    music.DefaultFadeDuration,
			FadeCurve:       "linear",
			DefaultDuration: music.DefaultDuration,
		},
		Sound: Sound{
			Volume:          1,
			DefaultDuration: sound.DefaultDuration,
		},
		Spatial: Spatial{
			Volume:   1,
			PoolSize: spatial.DefaultPoolSize,
		},
	}
}

// Load reads a YAML document over the defaults. Unknown keys are errors.
func Load(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal writes cfg back as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
