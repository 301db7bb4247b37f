// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
)

// Validate reports every out of range field, joined.
func (c Config) Validate() error {
	var errs []error

	errs = append(errs,
		volume("music.volume", c.Music.Volume),
		pan("music.pan", c.Music.Pan),
		duration("music.fade_duration", c.Music.FadeDuration),
		duration("music.default_duration", c.Music.DefaultDuration),
		volume("sound.volume", c.Sound.Volume),
		duration("sound.default_duration", c.Sound.DefaultDuration),
		volume("spatial.volume", c.Spatial.Volume),
		duration("spatial.fade_time", c.Spatial.FadeTime),
		distance("spatial.horizontal_range", c.Spatial.HorizontalRange),
		distance("spatial.vertical_range", c.Spatial.VerticalRange),
	)

	if _, ok := Curve(c.Music.FadeCurve); !ok {
		errs = append(errs, fmt.Errorf("music.fade_curve %q: %w", c.Music.FadeCurve, ErrUnknownCurve))
	}
	if c.Spatial.PoolSize <= 0 {
		errs = append(errs, fmt.Errorf("spatial.pool_size %d: %w", c.Spatial.PoolSize, ErrInvalidPoolSize))
	}

	return errors.Join(errs...)
}

func volume(field string, v float32) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s %v: %w", field, v, ErrInvalidVolume)
	}
	return nil
}

func pan(field string, v float32) error {
	if v < -1 || v > 1 {
		return fmt.Errorf("%s %v: %w", field, v, ErrInvalidPan)
	}
	return nil
}

func duration(field string, v float32) error {
	if v < 0 {
		return fmt.Errorf("%s %v: %w", field, v, ErrInvalidDuration)
	}
	return nil
}

func distance(field string, v float32) error {
	if v < 0 {
		return fmt.Errorf("%s %v: %w", field, v, ErrInvalidRange)
	}
	return nil
}
