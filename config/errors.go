// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrInvalidVolume   = errors.New("volume must be within [0,1]")
	ErrInvalidPan      = errors.New("pan must be within [-1,1]")
	ErrInvalidDuration = errors.New("duration must not be negative")
	ErrInvalidRange    = errors.New("range must not be negative")
	ErrInvalidPoolSize = errors.New("pool size must be positive")
	ErrUnknownCurve    = errors.New("unknown interpolation")
)
