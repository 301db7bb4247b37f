// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnsupportedOperation = errors.New("operation not supported by this playable")
	ErrUnknownFormat        = errors.New("unknown audio format")
)
