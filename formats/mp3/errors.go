// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	ErrNotMp3File       = errors.New("not an MP3 file")
	ErrUnknownMp3Length = errors.New("unknown MP3 length")
)
