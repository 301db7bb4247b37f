// SPDX-License-Identifier: EPL-2.0

// Package readseek turns a plain reader into something the go-audio
// decoders can seek over.
package readseek

import (
	"bytes"
	"fmt"
	"io"
)

// From returns r itself when it already seeks, otherwise it buffers the
// remaining content in memory.
func From(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering audio data: %w", err)
	}

	return bytes.NewReader(data), nil
}
