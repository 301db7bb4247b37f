// SPDX-License-Identifier: EPL-2.0

// Package vorbis finds the length of Ogg Vorbis files.
//
// This package uses github.com/jfreymuth/oggvorbis. Vorbis is a free,
// open-source lossy audio compression format and the usual choice for
// streamed game music. When the input can seek, the reader looks at the
// last Ogg page to learn the number of samples per channel, so nothing
// has to be decoded.
//
//	file, _ := os.Open("menu.ogg")
//	info, err := vorbis.Prober{}.Probe(file)
//	if err != nil {
//	    // Handle error
//	}
package vorbis
