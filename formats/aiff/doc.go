// SPDX-License-Identifier: EPL-2.0

// Package aiff describes AIFF (Audio Interchange File Format) files.
//
// This package uses github.com/go-audio/aiff to read the COMM chunk, which
// carries the sample rate, the channel count and the number of sample
// frames. AIFF is Apple's standard audio file format, commonly used on
// macOS, and loaders register it for both the .aiff and .aif extensions.
//
// # Probing AIFF Files
//
//	file, _ := os.Open("ambience.aif")
//	info, err := aiff.Prober{}.Probe(file)
//	if err != nil {
//	    // Handle error
//	}
//
// The go-audio decoder requires an io.ReadSeeker. Other readers are read
// into memory first.
package aiff
