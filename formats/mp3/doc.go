// SPDX-License-Identifier: EPL-2.0

// Package mp3 finds the length of MP3 files.
//
// This package uses github.com/hajimehoshi/go-mp3. The decoder walks the
// frame headers when its input can seek and reports the size of the
// decoded PCM stream, which is always 16-bit stereo. The duration is that
// size divided by four bytes per frame and by the sample rate.
//
//	file, _ := os.Open("battle.mp3")
//	info, err := mp3.Prober{}.Probe(file)
//	if errors.Is(err, mp3.ErrNotMp3File) {
//	    // not an MPEG audio stream
//	}
package mp3
