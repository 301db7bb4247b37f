// SPDX-License-Identifier: EPL-2.0

// Package wav describes WAV files for the loaders.
//
// It uses the github.com/go-audio/wav decoder to read the RIFF header and
// the size of the data chunk. No samples are decoded.
//
// # Probing WAV Files
//
//	file, _ := os.Open("theme.wav")
//	info, err := wav.Prober{}.Probe(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(info.Duration)
//
// Input that cannot seek is buffered in memory first, since the go-audio
// decoder needs to jump between chunks.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE container
//   - ErrUnsupportedWavLayout: the fmt chunk holds no usable rate or channel count
//   - ErrUnknownWavLength: the data chunk could not be measured
package wav
