// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/audsfx/formats/wav"
	"github.com/ik5/audsfx/internal/audiotest"
)

// Example_probing reads the length of a WAV file without decoding it.
func Example_probing() {
	data := audiotest.WAV16(16000, 1, 24000)

	info, err := wav.Prober{}.Probe(bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Probe error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", info.SampleRate)
	fmt.Printf("Channels: %d\n", info.Channels)
	fmt.Printf("Duration: %v\n", info.Duration)
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
	// Duration: 1.5s
}
