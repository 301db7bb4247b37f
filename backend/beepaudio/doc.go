// SPDX-License-Identifier: EPL-2.0

// Package beepaudio is an audio.Stream and audio.Sound backend built on
// github.com/gopxl/beep.
//
// Every stream and sound of an Output plays into one beep.Mixer. Hand the
// mixer to the speaker, passing the speaker lock so the backend can add
// voices safely:
//
//	out := beepaudio.NewOutput(44100, beepaudio.WithLocker(speakerLocker{}))
//	speaker.Init(44100, 4410)
//	speaker.Play(out.Mixer())
//
// or render it offline with Advance.
//
// Each voice is a chain of beep streamers: the decoded source, a loop
// wrapper, a resampler for pitch and rate conversion, a Ctrl for pausing,
// then a Gain and a Pan effect.
package beepaudio
