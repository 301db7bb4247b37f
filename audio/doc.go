// SPDX-License-Identifier: EPL-2.0

// Package audio defines the capabilities the rest of the module is built on.
//
// A platform backend supplies two kinds of clips:
//   - Stream: a single streamed clip (music) with play/pause/stop, volume,
//     pan and position
//   - Sound: a fire-and-forget clip; each Play or Loop starts a new voice
//     addressed by a Handle
//
// The orchestration layers wrap these into stateful Playable tracks,
// playlists, spatialized instances and loop state machines.
//
// # Handles
//
// A Sound returns InvalidHandle (-1) when it refuses to play. That is not an
// error: callers log it and carry on with nothing playing.
//
//	h := sound.Play(1, 1, 0)
//	if h == audio.InvalidHandle {
//	    // nothing is playing for this request
//	}
//
// # Durations
//
// Backends rarely know how long a clip is. A DurationResolver is consulted
// once, at load time, and may answer UnknownDuration; loaders then fall back
// to a default. The formats package provides a resolver that probes WAV, MP3,
// Ogg Vorbis and AIFF headers.
//
// # Ownership
//
// A track can only be sequenced by one playlist at a time. Registry records
// which tracks are taken; playlists share DefaultRegistry unless given their
// own, which tests use to stay isolated.
package audio
