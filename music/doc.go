// SPDX-License-Identifier: EPL-2.0

// Package music sequences streamed tracks.
//
// A Track wraps a backend audio.Stream with its own playback clock and the
// effects attached to it. Tracks are then arranged either in a Playlist,
// which plays one entry at a time and carries its effects from one entry to
// the next, or in a Player, which crossfades between consecutive tracks.
//
// Everything here is driven by Update, called once per frame with the
// elapsed time in seconds, from a single goroutine.
//
// # Ownership
//
// A track may belong to one playlist or player at a time. Both consult an
// audio.Registry when music is added and refuse music that is already taken:
//
//	registry := audio.NewRegistry()
//	a := music.NewPlaylist(music.WithRegistry(registry))
//	b := music.NewPlaylist(music.WithRegistry(registry))
//	a.AddMusic(track) // true
//	b.AddMusic(track) // false
//
// # Refusals
//
// A backend may silently refuse to play. A Playlist then has no current
// entry and waits for the next command; a Player moves on to the next track
// on the following Update. Neither treats it as an error; the refusal is
// logged at debug level.
package music
