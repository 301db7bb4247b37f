// SPDX-License-Identifier: EPL-2.0

// Package audsfx turns fire-and-forget sound and music primitives into
// stateful playback sessions for games.
//
// The module sits above a platform backend that can only start, pause and
// stop clips. On top of it, it offers:
//   - fade-in and fade-out effects with custom interpolation curves (effect)
//   - tracks, playlists and a crossfading music player (music)
//   - sound clips, a handle-keyed sound player and an intro, loop and outro
//     state machine (sound)
//   - pooled, fading, spatialized sound instances (spatial)
//
// Everything is driven by one Update(delta) call per frame from a single
// goroutine; delta is the elapsed time in seconds.
//
// # Backends
//
// The backend is reached through the audio.Stream and audio.Sound
// interfaces. backend/beepaudio implements both over github.com/gopxl/beep.
//
// # Loading
//
// Track and clip durations are resolved once, at load time, by an
// audio.DurationResolver. formats.NewDefaultResolver reads WAV, AIFF, MP3
// and Ogg Vorbis headers:
//
//	resolver := formats.NewDefaultResolver(logger)
//	tracks := music.NewLoader(resolver, 0, music.WithLogger(logger))
//	theme, err := tracks.LoadFile(stream, "music/theme.ogg", music.Params{})
//
// # Crossfading
//
//	player := music.NewPlayer()
//	player.SetPlaylist(theme, battle)
//	player.Play()
//
//	for range ticker.C {
//	    player.Update(1.0 / 60)
//	}
//
// # Configuration
//
// The config package reads player settings from YAML and applies them:
//
//	cfg, _ := config.LoadFile("audio.yaml")
//	cfg.Music.ApplyPlayer(player)
package audsfx
