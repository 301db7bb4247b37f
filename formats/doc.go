// SPDX-License-Identifier: EPL-2.0

// Package formats resolves the duration of audio files by extension.
//
// Each subpackage (wav, aiff, mp3, vorbis) offers a Prober that reads a
// container's headers. A Resolver binds probers to file extensions and
// implements audio.DurationResolver, so it can be handed to the music and
// sound loaders:
//
//	resolver := formats.NewDefaultResolver(logger)
//	loader := music.NewLoader(resolver, 0)
//	track, err := loader.LoadFile(stream, "music/theme.ogg", music.Params{})
//
// Custom containers are added with Register:
//
//	resolver.Register("flac", myFlacProber{})
package formats
