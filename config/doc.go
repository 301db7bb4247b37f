// SPDX-License-Identifier: EPL-2.0

// Package config loads audio settings from YAML.
//
//	music:
//	  volume: 0.8
//	  fade_duration: 3
//	  fade_curve: smooth
//	  shuffle: true
//	sound:
//	  volume: 0.9
//	spatial:
//	  fade_time: 0.25
//	  horizontal_range: 600
//
// Missing keys keep their Default values. The sections then configure the
// players and loaders:
//
//	cfg, err := config.LoadFile("audio.yaml")
//	cfg.Music.ApplyPlayer(player)
//	sfx := cfg.Sound.Player()
//	world := spatial.NewPlayer[f32.Vec2](cfg.Spatial.Planar(), cfg.Spatial.Options()...)
package config
