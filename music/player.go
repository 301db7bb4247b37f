// SPDX-License-Identifier: EPL-2.0

package music

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/utils"
)

// DefaultFadeDuration is the crossfade length of a new Player, in seconds.
const DefaultFadeDuration float32 = 2

// Player plays a list of tracks and can crossfade between them. While
// fading, two tracks are live: the current one fading in, and the former one
// fading out.
type Player struct {
	volume float32
	pan    float32

	play    bool
	pause   bool
	repeat  bool
	shuffle bool

	tracks []*Track
	order  []*Track
	index  int

	current *Track
	former  *Track

	fade          bool
	fadeDuration  float32
	fadeCurve     utils.Interpolation
	fadeOut       float32
	restartFormer bool

	registry *audio.Registry
	logger   zerolog.Logger
	rng      *rand.Rand
}

func NewPlayer(opts ...Option) *Player {
	s := newSettings(opts)
	return &Player{
		volume:       1,
		index:        -1,
		fadeDuration: DefaultFadeDuration,
		fadeCurve:    utils.Linear,
		registry:     s.registry,
		logger:       s.logger,
		rng:          s.rng,
	}
}

func (p *Player) Current() *Track { return p.current }

// Former is the track fading out, or nil.
func (p *Player) Former() *Track { return p.former }

func (p *Player) CurrentTitle() string {
	if p.current == nil {
		return ""
	}
	return p.current.Title()
}

func (p *Player) Volume() float32 { return p.volume }

// SetVolume sets the master volume, clamped to [0,1]. It reaches the tracks
// on the next Update.
func (p *Player) SetVolume(volume float32) { p.volume = utils.Clamp(volume, 0, 1) }

func (p *Player) Pan() float32 { return p.pan }

// SetPan sets the pan, clamped to [-1,1]. It reaches the tracks on the next
// Update.
func (p *Player) SetPan(pan float32) { p.pan = utils.Clamp(pan, -1, 1) }

func (p *Player) Fading() bool          { return p.fade }
func (p *Player) SetFading(fading bool) { p.fade = fading }

func (p *Player) FadeDuration() float32 { return p.fadeDuration }

// SetFadeDuration ignores durations <= 0.
func (p *Player) SetFadeDuration(seconds float32) {
	if seconds <= 0 {
		return
	}
	p.fadeDuration = seconds
}

func (p *Player) FadeInterpolation() utils.Interpolation { return p.fadeCurve }

// SetFadeInterpolation ignores nil.
func (p *Player) SetFadeInterpolation(curve utils.Interpolation) {
	if curve == nil {
		return
	}
	p.fadeCurve = curve
}

func (p *Player) Repeat() bool          { return p.repeat }
func (p *Player) SetRepeat(repeat bool) { p.repeat = repeat }

func (p *Player) Shuffle() bool { return p.shuffle }

// SetShuffle shuffles the play order, or restores the added order.
func (p *Player) SetShuffle(shuffle bool) {
	p.shuffle = shuffle
	p.order = slices.Clone(p.tracks)
	if shuffle {
		p.shuffleOrder()
	}
	p.index = -1
	if p.current != nil {
		p.index = lo.IndexOf(p.order, p.current)
	}
}

func (p *Player) shuffleOrder() {
	p.rng.Shuffle(len(p.order), func(i, j int) {
		p.order[i], p.order[j] = p.order[j], p.order[i]
	})
}

// Playlist returns the tracks in the order they were added.
func (p *Player) Playlist() []*Track { return slices.Clone(p.tracks) }

// Add appends t. It returns false when t is already in a playlist, this
// one or another.
func (p *Player) Add(t *Track) bool {
	if t == nil {
		return false
	}
	if !p.registry.Acquire(t) {
		p.logger.Debug().Str("track", t.Title()).Msg("track already belongs to a playlist")
		return false
	}

	p.tracks = append(p.tracks, t)
	if p.shuffle {
		at := p.index + 1 + p.rng.IntN(len(p.order)-p.index)
		p.order = slices.Insert(p.order, at, t)
	} else {
		p.order = append(p.order, t)
	}
	return true
}

// Remove takes t out of the playlist. A former track that is removed stops
// at once; a removed current track is replaced by the next one.
func (p *Player) Remove(t *Track) bool {
	i := lo.IndexOf(p.tracks, t)
	if i < 0 {
		return false
	}
	p.tracks = slices.Delete(p.tracks, i, i+1)
	p.registry.Release(t)

	if j := lo.IndexOf(p.order, t); j >= 0 {
		p.order = slices.Delete(p.order, j, j+1)
		if j <= p.index {
			p.index--
		}
	}

	if p.former == t {
		p.former.Stop()
		p.former = nil
		p.restartFormer = false
	}
	if p.current == t {
		// A removed track is cut, never moved to the former slot.
		p.current.Stop()
		p.current = nil
		if len(p.order) == 0 {
			p.Stop()
		} else {
			p.Next()
		}
	}
	return true
}

// SetPlaylist makes tracks the playlist, keeping tracks present in both.
func (p *Player) SetPlaylist(tracks ...*Track) {
	for _, t := range slices.Clone(p.tracks) {
		if !slices.Contains(tracks, t) {
			p.Remove(t)
		}
	}
	for _, t := range tracks {
		if !slices.Contains(p.tracks, t) {
			p.Add(t)
		}
	}
}

func (p *Player) IsPlaying() bool { return p.play }
func (p *Player) IsPaused() bool  { return p.pause }

// Play starts the playlist, or resumes the paused track.
func (p *Player) Play() {
	if p.play {
		return
	}
	p.play = true
	p.pause = false

	if p.current == nil {
		p.Next()
	} else {
		p.tryPlay(p.current)
	}
}

// Pause pauses the current track. A track that was fading out is stopped,
// with no fade.
func (p *Player) Pause() {
	if p.pause || !p.play {
		return
	}
	p.pause = true
	p.play = false

	if p.current != nil {
		p.current.Pause()
	}
	if p.former != nil {
		p.former.Stop()
		if p.restartFormer && p.current == nil {
			p.current = p.former
		}
		p.former = nil
		p.restartFormer = false
	}
}

// Stop ends playback and rewinds the cursor. While fading, the current track
// fades out instead of stopping dead.
func (p *Player) Stop() {
	if !p.play && !p.pause {
		return
	}
	paused := p.pause
	p.play = false
	p.pause = false
	p.index = -1
	p.restartFormer = false

	if p.current == nil {
		return
	}
	if paused {
		p.current.Stop()
		p.current = nil
		return
	}
	p.stopCurrent()
}

// Update advances the live tracks by delta seconds, ramps their volumes and
// starts the next crossfade ahead of the end of the current track.
func (p *Player) Update(delta float32) {
	if p.pause {
		return
	}

	if p.current != nil {
		p.current.Update(delta)
	}
	if p.former != nil {
		p.former.Update(delta)
	}

	if p.current != nil {
		if p.fade {
			p.updateFadingCurrent()
		} else {
			p.follow(p.current)
			if !p.current.IsPlaying() {
				p.Next()
			}
		}
	}

	if p.former != nil {
		p.updateFormer(delta)
	}
}

func (p *Player) updateFadingCurrent() {
	position := p.current.Position()
	if position < p.fadeDuration {
		volume := utils.Clamp(p.fadeCurve.Apply(0, p.volume, position/p.fadeDuration), 0, 1)
		p.current.SetPan(p.pan, volume)
	} else {
		p.follow(p.current)
	}

	if position >= p.current.Duration()-p.fadeDuration || !p.current.IsPlaying() {
		p.stopCurrent()
		p.Next()
	}
}

func (p *Player) updateFormer(delta float32) {
	if p.fade {
		p.fadeOut += delta
		if p.fadeOut >= p.fadeDuration {
			p.former.Stop()
		} else {
			volume := utils.Clamp(p.fadeCurve.Apply(p.volume, 0, p.fadeOut/p.fadeDuration), 0, 1)
			p.former.SetPan(p.pan, volume)
		}
	} else {
		p.follow(p.former)
	}

	if p.former.IsPlaying() {
		return
	}
	former := p.former
	p.former = nil
	if p.restartFormer {
		p.restartFormer = false
		p.current = former
		p.startCurrent()
	}
}

// follow brings t in line with the player's pan and volume.
func (p *Player) follow(t *Track) {
	if t.Pan() != p.pan {
		t.SetPan(p.pan, p.volume)
	} else if t.Volume() != p.volume {
		t.SetVolume(p.volume)
	}
}

func (p *Player) Next()     { p.transition(p.nextTrack()) }
func (p *Player) Previous() { p.transition(p.previousTrack()) }

func (p *Player) transition(t *Track) {
	if t == nil {
		p.Stop()
		return
	}

	if t == p.current || (t == p.former && p.current == nil) {
		if !p.fade {
			if p.former == t {
				p.former = nil
			}
			p.current = t
			t.Stop()
			if p.play {
				p.startCurrent()
			}
			return
		}
		if t == p.current {
			p.stopCurrent()
		}
		p.restartFormer = true
		return
	}

	if p.current != nil {
		p.stopCurrent()
	}
	p.current = t
	if p.play {
		p.startCurrent()
	}
}

func (p *Player) nextTrack() *Track {
	if len(p.order) == 0 {
		p.index = -1
		return nil
	}
	p.index++
	if p.index >= len(p.order) {
		p.index = -1
		if !p.repeat {
			return nil
		}
		if p.shuffle {
			last := p.current
			if last == nil {
				last = p.former
			}
			p.shuffleOrder()
			if len(p.order) > 1 && p.order[0] == last {
				p.order = append(p.order[1:], last)
			}
		}
		p.index = 0
	}
	return p.order[p.index]
}

func (p *Player) previousTrack() *Track {
	p.index--
	if p.index < 0 {
		p.index = -1
		return nil
	}
	return p.order[p.index]
}

func (p *Player) startCurrent() {
	volume := p.volume
	if p.fade {
		volume = 0
	}
	p.current.SetPan(p.pan, volume)
	p.tryPlay(p.current)
}

func (p *Player) tryPlay(t *Track) {
	t.Play()
	if !t.IsPlaying() {
		p.logger.Debug().Str("track", t.Title()).Msg("unable to actually play")
	}
}

// stopCurrent moves the current track out: to the former slot when fading,
// or stopped otherwise. A track already fading out is cut.
func (p *Player) stopCurrent() {
	if p.former != nil {
		p.former.Stop()
		p.former = nil
		p.restartFormer = false
	}
	if p.fade {
		p.fadeOut = 0
		p.former = p.current
	} else if p.current.IsPlaying() {
		p.current.Stop()
	}
	p.current = nil
}

func (p *Player) String() string {
	return fmt.Sprintf("player playing=%t paused=%t current=%v former=%v volume=%.2f pan=%.2f",
		p.play, p.pause, p.current, p.former, p.volume, p.pan)
}
