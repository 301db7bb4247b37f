// SPDX-License-Identifier: EPL-2.0

package music

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/effect"
)

// Playlist plays its entries one after the other, with a single active
// entry at a time. Effects added to a playlist follow the playhead: they are
// attached to whichever entry is active.
type Playlist struct {
	content []Music
	// order is content in play order; index points into it.
	order   []Music
	effects []effect.Effect

	current Music
	index   int

	volume float32
	pan    float32
	pitch  float32

	play        bool
	pause       bool
	stopPending bool
	repeat      bool
	shuffle     bool

	onCompletion func(Music)

	registry *audio.Registry
	logger   zerolog.Logger
	rng      *rand.Rand
}

func NewPlaylist(opts ...Option) *Playlist {
	s := newSettings(opts)
	return &Playlist{
		index:    -1,
		volume:   1,
		pitch:    1,
		registry: s.registry,
		logger:   s.logger,
		rng:      s.rng,
	}
}

// Content returns the entries in the order they were added.
func (p *Playlist) Content() []Music { return slices.Clone(p.content) }

// Order returns the entries in play order.
func (p *Playlist) Order() []Music { return slices.Clone(p.order) }

func (p *Playlist) Len() int      { return len(p.content) }
func (p *Playlist) IsEmpty() bool { return len(p.content) == 0 }

func (p *Playlist) Contains(m Music) bool { return lo.Contains(p.content, m) }

// AddMusic appends m. It returns false, and changes nothing, when m is
// already in this playlist or owned by another one.
func (p *Playlist) AddMusic(m Music) bool {
	if m == nil || lo.Contains(p.content, m) {
		return false
	}
	if !p.registry.Acquire(m) {
		p.logger.Debug().Str("track", m.Title()).Msg("music already belongs to another playlist")
		return false
	}

	p.content = append(p.content, m)
	if p.shuffle {
		at := p.index + 1 + p.rng.IntN(len(p.order)-p.index)
		p.order = slices.Insert(p.order, at, m)
	} else {
		p.order = append(p.order, m)
	}
	return true
}

// RemoveMusic removes m and gives up ownership of it. Removing the active
// entry moves on to the following one, or stops when nothing is left.
func (p *Playlist) RemoveMusic(m Music) bool {
	i := lo.IndexOf(p.content, m)
	if i < 0 {
		return false
	}
	p.content = slices.Delete(p.content, i, i+1)
	p.registry.Release(m)

	if j := lo.IndexOf(p.order, m); j >= 0 {
		p.order = slices.Delete(p.order, j, j+1)
		if j <= p.index {
			p.index--
		}
	}

	if m == p.current {
		p.drop()
		if p.play {
			p.Next()
		}
	}
	return true
}

// ClearContent stops playback and removes every entry.
func (p *Playlist) ClearContent() {
	p.Stop()
	if !p.play {
		p.drop()
		p.pause = false
	}
	for _, m := range p.content {
		p.registry.Release(m)
	}
	p.content = nil
	p.order = nil
	p.index = -1
}

// SetContent replaces the entries. When the active entry is part of the new
// content it keeps playing and the cursor follows it.
func (p *Playlist) SetContent(content []Music) {
	if len(content) == 0 || p.current == nil || !slices.Contains(content, p.current) {
		p.ClearContent()
		for _, m := range content {
			p.AddMusic(m)
		}
		return
	}

	for _, m := range p.content {
		if !slices.Contains(content, m) {
			p.registry.Release(m)
		}
	}
	kept := p.content
	p.content = nil
	for _, m := range content {
		if lo.Contains(p.content, m) {
			continue
		}
		if !lo.Contains(kept, m) && !p.registry.Acquire(m) {
			p.logger.Debug().Str("track", m.Title()).Msg("music already belongs to another playlist")
			continue
		}
		p.content = append(p.content, m)
	}
	p.reorder()
}

func (p *Playlist) reorder() {
	p.order = slices.Clone(p.content)
	if p.shuffle {
		p.rng.Shuffle(len(p.order), func(i, j int) {
			p.order[i], p.order[j] = p.order[j], p.order[i]
		})
	}
	p.index = -1
	if p.current != nil {
		p.index = lo.IndexOf(p.order, p.current)
	}
}

// Current returns the active entry, or nil.
func (p *Playlist) Current() Music { return p.current }

// Title is the title of the active entry, or "" when there is none.
func (p *Playlist) Title() string {
	if p.current == nil {
		return ""
	}
	return p.current.Title()
}

// Duration is the sum of all entries' durations.
func (p *Playlist) Duration() float32 {
	return lo.SumBy(p.content, func(m Music) float32 { return m.Duration() })
}

func (p *Playlist) IsShuffled() bool { return p.shuffle }

// SetShuffle switches between a shuffled and the added order. The active
// entry keeps its place in either order.
func (p *Playlist) SetShuffle(shuffle bool) {
	p.shuffle = shuffle
	p.reorder()
}

// Shuffle draws a new play order.
func (p *Playlist) Shuffle() {
	shuffle := p.shuffle
	p.shuffle = true
	p.reorder()
	p.shuffle = shuffle
}

func (p *Playlist) Play() {
	if p.play || len(p.content) == 0 {
		return
	}

	p.play = true
	p.stopPending = false

	if p.pause {
		p.pause = false
		if p.current != nil {
			p.current.Play()
			return
		}
	}
	p.Next()
}

// Resume continues a paused playlist.
func (p *Playlist) Resume() {
	if p.pause {
		p.Play()
	}
}

func (p *Playlist) IsPlaying() bool { return p.play }
func (p *Playlist) IsPaused() bool  { return p.pause }

func (p *Playlist) Pause() {
	if p.pause || !p.play {
		return
	}
	p.pause = true
	p.play = false
	if p.current != nil {
		p.current.Pause()
	}
}

// Stop stops the active entry and rewinds the cursor. When the entry winds
// down through an effect the playlist keeps playing until Update sees it
// finish; otherwise playback ends before Stop returns.
func (p *Playlist) Stop() {
	if !p.play {
		return
	}
	p.stopPending = true
	if p.current != nil {
		p.current.Stop()
	}
	p.index = -1

	if p.current == nil || !p.current.IsPlaying() {
		p.finish()
	}
}

func (p *Playlist) finish() {
	p.play = false
	p.pause = false
	p.stopPending = false
	if p.onCompletion != nil {
		p.onCompletion(p)
	}
}

// IsLooping reports whether the playlist starts over after its last entry.
func (p *Playlist) IsLooping() bool         { return p.repeat }
func (p *Playlist) SetLooping(looping bool) { p.repeat = looping }

func (p *Playlist) Volume() float32 { return p.volume }

func (p *Playlist) SetVolume(volume float32) {
	p.volume = volume
	if p.current != nil {
		p.current.SetVolume(volume)
	}
}

func (p *Playlist) Pan() float32 { return p.pan }

func (p *Playlist) SetPan(pan, volume float32) {
	p.pan = pan
	p.volume = volume
	if p.current != nil {
		p.current.SetPan(pan, volume)
	}
}

func (p *Playlist) Pitch() float32 { return p.pitch }

func (p *Playlist) SetPitch(pitch float32) {
	p.pitch = pitch
	if p.current != nil {
		p.current.SetPitch(pitch)
	}
}

// Position panics: a playlist has no single position.
func (p *Playlist) Position() float32 {
	panic(fmt.Errorf("playlist position: %w", audio.ErrUnsupportedOperation))
}

// SetPosition panics: a playlist has no single position.
func (p *Playlist) SetPosition(float32) {
	panic(fmt.Errorf("playlist set position: %w", audio.ErrUnsupportedOperation))
}

func (p *Playlist) SetOnCompletion(fn func(Music)) { p.onCompletion = fn }

func (p *Playlist) Effects() []effect.Effect { return slices.Clone(p.effects) }

// AddEffect adds e to the playlist and attaches it to the active entry.
func (p *Playlist) AddEffect(e effect.Effect) {
	if !slices.Contains(p.effects, e) {
		p.effects = append(p.effects, e)
	}
	if p.current != nil {
		p.current.AddEffect(e)
	}
}

// RemoveEffect removes e from the playlist and detaches it.
func (p *Playlist) RemoveEffect(e effect.Effect) {
	i := slices.Index(p.effects, e)
	if i < 0 {
		return
	}
	p.effects = slices.Delete(p.effects, i, i+1)
	if p.current != nil {
		p.current.RemoveEffect(e)
	} else {
		e.Detach()
	}
}

func (p *Playlist) ClearEffects() {
	for _, e := range slices.Clone(p.effects) {
		p.RemoveEffect(e)
	}
}

// Update drives the active entry. When it finishes the playlist moves on, or
// ends if a stop was pending. Update returns true while the playlist is
// stopped, including the tick on which playback ends.
func (p *Playlist) Update(delta float32) bool {
	if !p.play {
		return !p.pause
	}
	if p.current == nil {
		return false
	}
	if !p.current.Update(delta) {
		return false
	}
	if p.stopPending {
		p.finish()
		return true
	}
	p.Next()
	return !p.play
}

// Next moves to the following entry. Past the last entry it starts over
// when looping, and stops otherwise.
func (p *Playlist) Next() { p.transition(p.nextEntry()) }

// Previous moves to the preceding entry. Before the first entry it stops,
// whether or not the playlist loops.
func (p *Playlist) Previous() { p.transition(p.previousEntry()) }

// Dispose stops the playlist and gives up its entries. The entries
// themselves are not disposed.
func (p *Playlist) Dispose() error {
	p.ClearEffects()
	p.ClearContent()
	return nil
}

func (p *Playlist) transition(m Music) {
	if m == nil {
		p.Stop()
		return
	}
	if p.play {
		p.tryPlay(m)
	}
}

func (p *Playlist) tryPlay(m Music) {
	if p.current != nil {
		p.detachEffects(p.current)
		p.current.Stop()
	}

	for _, e := range p.effects {
		m.AddEffect(e)
	}
	m.SetPan(p.pan, p.volume)
	m.SetPitch(p.pitch)
	m.Play()

	if m.IsPlaying() {
		p.current = m
		return
	}
	p.detachEffects(m)
	p.current = nil
	p.logger.Debug().Str("track", m.Title()).Msg("unable to actually play")
}

// drop stops and forgets the active entry.
func (p *Playlist) drop() {
	if p.current == nil {
		return
	}
	p.detachEffects(p.current)
	p.current.Stop()
	p.current = nil
}

// detachEffects takes the playlist's effects off m without handing them back
// to their pools: they move on to the next entry.
func (p *Playlist) detachEffects(m Music) {
	for _, e := range p.effects {
		release := e.Releaser()
		e.SetReleaser(nil)
		m.RemoveEffect(e)
		e.SetReleaser(release)
	}
}

func (p *Playlist) nextEntry() Music {
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
		p.index = 0
	}
	return p.order[p.index]
}

func (p *Playlist) previousEntry() Music {
	p.index--
	if p.index < 0 {
		p.index = -1
		return nil
	}
	return p.order[p.index]
}

func (p *Playlist) String() string {
	return fmt.Sprintf("playlist playing=%t paused=%t current=%v volume=%.2f pan=%.2f",
		p.play, p.pause, p.current, p.volume, p.pan)
}

var (
	_ Music = (*Track)(nil)
	_ Music = (*Playlist)(nil)
)
