// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/internal/pool"
	"github.com/ik5/audsfx/sound"
)

// DefaultPoolSize bounds the free instances a Player keeps.
const DefaultPoolSize = 32

type settings struct {
	logger   zerolog.Logger
	poolSize int
	fadeTime float32
}

// Option configures a Player.
type Option func(*settings)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithPoolSize bounds the free instances kept for reuse; <= 0 is unbounded.
func WithPoolSize(n int) Option {
	return func(s *settings) { s.poolSize = n }
}

// WithFadeTime sets the initial fade time, in seconds.
func WithFadeTime(seconds float32) Option {
	return func(s *settings) { s.fadeTime = max(seconds, 0) }
}

// Player plays clips at positions of type T. Live instances are kept by
// handle until they are over, then pooled.
type Player[T any] struct {
	pool        *pool.Pool[*Instance[T]]
	sounds      map[audio.Handle]*Instance[T]
	spatializer Spatializer[T]
	volume      float32
	fadeTime    float32

	logger zerolog.Logger
}

// NewPlayer returns a player using spatializer, or Flat when it is nil.
func NewPlayer[T any](spatializer Spatializer[T], opts ...Option) *Player[T] {
	s := settings{
		logger:   zerolog.Nop(),
		poolSize: DefaultPoolSize,
	}
	for _, opt := range opts {
		opt(&s)
	}

	p := &Player[T]{
		pool:     pool.New(newInstance[T], s.poolSize),
		sounds:   make(map[audio.Handle]*Instance[T]),
		volume:   1,
		fadeTime: s.fadeTime,
		logger:   s.logger,
	}
	p.SetSpatializer(spatializer)
	return p
}

func (p *Player[T]) Spatializer() Spatializer[T] { return p.spatializer }

// SetSpatializer replaces the spatializer; nil means Flat.
func (p *Player[T]) SetSpatializer(spatializer Spatializer[T]) {
	if spatializer == nil {
		spatializer = Flat[T]{}
	}
	p.spatializer = spatializer
}

// Volume is the nominal volume handed to the spatializer.
func (p *Player[T]) Volume() float32          { return p.volume }
func (p *Player[T]) SetVolume(volume float32) { p.volume = volume }

func (p *Player[T]) FadeTime() float32 { return p.fadeTime }

// SetFadeTime applies to instances played from now on. 0 disables fading.
func (p *Player[T]) SetFadeTime(seconds float32) { p.fadeTime = max(seconds, 0) }

// Play starts clip at position and returns its handle, or
// audio.InvalidHandle when the backend refused. intrinsicVolume scales
// everything the spatializer decides for this instance. fadeIn only has an
// effect with a fade time set.
func (p *Player[T]) Play(position T, clip *sound.Clip, intrinsicVolume, pitch float32, looping, fadeIn bool) audio.Handle {
	inst := p.pool.Obtain()
	h := inst.initialize(clip, position, intrinsicVolume, pitch, p.fadeTime, fadeIn)
	if h == audio.InvalidHandle {
		inst.retire()
		p.pool.Free(inst)
		p.logger.Error().Str("sound", clip.Title()).Msg("couldn't play sound")
		return h
	}

	if stale, ok := p.sounds[h]; ok {
		// The backend recycled the handle, so the old voice is gone.
		stale.retire()
		p.pool.Free(stale)
	}

	inst.SetLooping(looping)
	p.spatializer.Spatialize(inst, p.volume)
	p.sounds[h] = inst
	return h
}

// Update advances every instance, respatializes those not fading and pools
// those that are over.
func (p *Player[T]) Update(delta float32) {
	for _, h := range lo.Keys(p.sounds) {
		inst, ok := p.sounds[h]
		if !ok {
			continue
		}
		if inst.Update(delta) {
			delete(p.sounds, h)
			p.pool.Free(inst)
			continue
		}
		if !inst.IsFading() {
			p.spatializer.Spatialize(inst, p.volume)
		}
	}
}

// Instance returns the live instance for h, or nil.
func (p *Player[T]) Instance(h audio.Handle) *Instance[T] { return p.sounds[h] }

// Len is the number of live instances.
func (p *Player[T]) Len() int { return len(p.sounds) }

// Stop stops h. A fading stop keeps the instance live until the fade ends.
func (p *Player[T]) Stop(h audio.Handle) {
	inst, ok := p.sounds[h]
	if !ok {
		return
	}
	inst.Stop()
	if inst.Clip() == nil {
		delete(p.sounds, h)
		p.pool.Free(inst)
	}
}

func (p *Player[T]) Pause(h audio.Handle) {
	if inst, ok := p.sounds[h]; ok {
		inst.Pause()
	}
}

func (p *Player[T]) Resume(h audio.Handle) {
	if inst, ok := p.sounds[h]; ok {
		inst.Resume()
	}
}

// StopAll stops every instance at once, without fading.
func (p *Player[T]) StopAll() {
	for h, inst := range p.sounds {
		delete(p.sounds, h)
		p.pool.Free(inst)
	}
}
