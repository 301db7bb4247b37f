// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/utils"
)

// Player starts clips at a shared volume and keeps the live instances by
// handle until they are over.
type Player struct {
	sounds map[audio.Handle]*Instance
	volume float32

	logger zerolog.Logger
}

// NewPlayer returns a player starting every clip at volume.
func NewPlayer(volume float32, opts ...Option) *Player {
	s := newSettings(opts)
	return &Player{
		sounds: make(map[audio.Handle]*Instance),
		volume: utils.Clamp(volume, 0, 1),
		logger: s.logger,
	}
}

// PlaySound starts c. It returns nil when the backend refused to play.
func (p *Player) PlaySound(c *Clip, looping bool) *Instance {
	inst := newInstance(c, p.volume)
	if inst.handle == audio.InvalidHandle {
		p.logger.Error().Str("sound", c.Title()).Msg("couldn't play sound")
		return nil
	}

	if stale, ok := p.sounds[inst.handle]; ok {
		// The backend recycled the handle, so the old voice is gone.
		stale.retire()
	}
	inst.SetLooping(looping)
	p.sounds[inst.handle] = inst
	return inst
}

// Update advances every live instance and forgets the ones that are over.
// Instances started by completion callbacks wait for the next Update.
func (p *Player) Update(delta float32) {
	for _, h := range lo.Keys(p.sounds) {
		inst, ok := p.sounds[h]
		if !ok {
			continue
		}
		if inst.Update(delta) && p.sounds[h] == inst {
			delete(p.sounds, h)
		}
	}
}

func (p *Player) Volume() float32 { return p.volume }

// SetVolume changes the volume of new and live instances.
func (p *Player) SetVolume(volume float32) {
	p.volume = utils.Clamp(volume, 0, 1)
	for _, inst := range p.sounds {
		inst.SetVolume(p.volume)
	}
}

// Instance returns the live instance for h, or nil.
func (p *Player) Instance(h audio.Handle) *Instance { return p.sounds[h] }

// Len is the number of live instances.
func (p *Player) Len() int { return len(p.sounds) }

// StopSound stops the instance for h. Unknown handles are ignored.
func (p *Player) StopSound(h audio.Handle) {
	if inst, ok := p.sounds[h]; ok {
		delete(p.sounds, h)
		inst.Stop()
	}
}

func (p *Player) stopInstance(inst *Instance) {
	if p.sounds[inst.handle] == inst {
		delete(p.sounds, inst.handle)
	}
	if !inst.stopped {
		inst.Stop()
	}
}

// Stop stops every instance.
func (p *Player) Stop() {
	for h, inst := range p.sounds {
		delete(p.sounds, h)
		inst.Stop()
	}
}

// Pause pauses looping instances and stops the others.
func (p *Player) Pause() {
	for h, inst := range p.sounds {
		if inst.IsLooping() {
			inst.Pause()
			continue
		}
		delete(p.sounds, h)
		inst.Stop()
	}
}

func (p *Player) Resume() {
	for _, inst := range p.sounds {
		inst.Resume()
	}
}
