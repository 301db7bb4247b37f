// SPDX-License-Identifier: EPL-2.0

package sound

import "github.com/rs/zerolog"

// LoopState is a stage of a Loop.
type LoopState int

const (
	LoopIdle LoopState = iota
	LoopStart
	LoopLoop
	LoopEnd
)

// Next is the state that follows s.
func (s LoopState) Next() LoopState {
	switch s {
	case LoopStart:
		return LoopLoop
	case LoopLoop:
		return LoopEnd
	default:
		return LoopIdle
	}
}

func (s LoopState) String() string {
	switch s {
	case LoopIdle:
		return "idle"
	case LoopStart:
		return "start"
	case LoopLoop:
		return "loop"
	case LoopEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Loop plays an optional intro once, then a body on repeat until End is
// called, then an optional outro once. Stages without a clip are skipped.
type Loop struct {
	begin *Clip
	loop  *Clip
	end   *Clip

	player  *Player
	state   LoopState
	current *Instance

	logger zerolog.Logger
}

// NewLoop returns an idle loop playing through player. Any clip may be nil.
func NewLoop(player *Player, begin, loop, end *Clip, opts ...Option) *Loop {
	s := newSettings(opts)
	return &Loop{
		begin:  begin,
		loop:   loop,
		end:    end,
		player: player,
		logger: s.logger,
	}
}

func (l *Loop) State() LoopState { return l.state }

// Current is the instance of the stage being played, or nil. After End
// without an outro it is the body's last pass until that ends.
func (l *Loop) Current() *Instance { return l.current }

// IsPlaying reports whether the intro or the body is playing.
func (l *Loop) IsPlaying() bool {
	return l.state == LoopStart || l.state == LoopLoop
}

// Start plays from the intro, cutting whatever was playing.
func (l *Loop) Start() { l.setState(LoopStart) }

// End moves on to the outro once the current stage is over. During the intro
// the body is skipped; during the body it stops repeating and finishes its
// pass first, unless there is no outro, in which case the loop is idle at
// once while the body plays out its last pass.
func (l *Loop) End() {
	switch l.state {
	case LoopStart:
		if l.current != nil {
			l.current.SetOnCompletion(func(*Instance) {
				l.current = nil
				l.setState(LoopEnd)
			})
		}
	case LoopLoop:
		if l.current != nil {
			l.current.SetLooping(false)
		}
		if l.end == nil {
			// The tail stays current so that Start or Stop cut it.
			if tail := l.current; tail != nil {
				tail.SetOnCompletion(func(*Instance) {
					if l.current == tail {
						l.current = nil
					}
				})
			}
			l.state = LoopIdle
		}
	}
}

// Stop cuts the current stage and goes idle.
func (l *Loop) Stop() {
	l.release()
	l.state = LoopIdle
}

func (l *Loop) release() {
	if l.current == nil {
		return
	}
	l.current.SetOnCompletion(nil)
	l.player.stopInstance(l.current)
	l.current = nil
}

func (l *Loop) clip(s LoopState) *Clip {
	switch s {
	case LoopStart:
		return l.begin
	case LoopLoop:
		return l.loop
	case LoopEnd:
		return l.end
	default:
		return nil
	}
}

func (l *Loop) setState(s LoopState) {
	l.release()

	for {
		l.state = s
		if s == LoopIdle {
			return
		}

		c := l.clip(s)
		if c == nil {
			s = s.Next()
			continue
		}
		inst := l.player.PlaySound(c, s == LoopLoop)
		if inst == nil {
			l.logger.Debug().Stringer("state", s).Str("sound", c.Title()).Msg("stage refused, skipping")
			s = s.Next()
			continue
		}

		l.current = inst
		next := s.Next()
		inst.SetOnCompletion(func(*Instance) {
			l.current = nil
			l.setState(next)
		})
		return
	}
}
