// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"testing"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/internal/audiotest"
	"github.com/ik5/audsfx/sound"
)

func TestPlayerRoundTrip(t *testing.T) {
	t.Parallel()

	s := audiotest.NewSound()
	p := NewPlayer[int](nil)

	h := p.Play(3, sound.NewClip(s, "bell", 2), 1, 1, false, false)
	if h == audio.InvalidHandle {
		t.Fatal("Play() = InvalidHandle")
	}
	if inst := p.Instance(h); inst == nil || inst.Position() != 3 {
		t.Fatalf("Instance(%d) = %v", h, inst)
	}

	p.Stop(h)
	if p.Instance(h) != nil || p.Len() != 0 {
		t.Errorf("stopped handle still live")
	}
	if !s.Voice(h).Stopped {
		t.Errorf("voice not stopped")
	}

	p.Stop(h)
	p.Pause(h)
	p.Resume(h)
}

func TestPlayerRefused(t *testing.T) {
	t.Parallel()

	s := audiotest.NewSound()
	s.Refuse(true)
	p := NewPlayer[int](nil)

	if h := p.Play(0, sound.NewClip(s, "bell", 2), 1, 1, false, false); h != audio.InvalidHandle {
		t.Errorf("Play() = %d, want InvalidHandle", h)
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
}

func TestPlayerIntrinsicVolume(t *testing.T) {
	t.Parallel()

	s := audiotest.NewSound()
	p := NewPlayer[int](nil)
	p.SetVolume(0.8)

	h := p.Play(0, sound.NewClip(s, "hum", 2), 0.5, 1, true, false)
	for range 3 {
		if v := s.Voice(h).Volume; v != 0.4 {
			t.Fatalf("voice volume = %v, want 0.4", v)
		}
		p.Update(1)
	}
	if inst := p.Instance(h); inst.Volume() != 0.8 || inst.EffectiveVolume() != 0.4 {
		t.Errorf("Volume(), EffectiveVolume() = %v, %v; want 0.8, 0.4", inst.Volume(), inst.EffectiveVolume())
	}
}

func TestPlayerReclaimsFinished(t *testing.T) {
	t.Parallel()

	p := NewPlayer[int](nil)
	h := p.Play(0, sound.NewClip(audiotest.NewSound(), "bell", 1), 1, 1, false, false)

	p.Update(0.5)
	if p.Instance(h) == nil {
		t.Fatal("reclaimed too early")
	}
	p.Update(0.5)
	if p.Instance(h) != nil || p.Len() != 0 {
		t.Errorf("finished instance not reclaimed")
	}
}

func TestPlayerFadeIn(t *testing.T) {
	t.Parallel()

	s := audiotest.NewSound()
	p := NewPlayer[int](nil, WithFadeTime(1))

	h := p.Play(0, sound.NewClip(s, "hum", 5), 1, 1, false, true)
	if v := s.Voice(h).Volume; v != 0 {
		t.Errorf("starting volume = %v, want 0", v)
	}
	p.Update(0.5)
	if v := s.Voice(h).Volume; v != 0.5 {
		t.Errorf("volume halfway = %v, want 0.5", v)
	}
	p.Update(0.5)
	if v := s.Voice(h).Volume; v != 1 {
		t.Errorf("volume after the fade = %v, want 1", v)
	}
	if p.Instance(h).IsFading() {
		t.Errorf("still fading")
	}
}

func TestPlayerFadingStop(t *testing.T) {
	t.Parallel()

	s := audiotest.NewSound()
	p := NewPlayer[int](nil, WithFadeTime(1))
	h := p.Play(0, sound.NewClip(s, "hum", 5), 1, 1, true, false)

	p.Stop(h)
	if p.Instance(h) == nil {
		t.Fatal("fading stop removed the instance at once")
	}
	p.Update(0.5)
	if v := s.Voice(h).Volume; v != 0.5 {
		t.Errorf("volume halfway = %v, want 0.5", v)
	}
	p.Update(0.5)
	if p.Instance(h) != nil {
		t.Errorf("instance live after the fade")
	}
	if !s.Voice(h).Stopped {
		t.Errorf("voice not stopped")
	}
}

func TestPlayerFadingPauseResume(t *testing.T) {
	t.Parallel()

	s := audiotest.NewSound()
	p := NewPlayer[int](nil, WithFadeTime(1))
	h := p.Play(0, sound.NewClip(s, "hum", 5), 1, 1, true, false)

	p.Pause(h)
	p.Update(1)
	inst := p.Instance(h)
	if inst == nil || inst.IsRunning() {
		t.Fatalf("paused instance should stay parked")
	}
	if !s.Voice(h).Paused {
		t.Errorf("voice not paused")
	}

	p.Update(1)
	p.Resume(h)
	if v := s.Voice(h).Volume; v != 0 || s.Voice(h).Paused {
		t.Errorf("resumed voice = %+v, want unpaused and silent", *s.Voice(h))
	}
	p.Update(0.5)
	p.Update(0.5)
	if v := s.Voice(h).Volume; v != 1 {
		t.Errorf("volume after the fade-in = %v, want 1", v)
	}
}

func TestPlayerResumeRunningKeepsLevel(t *testing.T) {
	t.Parallel()

	s := audiotest.NewSound()
	p := NewPlayer[int](nil, WithFadeTime(1))
	h := p.Play(0, sound.NewClip(s, "hum", 5), 1, 1, true, false)

	p.Resume(h)
	if v := s.Voice(h).Volume; v != 1 {
		t.Errorf("volume after Resume() of a running instance = %v, want 1", v)
	}
	if p.Instance(h).IsFading() {
		t.Error("IsFading() = true after Resume() of a running instance, want false")
	}

	p.Pause(h)
	p.Update(0.25)
	p.Resume(h)
	p.Update(0.25)
	if v := s.Voice(h).Volume; v != 1 {
		t.Errorf("volume after reversing a pause = %v, want 1", v)
	}
}

func TestFadeDirectionChangeIsContinuous(t *testing.T) {
	t.Parallel()

	s := audiotest.NewSound()
	p := NewPlayer[int](nil, WithFadeTime(1))
	h := p.Play(0, sound.NewClip(s, "hum", 5), 1, 1, true, true)

	p.Update(0.25)
	if v := s.Voice(h).Volume; v != 0.25 {
		t.Fatalf("volume = %v, want 0.25", v)
	}

	p.Pause(h)
	p.Update(0.125)
	if v := s.Voice(h).Volume; v != 0.125 {
		t.Errorf("volume = %v, want 0.125 after reversing", v)
	}
}

func TestPlayerRecycledHandle(t *testing.T) {
	t.Parallel()

	s := audiotest.NewSound()
	p := NewPlayer[int](nil)
	c := sound.NewClip(s, "bell", 2)

	h := p.Play(1, c, 1, 1, false, false)
	s.NextHandle(h)
	if again := p.Play(2, c, 1, 1, false, false); again != h {
		t.Fatalf("handles differ")
	}

	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
	if inst := p.Instance(h); inst.Position() != 2 {
		t.Errorf("Instance().Position() = %v, want 2", inst.Position())
	}
	if s.Voice(h).Stopped {
		t.Errorf("live voice stopped by the stale instance")
	}
}

func TestPlayerStopAll(t *testing.T) {
	t.Parallel()

	s := audiotest.NewSound()
	p := NewPlayer[int](nil, WithFadeTime(1))
	c := sound.NewClip(s, "bell", 2)
	a := p.Play(0, c, 1, 1, true, false)
	b := p.Play(0, c, 1, 1, true, false)

	p.StopAll()
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
	if !s.Voice(a).Stopped || !s.Voice(b).Stopped {
		t.Errorf("voices not stopped")
	}
}

func TestSetSpatializerNil(t *testing.T) {
	t.Parallel()

	p := NewPlayer[int](nil)
	if _, ok := p.Spatializer().(Flat[int]); !ok {
		t.Errorf("Spatializer() = %T, want Flat", p.Spatializer())
	}
}
