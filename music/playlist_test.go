// SPDX-License-Identifier: EPL-2.0

package music

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/effect"
	"github.com/ik5/audsfx/internal/audiotest"
)

func newTracks(titles ...string) ([]*Track, []*audiotest.Stream) {
	tracks := make([]*Track, len(titles))
	streams := make([]*audiotest.Stream, len(titles))
	for i, title := range titles {
		streams[i] = audiotest.NewStream()
		tracks[i] = NewTrack(streams[i], title, 60)
	}
	return tracks, streams
}

func newTestPlaylist(t *testing.T, titles ...string) (*Playlist, []*Track, []*audiotest.Stream) {
	t.Helper()

	p := NewPlaylist(WithRegistry(audio.NewRegistry()), WithRand(rand.New(rand.NewPCG(1, 2))))
	tracks, streams := newTracks(titles...)
	for _, tr := range tracks {
		if !p.AddMusic(tr) {
			t.Fatalf("AddMusic(%s) = false", tr.Title())
		}
	}
	return p, tracks, streams
}

func TestPlaylistNextExhausts(t *testing.T) {
	t.Parallel()

	p, tracks, _ := newTestPlaylist(t, "a", "b", "c")
	for i, want := range tracks {
		if got := p.nextEntry(); got != want {
			t.Fatalf("nextEntry() #%d = %v, want %v", i, got, want)
		}
	}
	if got := p.nextEntry(); got != nil {
		t.Errorf("nextEntry() past the end = %v, want nil", got)
	}
}

func TestPlaylistNextRepeats(t *testing.T) {
	t.Parallel()

	p, tracks, _ := newTestPlaylist(t, "a", "b", "c")
	p.SetLooping(true)
	for i := range 10 * len(tracks) {
		got := p.nextEntry()
		if got != tracks[i%len(tracks)] {
			t.Fatalf("nextEntry() #%d = %v, want %v", i, got, tracks[i%len(tracks)])
		}
	}
}

func TestPlaylistPreviousAtStart(t *testing.T) {
	t.Parallel()

	for _, repeat := range []bool{false, true} {
		p, _, _ := newTestPlaylist(t, "a", "b")
		p.SetLooping(repeat)
		if got := p.previousEntry(); got != nil {
			t.Errorf("repeat=%t: previousEntry() = %v, want nil", repeat, got)
		}
	}
}

func TestPlaylistPlaySequence(t *testing.T) {
	t.Parallel()

	p, tracks, streams := newTestPlaylist(t, "a", "b")
	p.Play()

	if p.Current() != tracks[0] || !streams[0].IsPlaying() {
		t.Fatalf("Current() = %v, want a playing", p.Current())
	}

	streams[0].Finish()
	if p.Update(1) {
		t.Errorf("Update() = true while moving on")
	}
	if p.Current() != tracks[1] || !streams[1].IsPlaying() {
		t.Fatalf("Current() = %v, want b playing", p.Current())
	}

	ended := 0
	p.SetOnCompletion(func(Music) { ended++ })
	streams[1].Finish()
	if !p.Update(1) {
		t.Errorf("Update() on the last tick = false, want true")
	}
	if p.IsPlaying() || ended != 1 {
		t.Errorf("IsPlaying() = %t, completions = %d; want false, 1", p.IsPlaying(), ended)
	}
	if !p.Update(1) {
		t.Errorf("Update() once stopped = false, want true")
	}
}

func TestPlaylistRemoveOnlyEntryStops(t *testing.T) {
	t.Parallel()

	p, tracks, streams := newTestPlaylist(t, "a")
	p.Play()

	if !p.RemoveMusic(tracks[0]) {
		t.Fatal("RemoveMusic() = false")
	}
	if p.IsPlaying() {
		t.Errorf("IsPlaying() = true after removing the only entry")
	}
	if streams[0].IsPlaying() {
		t.Errorf("removed track still playing")
	}
}

func TestPlaylistRemoveCurrentPlaysFollowing(t *testing.T) {
	t.Parallel()

	p, tracks, _ := newTestPlaylist(t, "a", "b", "c")
	p.Play()
	p.Next()

	p.RemoveMusic(tracks[1])
	if p.Current() != tracks[2] {
		t.Errorf("Current() = %v, want c", p.Current())
	}

	p.RemoveMusic(tracks[0])
	p.Next()
	if p.IsPlaying() {
		t.Errorf("IsPlaying() = true after the last entry, want false")
	}
}

func TestPlaylistOwnership(t *testing.T) {
	t.Parallel()

	registry := audio.NewRegistry()
	a := NewPlaylist(WithRegistry(registry))
	b := NewPlaylist(WithRegistry(registry))
	tracks, _ := newTracks("x")

	if !a.AddMusic(tracks[0]) {
		t.Fatal("first AddMusic() = false")
	}
	if a.AddMusic(tracks[0]) {
		t.Errorf("duplicate AddMusic() = true")
	}
	if b.AddMusic(tracks[0]) {
		t.Errorf("AddMusic() of a track owned elsewhere = true")
	}
	if b.Len() != 0 {
		t.Errorf("rejected add changed the playlist")
	}

	a.RemoveMusic(tracks[0])
	if !b.AddMusic(tracks[0]) {
		t.Errorf("AddMusic() after release = false")
	}
}

func TestPlaylistStopEndsAtOnce(t *testing.T) {
	t.Parallel()

	p, _, streams := newTestPlaylist(t, "a", "b")
	p.Play()
	p.Stop()

	if p.IsPlaying() {
		t.Errorf("IsPlaying() = true after Stop()")
	}
	if streams[0].IsPlaying() {
		t.Errorf("track still playing")
	}
	p.Stop()
}

func TestPlaylistStopWaitsForFadeOut(t *testing.T) {
	t.Parallel()

	p, _, streams := newTestPlaylist(t, "a")
	p.AddEffect(effect.NewPools(0).FadeOut(1, nil))
	p.Play()
	p.Update(1)
	p.Stop()

	if !p.IsPlaying() {
		t.Fatal("Stop() ended playback before the fade")
	}

	ended := false
	for range 10 {
		if p.Update(0.25) {
			ended = true
			break
		}
	}
	if !ended || p.IsPlaying() || streams[0].IsPlaying() {
		t.Errorf("playlist did not stop after the fade")
	}
}

func TestPlaylistRefusalStalls(t *testing.T) {
	t.Parallel()

	p, tracks, streams := newTestPlaylist(t, "a", "b")
	streams[0].Refuse(true)
	p.Play()

	if p.Current() != nil {
		t.Fatalf("Current() = %v, want nil", p.Current())
	}
	for range 3 {
		if p.Update(1) {
			t.Errorf("Update() = true while stalled")
		}
	}
	if streams[1].Plays() != 0 {
		t.Errorf("stalled playlist moved on by itself")
	}

	p.Next()
	if p.Current() != tracks[1] {
		t.Errorf("Current() = %v, want b", p.Current())
	}
}

func TestPlaylistEffectsFollowPlayhead(t *testing.T) {
	t.Parallel()

	pools := effect.NewPools(0)
	fade := pools.FadeIn(1, nil)

	p, tracks, _ := newTestPlaylist(t, "a", "b")
	p.AddEffect(fade)
	p.Play()

	if !tracks[0].HasEffects() || fade.Target() != tracks[0] {
		t.Fatal("effect not on the first track")
	}

	p.Next()
	if tracks[0].HasEffects() {
		t.Errorf("effect left on the previous track")
	}
	if fade.Target() != tracks[1] {
		t.Errorf("effect not moved to the next track")
	}
	if ins, _ := pools.Free(); ins != 0 {
		t.Errorf("effect returned to its pool during a transition")
	}

	p.RemoveEffect(fade)
	if ins, _ := pools.Free(); ins != 1 {
		t.Errorf("removed effect not returned to its pool")
	}
}

func TestPlaylistPositionPanics(t *testing.T) {
	t.Parallel()

	p := NewPlaylist(WithRegistry(audio.NewRegistry()))
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, audio.ErrUnsupportedOperation) {
			t.Errorf("recover() = %v, want ErrUnsupportedOperation", err)
		}
	}()
	p.Position()
}

func TestPlaylistShuffle(t *testing.T) {
	t.Parallel()

	p, tracks, _ := newTestPlaylist(t, "a", "b", "c", "d", "e")
	p.SetShuffle(true)

	order := p.Order()
	if len(order) != len(tracks) {
		t.Fatalf("len(Order()) = %d, want %d", len(order), len(tracks))
	}
	for _, tr := range tracks {
		if !slices.Contains(order, Music(tr)) {
			t.Errorf("Order() lost %s", tr.Title())
		}
	}

	p.SetShuffle(false)
	for i, m := range p.Order() {
		if m != tracks[i] {
			t.Errorf("Order()[%d] = %v, want %v", i, m, tracks[i])
		}
	}
}

func TestPlaylistSetContentKeepsCurrent(t *testing.T) {
	t.Parallel()

	p, tracks, streams := newTestPlaylist(t, "a", "b")
	p.Play()
	p.Next()

	extra, _ := newTracks("c")
	p.SetContent([]Music{extra[0], tracks[1]})

	if p.Current() != tracks[1] || !streams[1].IsPlaying() {
		t.Fatalf("current entry interrupted")
	}
	if p.Contains(tracks[0]) {
		t.Errorf("old entry kept")
	}
	if p.registry.Owned(tracks[0]) {
		t.Errorf("old entry still owned")
	}

	p.Next()
	if p.IsPlaying() {
		t.Errorf("IsPlaying() = true, want the playlist to end after b")
	}
}

func TestPlaylistDuration(t *testing.T) {
	t.Parallel()

	p, _, _ := newTestPlaylist(t, "a", "b", "c")
	if got := p.Duration(); got != 180 {
		t.Errorf("Duration() = %v, want 180", got)
	}
}
