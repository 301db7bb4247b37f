// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"sync"
	"testing"
)

// stubPlayable only needs to be comparable to act as a registry key.
type stubPlayable struct {
	Playable
	name string
}

func TestRegistry_AcquireRelease(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	a := &stubPlayable{name: "a"}
	b := &stubPlayable{name: "b"}

	if !r.Acquire(a) {
		t.Fatal("Acquire(a) = false, want true")
	}
	if r.Acquire(a) {
		t.Error("second Acquire(a) = true, want false")
	}
	if !r.Acquire(b) {
		t.Error("Acquire(b) = false, want true")
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}

	r.Release(a)
	if r.Owned(a) {
		t.Error("Owned(a) = true after Release")
	}
	if !r.Acquire(a) {
		t.Error("Acquire(a) after Release = false, want true")
	}

	// Releasing something never acquired is harmless.
	r.Release(&stubPlayable{name: "c"})
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestRegistry_ConcurrentAcquire(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	p := &stubPlayable{name: "contended"}

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0

	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r.Acquire(p) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("%d goroutines acquired the same playable, want 1", wins)
	}
}
