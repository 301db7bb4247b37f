// SPDX-License-Identifier: EPL-2.0

package audio

import "sync"

// Registry records which playables are owned by a playlist. A playable can
// belong to one playlist at a time.
type Registry struct {
	owned map[Playable]struct{}

	mtx *sync.Mutex
}

// DefaultRegistry is shared by every playlist that was not given its own.
var DefaultRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		owned: make(map[Playable]struct{}),
		mtx:   &sync.Mutex{},
	}
}

// Acquire claims p. It returns false, and changes nothing, when p is
// already owned.
func (r *Registry) Acquire(p Playable) bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.owned[p]; ok {
		return false
	}
	r.owned[p] = struct{}{}
	return true
}

func (r *Registry) Release(p Playable) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.owned, p)
}

func (r *Registry) Owned(p Playable) bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	_, ok := r.owned[p]
	return ok
}

func (r *Registry) Len() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return len(r.owned)
}
