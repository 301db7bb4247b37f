// SPDX-License-Identifier: EPL-2.0

// Package pool keeps free lists of reusable objects so per-tick code paths
// do not allocate.
package pool

import "sync"

// Poolable objects are reset before they go back on the free list.
type Poolable interface {
	Reset()
}

// Pool is a bounded free list. Objects beyond max are dropped on Free and
// left to the garbage collector.
type Pool[T Poolable] struct {
	newObject func() T
	free      []T
	max       int
	peak      int

	mtx *sync.Mutex
}

// New returns a pool that builds objects with newObject. max <= 0 means
// unbounded.
func New[T Poolable](newObject func() T, max int) *Pool[T] {
	return &Pool[T]{
		newObject: newObject,
		max:       max,
		mtx:       &sync.Mutex{},
	}
}

// Obtain returns a free object, or a new one when none is free.
func (p *Pool[T]) Obtain() T {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	n := len(p.free)
	if n == 0 {
		return p.newObject()
	}
	obj := p.free[n-1]
	var zero T
	p.free[n-1] = zero
	p.free = p.free[:n-1]
	return obj
}

// Free resets obj and puts it back on the free list.
func (p *Pool[T]) Free(obj T) {
	obj.Reset()

	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.max > 0 && len(p.free) >= p.max {
		return
	}
	p.free = append(p.free, obj)
	p.peak = max(p.peak, len(p.free))
}

// Len is the number of objects waiting for reuse.
func (p *Pool[T]) Len() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return len(p.free)
}

// Peak is the largest the free list has been.
func (p *Pool[T]) Peak() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.peak
}
