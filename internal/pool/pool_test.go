// SPDX-License-Identifier: EPL-2.0

package pool

import "testing"

type counter struct {
	value  int
	resets int
}

func (c *counter) Reset() {
	c.value = 0
	c.resets++
}

func TestPool_ObtainReusesFreed(t *testing.T) {
	t.Parallel()

	created := 0
	p := New(func() *counter {
		created++
		return &counter{}
	}, 0)

	a := p.Obtain()
	a.value = 42
	p.Free(a)

	if a.value != 0 {
		t.Errorf("value after Free = %d, want 0 (reset)", a.value)
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}

	b := p.Obtain()
	if b != a {
		t.Error("Obtain() did not reuse the freed object")
	}
	if created != 1 {
		t.Errorf("created %d objects, want 1", created)
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
}

func TestPool_Bounded(t *testing.T) {
	t.Parallel()

	p := New(func() *counter { return &counter{} }, 2)

	objs := []*counter{p.Obtain(), p.Obtain(), p.Obtain()}
	for _, o := range objs {
		p.Free(o)
	}

	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
	if p.Peak() != 2 {
		t.Errorf("Peak() = %d, want 2", p.Peak())
	}
	// Dropped objects are still reset.
	if objs[2].resets != 1 {
		t.Errorf("dropped object resets = %d, want 1", objs[2].resets)
	}
}
