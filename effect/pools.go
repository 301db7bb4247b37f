// SPDX-License-Identifier: EPL-2.0

package effect

import (
	"github.com/ik5/audsfx/internal/pool"
	"github.com/ik5/audsfx/utils"
)

// Pools recycles effects of each concrete kind.
type Pools struct {
	fadeIns  *pool.Pool[*FadeIn]
	fadeOuts *pool.Pool[*FadeOut]
}

// DefaultPools backs NewFadeIn and NewFadeOut.
var DefaultPools = NewPools(64)

// NewPools returns pools keeping at most max free effects of each kind.
func NewPools(max int) *Pools {
	return &Pools{
		fadeIns:  pool.New(func() *FadeIn { return &FadeIn{} }, max),
		fadeOuts: pool.New(func() *FadeOut { return &FadeOut{} }, max),
	}
}

// FadeIn returns a pooled fade-in. It goes back to p when detached.
func (p *Pools) FadeIn(duration float32, curve utils.Interpolation) *FadeIn {
	f := p.fadeIns.Obtain()
	f.SetDuration(duration)
	f.SetInterpolation(curve)
	f.SetReleaser(func() { p.fadeIns.Free(f) })
	return f
}

// FadeOut returns a pooled fade-out. It goes back to p when detached.
func (p *Pools) FadeOut(duration float32, curve utils.Interpolation) *FadeOut {
	f := p.fadeOuts.Obtain()
	f.SetDuration(duration)
	f.SetInterpolation(curve)
	f.SetReleaser(func() { p.fadeOuts.Free(f) })
	return f
}

// Free counts the effects waiting for reuse in p.
func (p *Pools) Free() (fadeIns, fadeOuts int) {
	return p.fadeIns.Len(), p.fadeOuts.Len()
}

func NewFadeIn(duration float32, curve utils.Interpolation) *FadeIn {
	return DefaultPools.FadeIn(duration, curve)
}

func NewFadeOut(duration float32, curve utils.Interpolation) *FadeOut {
	return DefaultPools.FadeOut(duration, curve)
}
