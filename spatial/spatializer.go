// SPDX-License-Identifier: EPL-2.0

package spatial

import (
	"golang.org/x/image/math/f32"

	"github.com/ik5/audsfx/utils"
)

// Spatializer sets an instance's pan and volume from its position.
// nominalVolume is the player's volume, the loudest the instance may get.
type Spatializer[T any] interface {
	Spatialize(inst *Instance[T], nominalVolume float32)
}

// Flat ignores positions: every instance plays centered at the nominal
// volume.
type Flat[T any] struct{}

func (Flat[T]) Spatialize(inst *Instance[T], nominalVolume float32) {
	inst.SetPan(0, nominalVolume)
}

// Planar spatializes positions on a plane for a listener hovering above it
// at height Listener[2].
//
// Sounds fade out with the square of their distance to the listener and are
// silent beyond HorizontalRange. The higher the listener, up to
// VerticalRange, the quieter everything gets. Pan follows the horizontal
// offset from the listener. A range <= 0 disables what depends on it.
type Planar struct {
	Listener        f32.Vec3
	HorizontalRange float32
	VerticalRange   float32
}

func NewPlanar(horizontalRange, verticalRange float32) *Planar {
	return &Planar{
		HorizontalRange: horizontalRange,
		VerticalRange:   verticalRange,
	}
}

// SetListener moves the listener.
func (p *Planar) SetListener(x, y, z float32) {
	p.Listener = f32.Vec3{x, y, z}
}

func (p *Planar) Spatialize(inst *Instance[f32.Vec2], nominalVolume float32) {
	pos := inst.Position()
	dx := pos[0] - p.Listener[0]
	dy := pos[1] - p.Listener[1]

	horizontal := float32(1)
	pan := float32(0)
	if p.HorizontalRange > 0 {
		dst2 := dx*dx + dy*dy
		horizontal = 1 - utils.Clamp(dst2/(p.HorizontalRange*p.HorizontalRange), 0, 1)
		pan = utils.Clamp(dx/p.HorizontalRange, -1, 1)
	}

	vertical := float32(1)
	if p.VerticalRange > 0 {
		v := 1 - utils.Clamp(p.Listener[2]/p.VerticalRange, 0, 1)
		vertical = v * v * v
	}

	inst.SetPan(pan, utils.Clamp(nominalVolume*horizontal*vertical, 0, 1))
}

var (
	_ Spatializer[f32.Vec2] = (*Planar)(nil)
	_ Spatializer[f32.Vec2] = Flat[f32.Vec2]{}
)
