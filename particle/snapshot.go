package particle

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/flare/vmath"
)

// fadeGain normalizes n*(1-n)^2 so its peak at n=1/3 is about 1
const fadeGain = 6.7

// Sprite is a read-only render view of one live particle
type Sprite struct {
	Position vmath.Vec3F
	Velocity vmath.Vec3F

	// Age is normalized to [0, 1) of the particle's own lifetime
	Age      float64
	Size     float64
	Rotation float64
	Color    colorful.Color
	Alpha    float64
}

// Snapshot appends a sprite per live particle to buf[:0] and returns it
// Renderers reuse buf across frames to avoid allocation
func (p *Pool) Snapshot(buf []Sprite) []Sprite {
	buf = buf[:0]
	s := &p.settings

	for i := range p.live {
		pt := &p.live[i]
		n := pt.age / pt.lifetime

		startSize := s.StartSize.At(pt.sizeT)
		endSize := s.EndSize.At(pt.sizeT)

		buf = append(buf, Sprite{
			Position: pt.position,
			Velocity: pt.velocity,
			Age:      n,
			Size:     vmath.Lerp(startSize, endSize, n),
			Rotation: pt.rotateSpeed * pt.age,
			Color:    s.Color.At(pt.colorT),
			Alpha:    vmath.Saturate(n * (1 - n) * (1 - n) * fadeGain),
		})
	}
	return buf
}
