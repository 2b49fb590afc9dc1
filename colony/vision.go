package colony

import "github.com/lixenwraith/ant-colony/vmath"

// Probe indices into a vision triple
const (
	Left = iota
	Center
	Right
)

// Vision returns the three probe circles of an ant at pos heading along vel
// Order is [Left, Center, Right] at bearings {+A, 0, -A}, each D away with radius R
// vel must be non-zero
func Vision(pos, vel vmath.Vec2, b *Behavior) [3]vmath.Circle {
	var probes [3]vmath.Circle
	facing := vel.Scale(1 / vel.Norm())

	angle := b.VisionAngle
	for i := range probes {
		center := pos.Add(facing.Rotate(angle).Scale(b.VisionDistance))
		probes[i] = vmath.MustCircle(center, b.VisionRadius)
		angle -= b.VisionAngle
	}
	return probes
}
