package colony

import (
	"github.com/lixenwraith/ant-colony/environment"
	"github.com/lixenwraith/ant-colony/vmath"
)

// Rand is the random source threaded through ant updates
// *rand.Rand from math/rand/v2 satisfies it
type Rand interface {
	IntN(n int) int
	Float64() float64
	NormFloat64() float64
}

// avoidObstacles returns the turn that steers away from blocked probes
// Only-ahead blocked is ambiguous, so the side is a coin flip
// Ahead plus a side remaps the side bias to 2*ahead - k*bias
func avoidObstacles(probes *[3]vmath.Circle, obstacles *environment.Obstacles, b *Behavior, rng Rand) float64 {
	left := obstacles.AnyInCircle(probes[Left])
	ahead := obstacles.AnyInCircle(probes[Center])
	right := obstacles.AnyInCircle(probes[Right])

	if ahead && !left && !right {
		if rng.IntN(2) == 0 {
			return -b.AvoidAheadAngle
		}
		return b.AvoidAheadAngle
	}

	angle := 0.0
	if left {
		angle -= b.AvoidSideAngle
	}
	if right {
		angle += b.AvoidSideAngle
	}
	if ahead {
		angle = 2*b.AvoidAheadAngle - b.AvoidAheadMultiplier*angle
	}
	return angle
}

// followPheromones returns the intensity-weighted mean of probe offsets {+step, 0, -step}
// Zero when no probe smells anything
func followPheromones(probes *[3]vmath.Circle, field *environment.Pheromones, step float64) float64 {
	weighted := 0.0
	total := 0

	offset := step
	for _, probe := range probes {
		w := field.IntensityInCircle(probe)
		weighted += offset * float64(w)
		total += w
		offset -= step
	}

	if total == 0 {
		return 0
	}
	return weighted / float64(total)
}

// wander draws the per-tick random turn, no draw at all when disabled
func wander(rng Rand, stddev float64) float64 {
	if stddev == 0 {
		return 0
	}
	return rng.NormFloat64() * stddev
}
