package colony

import (
	"fmt"

	"github.com/lixenwraith/ant-colony/environment"
	"github.com/lixenwraith/ant-colony/vmath"
)

// Surroundings are the shared fields an ant reads and mutates during its update
// Obstacles are only read
type Surroundings struct {
	Food      *environment.Food
	ToAnthill *environment.Pheromones
	ToFood    *environment.Pheromones
	Anthill   *environment.Anthill
	Obstacles *environment.Obstacles
}

// validate checks presence and polarity of every field
func (s Surroundings) validate() error {
	if s.Food == nil || s.ToAnthill == nil || s.ToFood == nil || s.Anthill == nil || s.Obstacles == nil {
		return ErrIncomplete
	}
	if s.ToAnthill.Kind() != environment.ToAnthill {
		return fmt.Errorf("%w: ToAnthill field is %s", ErrPolarity, s.ToAnthill.Kind())
	}
	if s.ToFood.Kind() != environment.ToFood {
		return fmt.Errorf("%w: ToFood field is %s", ErrPolarity, s.ToFood.Kind())
	}
	return nil
}

// Ant is one forager; velocity doubles as heading and is never zero
type Ant struct {
	position     vmath.Vec2
	velocity     vmath.Vec2
	hasFood      bool
	sinceRelease float64
}

// NewAnt rejects a zero velocity, which has no heading
func NewAnt(position, velocity vmath.Vec2, hasFood bool) (Ant, error) {
	if velocity.IsZero() {
		return Ant{}, ErrZeroVelocity
	}
	return Ant{position: position, velocity: velocity, hasFood: hasFood}, nil
}

func (a Ant) Position() vmath.Vec2 { return a.position }
func (a Ant) Velocity() vmath.Vec2 { return a.velocity }
func (a Ant) HasFood() bool        { return a.hasFood }

// FacingAngle is the heading in [-π, π]
func (a Ant) FacingAngle() float64 {
	return a.velocity.Angle()
}

// Update advances the ant by dt against the shared surroundings
//
// Order: release timer, move, sense, then either deliver at the nest (carrying)
// or lay trail and try to pick food up (searching), then avoid obstacles, then
// follow the trail of opposite polarity with random wandering on top.
// Picking food up reverses the heading.
//
// The surroundings must carry the right polarities, b must be non-nil and pass
// Validate, and dt must be non-negative.
// A precondition failure returns before any state is touched.
func (a *Ant) Update(env Surroundings, b *Behavior, rng Rand, dt float64) error {
	if b == nil {
		return fmt.Errorf("%w: nil behavior", ErrInvalidBehavior)
	}
	if err := b.Validate(); err != nil {
		return err
	}
	if err := env.validate(); err != nil {
		return err
	}
	if dt < 0 {
		return fmt.Errorf("%w: got %v", environment.ErrNegativeElapsed, dt)
	}

	a.sinceRelease += dt
	release := false
	if a.sinceRelease > b.ReleasePeriod {
		a.sinceRelease -= b.ReleasePeriod
		release = true
	}

	a.position = a.position.Add(a.velocity.Scale(dt))
	probes := Vision(a.position, a.velocity, b)

	if a.hasFood {
		if env.Anthill.Contains(a.position) {
			if err := env.Anthill.AddFood(1); err != nil {
				return err
			}
			a.hasFood = false
		} else if release {
			env.ToFood.AddDefault(a.position)
		}
	} else {
		if release {
			env.ToAnthill.AddDefault(a.position)
		}
		for _, probe := range probes {
			if env.Food.RemoveOneInCircle(probe) {
				a.hasFood = true
				a.velocity = a.velocity.Neg()
				probes = Vision(a.position, a.velocity, b)
				break
			}
		}
	}

	if turn := avoidObstacles(&probes, env.Obstacles, b, rng); turn != 0 {
		a.velocity = a.velocity.Rotate(turn)
		probes = Vision(a.position, a.velocity, b)
	}

	follow := env.ToFood
	if a.hasFood {
		follow = env.ToAnthill
	}
	turn := followPheromones(&probes, follow, b.PheromoneSteerAngle)
	turn += wander(rng, b.WanderStdDev)
	a.velocity = a.velocity.Rotate(turn)

	return nil
}
