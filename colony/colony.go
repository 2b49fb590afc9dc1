package colony

import (
	"fmt"
	"iter"
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/ant-colony/environment"
	"github.com/lixenwraith/ant-colony/vmath"
)

// Colony owns the ants and the random source they share
// Ants update in index order against one generator, so a seed plus the
// insertion order fully determines every trajectory
type Colony struct {
	ants     []Ant
	rng      *rand.Rand
	behavior Behavior
}

// New creates an empty colony; the behavior is validated once here
func New(seed uint64, behavior Behavior) (*Colony, error) {
	if err := behavior.Validate(); err != nil {
		return nil, err
	}
	return &Colony{
		rng:      vmath.NewRand(seed),
		behavior: behavior,
	}, nil
}

func (c *Colony) Behavior() Behavior { return c.behavior }

// Add appends a copy of ant
func (c *Colony) Add(ant Ant) {
	c.ants = append(c.ants, ant)
}

// AddAnt builds and appends an ant, zero velocity is rejected
func (c *Colony) AddAnt(position, velocity vmath.Vec2, hasFood bool) error {
	ant, err := NewAnt(position, velocity, hasFood)
	if err != nil {
		return err
	}
	c.ants = append(c.ants, ant)
	return nil
}

// ScatterAround places n searching ants on the rim of circle
// Positions are uniform in angle; headings point outward, rotated by up to ±π/2
func (c *Colony) ScatterAround(circle vmath.Circle, n int) error {
	if n < 0 {
		return fmt.Errorf("scatter: %w: got %d", environment.ErrNegativeCount, n)
	}
	for range n {
		theta := c.rng.Float64() * 2 * math.Pi
		outward := vmath.V2(1, 0).Rotate(theta)
		position := circle.Center().Add(outward.Scale(circle.Radius()))

		spread := (c.rng.Float64() - 0.5) * math.Pi
		velocity := outward.Rotate(spread).Scale(c.behavior.Speed)

		c.ants = append(c.ants, Ant{position: position, velocity: velocity})
	}
	return nil
}

func (c *Colony) Len() int { return len(c.ants) }

// At returns a copy of the i-th ant
func (c *Colony) At(i int) Ant { return c.ants[i] }

// All yields index and a copy of each ant in update order
func (c *Colony) All() iter.Seq2[int, Ant] {
	return func(yield func(int, Ant) bool) {
		for i, a := range c.ants {
			if !yield(i, a) {
				return
			}
		}
	}
}

// Carrying counts ants currently holding food
func (c *Colony) Carrying() int {
	n := 0
	for i := range c.ants {
		if c.ants[i].hasFood {
			n++
		}
	}
	return n
}

// Update runs one tick for every ant in index order
// Earlier ants mutate food, trails and nest before later ants sense them
func (c *Colony) Update(env Surroundings, dt float64) error {
	if err := env.validate(); err != nil {
		return err
	}
	if dt < 0 {
		return fmt.Errorf("%w: got %v", environment.ErrNegativeElapsed, dt)
	}

	for i := range c.ants {
		if err := c.ants[i].Update(env, &c.behavior, c.rng, dt); err != nil {
			return fmt.Errorf("ant %d: %w", i, err)
		}
	}
	return nil
}
