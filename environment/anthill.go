package environment

import (
	"fmt"

	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/vmath"
)

// Anthill is the nest: a circle and the food delivered to it
type Anthill struct {
	circle vmath.Circle
	food   int
}

// NewAnthill rejects a negative starting counter
func NewAnthill(circle vmath.Circle, food int) (*Anthill, error) {
	if food < 0 {
		return nil, fmt.Errorf("anthill food counter: %w: got %d", ErrNegativeAmount, food)
	}
	return &Anthill{circle: circle, food: food}, nil
}

// DefaultAnthill is an empty unit nest at the origin
func DefaultAnthill() *Anthill {
	return &Anthill{circle: vmath.MustCircle(vmath.Vec2{}, parameter.AnthillDefaultRadius)}
}

func (a *Anthill) Circle() vmath.Circle { return a.circle }
func (a *Anthill) Center() vmath.Vec2   { return a.circle.Center() }
func (a *Anthill) Radius() float64      { return a.circle.Radius() }
func (a *Anthill) Food() int            { return a.food }

// Contains is inclusive on the rim
func (a *Anthill) Contains(p vmath.Vec2) bool {
	return a.circle.Contains(p)
}

// AddFood increases the counter, negative amounts are rejected
func (a *Anthill) AddFood(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeAmount, amount)
	}
	a.food += amount
	return nil
}

// Set replaces circle and counter together, used by loaders
func (a *Anthill) Set(circle vmath.Circle, food int) error {
	if food < 0 {
		return fmt.Errorf("anthill food counter: %w: got %d", ErrNegativeAmount, food)
	}
	a.circle = circle
	a.food = food
	return nil
}
