package environment

import (
	"iter"
	"slices"

	"github.com/lixenwraith/ant-colony/vmath"
)

// Obstacles is the ordered set of rectangular obstacles, read-only during a tick
type Obstacles struct {
	rects []vmath.Rect
}

func NewObstacles(rects ...vmath.Rect) *Obstacles {
	return &Obstacles{rects: slices.Clone(rects)}
}

// Add appends an obstacle
func (o *Obstacles) Add(r vmath.Rect) {
	o.rects = append(o.rects, r)
}

// AddRect builds and appends a rectangle from its top-left corner and size
func (o *Obstacles) AddRect(topLeft vmath.Vec2, width, height float64) error {
	r, err := vmath.NewRect(topLeft, width, height)
	if err != nil {
		return err
	}
	o.rects = append(o.rects, r)
	return nil
}

// Replace swaps the whole set, used by loaders after a full successful parse
func (o *Obstacles) Replace(rects []vmath.Rect) {
	o.rects = slices.Clone(rects)
}

func (o *Obstacles) Len() int {
	return len(o.rects)
}

// All yields obstacles in insertion order
func (o *Obstacles) All() iter.Seq[vmath.Rect] {
	return slices.Values(o.rects)
}

// AnyInCircle reports whether any obstacle intersects c
func (o *Obstacles) AnyInCircle(c vmath.Circle) bool {
	for _, r := range o.rects {
		if vmath.Intersects(c, r) {
			return true
		}
	}
	return false
}
