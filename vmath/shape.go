package vmath

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r2"
)

var (
	ErrNonPositiveRadius = errors.New("vmath: circle radius must be positive")
	ErrNegativeSize      = errors.New("vmath: rectangle width and height must be non-negative")
)

// Circle is a center and a strictly positive radius
type Circle struct {
	center Vec2
	radius float64
}

// NewCircle validates radius > 0
func NewCircle(center Vec2, radius float64) (Circle, error) {
	if !(radius > 0) {
		return Circle{}, fmt.Errorf("%w: got %v", ErrNonPositiveRadius, radius)
	}
	return Circle{center: center, radius: radius}, nil
}

// MustCircle is NewCircle for literals, panics on invalid radius
func MustCircle(center Vec2, radius float64) Circle {
	c, err := NewCircle(center, radius)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Circle) Center() Vec2    { return c.center }
func (c Circle) Radius() float64 { return c.radius }

func (c *Circle) SetCenter(center Vec2) {
	c.center = center
}

func (c *Circle) SetRadius(radius float64) error {
	if !(radius > 0) {
		return fmt.Errorf("%w: got %v", ErrNonPositiveRadius, radius)
	}
	c.radius = radius
	return nil
}

// Contains is inclusive: distance <= radius
func (c Circle) Contains(p Vec2) bool {
	return p.Sub(c.center).Norm2() <= c.radius*c.radius
}

// Rect is an axis-aligned rectangle anchored at its top-left corner
// It spans [X, X+Width] horizontally and [Y-Height, Y] vertically, since +Y is up
type Rect struct {
	corner Vec2
	width  float64
	height float64
	bounds r2.Rect
}

// NewRect validates non-negative width and height
func NewRect(topLeft Vec2, width, height float64) (Rect, error) {
	if width < 0 || height < 0 {
		return Rect{}, fmt.Errorf("%w: got %vx%v", ErrNegativeSize, width, height)
	}
	return Rect{
		corner: topLeft,
		width:  width,
		height: height,
		bounds: r2.RectFromPoints(
			r2.Point{X: topLeft.X, Y: topLeft.Y - height},
			r2.Point{X: topLeft.X + width, Y: topLeft.Y},
		),
	}, nil
}

// MustRect is NewRect for literals, panics on negative size
func MustRect(topLeft Vec2, width, height float64) Rect {
	r, err := NewRect(topLeft, width, height)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Rect) TopLeft() Vec2     { return r.corner }
func (r Rect) Width() float64    { return r.width }
func (r Rect) Height() float64   { return r.height }
func (r Rect) Bounds() r2.Rect   { return r.bounds }
func (r Rect) BottomRight() Vec2 { return Vec2{r.corner.X + r.width, r.corner.Y - r.height} }

// Contains is inclusive on all edges
func (r Rect) Contains(p Vec2) bool {
	return r.bounds.ContainsPoint(p.Point())
}

// ClosestPoint returns the point of r nearest to p
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return FromPoint(r.bounds.ClampPoint(p.Point()))
}

// Intersects reports whether circle and rectangle share at least one point
// Touching boundaries count as intersecting
func Intersects(c Circle, r Rect) bool {
	closest := r.ClosestPoint(c.center)
	return closest.Sub(c.center).Norm2() <= c.radius*c.radius
}

// CirclesIntersect reports whether two circles overlap or touch
func CirclesIntersect(a, b Circle) bool {
	sum := a.radius + b.radius
	return a.center.Sub(b.center).Norm2() <= sum*sum
}
