package vmath

import (
	"errors"
	"math"

	"github.com/golang/geo/r2"
)

// ErrDivideByZero is returned when a vector is divided by a zero scalar
var ErrDivideByZero = errors.New("vmath: division by zero")

// Vec2 is a float64 2D vector, always passed by value
// Y axis points up, angles are radians counter-clockwise from +X
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{X: x, Y: y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div divides both components by s, s == 0 is rejected
func (v Vec2) Div(s float64) (Vec2, error) {
	if s == 0 {
		return Vec2{}, ErrDivideByZero
	}
	return v.Scale(1 / s), nil
}

// Dot returns v.X*o.X + v.Y*o.Y
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Norm2 returns squared magnitude without sqrt
func (v Vec2) Norm2() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Norm() float64 {
	return math.Sqrt(v.Norm2())
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rotate rotates v by angle radians, counter-clockwise positive
// Magnitude is preserved up to float rounding
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle returns the heading of v in [-π, π], 0 for the zero vector
func (v Vec2) Angle() float64 {
	if v.IsZero() {
		return 0
	}
	return math.Atan2(v.Y, v.X)
}

// Point converts to the r2 representation used for rectangle math
func (v Vec2) Point() r2.Point {
	return r2.Point{X: v.X, Y: v.Y}
}

// FromPoint converts an r2.Point back to Vec2
func FromPoint(p r2.Point) Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}
