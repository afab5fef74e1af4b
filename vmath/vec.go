// Package vmath provides the 2D vector math used by the physics systems.
// Arithmetic is delegated to gonum's spatial/r2 package.
package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// Zero is the zero vector.
var Zero = Vec2{}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) r2() r2.Vec { return r2.Vec(v) }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2(r2.Add(v.r2(), o.r2()))
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2(r2.Sub(v.r2(), o.r2()))
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2(r2.Scale(s, v.r2()))
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return v.Scale(-1)
}

// Length returns |v|.
func (v Vec2) Length() float64 {
	return r2.Norm(v.r2())
}

// LengthSquared returns |v|^2 without the square root.
func (v Vec2) LengthSquared() float64 {
	return r2.Norm2(v.r2())
}

// NormalizeOrZero returns the unit vector of v, or the zero vector when v has
// zero (or non-finite) length.
func (v Vec2) NormalizeOrZero() Vec2 {
	l := v.Length()
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return Zero
	}
	return Vec2(r2.Unit(v.r2()))
}

// ClampLength returns v scaled down so that its length does not exceed max.
// Vectors already within max are returned unchanged.
func (v Vec2) ClampLength(max float64) Vec2 {
	if max <= 0 {
		return Zero
	}
	l2 := v.LengthSquared()
	if l2 <= max*max {
		return v
	}
	return v.Scale(max / math.Sqrt(l2))
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Lerp linearly interpolates between start and end.
func Lerp(start, end, ratio float64) float64 {
	return start*(1-ratio) + end*ratio
}
