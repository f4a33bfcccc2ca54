// Package geom provides the 2D vector and path types shared by every stage of
// the polyline pipeline.
//
// All operations are value-based: methods on [Vec2] return new vectors and
// never mutate the receiver, and pipeline stages build new [Path] values
// instead of editing their input.
package geom

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector or point.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Len returns the Euclidean norm of v. It is always >= 0.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns v scaled to unit length.
//
// A zero vector has no direction: the result then has NaN components.
// Callers that may hold a zero vector must check [Vec2.IsZero] first.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	return Vec2{v.X / l, v.Y / l}
}

// Normal returns v rotated 90° counter-clockwise: (-y, x).
func (v Vec2) Normal() Vec2 { return Vec2{-v.Y, v.X} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// To returns the directed difference o - v.
func (v Vec2) To(o Vec2) Vec2 { return Vec2{o.X - v.X, o.Y - v.Y} }

// Add returns v translated by o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
