// pkg/utils/vector.go
package utils

import "math"

// Vec2 is a 2D vector in screen space. Y grows downwards.
type Vec2 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Div returns v / k. k must be non-zero.
func (v Vec2) Div(k float64) Vec2 {
	return Vec2{v.X / k, v.Y / k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// WithLen returns v rescaled to length l, keeping its direction.
// The zero vector stays zero.
func (v Vec2) WithLen(l float64) Vec2 {
	n := v.Len()
	if n == 0 {
		return v
	}
	return v.Scale(l / n)
}

// ClampLen rescales v to max when it is longer than max.
func (v Vec2) ClampLen(max float64) Vec2 {
	if v.Len() > max {
		return v.WithLen(max)
	}
	return v
}
