// Package core provides the fundamental value types shared by the simulation
// and the presentation layer: float world-space geometry for the simulation
// and an integer cell grid for the terminal screen buffer. It has no external
// dependencies (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units. Value type, no identity.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// AABB is an axis-aligned bounding box in world units, y-down.
// X,Y is the top-left corner. Value type.
type AABB struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge.
func (a AABB) Right() float64 {
	return a.X + a.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (a AABB) Bottom() float64 {
	return a.Y + a.H
}

// Overlaps reports whether two boxes overlap. The test is strict: boxes
// that merely touch along an edge do not overlap.
func (a AABB) Overlaps(b AABB) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Shrink returns the box scaled about its center by the given factor.
// A factor below 1 shrinks the box equally on all sides.
func (a AABB) Shrink(factor float64) AABB {
	w := a.W * factor
	h := a.H * factor
	return AABB{
		X: a.X + (a.W-w)/2,
		Y: a.Y + (a.H-h)/2,
		W: w,
		H: h,
	}
}

// Rect is an axis-aligned box on the integer cell grid used by the screen
// buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
