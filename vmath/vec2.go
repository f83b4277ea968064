package vmath

import "math"

// Vec2 is a float64 2D vector in world units, +Y up
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2Near reports whether both components are within eps
func V2Near(a, b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// IsZero reports an exact zero vector
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Near reports whether a and b differ by at most eps
func Near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
