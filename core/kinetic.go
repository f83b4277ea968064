package core

import "github.com/lixenwraith/jumper/vmath"

// Kinetic holds continuous position and velocity in world units
type Kinetic struct {
	Pos vmath.Vec2
	Vel vmath.Vec2

	// Prev is the position before the most recent integration step
	Prev vmath.Vec2
}

// Size is an axis-aligned box extent
type Size struct {
	W float64 `json:"w" toml:"width"`
	H float64 `json:"h" toml:"height"`
}

func (s Size) HalfW() float64 { return s.W / 2 }
func (s Size) HalfH() float64 { return s.H / 2 }

// Valid reports a box with positive area
func (s Size) Valid() bool {
	return s.W > 0 && s.H > 0
}
