package physics

import (
	"github.com/lixenwraith/jumper/core"
	"github.com/lixenwraith/jumper/vmath"
)

// Launch sets the velocity for a launch toward targetX: horizontal speed
// closes the gap in one second, vertical speed is charge * scale
func Launch(k *core.Kinetic, targetX, charge, scale float64) {
	k.Vel = vmath.Vec2{
		X: targetX - k.Pos.X,
		Y: charge * scale,
	}
}

// Integrate performs explicit Euler with gravity first: vy -= g*dt; p += v*dt
// The position before the step is kept in Prev for swept tests
func Integrate(k *core.Kinetic, gravity, dt float64) {
	k.Prev = k.Pos
	k.Vel.Y -= gravity * dt
	k.Pos = vmath.V2Add(k.Pos, vmath.V2Scale(k.Vel, dt))
}

// Stop zeroes velocity
func Stop(k *core.Kinetic) {
	k.Vel = vmath.Vec2{}
}

// RestY returns the center y of a body of height bodyH resting on a box
// centered at boxY with height boxH
func RestY(boxY, boxH, bodyH float64) float64 {
	return boxY + boxH/2 + bodyH/2
}
