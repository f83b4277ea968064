package physics

import (
	"math"

	"github.com/lixenwraith/jumper/core"
	"github.com/lixenwraith/jumper/vmath"
)

// OverlapX reports horizontal overlap of two centered boxes, edges touching do not count
func OverlapX(ax, bx float64, a, b core.Size) bool {
	return math.Abs(ax-bx) < (a.W+b.W)/2
}

// SweptLanding tests whether a falling body crosses a box top during the last step
//
// Evaluation order matters at high fall speeds: bottom is taken from the
// position before integration (k.Prev) and projected with the velocity after
// gravity was applied. The body lands when its bottom started at or above the
// top and the projection reaches or passes it.
func SweptLanding(k *core.Kinetic, body core.Size, boxPos vmath.Vec2, box core.Size, dt float64) bool {
	if !OverlapX(k.Pos.X, boxPos.X, body, box) {
		return false
	}
	top := boxPos.Y + box.HalfH()
	bottom := k.Prev.Y - body.HalfH()
	bottomNext := bottom + k.Vel.Y*dt
	return bottom >= top && bottomNext <= top
}
