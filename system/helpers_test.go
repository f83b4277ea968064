package system

import (
	"testing"

	"github.com/lixenwraith/jumper/config"
	"github.com/lixenwraith/jumper/core"
	"github.com/lixenwraith/jumper/engine"
	"github.com/lixenwraith/jumper/vmath"
)

// newTestWorld returns an 800x600 world with an empty session and a player at the origin
func newTestWorld(t *testing.T) *engine.World {
	t.Helper()
	cfg := config.Default()
	w := engine.NewWorld(&cfg, vmath.NewFastRand(12345))
	w.Resources.Viewport.Size = core.Size{W: 800, H: 600}
	w.Resources.Time.DeltaTime = 1.0 / 60
	w.Session = engine.NewSession()
	w.Session.Player = &engine.Player{}
	return w
}

// placeAirborne puts the player at pos falling with vy, as if integration just ran
func placeAirborne(w *engine.World, prev vmath.Vec2, vy float64) {
	p := w.Session.Player
	dt := w.Resources.Time.DeltaTime
	p.OnGround = false
	p.Prev = prev
	p.Vel = vmath.V2(0, vy)
	p.Pos = vmath.V2(prev.X, prev.Y+vy*dt)
}

func runSystems(w *engine.World, systems ...engine.System) {
	for _, s := range systems {
		s.Update(w)
	}
}
