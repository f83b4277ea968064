package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/jumper/input"
	"github.com/lixenwraith/jumper/vmath"
)

func TestMotionGroundedStaysPut(t *testing.T) {
	w := newTestWorld(t)
	p := w.Session.Player
	p.Pos = vmath.V2(10, -166)
	p.OnGround = true

	motion := NewMotionSystem()
	for i := 0; i < 120; i++ {
		motion.Update(w)
	}

	if p.Pos != vmath.V2(10, -166) {
		t.Errorf("grounded player moved to %v", p.Pos)
	}
	if !p.Vel.IsZero() {
		t.Errorf("grounded velocity: got %v", p.Vel)
	}
}

func TestMotionAppliesLaunch(t *testing.T) {
	w := newTestWorld(t)
	p := w.Session.Player
	p.Pos = vmath.V2(0, -166)
	p.OnGround = true
	w.Resources.Time.DeltaTime = 0

	w.Resources.Input.Launch = input.Launch{TargetX: 200, Charge: 0.5}
	w.Resources.Input.HasLaunch = true

	NewMotionSystem().Update(w)

	if p.OnGround {
		t.Fatal("launch should leave the ground")
	}
	if p.Vel != vmath.V2(200, 1000) {
		t.Errorf("velocity: got %v, want (200,1000)", p.Vel)
	}
	if w.Resources.Input.HasLaunch {
		t.Error("launch command should be consumed")
	}
}

func TestMotionIgnoresLaunchWhileAirborne(t *testing.T) {
	w := newTestWorld(t)
	p := w.Session.Player
	p.Vel = vmath.V2(5, 0)
	w.Resources.Time.DeltaTime = 0.1
	w.Resources.Input.Launch = input.Launch{TargetX: 300, Charge: 2}
	w.Resources.Input.HasLaunch = true

	NewMotionSystem().Update(w)

	if p.Vel.X != 5 {
		t.Errorf("airborne launch should be ignored, vx=%v", p.Vel.X)
	}
	if math.Abs(p.Vel.Y+150) > 1e-9 {
		t.Errorf("gravity: vy got %v, want -150", p.Vel.Y)
	}
}

func TestMotionLaunchProportionalToCharge(t *testing.T) {
	for _, charge := range []float64{0, 0.1, 0.5, 1, 3.75} {
		w := newTestWorld(t)
		p := w.Session.Player
		p.OnGround = true
		w.Resources.Time.DeltaTime = 0
		w.Resources.Input.Launch = input.Launch{Charge: charge}
		w.Resources.Input.HasLaunch = true

		NewMotionSystem().Update(w)

		if p.OnGround {
			t.Errorf("charge %v: still grounded", charge)
		}
		if p.Vel.Y != charge*2000 {
			t.Errorf("charge %v: vy got %v", charge, p.Vel.Y)
		}
	}
}
