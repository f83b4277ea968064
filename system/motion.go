package system

import (
	"github.com/lixenwraith/jumper/engine"
	"github.com/lixenwraith/jumper/parameter"
	"github.com/lixenwraith/jumper/physics"
)

// MotionSystem applies the launch command and integrates the airborne player
type MotionSystem struct{}

// NewMotionSystem creates the launch and integration stage
func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (s *MotionSystem) Name() string {
	return "motion"
}

func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

func (s *MotionSystem) Update(w *engine.World) {
	player := w.Player()
	if player == nil {
		return
	}
	cfg := w.Resources.Config

	if in := &w.Resources.Input; in.HasLaunch && player.OnGround {
		physics.Launch(&player.Kinetic, in.Launch.TargetX, in.Launch.Charge, cfg.Physics.LaunchScale)
		player.OnGround = false
		in.HasLaunch = false
	}

	if !player.OnGround {
		physics.Integrate(&player.Kinetic, cfg.Physics.Gravity, w.Resources.Time.DeltaTime)
	}
}
