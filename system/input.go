package system

import (
	"github.com/lixenwraith/jumper/engine"
	"github.com/lixenwraith/jumper/parameter"
)

// InputSystem folds the frame's pointer events into a launch command
type InputSystem struct{}

// NewInputSystem creates the input aggregation stage
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (s *InputSystem) Name() string {
	return "input"
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) Update(w *engine.World) {
	player := w.Player()
	if player == nil || !w.Resources.Viewport.Ready() {
		return
	}

	res := &w.Resources.Input
	res.Launch, res.HasLaunch = w.Session.Aim.Process(
		res.Events,
		w.Resources.Time.DeltaTime,
		player.OnGround,
		w.Resources.Viewport.Size.W,
	)
}
