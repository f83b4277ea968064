package system

import (
	"github.com/lixenwraith/jumper/core"
	"github.com/lixenwraith/jumper/engine"
	"github.com/lixenwraith/jumper/parameter"
	"github.com/lixenwraith/jumper/vmath"
)

// CameraSystem keeps the player inside a dead zone, shifting the camera by
// the overflow only
type CameraSystem struct{}

// NewCameraSystem creates camera following system
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

func (s *CameraSystem) Update(w *engine.World) {
	player := w.Player()
	if player == nil || !w.Resources.Viewport.Ready() {
		return
	}
	cfg := w.Resources.Config
	sess := w.Session

	sess.Camera.Pos = FollowDeadZone(sess.Camera.Pos, player.Pos, w.Resources.Viewport.Size, cfg.Camera.MarginX, cfg.Camera.MarginY)
}

// FollowDeadZone returns the camera position after one soft-follow step
// Axes are independent, each shifted at most once by the overflow amount
func FollowDeadZone(camera, target vmath.Vec2, viewport core.Size, marginX, marginY float64) vmath.Vec2 {
	halfW := viewport.HalfW()
	halfH := viewport.HalfH()

	// Clamp margins to half viewport to ensure dead zone exists
	if marginX > halfW {
		marginX = halfW
	}
	if marginY > halfH {
		marginY = halfH
	}

	// Target position in camera space
	relX := target.X - camera.X
	relY := target.Y - camera.Y

	top := halfH - marginY
	bottom := -halfH + marginY
	left := -halfW + marginX
	right := halfW - marginX

	if relY > top {
		camera.Y += relY - top
	} else if relY < bottom {
		camera.Y += relY - bottom
	}

	if relX < left {
		camera.X += relX - left
	} else if relX > right {
		camera.X += relX - right
	}

	return camera
}
