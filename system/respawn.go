package system

import (
	"log"

	"github.com/lixenwraith/jumper/engine"
	"github.com/lixenwraith/jumper/parameter"
	"github.com/lixenwraith/jumper/physics"
	"github.com/lixenwraith/jumper/status"
	"github.com/lixenwraith/jumper/vmath"
)

// RespawnSystem recovers a player that fell below the world
type RespawnSystem struct{}

// NewRespawnSystem creates the fall recovery stage
func NewRespawnSystem() *RespawnSystem {
	return &RespawnSystem{}
}

func (s *RespawnSystem) Name() string {
	return "respawn"
}

func (s *RespawnSystem) Priority() int {
	return parameter.PriorityRespawn
}

func (s *RespawnSystem) Update(w *engine.World) {
	player := w.Player()
	if player == nil || !w.Resources.Viewport.Ready() {
		return
	}
	cfg := w.Resources.Config
	sess := w.Session

	limit := -w.Resources.Viewport.Size.H/2 - cfg.Geometry.Player.H
	if player.Pos.Y >= limit {
		return
	}

	if anchor, ok := sess.Anchor(); ok {
		player.Pos = vmath.V2(anchor.Pos.X, physics.RestY(anchor.Pos.Y, cfg.Geometry.Platform.H, cfg.Geometry.Player.H))
	} else {
		player.Pos = vmath.Vec2{}
	}
	player.Prev = player.Pos
	physics.Stop(&player.Kinetic)
	player.OnGround = true
	w.Resources.Status.Inc(status.Respawns)

	// Hard recenter on the top of the tower
	highest, _ := sess.Platforms.HighestY()
	sess.Camera.Pos = vmath.V2(0, highest)

	log.Printf("Respawned player at (%.1f, %.1f)", player.Pos.X, player.Pos.Y)
}
