package system

import (
	"log"

	"github.com/lixenwraith/jumper/engine"
	"github.com/lixenwraith/jumper/parameter"
	"github.com/lixenwraith/jumper/physics"
	"github.com/lixenwraith/jumper/status"
	"github.com/lixenwraith/jumper/vmath"
)

// LandingSystem stops the falling player on the first platform it crosses
// Landing on the highest platform moves the respawn anchor and requests a new platform
type LandingSystem struct{}

// NewLandingSystem creates the landing detection stage
func NewLandingSystem() *LandingSystem {
	return &LandingSystem{}
}

func (s *LandingSystem) Name() string {
	return "landing"
}

func (s *LandingSystem) Priority() int {
	return parameter.PriorityLanding
}

func (s *LandingSystem) Update(w *engine.World) {
	player := w.Player()
	if player == nil || player.OnGround {
		return
	}
	cfg := w.Resources.Config
	sess := w.Session
	playerBox := cfg.Geometry.Player
	platformBox := cfg.Geometry.Platform
	highest, _ := sess.Platforms.HighestY()

	for _, p := range sess.Platforms.All() {
		if !physics.SweptLanding(&player.Kinetic, playerBox, p.Pos, platformBox, w.Resources.Time.DeltaTime) {
			continue
		}

		player.Pos.Y = physics.RestY(p.Pos.Y, platformBox.H, playerBox.H)
		physics.Stop(&player.Kinetic)
		player.OnGround = true
		w.Resources.Status.Inc(status.Landings)

		if isNewSummit(sess, p, highest, cfg.Physics.HighestEpsilon) {
			sess.PendingSpawn = true
			sess.SetAnchor(p.ID)
			w.Resources.Status.Inc(status.Summits)
			log.Printf("Landed on summit platform %s at y=%.1f", p.ID, p.Pos.Y)
		}
		break
	}
}

// isNewSummit reports whether p is the highest live platform and the anchor
// is not already at that height; equal-height siblings spawn only once
func isNewSummit(sess *engine.Session, p engine.Platform, highest, eps float64) bool {
	if !vmath.Near(p.Pos.Y, highest, eps) {
		return false
	}
	if anchor, ok := sess.Anchor(); ok && vmath.Near(anchor.Pos.Y, p.Pos.Y, eps) {
		return false
	}
	return true
}
