package engine

import (
	"github.com/lixenwraith/jumper/core"
	"github.com/lixenwraith/jumper/input"
	"github.com/lixenwraith/jumper/vmath"
)

// Player is the single controllable body
type Player struct {
	core.Kinetic
	OnGround bool
}

// Camera is the view center in world units
type Camera struct {
	Pos vmath.Vec2
}

// Session is all mutable state of one game, from start to teardown
// Nothing survives into the next session
type Session struct {
	Player    *Player
	Platforms *PlatformStore
	Camera    Camera

	// LastLanded is the respawn anchor, updated only on landings on the highest platform
	LastLanded core.Entity

	// PendingSpawn is owed one platform, consumed by the spawn system
	PendingSpawn bool

	// InitialPlayerY is the height readout zero
	InitialPlayerY float64

	// HeightText is the formatted readout
	HeightText string

	// Aim is the per-session input charge
	Aim *input.Aggregator
}

// NewSession returns an empty session with no player
func NewSession() *Session {
	return &Session{
		Platforms: NewPlatformStore(),
		Aim:       input.NewAggregator(),
	}
}

// Anchor returns the respawn platform if it is still live
func (s *Session) Anchor() (Platform, bool) {
	if s.LastLanded.IsZero() {
		return Platform{}, false
	}
	return s.Platforms.Get(s.LastLanded)
}

// SetAnchor records the respawn platform
// Handles that are not live are ignored to keep the anchor valid
func (s *Session) SetAnchor(e core.Entity) bool {
	if !s.Platforms.Has(e) {
		return false
	}
	s.LastLanded = e
	return true
}

// Teardown removes the player and all platforms and resets transient state
func (s *Session) Teardown() {
	s.Player = nil
	s.Platforms.Clear()
	s.Camera = Camera{}
	s.LastLanded = core.NoEntity
	s.PendingSpawn = false
	s.InitialPlayerY = 0
	s.HeightText = ""
	s.Aim.Reset()
}
