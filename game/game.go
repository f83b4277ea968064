// Package game is the boundary of the simulation core: one session at a
// time, advanced one frame per Tick, observed through RenderState.
package game

import (
	"log"
	"math"
	"time"

	"github.com/lixenwraith/jumper/config"
	"github.com/lixenwraith/jumper/core"
	"github.com/lixenwraith/jumper/engine"
	"github.com/lixenwraith/jumper/input"
	"github.com/lixenwraith/jumper/physics"
	"github.com/lixenwraith/jumper/status"
	"github.com/lixenwraith/jumper/system"
	"github.com/lixenwraith/jumper/vmath"
)

// Option customizes a Game
type Option func(*Game)

// WithSeed fixes the platform placement seed, overriding the config seed
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// Game drives sessions of the platformer
// Not safe for concurrent use; the adapter owns the single thread of control
type Game struct {
	cfg   config.Config
	seed  uint64
	world *engine.World
}

// New creates a game with the frame pipeline registered and no session
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}

	seed := g.seed
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g.world = engine.NewWorld(&g.cfg, vmath.NewFastRand(seed))
	for _, s := range system.All() {
		g.world.AddSystem(s)
	}
	return g
}

// Active reports whether a session is running
func (g *Game) Active() bool {
	return g.world.Session != nil
}

// Session exposes the running session for inspection, nil when inactive
func (g *Game) Session() *engine.Session {
	return g.world.Session
}

// Status exposes lifetime counters across sessions
func (g *Game) Status() *status.Registry {
	return g.world.Resources.Status
}

// StartSession builds the starting platform and player for the viewport
// Any running session is torn down first. A viewport without area is
// ignored and an empty RenderState returned
func (g *Game) StartSession(viewport core.Size) RenderState {
	if g.Active() {
		g.EndSession()
	}
	if !viewport.Valid() {
		log.Printf("StartSession ignored, viewport %vx%v has no area", viewport.W, viewport.H)
		return RenderState{}
	}

	geo := g.cfg.Geometry
	w := g.world
	w.Resources.Viewport.Size = viewport
	w.Resources.Time = engine.TimeResource{}
	w.Resources.Input.Clear()

	sess := engine.NewSession()
	platformY := -viewport.H/2 + geo.StartPlatformOffset
	start := sess.Platforms.Spawn(vmath.V2(0, platformY))

	playerPos := vmath.V2(0, physics.RestY(platformY, geo.Platform.H, geo.Player.H))
	sess.Player = &engine.Player{
		Kinetic:  core.Kinetic{Pos: playerPos, Prev: playerPos},
		OnGround: true,
	}
	sess.SetAnchor(start.ID)
	sess.PendingSpawn = true
	sess.InitialPlayerY = playerPos.Y
	sess.HeightText = system.FormatHeight(0)
	w.Session = sess
	w.Resources.Status.Inc(status.Sessions)

	log.Printf("Session started, viewport %vx%v, start platform %s at y=%.1f", viewport.W, viewport.H, start.ID, platformY)
	return snapshot(w)
}

// Tick advances the session by dt seconds with the frame's pointer events
// A viewport without area keeps the last one seen. Without a session Tick
// returns an empty RenderState
func (g *Game) Tick(dt float64, events []input.Event, viewport core.Size) RenderState {
	w := g.world
	if w.Session == nil {
		return RenderState{}
	}

	if viewport.Valid() {
		w.Resources.Viewport.Size = viewport
	}
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	w.Resources.Time.DeltaTime = dt
	w.Resources.Time.FrameNumber++
	w.Resources.Input.Clear()
	w.Resources.Input.Events = events

	w.Update()

	w.Resources.Input.Clear()
	return snapshot(w)
}

// EndSession removes the player and every platform and resets transient state
func (g *Game) EndSession() {
	w := g.world
	if w.Session == nil {
		return
	}
	frames := w.Resources.Time.FrameNumber
	height := w.Session.HeightText

	w.Session.Teardown()
	w.Session = nil
	w.Resources.Time = engine.TimeResource{}
	w.Resources.Input.Clear()

	log.Printf("Session ended after %d frames at height %s", frames, height)
}
