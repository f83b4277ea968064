package engine

import (
	"sort"

	"github.com/lixenwraith/jumper/config"
	"github.com/lixenwraith/jumper/status"
	"github.com/lixenwraith/jumper/vmath"
)

// System is one stage of the frame pipeline
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(w *World)
}

// World owns the active session, resources, and the ordered system list
// It is driven by exactly one caller; no method is safe for concurrent use
type World struct {
	Session   *Session
	Resources Resources

	systems []System
}

// NewWorld creates a world with no active session
func NewWorld(cfg *config.Config, rng *vmath.FastRand) *World {
	return &World{
		Resources: Resources{
			Config: cfg,
			Rand:   rng,
			Status: status.NewRegistry(),
		},
		systems: make([]System, 0, 8),
	}
}

// AddSystem adds a system and keeps the list sorted by priority
// Systems with equal priority keep registration order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of registered systems in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially, each to completion
func (w *World) Update() {
	for _, system := range w.systems {
		system.Update(w)
	}
}

// Player returns the session player, nil when no session or player exists
func (w *World) Player() *Player {
	if w.Session == nil {
		return nil
	}
	return w.Session.Player
}
