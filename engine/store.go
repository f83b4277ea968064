package engine

import (
	"github.com/lixenwraith/jumper/core"
	"github.com/lixenwraith/jumper/vmath"
)

// Platform is a fixed box, never moved once created
type Platform struct {
	ID  core.Entity
	Pos vmath.Vec2
}

// PlatformStore keeps platforms keyed by handle in creation order
// Iteration order is the landing test order
type PlatformStore struct {
	platforms map[core.Entity]Platform
	order     []core.Entity
}

// NewPlatformStore creates an empty store
func NewPlatformStore() *PlatformStore {
	return &PlatformStore{
		platforms: make(map[core.Entity]Platform),
		order:     make([]core.Entity, 0, 64),
	}
}

// Spawn creates a platform at pos under a fresh handle
func (s *PlatformStore) Spawn(pos vmath.Vec2) Platform {
	p := Platform{ID: core.NewEntity(), Pos: pos}
	s.platforms[p.ID] = p
	s.order = append(s.order, p.ID)
	return p
}

// Get retrieves a live platform
func (s *PlatformStore) Get(e core.Entity) (Platform, bool) {
	p, ok := s.platforms[e]
	return p, ok
}

// Has reports whether the handle refers to a live platform
func (s *PlatformStore) Has(e core.Entity) bool {
	_, ok := s.platforms[e]
	return ok
}

// All returns live platforms in creation order
func (s *PlatformStore) All() []Platform {
	result := make([]Platform, len(s.order))
	for i, e := range s.order {
		result[i] = s.platforms[e]
	}
	return result
}

// Count returns number of live platforms
func (s *PlatformStore) Count() int {
	return len(s.order)
}

// HighestY returns the max platform y, or 0 and false when empty
func (s *PlatformStore) HighestY() (float64, bool) {
	if len(s.order) == 0 {
		return 0, false
	}
	highest := s.platforms[s.order[0]].Pos.Y
	for _, e := range s.order[1:] {
		if y := s.platforms[e].Pos.Y; y > highest {
			highest = y
		}
	}
	return highest, true
}

// Clear removes every platform
func (s *PlatformStore) Clear() {
	s.platforms = make(map[core.Entity]Platform)
	s.order = s.order[:0]
}
