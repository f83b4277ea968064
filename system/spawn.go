package system

import (
	"log"
	"math"

	"github.com/lixenwraith/jumper/config"
	"github.com/lixenwraith/jumper/engine"
	"github.com/lixenwraith/jumper/parameter"
	"github.com/lixenwraith/jumper/status"
	"github.com/lixenwraith/jumper/vmath"
)

// SpawnSystem places one platform above the tower whenever a spawn is owed
type SpawnSystem struct{}

// NewSpawnSystem creates the platform generator stage
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Update(w *engine.World) {
	sess := w.Session
	if sess == nil || !sess.PendingSpawn || !w.Resources.Viewport.Ready() {
		return
	}

	anchorX := 0.0
	if anchor, ok := sess.Anchor(); ok {
		anchorX = anchor.Pos.X
	}
	highest, _ := sess.Platforms.HighestY()

	placement := PlacePlatform(w.Resources.Rand, w.Resources.Config, w.Resources.Viewport.Size.W, anchorX, highest)
	p := sess.Platforms.Spawn(placement.Pos)
	sess.PendingSpawn = false
	w.Resources.Status.Inc(status.PlatformsSpawned)

	if placement.Fallback {
		w.Resources.Status.Inc(status.SpawnFallbacks)
		log.Printf("Platform sampling exhausted for viewport width %.0f, placed %s at fallback (%.1f, %.1f)",
			w.Resources.Viewport.Size.W, p.ID, p.Pos.X, p.Pos.Y)
	}
}

// Placement is a generated platform position
type Placement struct {
	Pos vmath.Vec2
	// Fallback is set when rejection sampling ran out of attempts
	Fallback bool
}

// PlacePlatform picks a position for the next platform
//
// x is drawn uniformly across the viewport (platform fully inside) and
// redrawn while within one platform width of anchorX. Sampling is capped at
// cfg.Spawn.MaxAttempts, after which a fixed offset from the anchor is used.
// y is highestY plus a uniform offset in [MinOffsetY, MaxOffsetY).
func PlacePlatform(rng *vmath.FastRand, cfg *config.Config, viewportW, anchorX, highestY float64) Placement {
	width := cfg.Geometry.Platform.W
	minX := -viewportW/2 + width/2
	maxX := viewportW/2 - width/2

	y := highestY + rng.Range(cfg.Spawn.MinOffsetY, cfg.Spawn.MaxOffsetY)

	if minX <= maxX {
		for attempt := 0; attempt < cfg.Spawn.MaxAttempts; attempt++ {
			x := rng.Range(minX, maxX)
			if math.Abs(x-anchorX) > width {
				return Placement{Pos: vmath.V2(x, y)}
			}
		}
	}

	return Placement{Pos: vmath.V2(fallbackX(anchorX, minX, maxX, width), y), Fallback: true}
}

// fallbackX steps just over one platform width away from the anchor, toward
// whichever side still fits; when neither fits the farthest edge is used
func fallbackX(anchorX, minX, maxX, width float64) float64 {
	if minX > maxX {
		// Viewport narrower than a platform
		return 0
	}

	gap := width + 1
	if right := anchorX + gap; right <= maxX {
		return right
	}
	if left := anchorX - gap; left >= minX {
		return left
	}
	if anchorX-minX > maxX-anchorX {
		return minX
	}
	return maxX
}
