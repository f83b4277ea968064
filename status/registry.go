// Package status keeps lifetime counters of the running game. The game loop
// writes; the spectator server reads from its own goroutines.
package status

import "sync/atomic"

// Counter and gauge names
const (
	Sessions         = "sessions"
	Landings         = "landings"
	Summits          = "summits"
	Respawns         = "respawns"
	PlatformsSpawned = "platforms_spawned"
	SpawnFallbacks   = "spawn_fallbacks"
	BestHeight       = "best_height"
)

// Registry is the metrics facade
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Inc adds one to a counter
func (r *Registry) Inc(name string) {
	r.Ints.Get(name).Add(1)
}

// Snapshot is a point-in-time copy suitable for JSON
type Snapshot struct {
	Ints   map[string]int64   `json:"counters"`
	Floats map[string]float64 `json:"gauges"`
}

// Snapshot copies every metric
func (r *Registry) Snapshot() Snapshot {
	s := Snapshot{
		Ints:   make(map[string]int64, r.Ints.Count()),
		Floats: make(map[string]float64, r.Floats.Count()),
	}
	r.Ints.Each(func(k string, v *atomic.Int64) {
		s.Ints[k] = v.Load()
	})
	r.Floats.Each(func(k string, v *AtomicFloat) {
		s.Floats[k] = v.Get()
	})
	return s
}
