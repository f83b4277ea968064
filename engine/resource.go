package engine

import (
	"github.com/lixenwraith/jumper/config"
	"github.com/lixenwraith/jumper/core"
	"github.com/lixenwraith/jumper/input"
	"github.com/lixenwraith/jumper/status"
	"github.com/lixenwraith/jumper/vmath"
)

// Resources holds per-world singletons read by systems
type Resources struct {
	Time     TimeResource
	Viewport ViewportResource
	Input    InputResource
	Config   *config.Config
	Rand     *vmath.FastRand
	Status   *status.Registry
}

// TimeResource is updated at the start of every tick
type TimeResource struct {
	// DeltaTime is seconds since the previous tick
	DeltaTime float64
	// FrameNumber counts ticks within the session
	FrameNumber int64
}

// ViewportResource is the latest window size reported by the adapter
type ViewportResource struct {
	Size core.Size
}

// Ready reports whether a usable viewport has been seen
func (v ViewportResource) Ready() bool {
	return v.Size.Valid()
}

// InputResource carries the frame's raw events and the derived command
type InputResource struct {
	Events []input.Event

	Launch    input.Launch
	HasLaunch bool
}

// Clear drops per-frame input
func (r *InputResource) Clear() {
	r.Events = nil
	r.Launch = input.Launch{}
	r.HasLaunch = false
}
