// Package system holds the per-frame stages of the simulation. Each stage is
// an engine.System; priorities in package parameter fix the frame order:
// input, motion, landing, respawn, spawn, camera, height readout.
package system

import "github.com/lixenwraith/jumper/engine"

// All returns every frame stage in a fresh instance
func All() []engine.System {
	return []engine.System{
		NewInputSystem(),
		NewMotionSystem(),
		NewLandingSystem(),
		NewRespawnSystem(),
		NewSpawnSystem(),
		NewCameraSystem(),
		NewHeightSystem(),
	}
}
