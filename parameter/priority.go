package parameter

// System Execution Priorities (lower runs first)
// Order is fixed per frame: input, simulation step, spawn, camera, readout
const (
	PriorityInput   = 10
	PriorityMotion  = 20 // Launch application and integration
	PriorityLanding = 30 // After motion, reads pre-integration position
	PriorityRespawn = 40
	PrioritySpawn   = 50 // Consumes pending spawn raised by landing
	PriorityCamera  = 60
	PriorityHeight  = 70
)
