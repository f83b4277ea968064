package parameter

// Platform generation
const (
	// SpawnMinOffsetY is the smallest vertical gap above the highest platform
	SpawnMinOffsetY = 50.0
	// SpawnMaxOffsetY is the largest vertical gap above the highest platform
	SpawnMaxOffsetY = 150.0

	// SpawnMaxAttempts caps rejection sampling of the horizontal position
	// Exhaustion falls back to a fixed offset from the anchor
	SpawnMaxAttempts = 64
)
