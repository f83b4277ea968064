package parameter

// Entity boxes in world units
const (
	// PlayerWidth is the horizontal extent of the player box
	PlayerWidth = 64.0
	// PlayerHeight is the vertical extent of the player box
	PlayerHeight = 64.0

	// PlatformWidth is shared by every platform
	PlatformWidth = 100.0
	// PlatformHeight is shared by every platform
	PlatformHeight = 20.0
)

// Session layout
const (
	// StartPlatformOffset places the first platform above the bottom viewport edge
	StartPlatformOffset = 50.0
)
