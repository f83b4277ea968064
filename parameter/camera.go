package parameter

// Camera dead zone configuration
// Dead zone is the inner area where player movement doesn't move the camera
// Margin is the outer band between dead zone and viewport edge
const (
	// CameraDeadZoneMarginX is horizontal margin in world units from viewport edge
	CameraDeadZoneMarginX = 50.0

	// CameraDeadZoneMarginY is vertical margin in world units from viewport edge
	CameraDeadZoneMarginY = 50.0
)
