package parameter

// Kinematics, world units per second
const (
	// Gravity is the downward acceleration applied while airborne
	Gravity = 1500.0

	// LaunchScale converts seconds of charge into upward launch speed
	LaunchScale = 2000.0

	// HighestEpsilon is the tolerance for treating a platform as the highest one
	// Platform heights accumulate float offsets, exact equality drifts
	HighestEpsilon = 1e-3
)
