package parameter

import "time"

// Simulation Timing
const (
	// TargetTickTime is the 60Hz baseline every per-tick motion is scaled against
	// round(1000/60) ms
	TargetTickTime = 17 * time.Millisecond

	// FrameInterval is the host frame scheduler period (~60 FPS)
	FrameInterval = time.Second / 60

	// FrameTimeFilterStrength is the divisor of the frame-time low-pass filter
	FrameTimeFilterStrength = 20

	// FlashDuration is how long the white collision flash is shown
	FlashDuration = 100 * time.Millisecond

	// MaxFrameDelta caps a single measured delta so a suspended host does not teleport obstacles
	MaxFrameDelta = 250 * time.Millisecond
)

// Arena Geometry
// Radial values are fractions of the visible field, 1.0 being the far edge
const (
	InnerHexagonY = 0.025
	OuterHexagonY = 0.03

	// CursorY is the radial base of the cursor triangle
	CursorY = 0.035

	// CursorW is the angular width of the cursor as a fraction of the ring
	CursorW = 0.05

	// CursorH is the radial height of the cursor; CursorY+CursorH is the collision tip
	CursorH = 0.008

	// SnapEpsilon keeps a blocked cursor just inside its slot's far edge
	SnapEpsilon = 0.0001
)

// Play Time Display
const (
	// PlayTimeDisplayInterval is the refresh period of the level timer display
	PlayTimeDisplayInterval = 10 * time.Millisecond
)
