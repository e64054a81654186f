package parameter

// Arena Defaults
const (
	// SlotCount is the number of angular sectors of the hexagon
	SlotCount = 6

	// DefaultSlotWidth is the relative width of a freshly created slot
	DefaultSlotWidth = 1.0

	// InitialPosition places the cursor in the middle of slot 0
	InitialPosition = 1.0 / 12

	// DefaultObstacleSpeed is the radial distance obstacles travel per target tick
	DefaultObstacleSpeed = 0.005

	// DefaultCursorSpeed is the ring fraction the cursor travels per target tick
	DefaultCursorSpeed = 0.03
)
