package parameter

// Pattern Generation
const (
	// PatternInitialY is where new patterns are anchored (far visible edge)
	PatternInitialY = 1.0

	// MaxGeneratorAttempts bounds random generator selection before the fallback pattern is used
	MaxGeneratorAttempts = 32
)

// Spiral
const (
	SpiralObstacleHeight = 0.05
	SpiralNumLines       = 10
)

// Rain
const (
	RainObstacleHeight = 0.03
	RainLineDist       = 0.15
	RainNumLines       = 5
)

// C-shape
const (
	CObstacleHeight = 0.03
)

// Ladder
const (
	LadderObstacleHeight = 0.05
	LadderNumSteps       = 4
	LadderStepDist       = 0.09
)

// Double turn
const (
	DoubleTurnObstacleHeight = 0.03
	DoubleTurnCorridorWidth  = 0.18
)

// Pot
const (
	PotObstacleHeight = 0.05
)
