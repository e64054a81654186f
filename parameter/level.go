package parameter

import "time"

// Menu Levels (title, settings)
const (
	// MenuRotationPeriod is one full backwards turn of the menu backdrop
	MenuRotationPeriod = 10 * time.Second

	MenuZoom = 5.0
)

// Level 1
const (
	Level1ObstacleSpeed = 0.008
	Level1CursorSpeed   = 0.037

	// Level1RotationPeriod is one full turn of the arena
	Level1RotationPeriod = 3 * time.Second

	// Level1PulseDuration is one brightness pulse of the slot colors
	Level1PulseDuration = 1 * time.Second

	// Level1PulseDepth is the brightness drop at the pulse extremes
	Level1PulseDepth = 0.2

	// Level1ColorSwapPeriod swaps the two slot colors
	Level1ColorSwapPeriod = 1500 * time.Millisecond

	// Level1ZoomPeriod is one zoom bump
	Level1ZoomPeriod = 150 * time.Millisecond

	// Level1ZoomDepthMin and Level1ZoomDepthRange bound the re-rolled zoom depth
	Level1ZoomDepthMin   = 0.2
	Level1ZoomDepthRange = 0.2

	// Level1ZoomScale scales the zoom depth into the zoom factor
	Level1ZoomScale = 0.2

	// Level1EyeSwayPeriod is one sideways camera sway
	Level1EyeSwayPeriod = 2 * time.Second

	// Level1EyeSwayAmplitude scales the sway triangle wave
	Level1EyeSwayAmplitude = 0.5

	// Level1TimeBetweenPatterns is the cooldown after a pattern's extent has scrolled in
	Level1TimeBetweenPatterns = 0
)
