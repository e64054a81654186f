package arena

import "time"

// Color is a linear RGB triple in [0,1]
type Color struct {
	R, G, B float64
}

// Gray returns a neutral color of the given intensity
func Gray(v float64) Color {
	return Color{v, v, v}
}

// Scale multiplies every channel by f
func (c Color) Scale(f float64) Color {
	return Color{c.R * f, c.G * f, c.B * f}
}

// Vec2 is a camera-space coordinate
type Vec2 struct {
	X, Y float64
}

// RenderConfig is the presentation projection written by levels and tweens
// Collision logic only touches FlashTime
type RenderConfig struct {
	CursorColor       Color
	CursorShadowColor Color
	HasCursorShadow   bool
	InnerHexagonColor Color
	OuterHexagonColor Color
	ObstacleColor     Color
	SlotColors        []Color

	// Rotation is the arena turn as a fraction of a full revolution
	Rotation float64
	Zoom     float64
	Eye      Vec2
	LookAt   Vec2

	// FlashTime counts down the white collision flash; decremented by the renderer
	FlashTime time.Duration
}

// NewRenderConfig returns the neutral presentation defaults
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		CursorColor:       Gray(1),
		CursorShadowColor: Gray(0.3),
		HasCursorShadow:   true,
		InnerHexagonColor: Gray(0.5),
		OuterHexagonColor: Gray(1),
		ObstacleColor:     Gray(1),
		SlotColors:        []Color{Gray(0.7), Gray(0.6)},
		Zoom:              1,
		Eye:               Vec2{0, -0.5},
	}
}

// SlotColor returns the alternating color of slot idx
func (rc *RenderConfig) SlotColor(idx int) Color {
	if len(rc.SlotColors) == 0 {
		return Color{}
	}
	return rc.SlotColors[idx%len(rc.SlotColors)]
}

// DecayFlash consumes delta from the flash timer and reports whether the flash is still visible
func (rc *RenderConfig) DecayFlash(delta time.Duration) bool {
	if rc.FlashTime <= 0 {
		return false
	}
	rc.FlashTime -= delta
	return true
}
