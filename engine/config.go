package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/hexagon/control"
	"github.com/lixenwraith/hexagon/parameter"
)

// Config is the immutable simulation geometry and timing
// Each Game owns a copy, so independent arenas can run side by side
type Config struct {
	InnerHexagonY float64
	OuterHexagonY float64
	CursorY       float64
	CursorW       float64
	CursorH       float64

	FlashDuration time.Duration

	// GodMode disables forward collisions
	GodMode bool

	// TargetTickTime is the frame length every per-tick speed is expressed against
	TargetTickTime time.Duration

	// FrameFilterStrength is the divisor of the frame-time low-pass filter
	FrameFilterStrength float64

	// MaxFrameDelta caps a measured delta; zero disables the cap
	MaxFrameDelta time.Duration

	SnapEpsilon float64
}

// DefaultConfig returns the stock configuration
func DefaultConfig() Config {
	return Config{
		InnerHexagonY:       parameter.InnerHexagonY,
		OuterHexagonY:       parameter.OuterHexagonY,
		CursorY:             parameter.CursorY,
		CursorW:             parameter.CursorW,
		CursorH:             parameter.CursorH,
		FlashDuration:       parameter.FlashDuration,
		TargetTickTime:      parameter.TargetTickTime,
		FrameFilterStrength: parameter.FrameTimeFilterStrength,
		MaxFrameDelta:       parameter.MaxFrameDelta,
		SnapEpsilon:         parameter.SnapEpsilon,
	}
}

// CursorTip is the radial line collisions are evaluated at
func (c Config) CursorTip() float64 {
	return c.CursorY + c.CursorH
}

// Effect scales delta against the target tick
func (c Config) Effect(delta time.Duration) float64 {
	return float64(delta) / float64(c.TargetTickTime)
}

// Control returns the mapper geometry derived from c
func (c Config) Control() control.Config {
	return control.Config{
		CursorTip:      c.CursorTip(),
		TargetTickTime: c.TargetTickTime,
		SnapEpsilon:    c.SnapEpsilon,
	}
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.TargetTickTime <= 0:
		return fmt.Errorf("%w: target tick time %v", ErrInvalidConfig, c.TargetTickTime)
	case c.FrameFilterStrength < 1:
		return fmt.Errorf("%w: frame filter strength %v", ErrInvalidConfig, c.FrameFilterStrength)
	case c.CursorH <= 0 || c.CursorY < 0:
		return fmt.Errorf("%w: cursor band y=%v h=%v", ErrInvalidConfig, c.CursorY, c.CursorH)
	case c.SnapEpsilon < 0:
		return fmt.Errorf("%w: snap epsilon %v", ErrInvalidConfig, c.SnapEpsilon)
	case c.FlashDuration < 0 || c.MaxFrameDelta < 0:
		return fmt.Errorf("%w: negative duration", ErrInvalidConfig)
	}
	return nil
}
