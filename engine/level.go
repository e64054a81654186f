package engine

import "time"

// Level is the per-screen behaviour the clock drives
// Reset runs on every restart, Tick once per frame before obstacles advance, OnStop after a collision
type Level interface {
	Reset()
	Tick(delta time.Duration)
	OnStop()
}
