// Package tween drives perpetual time-progress callbacks for level presentation and pacing
package tween

import "time"

// Immediate is a duration that completes on the next tick
const Immediate = time.Millisecond

// Ticker advances by one frame delta
type Ticker interface {
	Tick(delta time.Duration)
}

// Callback receives normalized progress in [0,1] and the tween itself
// The tween's Aux and Duration may be changed from inside the callback
type Callback[A any] func(progress float64, t *Tween[A])

// Tween accumulates elapsed time and reports progress until Duration, then restarts after Cooldown
// There is no terminal state; a tween runs until its owner stops ticking it
type Tween[A any] struct {
	Duration time.Duration
	Cooldown time.Duration

	// Aux is per-instance state carried across restarts
	Aux A

	callback Callback[A]
	elapsed  time.Duration
}

// New creates a tween with the given period, cooldown, auxiliary state and callback
func New[A any](duration, cooldown time.Duration, aux A, cb Callback[A]) *Tween[A] {
	return &Tween[A]{
		Duration: duration,
		Cooldown: cooldown,
		Aux:      aux,
		callback: cb,
	}
}

// Plain creates a tween without auxiliary state
func Plain(duration, cooldown time.Duration, cb func(progress float64)) *Tween[struct{}] {
	return New(duration, cooldown, struct{}{}, func(p float64, _ *Tween[struct{}]) { cb(p) })
}

// Tick advances elapsed time by delta
// One frame of slack past Duration guarantees a final progress=1 callback
func (t *Tween[A]) Tick(delta time.Duration) {
	t.elapsed += delta
	if t.elapsed <= t.Duration+delta && t.callback != nil {
		t.callback(t.progress(), t)
	}
	if t.elapsed > t.Duration+t.Cooldown {
		t.elapsed = 0
	}
}

func (t *Tween[A]) progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return min(float64(t.elapsed)/float64(t.Duration), 1)
}

// Elapsed returns the time accumulated in the current cycle
func (t *Tween[A]) Elapsed() time.Duration {
	return t.elapsed
}

// Reset restarts the current cycle
func (t *Tween[A]) Reset() {
	t.elapsed = 0
}

// Group ticks its members in order
type Group []Ticker

// Tick advances every member by delta
func (g Group) Tick(delta time.Duration) {
	for _, t := range g {
		t.Tick(delta)
	}
}

// Triangle maps progress to a 0→1→0 wave peaking at progress 0.5
func Triangle(progress float64) float64 {
	v := 1 - 2*progress
	if v < 0 {
		v = -v
	}
	return 1 - v
}
