package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hexagon/core"
)

// ClockScheduler drives a Game at a fixed frame interval on one goroutine
// The before hook drains host events so they never interleave with a tick
type ClockScheduler struct {
	game     *Game
	clock    TimeProvider
	interval time.Duration
	before   func()

	nextDeadline time.Time
	tickCount    atomic.Uint64

	stopChan chan struct{}
	exited   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler; before may be nil
func NewClockScheduler(game *Game, clock TimeProvider, interval time.Duration, before func()) *ClockScheduler {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &ClockScheduler{
		game:     game,
		clock:    clock,
		interval: interval,
		before:   before,
		stopChan: make(chan struct{}),
		exited:   make(chan struct{}),
	}
}

// Start begins the frame loop; it ends on Stop or when ctx is done
func (cs *ClockScheduler) Start(ctx context.Context) error {
	select {
	case <-cs.exited:
		return ErrSchedulerStopped
	default:
	}
	if !cs.running.CompareAndSwap(false, true) {
		return ErrSchedulerRunning
	}
	cs.wg.Add(1)
	core.Go(func() { cs.loop(ctx) })
	return nil
}

// Stop halts the loop and waits for the in-flight tick to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		cs.wg.Wait()
	})
}

// Done is closed once the frame loop has exited, on Stop or context cancellation
func (cs *ClockScheduler) Done() <-chan struct{} {
	return cs.exited
}

// TickCount returns the number of frames driven
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) loop(ctx context.Context) {
	defer cs.running.Store(false)
	defer cs.wg.Done()
	// Closed before running clears so a late Start sees ErrSchedulerStopped
	defer close(cs.exited)

	timer := time.NewTimer(0)
	defer timer.Stop()

	cs.nextDeadline = cs.clock.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		cs.frame()

		now := cs.clock.Now()
		cs.nextDeadline = cs.nextDeadline.Add(cs.interval)
		// Drop frames instead of bursting after a stall
		if now.Sub(cs.nextDeadline) > cs.interval*2 {
			cs.nextDeadline = now.Add(cs.interval)
		}
		sleep := cs.nextDeadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// frame runs one host frame: drain events, then tick
func (cs *ClockScheduler) frame() {
	if cs.before != nil {
		cs.before()
	}
	cs.game.Tick(cs.clock.Now())
	cs.tickCount.Add(1)
}
