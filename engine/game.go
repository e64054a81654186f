package engine

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexagon/arena"
	"github.com/lixenwraith/hexagon/control"
	"github.com/lixenwraith/hexagon/status"
)

// IntentSource reports the lateral intent held at tick start
type IntentSource func() control.Direction

// FrameHook runs after the simulation step of every tick, typically the renderer
type FrameHook func(delta time.Duration)

// Option configures a Game
type Option func(*Game)

// WithLogger routes game lifecycle events to log
func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) { g.log = log }
}

// WithStatus publishes tick metrics to reg
func WithStatus(reg *status.Registry) Option {
	return func(g *Game) { g.reg = reg }
}

// WithStopHook registers fn to run after the level's OnStop on every collision
func WithStopHook(fn func()) Option {
	return func(g *Game) { g.stopHooks = append(g.stopHooks, fn) }
}

// WithIntentSource sets the lateral intent producer
func WithIntentSource(src IntentSource) Option {
	return func(g *Game) { g.intent = src }
}

// WithFrameHook sets the render step
func WithFrameHook(fn FrameHook) Option {
	return func(g *Game) { g.frame = fn }
}

// gameStats caches metric pointers
type gameStats struct {
	ticks      *atomic.Int64
	playMS     *atomic.Int64
	restarts   *atomic.Int64
	collisions *atomic.Int64
	culled     *atomic.Int64
	obstacles  *atomic.Int64
	poolFree   *atomic.Int64
	poolAlloc  *atomic.Int64
	fps        *status.AtomicFloat
}

// Game is the simulation clock: it orders control, level logic, obstacle advance and rendering per tick
// A Game is owned by a single goroutine; only the intent source crosses goroutines
type Game struct {
	cfg    Config
	state  *arena.State
	pool   *arena.ObstaclePool
	mapper *control.Mapper
	level  Level

	intent    IntentSource
	frame     FrameHook
	stopHooks []func()

	log   zerolog.Logger
	reg   *status.Registry
	stats *gameStats

	prevTime  time.Time
	started   bool
	frameTime float64 // milliseconds, low-pass filtered
	playTime  time.Duration
	ticks     uint64
}

// NewGame creates a stopped game over state and pool
func NewGame(cfg Config, state *arena.State, pool *arena.ObstaclePool, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if state == nil || pool == nil {
		return nil, fmt.Errorf("%w: nil state or pool", ErrInvalidConfig)
	}

	g := &Game{
		cfg:    cfg,
		state:  state,
		pool:   pool,
		mapper: control.NewMapper(cfg.Control()),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.reg != nil {
		g.stats = &gameStats{
			ticks:      g.reg.Ints.Get(status.KeyTicks),
			playMS:     g.reg.Ints.Get(status.KeyPlayTimeMS),
			restarts:   g.reg.Ints.Get(status.KeyRestarts),
			collisions: g.reg.Ints.Get(status.KeyCollisions),
			culled:     g.reg.Ints.Get(status.KeyCulled),
			obstacles:  g.reg.Ints.Get(status.KeyObstacles),
			poolFree:   g.reg.Ints.Get(status.KeyPoolFree),
			poolAlloc:  g.reg.Ints.Get(status.KeyPoolAlloc),
			fps:        g.reg.Floats.Get(status.KeyFPS),
		}
	}
	return g, nil
}

// Config returns the game's configuration
func (g *Game) Config() Config { return g.cfg }

// State returns the arena state
func (g *Game) State() *arena.State { return g.state }

// Pool returns the obstacle pool
func (g *Game) Pool() *arena.ObstaclePool { return g.pool }

// Level returns the active level, nil if none
func (g *Game) Level() Level { return g.level }

// SetLevel replaces the active level
func (g *Game) SetLevel(l Level) { g.level = l }

// Running reports whether obstacles are advancing
func (g *Game) Running() bool { return g.state.Running }

// PlayTime returns the time survived in the current run
func (g *Game) PlayTime() time.Duration { return g.playTime }

// Ticks returns the number of ticks stepped
func (g *Game) Ticks() uint64 { return g.ticks }

// FrameTime returns the filtered frame time
func (g *Game) FrameTime() time.Duration {
	return time.Duration(g.frameTime * float64(time.Millisecond))
}

// FPS returns the filtered frame rate; false before the first measured frame
func (g *Game) FPS() (int, bool) {
	if g.frameTime == 0 {
		return 0, false
	}
	return int(math.Round(1000 / g.frameTime)), true
}

// SetIntentSource replaces the lateral intent producer
func (g *Game) SetIntentSource(src IntentSource) { g.intent = src }

// SetFrameHook replaces the render step
func (g *Game) SetFrameHook(fn FrameHook) { g.frame = fn }

// AddStopHook registers fn to run after the level's OnStop on every collision
func (g *Game) AddStopHook(fn func()) { g.stopHooks = append(g.stopHooks, fn) }

// Restart pools every obstacle, resets the arena and level, and starts running
func (g *Game) Restart() {
	g.playTime = 0
	g.state.ClearSlots(g.pool)
	g.state.Reset()
	if g.level != nil {
		g.level.Reset()
	}
	g.state.Running = true

	if g.stats != nil {
		g.stats.restarts.Add(1)
		g.stats.playMS.Store(0)
	}
	g.log.Debug().Float64("position", g.state.Position).Msg("restart")
}

// Update advances every obstacle by distance and resolves collisions
// On a forward hit every obstacle is rolled back by the overshoot, running stops and false is returned
func (g *Game) Update(distance float64) bool {
	s := g.state
	current := s.CurrentSlotIdx()
	tip := g.cfg.CursorTip()
	revertBy := 0.0
	collided := false
	culled := 0

	for si := range s.Slots {
		slot := &s.Slots[si]
		kept := slot.Obstacles[:0]
		for _, o := range slot.Obstacles {
			o.Distance -= distance
			hit := si == current && o.Distance <= tip && o.Distance+distance > tip
			if !g.cfg.GodMode && hit {
				collided = true
				revertBy = tip - o.Distance
			} else if o.Distance+o.Height < 0 {
				g.pool.Release(o)
				culled++
				continue
			}
			kept = append(kept, o)
		}
		clear(slot.Obstacles[len(kept):])
		slot.Obstacles = kept
	}

	if g.stats != nil && culled > 0 {
		g.stats.culled.Add(int64(culled))
	}

	// A leading edge landing exactly on the tip still collides with zero rollback
	if collided {
		s.Running = false
		s.Advance(-revertBy)
		return false
	}
	return true
}

// Tick steps the simulation to now
// The first call only anchors the clock
func (g *Game) Tick(now time.Time) {
	if !g.started {
		g.prevTime = now
		g.started = true
	}
	delta := now.Sub(g.prevTime)
	g.prevTime = now
	if delta < 0 {
		delta = 0
	}
	if g.cfg.MaxFrameDelta > 0 && delta > g.cfg.MaxFrameDelta {
		delta = g.cfg.MaxFrameDelta
	}
	g.Step(delta)
}

// Step runs one tick of delta
func (g *Game) Step(delta time.Duration) {
	ms := float64(delta) / float64(time.Millisecond)
	g.frameTime += (ms - g.frameTime) / g.cfg.FrameFilterStrength

	// Control reacts to the previous frame's layout
	dir := control.None
	if g.intent != nil {
		dir = g.intent()
	}
	g.mapper.Apply(g.state, dir, delta)

	if g.level != nil {
		g.level.Tick(delta)
	}

	if g.state.Running {
		distance := g.state.ObstacleSpeed * g.cfg.Effect(delta)
		if g.Update(distance) {
			g.playTime += delta
		} else {
			g.state.Render.FlashTime = g.cfg.FlashDuration
			g.log.Debug().
				Dur("play_time", g.playTime).
				Int("slot", g.state.CurrentSlotIdx()).
				Msg("collision")
			if g.level != nil {
				g.level.OnStop()
			}
			for _, fn := range g.stopHooks {
				fn()
			}
			if g.stats != nil {
				g.stats.collisions.Add(1)
			}
		}
	}

	g.ticks++
	g.publish()

	if g.frame != nil {
		g.frame(delta)
	}
}

func (g *Game) publish() {
	if g.stats == nil {
		return
	}
	g.stats.ticks.Store(int64(g.ticks))
	g.stats.playMS.Store(g.playTime.Milliseconds())
	g.stats.obstacles.Store(int64(g.state.ObstacleCount()))
	g.stats.poolFree.Store(int64(g.pool.Free()))
	g.stats.poolAlloc.Store(int64(g.pool.Allocated()))
	if fps, ok := g.FPS(); ok {
		g.stats.fps.Set(float64(fps))
	}
}
