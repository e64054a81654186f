// Package control maps directional intent onto cursor movement around the ring
package control

import (
	"math"
	"time"

	"github.com/lixenwraith/hexagon/arena"
	"github.com/lixenwraith/hexagon/parameter"
)

// Direction is the resolved lateral intent of one tick
type Direction int8

const (
	None  Direction = 0
	Left  Direction = -1
	Right Direction = 1
)

// DirectionFrom resolves held keys; both or neither cancel out
func DirectionFrom(left, right bool) Direction {
	switch {
	case left && !right:
		return Left
	case right && !left:
		return Right
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Config is the collision geometry the mapper checks against
type Config struct {
	// CursorTip is the radial line where lateral and forward collisions are evaluated
	CursorTip      float64
	TargetTickTime time.Duration
	SnapEpsilon    float64
}

// DefaultConfig returns the stock geometry
func DefaultConfig() Config {
	return Config{
		CursorTip:      parameter.CursorY + parameter.CursorH,
		TargetTickTime: parameter.TargetTickTime,
		SnapEpsilon:    parameter.SnapEpsilon,
	}
}

// Result describes what Apply did
type Result struct {
	Moved   bool
	Blocked bool
}

// Mapper moves the cursor and guards against steering into obstacles at the tip
type Mapper struct {
	cfg Config
}

// NewMapper creates a mapper for cfg
func NewMapper(cfg Config) *Mapper {
	return &Mapper{cfg: cfg}
}

// Apply moves the cursor for one tick of delta
// A blocked move snaps to the edge of the current slot on the side of travel
func (m *Mapper) Apply(s *arena.State, dir Direction, delta time.Duration) Result {
	if !s.Running || dir == None {
		return Result{}
	}

	effect := float64(delta) / float64(m.cfg.TargetTickTime)
	newpos := s.Position + s.CursorSpeed*effect*float64(dir)
	newpos -= math.Floor(newpos)
	// A tiny negative wraps to 1 after rounding
	if newpos >= 1 {
		newpos = 0
	}

	target := &s.Slots[s.SlotIdxAtPosition(newpos)]
	for _, o := range target.Obstacles {
		if !o.Straddles(m.cfg.CursorTip) {
			continue
		}
		cur := s.CurrentSlotIdx()
		posInSlot := s.SlotStart(cur)
		if dir == Right {
			posInSlot += s.Slots[cur].Width - m.cfg.SnapEpsilon
		}
		s.Position = posInSlot / s.SlotWidthSum()
		return Result{Moved: true, Blocked: true}
	}

	s.Position = newpos
	return Result{Moved: true}
}
