package pattern

import (
	"math/rand"

	"github.com/lixenwraith/hexagon/arena"
	"github.com/lixenwraith/hexagon/parameter"
)

// Inapplicable is returned by a generator that cannot place its pattern on the current slot layout
const Inapplicable = -1.0

// RandomSlot lets C pick its opening among the active slots
const RandomSlot = -1

// Generator populates slots with one pattern anchored at Options.InitialY
// Returns the pattern extent, or Inapplicable without touching any slot
type Generator func(s *arena.State, pool *arena.ObstaclePool, opts Options) float64

// Options tunes a generator
// Zero-valued heights, distances and counts fall back to the generator default
// OpenSlot has no zero default; start from DefaultOptions
type Options struct {
	ObstacleHeight float64
	InitialY       float64
	LineDist       float64
	StepDist       float64
	CorridorWidth  float64

	// NumLines < 0 disables the spiral
	NumLines  int
	NumSteps  int
	StartSlot int
	OpenSlot  int
	Offset    int
	Reverse   bool

	Rand *rand.Rand
}

// DefaultOptions returns options with every generator on its stock geometry
func DefaultOptions() Options {
	return Options{
		InitialY: parameter.PatternInitialY,
		OpenSlot: RandomSlot,
	}
}

func (o Options) height(def float64) float64 {
	if o.ObstacleHeight > 0 {
		return o.ObstacleHeight
	}
	return def
}

func (o Options) initialY() float64 {
	if o.InitialY != 0 {
		return o.InitialY
	}
	return parameter.PatternInitialY
}

func (o Options) intn(n int) int {
	if o.Rand != nil {
		return o.Rand.Intn(n)
	}
	return rand.Intn(n)
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

func orDefaultInt(v, def int) int {
	if v != 0 {
		return v
	}
	return def
}

// place appends a pooled obstacle to slot idx
func place(s *arena.State, pool *arena.ObstaclePool, idx int, distance, height float64) {
	s.Slots[idx].Add(pool.Acquire(distance, height))
}
