package pattern

import (
	"math/rand"

	"github.com/lixenwraith/hexagon/arena"
	"github.com/lixenwraith/hexagon/parameter"
)

// Named pairs a generator with the name reported to logs and metrics
type Named struct {
	Name string
	Gen  Generator
}

// Selector picks generators uniformly at random and retries inapplicable ones
// After MaxAttempts misses it runs Fallback, so Generate always places a pattern
type Selector struct {
	Generators  []Named
	MaxAttempts int
	Fallback    Named
	Rand        *rand.Rand
}

// Roster returns the full generator set in its canonical order
func Roster() []Named {
	return []Named{
		{"spiral", Spiral},
		{"reverse-spiral", ReverseSpiral},
		{"rain", Rain},
		{"c", C},
		{"ladder", Ladder},
		{"double-turn", DoubleTurn},
		{"reverse-double-turn", ReverseDoubleTurn},
		{"bat", Bat},
		{"pot", Pot},
	}
}

// NewSelector creates a selector over the full roster falling back to rain
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{
		Generators:  Roster(),
		MaxAttempts: parameter.MaxGeneratorAttempts,
		Fallback:    Named{"rain", Rain},
		Rand:        rng,
	}
}

// Generate places one pattern and returns its generator name and extent
func (sel *Selector) Generate(s *arena.State, pool *arena.ObstaclePool) (string, float64) {
	opts := DefaultOptions()
	opts.Rand = sel.Rand

	attempts := sel.MaxAttempts
	if attempts <= 0 {
		attempts = parameter.MaxGeneratorAttempts
	}

	if len(sel.Generators) > 0 {
		for i := 0; i < attempts; i++ {
			g := sel.Generators[sel.intn(len(sel.Generators))]
			if extent := g.Gen(s, pool, opts); extent >= 0 {
				return g.Name, extent
			}
		}
	}

	fb := sel.Fallback
	if fb.Gen == nil {
		fb = Named{"rain", Rain}
	}
	return fb.Name, fb.Gen(s, pool, opts)
}

func (sel *Selector) intn(n int) int {
	if sel.Rand != nil {
		return sel.Rand.Intn(n)
	}
	return rand.Intn(n)
}
