package pattern

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/hexagon/arena"
)

func TestSelectorAlwaysPlaces(t *testing.T) {
	sel := NewSelector(rand.New(rand.NewSource(1)))

	for i := 0; i < 200; i++ {
		s, pool := newArena()
		name, extent := sel.Generate(s, pool)

		assert.NotEmpty(t, name)
		assert.Greater(t, extent, 0.0)
		assert.Greater(t, s.ObstacleCount(), 0)
	}
}

func TestSelectorFallsBackOnPathologicalLayout(t *testing.T) {
	// Only six-slot patterns in the roster, two active slots
	sel := &Selector{
		Generators:  []Named{{"ladder", Ladder}, {"bat", Bat}, {"pot", Pot}},
		MaxAttempts: 8,
		Fallback:    Named{"rain", Rain},
		Rand:        rand.New(rand.NewSource(3)),
	}
	s, pool := newArena()
	for i := range s.Slots {
		if i != 0 && i != 3 {
			s.Slots[i].Width = 0
		}
	}

	name, extent := sel.Generate(s, pool)

	assert.Equal(t, "rain", name)
	assert.InDelta(t, 1.63, extent, eps)
}

func TestSelectorCoversRoster(t *testing.T) {
	sel := NewSelector(rand.New(rand.NewSource(42)))
	seen := make(map[string]bool)

	for i := 0; i < 500; i++ {
		s, pool := arena.NewState(6, arena.DefaultDefaults()), arena.NewObstaclePool()
		name, _ := sel.Generate(s, pool)
		seen[name] = true
	}

	assert.Len(t, seen, len(Roster()))
}
