package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/hexagon/control"
)

// State is the set of currently held intents
// The event side presses and releases, the tick side only reads
type State struct {
	mu sync.Mutex
	// expiry per held intent; zero time means held until Release
	held       map[Intent]time.Time
	holdWindow time.Duration
}

// NewState creates a held set; a press without release expires after holdWindow
// Terminals report no key-up, so holdWindow bridges the gap between autorepeat events
func NewState(holdWindow time.Duration) *State {
	return &State{
		held:       make(map[Intent]time.Time),
		holdWindow: holdWindow,
	}
}

// Press marks intent held until now+holdWindow, or until Release when the window is zero
func (s *State) Press(intent Intent, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.holdWindow <= 0 {
		s.held[intent] = time.Time{}
		return
	}
	s.held[intent] = now.Add(s.holdWindow)
}

// Hold marks intent held until Release, for devices that report key-up
func (s *State) Hold(intent Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held[intent] = time.Time{}
}

// Release clears a held intent
func (s *State) Release(intent Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.held, intent)
}

// Set holds or releases intent
func (s *State) Set(intent Intent, held bool) {
	if held {
		s.Hold(intent)
	} else {
		s.Release(intent)
	}
}

// Clear releases everything
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.held)
}

// Held reports whether intent is held at now
func (s *State) Held(intent Intent, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heldLocked(intent, now)
}

func (s *State) heldLocked(intent Intent, now time.Time) bool {
	exp, ok := s.held[intent]
	if !ok {
		return false
	}
	if exp.IsZero() || now.Before(exp) {
		return true
	}
	delete(s.held, intent)
	return false
}

// Direction resolves the lateral intent at now
func (s *State) Direction(now time.Time) control.Direction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return control.DirectionFrom(s.heldLocked(IntentLeft, now), s.heldLocked(IntentRight, now))
}

// Source adapts the state to a per-tick direction producer using clock for expiry
func (s *State) Source(clock func() time.Time) func() control.Direction {
	return func() control.Direction {
		return s.Direction(clock())
	}
}
