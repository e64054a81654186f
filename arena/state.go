package arena

import "github.com/lixenwraith/hexagon/parameter"

// Slot is one angular sector of the arena
// Width 0 marks the slot inactive; it stays indexable
type Slot struct {
	Obstacles []*Obstacle
	Width     float64
}

// Add appends o to the slot
func (s *Slot) Add(o *Obstacle) {
	s.Obstacles = append(s.Obstacles, o)
}

// Defaults holds the values a state is created and reset with
type Defaults struct {
	Position      float64
	ObstacleSpeed float64
	CursorSpeed   float64
	SlotWidth     float64
}

// DefaultDefaults returns the stock arena values
func DefaultDefaults() Defaults {
	return Defaults{
		Position:      parameter.InitialPosition,
		ObstacleSpeed: parameter.DefaultObstacleSpeed,
		CursorSpeed:   parameter.DefaultCursorSpeed,
		SlotWidth:     parameter.DefaultSlotWidth,
	}
}

// State is the mutable arena: cursor, speeds, slots and presentation
type State struct {
	Running bool

	// Position is the cursor location as a fraction of the slot width sum, in [0,1)
	Position      float64
	ObstacleSpeed float64
	CursorSpeed   float64
	Slots         []Slot
	Render        *RenderConfig

	defaults Defaults
}

// NewState creates a stopped arena with slotCount slots of the default width
func NewState(slotCount int, d Defaults) *State {
	if slotCount <= 0 {
		slotCount = parameter.SlotCount
	}
	s := &State{
		Slots:    make([]Slot, slotCount),
		Render:   NewRenderConfig(),
		defaults: d,
	}
	for i := range s.Slots {
		s.Slots[i].Width = d.SlotWidth
	}
	s.Position = d.Position
	s.ObstacleSpeed = d.ObstacleSpeed
	s.CursorSpeed = d.CursorSpeed
	return s
}

// Defaults returns the values the state was created with
func (s *State) Defaults() Defaults {
	return s.defaults
}

// SlotWidthSum returns the sum of all slot widths, active or not
func (s *State) SlotWidthSum() float64 {
	sum := 0.0
	for i := range s.Slots {
		sum += s.Slots[i].Width
	}
	return sum
}

// ActiveSlots returns the indices of slots with non-zero width in slot order
func (s *State) ActiveSlots() []int {
	active := make([]int, 0, len(s.Slots))
	for i := range s.Slots {
		if s.Slots[i].Width > 0 {
			active = append(active, i)
		}
	}
	return active
}

// SlotStart returns the cumulative width of the slots preceding idx
func (s *State) SlotStart(idx int) float64 {
	start := 0.0
	for i := 0; i < idx && i < len(s.Slots); i++ {
		start += s.Slots[i].Width
	}
	return start
}

// SlotIdxAtPosition resolves the slot whose [left, right) interval contains position*sum
// Panics with *InvariantError when no slot contains it
func (s *State) SlotIdxAtPosition(position float64) int {
	sum := s.SlotWidthSum()
	scaled := position * sum
	right := 0.0
	for i := range s.Slots {
		right += s.Slots[i].Width
		if right > scaled {
			return i
		}
	}
	panic(&InvariantError{Op: "slot lookup", Position: position, WidthSum: sum})
}

// CurrentSlotIdx returns the slot under the cursor
func (s *State) CurrentSlotIdx() int {
	return s.SlotIdxAtPosition(s.Position)
}

// ObstacleCount returns the number of obstacles in flight
func (s *State) ObstacleCount() int {
	n := 0
	for i := range s.Slots {
		n += len(s.Slots[i].Obstacles)
	}
	return n
}

// ClearSlots returns every obstacle to pool and empties the slot lists
func (s *State) ClearSlots(pool *ObstaclePool) {
	for i := range s.Slots {
		slot := &s.Slots[i]
		pool.ReleaseAll(slot.Obstacles)
		clear(slot.Obstacles)
		slot.Obstacles = slot.Obstacles[:0]
	}
}

// ResetPosition places the cursor at p wrapped into [0,1)
func (s *State) ResetPosition(p float64) {
	for p >= 1 {
		p--
	}
	for p < 0 {
		p++
	}
	s.Position = p
}

// Reset restores position, speeds and slot widths to the creation defaults
func (s *State) Reset() {
	s.ResetPosition(s.defaults.Position)
	s.ObstacleSpeed = s.defaults.ObstacleSpeed
	s.CursorSpeed = s.defaults.CursorSpeed
	for i := range s.Slots {
		s.Slots[i].Width = s.defaults.SlotWidth
	}
}

// Advance moves every obstacle toward the hub by distance
func (s *State) Advance(distance float64) {
	for i := range s.Slots {
		for _, o := range s.Slots[i].Obstacles {
			o.Distance -= distance
		}
	}
}
