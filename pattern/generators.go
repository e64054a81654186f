package pattern

import (
	"github.com/lixenwraith/hexagon/arena"
	"github.com/lixenwraith/hexagon/parameter"
)

// sixSlots is the active layout required by the hand-authored patterns
const sixSlots = 6

// Spiral places diagonal bands on every third active slot, shifting one slot per line
// The second line is doubled and starts one height lower to close the turn
func Spiral(s *arena.State, pool *arena.ObstaclePool, opts Options) float64 {
	active := s.ActiveSlots()
	numLines := orDefaultInt(opts.NumLines, parameter.SpiralNumLines)
	n := len(active)
	if n == 0 || n%3 != 0 || numLines <= 0 {
		return Inapplicable
	}

	h := opts.height(parameter.SpiralObstacleHeight)
	y := opts.initialY()
	r := 1
	if opts.Reverse {
		r = -1
	}

	for line := 0; line < numLines; line++ {
		for i := 0; i < n; i += 3 {
			idx := active[((i+line*r+numLines)%n+n)%n]
			if line == 1 {
				place(s, pool, idx, y-h, 2*h)
			} else {
				place(s, pool, idx, y, h)
			}
		}
		y += h
	}
	return y - h
}

// ReverseSpiral is Spiral turning the other way
func ReverseSpiral(s *arena.State, pool *arena.ObstaclePool, opts Options) float64 {
	opts.Reverse = !opts.Reverse
	return Spiral(s, pool, opts)
}

// Rain fills alternating slots line by line in a checkerboard
// It walks every slot regardless of width and always applies
func Rain(s *arena.State, pool *arena.ObstaclePool, opts Options) float64 {
	h := opts.height(parameter.RainObstacleHeight)
	lineDist := orDefault(opts.LineDist, parameter.RainLineDist)
	numLines := orDefaultInt(opts.NumLines, parameter.RainNumLines)
	if numLines < 0 {
		numLines = 0
	}
	y := opts.initialY()

	for line := 0; line < numLines; line++ {
		for i := range s.Slots {
			if (i%2)^(line%2) == 0 {
				place(s, pool, i, y, h)
			}
		}
		y += lineDist
	}
	return y - (lineDist - h)
}

// C fills every active slot but one at a single height
func C(s *arena.State, pool *arena.ObstaclePool, opts Options) float64 {
	active := s.ActiveSlots()
	if len(active) == 0 {
		return Inapplicable
	}

	h := opts.height(parameter.CObstacleHeight)
	y := opts.initialY()
	open := opts.OpenSlot
	if open < 0 {
		open = opts.intn(len(active))
	}

	for i, idx := range active {
		if i != open {
			place(s, pool, idx, y, h)
		}
	}
	return y + h
}

// Ladder raises two opposite stems with rungs alternating between their neighbours
func Ladder(s *arena.State, pool *arena.ObstaclePool, opts Options) float64 {
	active := s.ActiveSlots()
	if len(active) != sixSlots {
		return Inapplicable
	}

	h := opts.height(parameter.LadderObstacleHeight)
	steps := orDefaultInt(opts.NumSteps, parameter.LadderNumSteps)
	stepDist := orDefault(opts.StepDist, parameter.LadderStepDist)
	height := (h+stepDist)*float64(steps)*2 - stepDist

	stem1 := 0
	stem2 := (stem1 + 3) % sixSlots
	y := opts.initialY()

	place(s, pool, active[stem1], y, height)
	place(s, pool, active[stem2], y, height)
	for i := 0; i < steps; i++ {
		place(s, pool, active[(stem1+1)%sixSlots], y, h)
		place(s, pool, active[(stem2+1)%sixSlots], y, h)
		y += h + stepDist
		place(s, pool, active[(stem1+2)%sixSlots], y, h)
		place(s, pool, active[(stem2+2)%sixSlots], y, h)
		y += h + stepDist
	}
	return y - stepDist
}

// DoubleTurn builds a corridor around a stem that switches sweep direction for three phases
func DoubleTurn(s *arena.State, pool *arena.ObstaclePool, opts Options) float64 {
	active := s.ActiveSlots()
	if len(active) != sixSlots {
		return Inapplicable
	}

	h := opts.height(parameter.DoubleTurnObstacleHeight)
	corridor := orDefault(opts.CorridorWidth, parameter.DoubleTurnCorridorWidth)
	start := mod6(opts.StartSlot)
	initialY := opts.initialY()
	height := 3*h + 2*corridor

	place(s, pool, active[start], initialY, height)

	y := initialY
	sign := 1
	if opts.Reverse {
		sign = -1
	}
	for phase := 0; phase < 3; phase++ {
		for k := 1; k < 5; k++ {
			place(s, pool, active[mod6(start+k*sign)], y, h)
		}
		sign = -sign
		y += h + corridor
	}
	return height + initialY
}

// ReverseDoubleTurn is DoubleTurn starting its sweep the other way
func ReverseDoubleTurn(s *arena.State, pool *arena.ObstaclePool, opts Options) float64 {
	opts.Reverse = !opts.Reverse
	return DoubleTurn(s, pool, opts)
}

// batRow is one symmetric row of the bat silhouette
type batRow struct {
	offset  int
	height  float64
	advance float64
	single  bool
}

// batShape lists the silhouette rows from the leading edge outwards
var batShape = []batRow{
	{offset: 1, height: 0.05, advance: 0.02},
	{offset: 2, height: 0.03, advance: 0.1},
	{offset: 3, height: 0.09, advance: 0.04, single: true},
	{offset: 2, height: 0.03, advance: 0.1},
	{offset: 1, height: 0.05, advance: 0.05},
}

// Bat places a fixed symmetric silhouette around a stem at StartSlot
func Bat(s *arena.State, pool *arena.ObstaclePool, opts Options) float64 {
	active := s.ActiveSlots()
	if len(active) != sixSlots {
		return Inapplicable
	}

	start := mod6(opts.StartSlot)
	initialY := opts.initialY()
	y := initialY

	for _, row := range batShape {
		place(s, pool, active[mod6(start+row.offset)], y, row.height)
		if !row.single {
			place(s, pool, active[mod6(start-row.offset)], y, row.height)
		}
		y += row.advance
	}
	place(s, pool, active[start], initialY, y-initialY)
	return y
}

// Pot fills three consecutive slots and the one opposite the middle gap
func Pot(s *arena.State, pool *arena.ObstaclePool, opts Options) float64 {
	active := s.ActiveSlots()
	if len(active) != sixSlots {
		return Inapplicable
	}

	h := opts.height(parameter.PotObstacleHeight)
	y := opts.initialY()
	for i := 0; i < 3; i++ {
		place(s, pool, active[mod6(i+opts.Offset)], y, h)
	}
	place(s, pool, active[mod6(4+opts.Offset)], y, h)
	return h + y
}

func mod6(i int) int {
	return ((i % sixSlots) + sixSlots) % sixSlots
}
