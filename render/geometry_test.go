package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hexagon/arena"
	"github.com/lixenwraith/hexagon/engine"
)

func assertVec(t *testing.T, want, got arena.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
}

func TestSlotArc(t *testing.T) {
	s := newTestState()
	from, to := SlotArc(s, 2)
	assert.InDelta(t, 2.0/6, from, 1e-12)
	assert.InDelta(t, 3.0/6, to, 1e-12)

	s.Render.Rotation = 0.1
	s.Slots[0].Width = 0
	from, to = SlotArc(s, 2)
	assert.InDelta(t, 1.0/5+0.1, from, 1e-12)
	assert.InDelta(t, 2.0/5+0.1, to, 1e-12)

	from, to = SlotArc(s, 0)
	assert.Equal(t, from, to)
}

func TestBandWedge(t *testing.T) {
	s := newTestState()
	poly := Band(s, 0, 0, 1)
	require.Len(t, poly, 3)
	assertVec(t, arena.Vec2{X: 1, Y: 0}, poly[0])
	assertVec(t, arena.Vec2{X: 0.5, Y: math.Sqrt(3) / 2}, poly[1])
	assertVec(t, arena.Vec2{}, poly[2])
}

func TestBandRing(t *testing.T) {
	s := newTestState()
	poly := Band(s, 1, 0.5, 1)
	require.Len(t, poly, 4)
	assertVec(t, arena.Vec2{X: 0.5, Y: math.Sqrt(3) / 2}, poly[0])
	assertVec(t, arena.Vec2{X: 0.25, Y: math.Sqrt(3) / 4}, poly[3])
}

func TestBandWideSlotIsSubdivided(t *testing.T) {
	s := newTestState()
	for i := range s.Slots {
		s.Slots[i].Width = 0
	}
	s.Slots[0].Width = 3
	s.Slots[1].Width = 1

	// 3/4 of a turn needs five edges of at most 1/6
	poly := Band(s, 0, 0, 1)
	assert.Len(t, poly, 7)
}

func TestBandEmpty(t *testing.T) {
	s := newTestState()
	s.Slots[3].Width = 0
	assert.Nil(t, Band(s, 3, 0, 1))
	assert.Nil(t, Band(s, 2, 0.5, 0.5))
}

func TestCursorTriangle(t *testing.T) {
	s := newTestState()
	s.Position = 0.25
	tri := CursorTriangle(s, 0.035, 0.008, 0.05)
	require.Len(t, tri, 3)
	assertVec(t, arena.Vec2{X: 0, Y: 0.043}, tri[0])
	assertVec(t, arena.Vec2{X: -0.025, Y: 0.035}, tri[1])
	assertVec(t, arena.Vec2{X: 0.025, Y: 0.035}, tri[2])
}

func TestScene(t *testing.T) {
	s := newTestState()
	pool := arena.NewObstaclePool()
	s.Slots[0].Add(pool.Acquire(0.3, 0.1))
	s.Slots[4].Add(pool.Acquire(5, 0.1))
	s.Slots[5].Width = 0

	shapes := Scene(s, GeometryFrom(engine.DefaultConfig()), 1)

	// 5 backgrounds, 1 visible obstacle, 5 outer, 5 inner, shadow, cursor
	require.Len(t, shapes, 18)
	assert.Equal(t, s.Render.SlotColor(0), shapes[0].Color)
	assert.Equal(t, s.Render.ObstacleColor, shapes[5].Color)
	assert.Equal(t, s.Render.CursorShadowColor, shapes[16].Color)
	assert.Equal(t, s.Render.CursorColor, shapes[17].Color)

	s.Render.HasCursorShadow = false
	assert.Len(t, Scene(s, GeometryFrom(engine.DefaultConfig()), 1), 17)
}

func TestTriangulate(t *testing.T) {
	s := newTestState()
	tests := []struct {
		name string
		poly Polygon
		want []uint16
	}{
		{"cursor", CursorTriangle(s, 0.035, 0.008, 0.05), []uint16{2, 0, 1}},
		{"wedge", Band(s, 0, 0, 1), []uint16{2, 0, 1}},
		{"ring", Band(s, 0, 0.5, 1), []uint16{0, 1, 2, 0, 2, 3}},
		{"degenerate", Polygon{{}, {}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Triangulate(tt.poly))
		})
	}

	for i := range s.Slots {
		s.Slots[i].Width = 0
	}
	s.Slots[0].Width = 3
	s.Slots[1].Width = 1
	wide := Band(s, 0, 0.5, 1)
	require.Len(t, wide, 12)
	assert.Len(t, Triangulate(wide), 5*6)
}
