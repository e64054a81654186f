package render

import (
	"math"

	"github.com/lixenwraith/hexagon/arena"
)

// maxSegmentTurn bounds one straight edge of a band; six equal slots give a hexagon
const maxSegmentTurn = 1.0 / 6

// Polygon is an outline in arena camera space: x right, y up, arena distance units
type Polygon []arena.Vec2

// Shape is a filled polygon
type Shape struct {
	Poly  Polygon
	Color arena.Color
}

// SlotArc returns the angular span of slot idx in turns, rotation applied
func SlotArc(s *arena.State, idx int) (from, to float64) {
	sum := s.SlotWidthSum()
	if sum <= 0 {
		return 0, 0
	}
	from = s.SlotStart(idx)/sum + s.Render.Rotation
	to = from + s.Slots[idx].Width/sum
	return from, to
}

// Band outlines slot idx between radii r0 and r1; nil for inactive slots or empty bands
func Band(s *arena.State, idx int, r0, r1 float64) Polygon {
	from, to := SlotArc(s, idx)
	if to <= from || r1 <= r0 {
		return nil
	}
	r0 = max(r0, 0)

	n := int(math.Ceil((to-from)/maxSegmentTurn - 1e-9))
	n = max(n, 1)
	poly := make(Polygon, 0, 2*(n+1))
	for i := 0; i <= n; i++ {
		poly = append(poly, polar(from+(to-from)*float64(i)/float64(n), r1))
	}
	if r0 == 0 {
		return append(poly, arena.Vec2{})
	}
	for i := n; i >= 0; i-- {
		poly = append(poly, polar(from+(to-from)*float64(i)/float64(n), r0))
	}
	return poly
}

// CursorTriangle outlines the cursor pointing outward, its base at radius y
func CursorTriangle(s *arena.State, y, h, w float64) Polygon {
	turn := s.Position + s.Render.Rotation
	theta := 2 * math.Pi * turn
	ux, uy := math.Cos(theta), math.Sin(theta)
	vx, vy := -uy, ux
	return Polygon{
		{X: ux * (y + h), Y: uy * (y + h)},
		{X: ux*y + vx*w/2, Y: uy*y + vy*w/2},
		{X: ux*y - vx*w/2, Y: uy*y - vy*w/2},
	}
}

// Scene lists the frame's shapes back to front; far is the outermost visible distance
func Scene(s *arena.State, g Geometry, far float64) []Shape {
	rc := s.Render
	active := s.ActiveSlots()
	shapes := make([]Shape, 0, 3*len(active)+s.ObstacleCount()+2)

	add := func(p Polygon, c arena.Color) {
		if len(p) > 0 {
			shapes = append(shapes, Shape{Poly: p, Color: c})
		}
	}

	for _, idx := range active {
		add(Band(s, idx, 0, far), rc.SlotColor(idx))
	}
	for _, idx := range active {
		for _, o := range s.Slots[idx].Obstacles {
			if o.Distance > far {
				continue
			}
			add(Band(s, idx, o.Distance, o.Distance+o.Height), rc.ObstacleColor)
		}
	}
	for _, idx := range active {
		add(Band(s, idx, 0, g.OuterHexagonY), rc.OuterHexagonColor)
	}
	for _, idx := range active {
		add(Band(s, idx, 0, g.InnerHexagonY), rc.InnerHexagonColor)
	}
	if rc.HasCursorShadow {
		add(CursorTriangle(s, g.CursorY-g.CursorH, g.CursorH, g.CursorW), rc.CursorShadowColor)
	}
	add(CursorTriangle(s, g.CursorY, g.CursorH, g.CursorW), rc.CursorColor)
	return shapes
}

// Triangulate indexes the triangles covering an outline produced by Band or CursorTriangle
// Odd outlines end in a hub point and fan around it; even outlines pair outer and inner arcs
func Triangulate(p Polygon) []uint16 {
	n := len(p)
	if n < 3 {
		return nil
	}
	if n%2 == 1 {
		hub := uint16(n - 1)
		idx := make([]uint16, 0, 3*(n-2))
		for i := 0; i < n-2; i++ {
			idx = append(idx, hub, uint16(i), uint16(i+1))
		}
		return idx
	}
	m := n / 2
	idx := make([]uint16, 0, 6*(m-1))
	for i := 0; i < m-1; i++ {
		j := n - 1 - i
		idx = append(idx, uint16(i), uint16(i+1), uint16(j-1), uint16(i), uint16(j-1), uint16(j))
	}
	return idx
}

func polar(turn, r float64) arena.Vec2 {
	theta := 2 * math.Pi * turn
	return arena.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}
