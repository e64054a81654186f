// Package render draws the arena into a tcell terminal
package render

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hexagon/arena"
	"github.com/lixenwraith/hexagon/engine"
	"github.com/lixenwraith/hexagon/parameter"
)

// HUD is the text overlay for one frame
type HUD struct {
	Time       string
	Best       string
	FPS        int
	FPSValid   bool
	Heading    string
	Caption    string
	Spectators int
	Muted      bool
}

// Status is the right-aligned line: record, frame rate, audience and mute flag
func (h HUD) Status() string {
	var parts []string
	if h.Best != "" {
		parts = append(parts, "BEST "+h.Best)
	}
	if h.FPSValid {
		parts = append(parts, strconv.Itoa(h.FPS)+" FPS")
	}
	if h.Spectators > 0 {
		parts = append(parts, strconv.Itoa(h.Spectators)+" watching")
	}
	if h.Muted {
		parts = append(parts, "MUTED")
	}
	return strings.Join(parts, "  ")
}

// Geometry maps arena distances to the viewport
type Geometry struct {
	InnerHexagonY float64
	OuterHexagonY float64
	CursorY       float64
	CursorW       float64
	CursorH       float64
	CursorArc     float64
	ViewRange     float64
	CellAspect    float64
}

// GeometryFrom derives the terminal geometry from the simulation config
func GeometryFrom(cfg engine.Config) Geometry {
	return Geometry{
		InnerHexagonY: cfg.InnerHexagonY,
		OuterHexagonY: cfg.OuterHexagonY,
		CursorY:       cfg.CursorY,
		CursorW:       cfg.CursorW,
		CursorH:       cfg.CursorH,
		CursorArc:     parameter.CursorArc,
		ViewRange:     parameter.TerminalViewRange,
		CellAspect:    parameter.TerminalCellAspect,
	}
}

// Terminal is a pure consumer of arena state, except for the flash timer it decays
type Terminal struct {
	screen tcell.Screen
	buf    *RenderBuffer
	geom   Geometry
}

// NewTerminal creates a renderer over an initialized screen
func NewTerminal(screen tcell.Screen, g Geometry) *Terminal {
	w, h := screen.Size()
	return &Terminal{
		screen: screen,
		buf:    NewRenderBuffer(w, h),
		geom:   g,
	}
}

// Buffer exposes the composited frame
func (t *Terminal) Buffer() *RenderBuffer { return t.buf }

// Render composes and shows one frame
func (t *Terminal) Render(s *arena.State, hud HUD, delta time.Duration) {
	w, h := t.screen.Size()
	if bw, bh := t.buf.Size(); bw != w || bh != h {
		t.buf.Resize(w, h)
	}

	flash := s.Render.DecayFlash(delta)
	if flash {
		t.buf.Fill(Cell{Rune: ' ', Fg: RgbFlashText, Bg: RgbFlash})
	} else {
		t.drawArena(s)
	}
	t.drawHUD(hud, flash)
	t.buf.Flush(t.screen)
}

// Project maps a cell to arena polar coordinates: position in [0,1) and radial distance
func (t *Terminal) Project(s *arena.State, x, y int) (pos, dist float64) {
	w, h := t.buf.Size()
	aspect := t.geom.CellAspect
	radius := min(float64(w)/2/aspect, float64(h)/2)
	if radius <= 0 {
		return 0, 0
	}

	dx := (float64(x) + 0.5 - float64(w)/2) / aspect
	dy := float64(h)/2 - (float64(y) + 0.5)

	zoom := s.Render.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	dist = math.Hypot(dx, dy) / radius * t.geom.ViewRange / zoom

	turn := math.Atan2(dy, dx)/(2*math.Pi) - s.Render.Rotation
	pos = turn - math.Floor(turn)
	return pos, dist
}

// Sample returns the color at an arena coordinate
func (t *Terminal) Sample(s *arena.State, pos, dist float64) RGB {
	rc := s.Render
	g := t.geom

	if dist < g.InnerHexagonY {
		return FromColor(rc.InnerHexagonColor)
	}
	if dist < g.OuterHexagonY {
		return FromColor(rc.OuterHexagonColor)
	}

	if diff := angularDistance(pos, s.Position); diff <= g.CursorArc/2 {
		if dist >= g.CursorY && dist < g.CursorY+g.CursorH {
			return FromColor(rc.CursorColor)
		}
		if rc.HasCursorShadow && dist >= g.CursorY-g.CursorH && dist < g.CursorY {
			return FromColor(rc.CursorShadowColor)
		}
	}

	idx := s.SlotIdxAtPosition(pos)
	for _, o := range s.Slots[idx].Obstacles {
		if dist >= o.Distance && dist < o.Distance+o.Height {
			return FromColor(rc.ObstacleColor)
		}
	}
	return FromColor(rc.SlotColor(idx))
}

func (t *Terminal) drawArena(s *arena.State) {
	w, h := t.buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pos, dist := t.Project(s, x, y)
			t.buf.SetWithBg(x, y, ' ', RgbHUDText, t.Sample(s, pos, dist))
		}
	}
}

func (t *Terminal) drawHUD(hud HUD, flash bool) {
	w, h := t.buf.Size()
	if w == 0 || h == 0 {
		return
	}
	fg := RgbHUDText
	if flash {
		fg = RgbFlashText
	}

	if hud.Time != "" {
		t.panel(0, 0, "TIME "+hud.Time, fg, flash)
	}

	if right := hud.Status(); right != "" {
		t.panel(w-len(right)-2, 0, right, fg, flash)
	}

	if hud.Heading != "" {
		t.panel((w-len(hud.Heading)-2)/2, h/4, hud.Heading, fg, flash)
	}
	if hud.Caption != "" && h > 1 {
		t.panel((w-len(hud.Caption)-2)/2, h-1, hud.Caption, fg, flash)
	}
}

// panel writes text padded by one cell on a dark strip
func (t *Terminal) panel(x, y int, text string, fg RGB, flash bool) {
	n := len(text) + 2
	if !flash {
		for i := 0; i < n; i++ {
			t.buf.Set(x+i, y, 0, fg, RgbHUDPanel, BlendAlphaBg, 0.8)
		}
	}
	t.buf.Text(x+1, y, text, fg, tcell.AttrBold)
}

// angularDistance is the shortest wrap-around distance between two positions in [0,1)
func angularDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return min(d, 1-d)
}
