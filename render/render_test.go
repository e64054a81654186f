package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hexagon/arena"
	"github.com/lixenwraith/hexagon/engine"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestState() *arena.State {
	s := arena.NewState(6, arena.DefaultDefaults())
	rc := s.Render
	rc.InnerHexagonColor = arena.Gray(0.5)
	rc.OuterHexagonColor = arena.Gray(1)
	rc.CursorColor = arena.Color{R: 1}
	rc.CursorShadowColor = arena.Color{G: 1}
	rc.ObstacleColor = arena.Color{B: 1}
	rc.SlotColors = []arena.Color{arena.Gray(0.7), arena.Gray(0.6)}
	return s
}

func bgAt(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		in   arena.Color
		want RGB
	}{
		{arena.Gray(0), RGB{0, 0, 0}},
		{arena.Gray(1), RGB{255, 255, 255}},
		{arena.Gray(0.5), RGB{128, 128, 128}},
		{arena.Color{R: 2, G: -1, B: 0.188}, RGB{255, 0, 48}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromColor(tt.in))
	}
}

func TestBlendModes(t *testing.T) {
	a, b := RGB{100, 0, 200}, RGB{200, 100, 0}

	assert.Equal(t, a, Blend(a, b, 0))
	assert.Equal(t, b, Blend(a, b, 1))
	assert.Equal(t, RGB{150, 50, 100}, Blend(a, b, 0.5))
	assert.Equal(t, RGB{200, 100, 200}, Max(a, b))
	assert.Equal(t, RGB{255, 100, 200}, Add(a, b))
	assert.Equal(t, RGBWhite, Screen(a, RGBWhite))
	assert.Equal(t, a, Screen(a, RGBBlack))
	assert.Equal(t, RGB{150, 50, 100}, Lerp(a, b, 0.5))
}

func TestRenderBuffer(t *testing.T) {
	b := NewRenderBuffer(4, 2)
	b.SetWithBg(1, 1, 'x', RGBWhite, RGB{10, 10, 10})
	b.Set(1, 1, 0, RGBBlack, RGB{30, 0, 0}, BlendMaxBg, 1)
	b.SetWithBg(9, 9, 'y', RGBWhite, RGBWhite)

	c := b.Get(1, 1)
	assert.Equal(t, 'x', c.Rune)
	assert.Equal(t, RGBWhite, c.Fg, "background-only mode keeps the foreground")
	assert.Equal(t, RGB{30, 10, 10}, c.Bg)

	end := b.Text(0, 0, "ab", RGBWhite, tcell.AttrBold)
	assert.Equal(t, 2, end)
	assert.Equal(t, 'b', b.Get(1, 0).Rune)

	b.Resize(2, 2)
	w, h := b.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, emptyCell, b.Get(1, 1))
}

func TestSample(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	term := NewTerminal(screen, GeometryFrom(engine.DefaultConfig()))
	s := newTestState()
	s.Position = 1.0 / 12
	s.Slots[3].Add(arena.NewObstaclePool().Acquire(0.2, 0.05))
	s.Slots[1].Width = 0

	tests := []struct {
		name      string
		pos, dist float64
		want      RGB
	}{
		{"inner hexagon", 0.5, 0.01, FromColor(arena.Gray(0.5))},
		{"outer ring", 0.5, 0.027, RGBWhite},
		{"cursor", 1.0 / 12, 0.037, RGB{255, 0, 0}},
		{"cursor shadow", 1.0 / 12, 0.031, RGB{0, 255, 0}},
		{"beside cursor", 1.0/12 + 0.05, 0.037, FromColor(arena.Gray(0.7))},
		{"obstacle", 0.5, 0.22, RGB{0, 0, 255}},
		{"behind obstacle", 0.5, 0.3, FromColor(arena.Gray(0.6))},
		{"slot 0", 0.1, 0.5, FromColor(arena.Gray(0.7))},
		{"zero width slot skipped", 0.3, 0.5, FromColor(arena.Gray(0.7))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, term.Sample(s, tt.pos, tt.dist))
		})
	}
}

func TestProject(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	term := NewTerminal(screen, GeometryFrom(engine.DefaultConfig()))
	s := newTestState()

	pos, dist := term.Project(s, 40, 12)
	assert.Less(t, dist, 0.05, "center cell is near the hub")

	// Right of center along the row is angle ~0
	pos, dist = term.Project(s, 79, 11)
	assert.InDelta(t, 0, min(pos, 1-pos), 0.02)
	assert.Greater(t, dist, 0.5)

	// Zooming in shrinks the visible distance
	s.Render.Zoom = 2
	_, zoomed := term.Project(s, 79, 11)
	assert.InDelta(t, dist/2, zoomed, 1e-9)

	// Rotation shifts the arena position under a fixed cell
	s.Render.Zoom = 1
	s.Render.Rotation = 0.25
	rotated, _ := term.Project(s, 79, 11)
	assert.InDelta(t, 0.75, rotated, 0.02)
}

func TestRenderArena(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	term := NewTerminal(screen, GeometryFrom(engine.DefaultConfig()))
	s := newTestState()

	term.Render(s, HUD{}, 17*time.Millisecond)

	pos, dist := term.Project(s, 40, 12)
	assert.Equal(t, term.Sample(s, pos, dist).Tcell(), bgAt(screen, 40, 12))
	assert.Equal(t, RGBWhite.Tcell(), bgAt(screen, 40, 12), "hub cell falls on the outer ring")

	pos, dist = term.Project(s, 2, 12)
	assert.Equal(t, term.Sample(s, pos, dist).Tcell(), bgAt(screen, 2, 12))
}

func TestRenderFlash(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	term := NewTerminal(screen, GeometryFrom(engine.DefaultConfig()))
	s := newTestState()
	s.Render.FlashTime = 100 * time.Millisecond

	term.Render(s, HUD{}, 17*time.Millisecond)
	assert.Equal(t, 83*time.Millisecond, s.Render.FlashTime)
	for _, xy := range [][2]int{{0, 0}, {20, 6}, {39, 11}} {
		assert.Equal(t, RgbFlash.Tcell(), bgAt(screen, xy[0], xy[1]))
	}

	s.Render.FlashTime = 0
	term.Render(s, HUD{}, 17*time.Millisecond)
	assert.NotEqual(t, RgbFlash.Tcell(), bgAt(screen, 0, 6))
}

func TestRenderHUD(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	term := NewTerminal(screen, GeometryFrom(engine.DefaultConfig()))
	s := newTestState()

	term.Render(s, HUD{
		Time:       "12:07",
		Best:       "30:00",
		FPS:        60,
		FPSValid:   true,
		Heading:    "HEXAGON",
		Caption:    "< start game >",
		Spectators: 2,
	}, 17*time.Millisecond)

	top := rowText(screen, 0)
	assert.Contains(t, top, "TIME 12:07")
	assert.Contains(t, top, "BEST 30:00")
	assert.Contains(t, top, "60 FPS")
	assert.Contains(t, top, "2 watching")
	assert.Contains(t, rowText(screen, 6), "HEXAGON")
	assert.Contains(t, rowText(screen, 23), "< start game >")
}

func TestRenderFollowsResize(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	term := NewTerminal(screen, GeometryFrom(engine.DefaultConfig()))
	s := newTestState()

	screen.SetSize(30, 10)
	term.Render(s, HUD{}, 17*time.Millisecond)
	w, h := term.Buffer().Size()
	assert.Equal(t, 30, w)
	assert.Equal(t, 10, h)
}

func TestHUDStatus(t *testing.T) {
	tests := []struct {
		name string
		hud  HUD
		want string
	}{
		{"empty", HUD{}, ""},
		{"fps only", HUD{FPS: 59, FPSValid: true}, "59 FPS"},
		{"invalid fps hidden", HUD{FPS: 59}, ""},
		{"full", HUD{Best: "1:00", FPS: 60, FPSValid: true, Spectators: 1, Muted: true}, "BEST 1:00  60 FPS  1 watching  MUTED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hud.Status())
		})
	}
}
