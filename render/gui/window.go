// Package gui draws the arena in a desktop window and feeds window input into the game
package gui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/hexagon/arena"
	"github.com/lixenwraith/hexagon/engine"
	"github.com/lixenwraith/hexagon/input"
	"github.com/lixenwraith/hexagon/parameter"
	"github.com/lixenwraith/hexagon/render"
)

const (
	glyphW   = 7
	glyphH   = 13
	hudPad   = 6
	maxBatch = math.MaxUint16 - 64
)

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Options wires a window to the game and the host
type Options struct {
	Game   *engine.Game
	Input  *input.State
	Queue  *input.Queue
	Geom   render.Geometry
	Log    zerolog.Logger
	Clock  func() time.Time
	Width  int
	Height int

	// Handle receives every one-shot event except quit
	Handle func(input.Event)
	// HUD is sampled once per drawn frame
	HUD func() render.HUD
}

// Window implements ebiten.Game; Update is the simulation goroutine
type Window struct {
	opts Options

	width, height int
	mouseIntent   input.Intent
	lastTick      time.Time
	flash         bool

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewWindow creates a window; the game keeps running its own level and screens
func NewWindow(opts Options) *Window {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = parameter.WindowWidth, parameter.WindowHeight
	}
	if opts.Geom.ViewRange <= 0 {
		opts.Geom.ViewRange = parameter.WindowViewRange
	}
	return &Window{
		opts:   opts,
		width:  opts.Width,
		height: opts.Height,
	}
}

// Run opens the window and blocks until quit or close
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.opts.Width, w.opts.Height)
	ebiten.SetWindowTitle(parameter.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if tt := w.opts.Game.Config().TargetTickTime; tt > 0 {
		ebiten.SetTPS(int(time.Second / tt))
	}
	return ebiten.RunGame(w)
}

// Update polls input, dispatches queued events and ticks the game
func (w *Window) Update() error {
	now := w.opts.Clock()
	w.pollPointer()
	w.pollKeys()

	for _, ev := range w.opts.Queue.Consume() {
		if ev.Intent == input.IntentQuit {
			w.opts.Log.Info().Msg("quit requested")
			return ebiten.Termination
		}
		if w.opts.Handle != nil {
			w.opts.Handle(ev)
		}
	}

	w.opts.Game.Tick(now)

	delta := time.Duration(0)
	if !w.lastTick.IsZero() {
		delta = now.Sub(w.lastTick)
	}
	w.lastTick = now
	w.flash = w.opts.Game.State().Render.DecayFlash(delta)
	return nil
}

func (w *Window) pollKeys() {
	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	w.opts.Input.Set(input.IntentLeft, left || w.mouseIntent == input.IntentLeft)
	w.opts.Input.Set(input.IntentRight, right || w.mouseIntent == input.IntentRight)

	pressed := []struct {
		keys   []ebiten.Key
		intent input.Intent
	}{
		{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, input.IntentMenuLeft},
		{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, input.IntentMenuRight},
		{[]ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}, input.IntentSelect},
		{[]ebiten.Key{ebiten.KeyEscape}, input.IntentEscape},
		{[]ebiten.Key{ebiten.KeyQ}, input.IntentQuit},
		{[]ebiten.Key{ebiten.KeyM}, input.IntentToggleMute},
	}
	for _, p := range pressed {
		for _, k := range p.keys {
			if inpututil.IsKeyJustPressed(k) {
				w.opts.Queue.PushIntent(p.intent)
				break
			}
		}
	}
}

// pollPointer steers by screen half while the mouse button or a touch is down
func (w *Window) pollPointer() {
	x, down := 0, false
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, _ = ebiten.CursorPosition()
		down = true
	} else if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, _ = ebiten.TouchPosition(ids[0])
		down = true
	}

	switch {
	case down && w.mouseIntent == input.IntentNone:
		w.mouseIntent = input.IntentRight
		if x < w.width/2 {
			w.mouseIntent = input.IntentLeft
		}
		w.opts.Queue.PushIntent(input.IntentSelect)
	case !down:
		w.mouseIntent = input.IntentNone
	}
}

// Draw paints the arena or the flash, then the HUD
func (w *Window) Draw(dst *ebiten.Image) {
	s := w.opts.Game.State()
	if w.flash {
		dst.Fill(rgba(render.RgbFlash))
	} else {
		dst.Fill(color.Black)
		w.drawArena(dst, s)
	}

	if w.opts.HUD != nil {
		w.drawHUD(dst, w.opts.HUD())
	}
}

// Layout follows the window size so the arena stays centered on resize
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.opts.Queue.PushIntent(input.IntentResize)
	}
	return outsideWidth, outsideHeight
}

func (w *Window) drawArena(dst *ebiten.Image, s *arena.State) {
	b := dst.Bounds()
	bw, bh := float64(b.Dx()), float64(b.Dy())
	cx, cy := bw/2, bh/2

	zoom := s.Render.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	half := min(bw, bh) / 2
	if half <= 0 {
		return
	}
	scale := half * zoom / w.opts.Geom.ViewRange
	far := math.Hypot(cx, cy) / scale

	w.vertices = w.vertices[:0]
	w.indices = w.indices[:0]
	for _, shape := range render.Scene(s, w.opts.Geom, far) {
		if len(w.vertices)+len(shape.Poly) > maxBatch {
			w.flush(dst)
		}
		base := uint16(len(w.vertices))
		r, g, bl := channel(shape.Color.R), channel(shape.Color.G), channel(shape.Color.B)
		for _, p := range shape.Poly {
			w.vertices = append(w.vertices, ebiten.Vertex{
				DstX:   float32(cx + p.X*scale),
				DstY:   float32(cy - p.Y*scale),
				SrcX:   1,
				SrcY:   1,
				ColorR: r,
				ColorG: g,
				ColorB: bl,
				ColorA: 1,
			})
		}
		for _, i := range render.Triangulate(shape.Poly) {
			w.indices = append(w.indices, base+i)
		}
	}
	w.flush(dst)
}

func (w *Window) flush(dst *ebiten.Image) {
	if len(w.indices) > 0 {
		dst.DrawTriangles(w.vertices, w.indices, whiteSubImage, nil)
	}
	w.vertices = w.vertices[:0]
	w.indices = w.indices[:0]
}

func (w *Window) drawHUD(dst *ebiten.Image, hud render.HUD) {
	b := dst.Bounds()
	bw, bh := b.Dx(), b.Dy()
	fg := rgba(render.RgbHUDText)
	if w.flash {
		fg = rgba(render.RgbFlashText)
	}

	if hud.Time != "" {
		w.panel(dst, hudPad, hudPad, "TIME "+hud.Time, fg)
	}
	if status := hud.Status(); status != "" {
		w.panel(dst, bw-textWidth(status)-3*hudPad, hudPad, status, fg)
	}
	if hud.Heading != "" {
		w.panel(dst, (bw-textWidth(hud.Heading))/2-hudPad, bh/4, hud.Heading, fg)
	}
	if hud.Caption != "" {
		w.panel(dst, (bw-textWidth(hud.Caption))/2-hudPad, bh-glyphH-3*hudPad, hud.Caption, fg)
	}
}

// panel draws text on a translucent strip with its top-left corner at x, y
func (w *Window) panel(dst *ebiten.Image, x, y int, s string, fg color.Color) {
	if !w.flash {
		bg := color.NRGBA{R: render.RgbHUDPanel.R, G: render.RgbHUDPanel.G, B: render.RgbHUDPanel.B, A: 204}
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(textWidth(s)+2*hudPad), float32(glyphH+2*hudPad), bg, false)
	}
	text.Draw(dst, s, basicfont.Face7x13, x+hudPad, y+hudPad+glyphH-3, fg)
}

func textWidth(s string) int { return len(s) * glyphW }

func channel(v float64) float32 {
	return float32(max(0, min(1, v)))
}

func rgba(c render.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
