// Package level holds the engine.Level variants: the menu backdrop and the playable level
package level

import (
	"time"

	"github.com/lixenwraith/hexagon/arena"
	"github.com/lixenwraith/hexagon/parameter"
	"github.com/lixenwraith/hexagon/tween"
)

// Menu palette
var (
	menuSlotColors = []arena.Color{arena.Gray(0.188), arena.Gray(0.149)}
	menuGray       = arena.Gray(0.5)
	menuCursor     = arena.Gray(0.188)
)

// Menu is the slowly turning backdrop behind the title and settings screens
// It never runs obstacles
type Menu struct {
	state    *arena.State
	rotation *tween.Tween[struct{}]
}

// NewMenu creates a backdrop level over state
func NewMenu(state *arena.State) *Menu {
	m := &Menu{state: state}
	m.rotation = tween.Plain(parameter.MenuRotationPeriod, 0, func(p float64) {
		m.state.Render.Rotation = 1 - p
	})
	return m
}

// Reset paints the menu palette and restarts the rotation
func (m *Menu) Reset() {
	rc := m.state.Render
	rc.SlotColors = append(rc.SlotColors[:0], menuSlotColors...)
	rc.ObstacleColor = menuGray
	rc.InnerHexagonColor = menuGray
	rc.OuterHexagonColor = menuGray
	rc.CursorColor = menuCursor
	rc.Zoom = parameter.MenuZoom
	rc.Eye = arena.Vec2{X: 0, Y: 0.5}
	rc.LookAt = arena.Vec2{X: 0, Y: 1}
	m.rotation.Reset()
}

// Tick turns the backdrop
func (m *Menu) Tick(delta time.Duration) {
	m.rotation.Tick(delta)
}

// OnStop is a no-op; the menu has no obstacles to collide with
func (m *Menu) OnStop() {}
