package screen

import (
	"strings"

	"github.com/lixenwraith/hexagon/render"
)

// Overlay describes the text drawn over the arena for the active screen
func (a *App) Overlay(spectators int, muted bool) render.HUD {
	hud := render.HUD{Spectators: spectators, Muted: muted}
	hud.FPS, hud.FPSValid = a.game.FPS()

	switch a.name {
	case Title:
		hud.Heading = "HEXAGON"
		hud.Caption = menuCaption(a.title.Action())
	case Settings:
		hud.Heading = "OPTIONS"
		hud.Caption = menuCaption(a.settings.Action())
		if a.settings.Action() == "toggle sound" {
			if a.settings.SoundOn() {
				hud.Heading += " - SOUND ON"
			} else {
				hud.Heading += " - SOUND OFF"
			}
		}
	case Level1:
		hud.Time = a.display.String()
		if best := a.level1.BestTime(); best > 0 {
			hud.Best = FormatTime(best)
		}
		if !a.game.Running() {
			hud.Heading = "GAME OVER"
			hud.Caption = "SPACE TO RESTART  ESC FOR MENU"
		}
	}
	return hud
}

func menuCaption(text string) string {
	return "<  " + strings.ToUpper(text) + "  >"
}
