package screen

import (
	"github.com/lixenwraith/hexagon/audio"
	"github.com/lixenwraith/hexagon/engine"
	"github.com/lixenwraith/hexagon/input"
	"github.com/lixenwraith/hexagon/level"
)

// Action is one carousel entry
type Action struct {
	Text string
	Run  func()
}

// carousel cycles through actions with wrap-around
type carousel struct {
	actions []Action
	idx     int
}

func (c *carousel) step(by int) {
	n := len(c.actions)
	c.idx = ((c.idx+by)%n + n) % n
}

func (c *carousel) current() Action { return c.actions[c.idx] }

// TitleScreen is the start menu
type TitleScreen struct {
	menu  carousel
	level *level.Menu
	audio audio.Player
}

func newTitleScreen(a *App, game *engine.Game, d Deps) *TitleScreen {
	t := &TitleScreen{
		level: level.NewMenu(game.State()),
		audio: d.Audio,
	}
	t.menu.actions = []Action{
		{"start game", func() { a.change(Level1) }},
		{"options", func() { a.change(Settings) }},
		{"achievements", func() { a.change(Level1) }},
		{"credits", func() { a.change(Level1) }},
	}
	t.audio.Play(audio.CueStartup)
	return t
}

func (t *TitleScreen) Enter()              {}
func (t *TitleScreen) Leave()              {}
func (t *TitleScreen) Level() engine.Level { return t.level }

// Action returns the caption of the highlighted entry
func (t *TitleScreen) Action() string { return t.menu.current().Text }

func (t *TitleScreen) HandleEvent(ev input.Event) {
	switch ev.Intent {
	case input.IntentMenuLeft:
		t.menu.step(-1)
		t.audio.Play(audio.CueMenuChoose)
	case input.IntentMenuRight:
		t.menu.step(1)
		t.audio.Play(audio.CueMenuChoose)
	case input.IntentSelect:
		t.menu.current().Run()
	}
}

// SettingsScreen lists the options; escape returns to the title
type SettingsScreen struct {
	menu  carousel
	level *level.Menu
	audio audio.Player
	app   *App

	soundOn bool
}

func newSettingsScreen(a *App, game *engine.Game, d Deps) *SettingsScreen {
	s := &SettingsScreen{
		level:   level.NewMenu(game.State()),
		audio:   d.Audio,
		app:     a,
		soundOn: d.SoundOn == nil || d.SoundOn(),
	}
	s.menu.actions = []Action{
		{"toggle sound", func() {
			if d.ToggleMute != nil {
				s.soundOn = d.ToggleMute()
			}
		}},
		{"delete records", func() {
			if d.ClearRecords != nil {
				d.ClearRecords()
			}
		}},
	}
	return s
}

func (s *SettingsScreen) Enter()              {}
func (s *SettingsScreen) Leave()              {}
func (s *SettingsScreen) Level() engine.Level { return s.level }

// Action returns the caption of the highlighted option
func (s *SettingsScreen) Action() string { return s.menu.current().Text }

// SoundOn reports the last known audio state
func (s *SettingsScreen) SoundOn() bool { return s.soundOn }

func (s *SettingsScreen) HandleEvent(ev input.Event) {
	switch ev.Intent {
	case input.IntentEscape:
		s.app.change(Title)
	case input.IntentMenuLeft:
		s.menu.step(-1)
		s.audio.Play(audio.CueMenuChoose)
	case input.IntentMenuRight:
		s.menu.step(1)
		s.audio.Play(audio.CueMenuChoose)
	case input.IntentSelect:
		s.menu.current().Run()
	}
}
