// Package screen owns the named screens, their enter/leave lifecycle and the level each one drives
package screen

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexagon/audio"
	"github.com/lixenwraith/hexagon/engine"
	"github.com/lixenwraith/hexagon/input"
	"github.com/lixenwraith/hexagon/status"
)

// Name identifies a screen
type Name string

const (
	Title    Name = "title"
	Settings Name = "settings"
	Level1   Name = "level-1"
)

// Sentinel errors
var (
	ErrUnknownScreen = errors.New("unknown screen")
	ErrUpdaterActive = errors.New("play time updater already active on enter")
)

// Screen is one interactive view
// Enter and Leave are always called in pairs by App.Change
type Screen interface {
	Enter()
	Leave()
	Level() engine.Level
	HandleEvent(ev input.Event)
}

// Listener observes screen changes; from is empty on the first change
type Listener func(to, from Name)

// Records is the best-time store the level screen reports to
type Records interface {
	BestTime(level int) time.Duration
	RecordTime(level int, d time.Duration) bool
}

// Deps are the collaborators shared by all screens
type Deps struct {
	Audio   audio.Player
	Rand    *rand.Rand
	Status  *status.Registry
	Log     zerolog.Logger
	Records Records

	// ToggleMute flips audio output and reports whether it is now enabled
	ToggleMute func() bool
	// ClearRecords forgets every stored best time
	ClearRecords func()
	// SoundOn reports the audio state at startup; nil means on
	SoundOn func() bool
}

// App switches between screens and keeps the game's level in step with the active one
// All methods run on the simulation goroutine
type App struct {
	game      *engine.Game
	screens   map[Name]Screen
	current   Screen
	name      Name
	listeners []Listener
	log       zerolog.Logger
	screenTag *status.AtomicString

	title    *TitleScreen
	settings *SettingsScreen
	level1   *LevelScreen
	display  *TimeDisplay
}

// NewApp builds the title, settings and level-1 screens over game
// No screen is active until the first Change
func NewApp(game *engine.Game, d Deps) *App {
	if d.Audio == nil {
		d.Audio = audio.Nop{}
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.Status == nil {
		d.Status = status.NewRegistry()
	}

	a := &App{
		game:      game,
		log:       d.Log,
		screenTag: d.Status.Strings.Get(status.KeyScreen),
		display:   &TimeDisplay{},
	}
	a.title = newTitleScreen(a, game, d)
	a.settings = newSettingsScreen(a, game, d)
	a.level1 = newLevelScreen(a, game, d, a.display)
	a.screens = map[Name]Screen{
		Title:    a.title,
		Settings: a.settings,
		Level1:   a.level1,
	}
	game.AddStopHook(a.level1.OnStop)
	return a
}

// OnChange registers a screen change listener
func (a *App) OnChange(fn Listener) {
	a.listeners = append(a.listeners, fn)
}

// Change leaves the active screen, restarts the game on the new screen's level and enters it
func (a *App) Change(name Name) error {
	next, ok := a.screens[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScreen, name)
	}

	if a.current != nil {
		a.current.Leave()
	}
	a.game.SetLevel(next.Level())
	a.game.Restart()
	next.Enter()

	prev := a.name
	for _, fn := range a.listeners {
		fn(name, prev)
	}
	a.current = next
	a.name = name
	a.screenTag.Store(string(name))
	a.log.Info().Str("from", string(prev)).Str("to", string(name)).Msg("screen changed")
	return nil
}

// HandleEvent forwards a one-shot event to the active screen
func (a *App) HandleEvent(ev input.Event) {
	if a.current != nil {
		a.current.HandleEvent(ev)
	}
}

// Current returns the active screen's name
func (a *App) Current() Name { return a.name }

// Title returns the title screen
func (a *App) Title() *TitleScreen { return a.title }

// Settings returns the settings screen
func (a *App) Settings() *SettingsScreen { return a.settings }

// Level returns the level-1 screen
func (a *App) Level() *LevelScreen { return a.level1 }

// Display returns the play time shown by the level screen
func (a *App) Display() *TimeDisplay { return a.display }

// Close leaves the active screen so background updaters stop
func (a *App) Close() {
	if a.current != nil {
		a.current.Leave()
		a.current = nil
	}
}

// change is used by screen actions; names are compile-time constants so failure is a bug
func (a *App) change(name Name) {
	if err := a.Change(name); err != nil {
		panic(err)
	}
}
