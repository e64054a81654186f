package screen

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexagon/audio"
	"github.com/lixenwraith/hexagon/core"
	"github.com/lixenwraith/hexagon/engine"
	"github.com/lixenwraith/hexagon/input"
	"github.com/lixenwraith/hexagon/level"
	"github.com/lixenwraith/hexagon/parameter"
	"github.com/lixenwraith/hexagon/status"
)

// levelIndex is level-1's slot in the best time records
const levelIndex = 0

// TimeDisplay holds the play time last published by the level screen's updater
type TimeDisplay struct {
	ms atomic.Int64
}

// Set publishes d
func (t *TimeDisplay) Set(d time.Duration) { t.ms.Store(d.Milliseconds()) }

// Get returns the published play time
func (t *TimeDisplay) Get() time.Duration { return time.Duration(t.ms.Load()) * time.Millisecond }

// String formats as whole seconds and centiseconds, "12:07"
func (t *TimeDisplay) String() string { return FormatTime(t.Get()) }

// FormatTime renders d as seconds:centiseconds
func FormatTime(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%d:%02d", ms/1000, (ms%1000)/10)
}

// updater is a running play time ticker
type updater struct {
	stop chan struct{}
	done chan struct{}
}

// LevelScreen plays level-1 and shows the running time
type LevelScreen struct {
	game    *engine.Game
	level   *level.One
	audio   audio.Player
	records Records
	log     zerolog.Logger
	app     *App

	display  *TimeDisplay
	playMS   *atomic.Int64
	interval time.Duration

	mu      sync.Mutex
	updater *updater
	active  bool
}

func newLevelScreen(a *App, game *engine.Game, d Deps, display *TimeDisplay) *LevelScreen {
	return &LevelScreen{
		game: game,
		level: level.NewOne(level.Deps{
			State:          game.State(),
			Pool:           game.Pool(),
			Audio:          d.Audio,
			Rand:           d.Rand,
			Status:         d.Status,
			Log:            d.Log,
			TargetTickTime: game.Config().TargetTickTime,
		}),
		audio:    d.Audio,
		records:  d.Records,
		log:      d.Log,
		app:      a,
		display:  display,
		playMS:   d.Status.Ints.Get(status.KeyPlayTimeMS),
		interval: parameter.PlayTimeDisplayInterval,
	}
}

func (l *LevelScreen) Level() engine.Level { return l.level }

// Enter starts the play time updater
// An updater left over from a previous enter is a lifecycle bug and panics
func (l *LevelScreen) Enter() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.updater != nil {
		panic(ErrUpdaterActive)
	}

	u := &updater{stop: make(chan struct{}), done: make(chan struct{})}
	l.updater = u
	l.active = true
	l.display.Set(0)

	core.Go(func() {
		defer close(u.done)
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		for {
			select {
			case <-u.stop:
				return
			case <-ticker.C:
				l.display.Set(time.Duration(l.playMS.Load()) * time.Millisecond)
			}
		}
	})
}

// Leave stops the updater, silences the music and records the run
func (l *LevelScreen) Leave() {
	l.mu.Lock()
	u := l.updater
	l.updater = nil
	l.active = false
	l.mu.Unlock()

	if u != nil {
		close(u.stop)
		<-u.done
	}
	l.audio.StopMusic()
	l.record()
}

// Active reports whether the screen is entered
func (l *LevelScreen) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

// BestTime returns the stored record, zero without a store
func (l *LevelScreen) BestTime() time.Duration {
	if l.records == nil {
		return 0
	}
	return l.records.BestTime(levelIndex)
}

// OnStop records the run that just ended; wired as a game stop hook
func (l *LevelScreen) OnStop() {
	if l.Active() {
		l.record()
	}
}

func (l *LevelScreen) record() {
	if l.records == nil {
		return
	}
	d := l.game.PlayTime()
	if l.records.RecordTime(levelIndex, d) {
		l.log.Info().Str("time", FormatTime(d)).Msg("new best time")
	}
}

func (l *LevelScreen) HandleEvent(ev input.Event) {
	switch ev.Intent {
	case input.IntentSelect:
		if l.Active() && !l.game.Running() {
			l.game.Restart()
		}
	case input.IntentEscape:
		l.app.change(Title)
	}
}
