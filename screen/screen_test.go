package screen

import (
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hexagon/arena"
	"github.com/lixenwraith/hexagon/audio"
	"github.com/lixenwraith/hexagon/engine"
	"github.com/lixenwraith/hexagon/input"
	"github.com/lixenwraith/hexagon/parameter"
	"github.com/lixenwraith/hexagon/status"
)

const frame = 17 * time.Millisecond

type recordingPlayer struct {
	mu    sync.Mutex
	calls []string
}

func (p *recordingPlayer) add(s string) {
	p.mu.Lock()
	p.calls = append(p.calls, s)
	p.mu.Unlock()
}

func (p *recordingPlayer) Play(c audio.Cue) { p.add("play:" + c.String()) }
func (p *recordingPlayer) PlayMusic()       { p.add("music") }
func (p *recordingPlayer) PauseMusic()      { p.add("pause") }
func (p *recordingPlayer) StopMusic()       { p.add("stop") }

func (p *recordingPlayer) count(s string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.calls {
		if c == s {
			n++
		}
	}
	return n
}

type memRecords struct {
	best map[int]time.Duration
}

func (m *memRecords) BestTime(level int) time.Duration { return m.best[level] }

func (m *memRecords) RecordTime(level int, d time.Duration) bool {
	if d <= m.best[level] {
		return false
	}
	m.best[level] = d
	return true
}

type fixture struct {
	app     *App
	game    *engine.Game
	player  *recordingPlayer
	records *memRecords
	reg     *status.Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	reg := status.NewRegistry()
	state := arena.NewState(parameter.SlotCount, arena.DefaultDefaults())
	game, err := engine.NewGame(engine.DefaultConfig(), state, arena.NewObstaclePool(), engine.WithStatus(reg))
	require.NoError(t, err)

	f := &fixture{
		game:    game,
		player:  &recordingPlayer{},
		records: &memRecords{best: map[int]time.Duration{}},
		reg:     reg,
	}
	f.app = NewApp(game, Deps{
		Audio:   f.player,
		Rand:    rand.New(rand.NewSource(3)),
		Status:  reg,
		Log:     zerolog.Nop(),
		Records: f.records,
	})
	t.Cleanup(f.app.Close)
	return f
}

func (f *fixture) send(intent input.Intent) {
	f.app.HandleEvent(input.Event{Intent: intent})
}

func TestNewAppPlaysStartupJingle(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, 1, f.player.count("play:startup"))
	assert.Equal(t, Name(""), f.app.Current())
}

func TestChangeUnknownScreen(t *testing.T) {
	f := newFixture(t)
	err := f.app.Change("level-9")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownScreen))
	assert.Equal(t, Name(""), f.app.Current())
}

func TestChangeLifecycle(t *testing.T) {
	f := newFixture(t)
	var seen [][2]Name
	f.app.OnChange(func(to, from Name) { seen = append(seen, [2]Name{to, from}) })

	require.NoError(t, f.app.Change(Title))
	assert.Equal(t, Title, f.app.Current())
	assert.True(t, f.game.Running(), "change restarts the game")
	assert.Equal(t, f.app.Title().Level(), f.game.Level())
	assert.Equal(t, parameter.MenuZoom, f.game.State().Render.Zoom)
	assert.Equal(t, "title", f.reg.Strings.Get(status.KeyScreen).Load())

	require.NoError(t, f.app.Change(Level1))
	assert.Equal(t, f.app.Level().Level(), f.game.Level())
	assert.Equal(t, parameter.Level1ObstacleSpeed, f.game.State().ObstacleSpeed)
	assert.True(t, f.app.Level().Active())

	assert.Equal(t, [][2]Name{{Title, ""}, {Level1, Title}}, seen)
}

func TestTitleCarousel(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.app.Change(Title))
	title := f.app.Title()

	assert.Equal(t, "start game", title.Action())

	f.send(input.IntentMenuRight)
	assert.Equal(t, "options", title.Action())

	f.send(input.IntentMenuLeft)
	f.send(input.IntentMenuLeft)
	assert.Equal(t, "credits", title.Action(), "carousel wraps")
	assert.Equal(t, 3, f.player.count("play:menuchoose"))

	f.send(input.IntentMenuRight)
	f.send(input.IntentMenuRight)
	f.send(input.IntentSelect)
	assert.Equal(t, Settings, f.app.Current())
}

func TestTitleSelectStartsLevel(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.app.Change(Title))

	f.send(input.IntentSelect)
	assert.Equal(t, Level1, f.app.Current())
	assert.Equal(t, 1, f.player.count("play:begin"))
	assert.Equal(t, 1, f.player.count("music"))
}

func TestSettingsScreen(t *testing.T) {
	f := newFixture(t)
	muted := false
	cleared := 0
	f.app = NewApp(f.game, Deps{
		Audio:        f.player,
		Status:       f.reg,
		ToggleMute:   func() bool { muted = !muted; return !muted },
		ClearRecords: func() { cleared++ },
	})
	require.NoError(t, f.app.Change(Settings))
	settings := f.app.Settings()

	f.send(input.IntentSelect)
	assert.True(t, muted)
	assert.False(t, settings.SoundOn())

	f.send(input.IntentMenuRight)
	assert.Equal(t, "delete records", settings.Action())
	f.send(input.IntentSelect)
	assert.Equal(t, 1, cleared)

	f.send(input.IntentEscape)
	assert.Equal(t, Title, f.app.Current())
}

func TestLevelScreenEnterTwicePanics(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.app.Change(Level1))

	assert.PanicsWithValue(t, ErrUpdaterActive, func() { f.app.Level().Enter() })
}

func TestLevelScreenReenter(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.app.Change(Level1))
	require.NoError(t, f.app.Change(Title))
	assert.False(t, f.app.Level().Active())
	assert.NotPanics(t, func() { require.NoError(t, f.app.Change(Level1)) })
}

func TestLevelScreenRestartOnlyWhenStopped(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.app.Change(Level1))

	for range 5 {
		f.game.Step(frame)
	}
	played := f.game.PlayTime()
	require.Equal(t, 5*frame, played)

	f.send(input.IntentSelect)
	assert.Equal(t, played, f.game.PlayTime(), "running game ignores restart")

	f.game.State().Running = false
	f.send(input.IntentSelect)
	assert.True(t, f.game.Running())
	assert.Zero(t, f.game.PlayTime())
}

func TestLevelScreenCollisionRecordsBestTime(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.app.Change(Level1))

	for range 3 {
		f.game.Step(frame)
	}
	s := f.game.State()
	tip := f.game.Config().CursorTip()
	s.Slots[s.CurrentSlotIdx()].Add(f.game.Pool().Acquire(tip+0.001, 0.1))

	f.game.Step(frame)
	require.False(t, f.game.Running())
	assert.Equal(t, 3*frame, f.records.best[levelIndex])
	assert.Equal(t, 3*frame, f.app.Level().BestTime())
	assert.Equal(t, 1, f.player.count("play:gameover"))
}

func TestLevelScreenLeave(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.app.Change(Level1))
	for range 4 {
		f.game.Step(frame)
	}

	f.send(input.IntentEscape)
	assert.Equal(t, Title, f.app.Current())
	assert.Equal(t, 1, f.player.count("stop"))
	assert.Equal(t, 4*frame, f.records.best[levelIndex])
}

func TestLevelScreenPublishesPlayTime(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.app.Change(Level1))
	for range 6 {
		f.game.Step(frame)
	}

	display := f.app.Display()
	assert.Eventually(t, func() bool {
		return display.Get() == 6*frame
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "0:10", display.String())
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{9 * time.Millisecond, "0:00"},
		{999 * time.Millisecond, "0:99"},
		{12070 * time.Millisecond, "12:07"},
		{61 * time.Second, "61:00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTime(tt.in))
		})
	}
}

func TestOverlay(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, "", f.app.Overlay(0, false).Heading, "no screen yet")

	require.NoError(t, f.app.Change(Title))
	hud := f.app.Overlay(2, true)
	assert.Equal(t, "HEXAGON", hud.Heading)
	assert.Equal(t, "<  START GAME  >", hud.Caption)
	assert.Equal(t, 2, hud.Spectators)
	assert.True(t, hud.Muted)
	assert.Empty(t, hud.Time)

	require.NoError(t, f.app.Change(Settings))
	assert.Equal(t, "OPTIONS - SOUND ON", f.app.Overlay(0, false).Heading)

	f.records.best[0] = 12340 * time.Millisecond
	require.NoError(t, f.app.Change(Level1))
	hud = f.app.Overlay(0, false)
	assert.Equal(t, "0:00", hud.Time)
	assert.Equal(t, "12:34", hud.Best)
	assert.Empty(t, hud.Heading, "running")

	f.game.State().Running = false
	hud = f.app.Overlay(0, false)
	assert.Equal(t, "GAME OVER", hud.Heading)
	assert.NotEmpty(t, hud.Caption)
}
