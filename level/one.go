package level

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexagon/arena"
	"github.com/lixenwraith/hexagon/audio"
	"github.com/lixenwraith/hexagon/parameter"
	"github.com/lixenwraith/hexagon/pattern"
	"github.com/lixenwraith/hexagon/status"
	"github.com/lixenwraith/hexagon/tween"
)

// ZoomAux is the per-cycle zoom depth, re-rolled at the end of every bump
type ZoomAux struct {
	Depth float64
}

// GenerationAux records the last placed pattern
type GenerationAux struct {
	Pattern string
	Extent  float64
	Count   int
}

// Deps are the collaborators of the playable level
type Deps struct {
	State          *arena.State
	Pool           *arena.ObstaclePool
	Audio          audio.Player
	Rand           *rand.Rand
	Status         *status.Registry
	Log            zerolog.Logger
	TargetTickTime time.Duration
}

// One is the playable level: pulsing palette, spinning camera and paced pattern generation
type One struct {
	state    *arena.State
	pool     *arena.ObstaclePool
	audio    audio.Player
	rng      *rand.Rand
	selector *pattern.Selector
	log      zerolog.Logger
	reg      *status.Registry
	lastName *status.AtomicString

	targetTickTime time.Duration

	slotColor1 arena.Color
	slotColor2 arena.Color

	pulse      *tween.Tween[struct{}]
	swap       *tween.Tween[struct{}]
	generation *tween.Tween[GenerationAux]
	rotation   *tween.Tween[struct{}]
	zoom       *tween.Tween[ZoomAux]
	sway       *tween.Tween[struct{}]
	tweens     tween.Group
}

// NewOne creates the playable level
func NewOne(d Deps) *One {
	if d.Audio == nil {
		d.Audio = audio.Nop{}
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.TargetTickTime <= 0 {
		d.TargetTickTime = parameter.TargetTickTime
	}

	l := &One{
		state:          d.State,
		pool:           d.Pool,
		audio:          d.Audio,
		rng:            d.Rand,
		selector:       pattern.NewSelector(d.Rand),
		log:            d.Log,
		reg:            d.Status,
		targetTickTime: d.TargetTickTime,
		slotColor1:     arena.Gray(0.7),
		slotColor2:     arena.Gray(0.6),
	}
	if l.reg != nil {
		l.lastName = l.reg.Strings.Get(status.KeyLastPattern)
	}

	l.pulse = tween.Plain(parameter.Level1PulseDuration, 0, l.pulseColors)
	l.swap = tween.Plain(parameter.Level1ColorSwapPeriod, 0, l.swapColors)
	l.generation = tween.New(tween.Immediate, parameter.Level1TimeBetweenPatterns, GenerationAux{}, l.generate)
	l.rotation = tween.Plain(parameter.Level1RotationPeriod, 0, func(p float64) {
		l.state.Render.Rotation = p
	})
	l.zoom = tween.New(parameter.Level1ZoomPeriod, 0, ZoomAux{Depth: 1}, l.bumpZoom)
	l.sway = tween.Plain(parameter.Level1EyeSwayPeriod, 0, func(p float64) {
		l.state.Render.Eye.X = (tween.Triangle(p) - 0.5) * parameter.Level1EyeSwayAmplitude
	})
	l.tweens = tween.Group{l.pulse, l.swap, l.generation, l.rotation, l.zoom, l.sway}
	return l
}

// Reset repaints the level and restarts pattern pacing
func (l *One) Reset() {
	rc := l.state.Render
	rc.CursorColor = arena.Gray(1)
	rc.CursorShadowColor = arena.Gray(0.3)
	rc.HasCursorShadow = true
	rc.InnerHexagonColor = arena.Gray(0.5)
	rc.OuterHexagonColor = arena.Gray(1)
	rc.ObstacleColor = arena.Gray(1)
	rc.SlotColors = append(rc.SlotColors[:0], l.slotColor1, l.slotColor2)
	rc.Eye.Y = -0.5
	rc.LookAt = arena.Vec2{}

	l.state.ObstacleSpeed = parameter.Level1ObstacleSpeed
	l.state.CursorSpeed = parameter.Level1CursorSpeed

	l.generation.Duration = tween.Immediate
	l.generation.Reset()

	l.audio.PlayMusic()
	l.audio.Play(audio.CueBegin)
}

// Tick advances every tween
func (l *One) Tick(delta time.Duration) {
	l.tweens.Tick(delta)
}

// OnStop pauses the music and plays the game-over cue
func (l *One) OnStop() {
	l.audio.PauseMusic()
	l.audio.Play(audio.CueGameOver)
}

// LastPattern returns the generation tween's record
func (l *One) LastPattern() GenerationAux {
	return l.generation.Aux
}

// ZoomDepth returns the current zoom bump depth
func (l *One) ZoomDepth() float64 {
	return l.zoom.Aux.Depth
}

// pulseColors dims both slot colors towards the middle of the pulse
func (l *One) pulseColors(p float64) {
	brightness := 1 - (1-tween.Triangle(p))*parameter.Level1PulseDepth
	rc := l.state.Render
	if len(rc.SlotColors) < 2 {
		rc.SlotColors = make([]arena.Color, 2)
	}
	rc.SlotColors[0] = l.slotColor1.Scale(brightness)
	rc.SlotColors[1] = l.slotColor2.Scale(brightness)
}

func (l *One) swapColors(p float64) {
	if p == 1 {
		l.slotColor1, l.slotColor2 = l.slotColor2, l.slotColor1
	}
}

// generate places the next pattern once the previous one has scrolled in
// The tween is retuned so the next pattern starts right behind this one
func (l *One) generate(p float64, t *tween.Tween[GenerationAux]) {
	if p != 1 || !l.state.Running {
		return
	}

	name, extent := l.selector.Generate(l.state, l.pool)
	t.Duration = time.Duration(extent / l.state.ObstacleSpeed * float64(l.targetTickTime))
	t.Aux = GenerationAux{Pattern: name, Extent: extent, Count: t.Aux.Count + 1}

	if l.reg != nil {
		l.lastName.Store(name)
		l.reg.Ints.Get(status.PatternPrefix + name).Add(1)
	}
	l.log.Debug().Str("pattern", name).Float64("extent", extent).Dur("next", t.Duration).Msg("pattern placed")
}

func (l *One) bumpZoom(p float64, t *tween.Tween[ZoomAux]) {
	if p == 1 {
		t.Aux.Depth = parameter.Level1ZoomDepthMin + l.rng.Float64()*parameter.Level1ZoomDepthRange
	}
	l.state.Render.Zoom = 1 + tween.Triangle(p)*t.Aux.Depth*parameter.Level1ZoomScale
}
