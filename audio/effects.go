package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/hexagon/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over s
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero gain is mapped to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one enveloped note
func tone(freq float64, wave WaveType, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateBeginSound is a rising two-note square chirp
func CreateBeginSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	half := parameter.BeginSoundDuration / 2

	seq := beep.Seq(
		tone(523.25, WaveSquare, half, parameter.BeginSoundAttack, parameter.BeginSoundRelease/2, rate),
		tone(1046.5, WaveSquare, half, parameter.BeginSoundAttack, parameter.BeginSoundRelease, rate),
	)
	return newVolume(seq, 0.5*cfg.CueVolumes[CueBegin]*cfg.MasterVolume)
}

// CreateGameOverSound is a low saw drop layered over noise
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.GameOverSoundDuration

	mixed := beep.Mix(
		newVolume(tone(110, WaveSaw, d, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate), 0.7),
		newVolume(tone(0, WaveNoise, d/2, parameter.GameOverSoundAttack, d/3, rate), 0.3),
	)
	return newVolume(mixed, cfg.CueVolumes[CueGameOver]*cfg.MasterVolume)
}

// CreateMenuSound is a short sine blip
func CreateMenuSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(880, WaveSine, parameter.MenuSoundDuration, parameter.MenuSoundAttack, parameter.MenuSoundRelease, rate)
	return newVolume(s, cfg.CueVolumes[CueMenuChoose]*cfg.MasterVolume)
}

// startupNotes is the title jingle (A minor arpeggio)
var startupNotes = []float64{440, 523.25, 659.25, 880}

// CreateStartupSound plays the title jingle
func CreateStartupSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	notes := make([]beep.Streamer, 0, len(startupNotes))
	for _, f := range startupNotes {
		notes = append(notes, tone(f, WaveSquare, parameter.StartupNoteDuration, parameter.StartupNoteAttack, parameter.StartupNoteRelease, rate))
	}
	return newVolume(beep.Seq(notes...), 0.5*cfg.CueVolumes[CueStartup]*cfg.MasterVolume)
}

// GetCue returns the streamer for c, nil for unknown cues
func GetCue(c Cue, cfg *AudioConfig) beep.Streamer {
	switch c {
	case CueBegin:
		return CreateBeginSound(cfg)
	case CueGameOver:
		return CreateGameOverSound(cfg)
	case CueMenuChoose:
		return CreateMenuSound(cfg)
	case CueStartup:
		return CreateStartupSound(cfg)
	default:
		return nil
	}
}
