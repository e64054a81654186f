package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hexagon/parameter"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 256)
	total := 0
	peak := 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			break
		}
	}
	require.NoError(t, s.Err())
	return total, peak
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)

		n, peak := drain(t, osc, 1<<20)

		assert.Equal(t, rate.N(100*time.Millisecond), n)
		assert.LessOrEqual(t, peak, 1.0)
	}
}

func TestEnvelopeFades(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := NewEnvelope(NewOscillator(0, time.Second, WaveSquare, rate), time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)

	require.Equal(t, 1000, n)
	assert.Equal(t, 0.0, buf[0][0])
	assert.InDelta(t, 0.5, buf[50][0], 1e-9)
	assert.Equal(t, 1.0, buf[500][0])
	assert.InDelta(t, 0.01, buf[999][0], 1e-9)
}

func TestCuesAreFinite(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	tests := []struct {
		cue Cue
		max time.Duration
	}{
		{CueBegin, parameter.BeginSoundDuration},
		{CueGameOver, parameter.GameOverSoundDuration},
		{CueMenuChoose, parameter.MenuSoundDuration},
		{CueStartup, parameter.StartupNoteDuration * time.Duration(len(startupNotes))},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			s := GetCue(tt.cue, cfg)
			require.NotNil(t, s)

			n, _ := drain(t, s, rate.N(10*time.Second))

			assert.Greater(t, n, 0)
			assert.LessOrEqual(t, n, rate.N(tt.max)+len(startupNotes))
		})
	}

	assert.Nil(t, GetCue(Cue(42), cfg))
}

func TestSilentVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	_, peak := drain(t, CreateMenuSound(cfg), 1<<20)

	assert.Equal(t, 0.0, peak)
}

func TestMusicGeneratorIsEndless(t *testing.T) {
	g := NewMusicGenerator(beep.SampleRate(8000))
	buf := make([][2]float64, 4096)

	for i := 0; i < 20; i++ {
		n, ok := g.Stream(buf)
		require.True(t, ok)
		require.Equal(t, len(buf), n)
		for _, s := range buf {
			assert.LessOrEqual(t, math.Abs(s[0]), 1.0)
		}
	}

	g.Rewind()
	assert.Equal(t, 0, g.pos)
}
