package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/hexagon/parameter"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1.0, cfg.MasterVolume)
	assert.Equal(t, parameter.MusicVolume, cfg.MusicVolume)
	assert.Equal(t, parameter.AudioSampleRate, cfg.SampleRate)
	for c := Cue(0); c < cueCount; c++ {
		assert.Equal(t, parameter.CueVolume, cfg.CueVolumes[c], c.String())
	}
}

func TestLoadAudioConfigDefaults(t *testing.T) {
	t.Setenv("HEXAGON_AUDIO_ENABLED", "")
	t.Setenv("HEXAGON_MASTER_VOLUME", "")
	t.Setenv("HEXAGON_MUSIC_VOLUME", "")
	t.Setenv("HEXAGON_SAMPLE_RATE", "")

	assert.Equal(t, DefaultAudioConfig(), LoadAudioConfig())
}

func TestLoadAudioConfigEnabled(t *testing.T) {
	testCases := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"garbage", true},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("HEXAGON_AUDIO_ENABLED", tc.value)
			assert.Equal(t, tc.expected, LoadAudioConfig().Enabled)
		})
	}
}

func TestLoadAudioConfigVolumes(t *testing.T) {
	testCases := []struct {
		value    string
		expected float64
	}{
		{"0", 0.0},
		{"50", 0.5},
		{"100", 1.0},
		{"150", 1.0},
		{"-20", 0.0},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("HEXAGON_MASTER_VOLUME", tc.value)
			t.Setenv("HEXAGON_MUSIC_VOLUME", tc.value)
			cfg := LoadAudioConfig()
			assert.Equal(t, tc.expected, cfg.MasterVolume)
			assert.Equal(t, tc.expected, cfg.MusicVolume)
		})
	}
}

func TestLoadAudioConfigSampleRate(t *testing.T) {
	testCases := []struct {
		value    string
		expected int
	}{
		{"48000", 48000},
		{"22050", 22050},
		{"0", parameter.AudioSampleRate},
		{"fast", parameter.AudioSampleRate},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("HEXAGON_SAMPLE_RATE", tc.value)
			assert.Equal(t, tc.expected, LoadAudioConfig().SampleRate)
		})
	}
}

func TestApplyEnvKeepsUnsetFields(t *testing.T) {
	t.Setenv("HEXAGON_AUDIO_ENABLED", "")
	t.Setenv("HEXAGON_MASTER_VOLUME", "30")
	t.Setenv("HEXAGON_MUSIC_VOLUME", "")
	t.Setenv("HEXAGON_SAMPLE_RATE", "")

	cfg := &AudioConfig{Enabled: false, MusicVolume: 0.9, SampleRate: 8000}
	ApplyEnv(cfg)

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 0.3, cfg.MasterVolume)
	assert.Equal(t, 0.9, cfg.MusicVolume)
	assert.Equal(t, 8000, cfg.SampleRate)
}
