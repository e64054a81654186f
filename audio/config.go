package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/hexagon/parameter"
)

// AudioConfig holds volumes and device settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64
	MusicVolume  float64
	CueVolumes   [cueCount]float64
	SampleRate   int
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: 1,
		MusicVolume:  parameter.MusicVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
	for i := range cfg.CueVolumes {
		cfg.CueVolumes[i] = parameter.CueVolume
	}
	return cfg
}

// LoadAudioConfig applies environment overrides to the defaults
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	ApplyEnv(cfg)
	return cfg
}

// ApplyEnv overrides cfg from HEXAGON_* environment variables
func ApplyEnv(cfg *AudioConfig) {
	if enabled := os.Getenv("HEXAGON_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volumes are 0-100
	if v, ok := percentEnv("HEXAGON_MASTER_VOLUME"); ok {
		cfg.MasterVolume = v
	}
	if v, ok := percentEnv("HEXAGON_MUSIC_VOLUME"); ok {
		cfg.MusicVolume = v
	}

	if sampleRate := os.Getenv("HEXAGON_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

func percentEnv(key string) (float64, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return clamp01(float64(val) / 100), true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
