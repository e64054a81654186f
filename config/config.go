// Package config loads the YAML file that tunes the engine and the frontends
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/hexagon/audio"
	"github.com/lixenwraith/hexagon/engine"
	"github.com/lixenwraith/hexagon/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

type Engine struct {
	GodMode             bool          `yaml:"god_mode"`
	TargetTickTime      time.Duration `yaml:"target_tick_time"`
	FlashDuration       time.Duration `yaml:"flash_duration"`
	MaxFrameDelta       time.Duration `yaml:"max_frame_delta"`
	FrameFilterStrength float64       `yaml:"frame_filter_strength"`
}

type Audio struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0..1
	MusicVolume  float64 `yaml:"music_volume"`
	CueVolume    float64 `yaml:"cue_volume"`
}

type Input struct {
	HoldWindow time.Duration `yaml:"hold_window"`
	// Bindings maps a key name ("Left", "Enter") or a single rune to an intent name
	Bindings map[string]string `yaml:"bindings,omitempty"`
}

type Spectator struct {
	Enabled        bool   `yaml:"enabled"`
	Addr           string `yaml:"addr"`
	BroadcastEvery int    `yaml:"broadcast_every"`
}

type Log struct {
	Debug bool   `yaml:"debug"`
	File  string `yaml:"file"`
}

type Config struct {
	Engine    Engine    `yaml:"engine"`
	Audio     Audio     `yaml:"audio"`
	Input     Input     `yaml:"input"`
	Spectator Spectator `yaml:"spectator"`
	Log       Log       `yaml:"log"`

	SavePath string `yaml:"save_path"`
	// Seed fixes pattern randomness; zero seeds from the clock
	Seed int64 `yaml:"seed"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Engine: Engine{
			TargetTickTime:      parameter.TargetTickTime,
			FlashDuration:       parameter.FlashDuration,
			MaxFrameDelta:       parameter.MaxFrameDelta,
			FrameFilterStrength: parameter.FrameTimeFilterStrength,
		},
		Audio: Audio{
			Enabled:      true,
			MasterVolume: 1,
			MusicVolume:  parameter.MusicVolume,
			CueVolume:    parameter.CueVolume,
		},
		Input: Input{
			HoldWindow: parameter.InputHoldWindow,
		},
		Spectator: Spectator{
			Addr:           parameter.DefaultSpectatorAddr,
			BroadcastEvery: parameter.BroadcastEvery,
		},
		Log: Log{
			File: "hexagon.log",
		},
		SavePath: "hexagon-save.yaml",
	}
}

// Load reads path over the defaults; a missing file yields the defaults
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes c to path
func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	return os.WriteFile(path, b, 0o644)
}

// Validate checks ranges the engine cannot enforce on its own
func (c *Config) Validate() error {
	vols := []struct {
		name string
		v    float64
	}{
		{"master_volume", c.Audio.MasterVolume},
		{"music_volume", c.Audio.MusicVolume},
		{"cue_volume", c.Audio.CueVolume},
	}
	for _, vol := range vols {
		if vol.v < 0 || vol.v > 1 {
			return fmt.Errorf("%w: audio.%s %v outside [0,1]", ErrInvalid, vol.name, vol.v)
		}
	}
	if c.Input.HoldWindow < 0 {
		return fmt.Errorf("%w: input.hold_window %v", ErrInvalid, c.Input.HoldWindow)
	}
	if c.Spectator.BroadcastEvery < 1 {
		return fmt.Errorf("%w: spectator.broadcast_every %d", ErrInvalid, c.Spectator.BroadcastEvery)
	}
	if c.Spectator.Enabled && c.Spectator.Addr == "" {
		return fmt.Errorf("%w: spectator.addr empty", ErrInvalid)
	}
	if err := c.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// EngineConfig returns the simulation configuration with the file's tuning applied
func (c *Config) EngineConfig() engine.Config {
	ec := engine.DefaultConfig()
	ec.GodMode = c.Engine.GodMode
	ec.TargetTickTime = c.Engine.TargetTickTime
	ec.FlashDuration = c.Engine.FlashDuration
	ec.MaxFrameDelta = c.Engine.MaxFrameDelta
	ec.FrameFilterStrength = c.Engine.FrameFilterStrength
	return ec
}

// AudioConfig returns the mixer settings; HEXAGON_* environment variables win over the file
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.MusicVolume = c.Audio.MusicVolume
	for i := range ac.CueVolumes {
		ac.CueVolumes[i] = c.Audio.CueVolume
	}
	audio.ApplyEnv(ac)
	return ac
}
