// Package session wires the simulation, screens, save data, audio and the spectator stream
// for one run of a frontend
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexagon/arena"
	"github.com/lixenwraith/hexagon/audio"
	"github.com/lixenwraith/hexagon/config"
	"github.com/lixenwraith/hexagon/engine"
	"github.com/lixenwraith/hexagon/input"
	"github.com/lixenwraith/hexagon/network"
	"github.com/lixenwraith/hexagon/parameter"
	"github.com/lixenwraith/hexagon/persistence"
	"github.com/lixenwraith/hexagon/render"
	"github.com/lixenwraith/hexagon/screen"
	"github.com/lixenwraith/hexagon/status"
)

// SaveVersion tags save files written by this build
const SaveVersion = "1"

// Sound is the audio backend a session drives
type Sound interface {
	audio.Player
	// ToggleMute flips output and returns true when now muted
	ToggleMute() bool
	Cleanup()
}

// Options configures New
type Options struct {
	Config *config.Config
	Log    zerolog.Logger
	// Sound may be nil to run silent
	Sound Sound
	// Clock feeds the held-intent window; nil uses time.Now
	Clock func() time.Time
}

// Session holds everything a frontend drives
type Session struct {
	// ===== Immutable After Init =====
	// Set once in New; safe to read from any goroutine

	Config *config.Config
	Game   *engine.Game
	App    *screen.App
	Store  *persistence.Store
	Status *status.Registry
	Input  *input.State
	Queue  *input.Queue
	// Hub is nil when spectating is disabled
	Hub *network.Hub

	transport *network.Transport
	sound     Sound
	log       zerolog.Logger

	// ===== Atomic =====

	muted   atomic.Bool
	started atomic.Bool
}

// New builds a stopped session; save data that fails to parse is replaced with defaults
func New(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	log := opts.Log

	store, err := persistence.Load(cfg.SavePath, SaveVersion)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.SavePath).Msg("save data unreadable, starting fresh")
		store = persistence.New(SaveVersion)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		Config: cfg,
		Store:  store,
		Status: status.NewRegistry(),
		Input:  input.NewState(cfg.Input.HoldWindow),
		Queue:  input.NewQueue(),
		sound:  opts.Sound,
		log:    log,
	}

	game, err := engine.NewGame(
		cfg.EngineConfig(),
		arena.NewState(parameter.SlotCount, arena.DefaultDefaults()),
		arena.NewObstaclePool(),
		engine.WithLogger(log),
		engine.WithStatus(s.Status),
		engine.WithIntentSource(s.Input.Source(clock)),
	)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	s.Game = game

	var player audio.Player = audio.Nop{}
	if s.sound != nil {
		player = s.sound
		if !store.SoundEnabled() {
			s.sound.ToggleMute()
			s.muted.Store(true)
		}
	}
	s.Status.Bools.Get(status.KeyAudioEnabled).Store(!s.muted.Load())

	s.App = screen.NewApp(game, screen.Deps{
		Audio:        player,
		Rand:         rand.New(rand.NewSource(seed)),
		Status:       s.Status,
		Log:          log,
		Records:      store,
		ToggleMute:   s.ToggleMute,
		ClearRecords: store.ClearRecords,
		SoundOn:      func() bool { return !s.muted.Load() },
	})

	if cfg.Spectator.Enabled {
		ncfg := network.DefaultConfig()
		ncfg.Addr = cfg.Spectator.Addr
		ncfg.BroadcastEvery = cfg.Spectator.BroadcastEvery
		s.Hub = network.NewHub(ncfg, log, s.Status)
		s.transport = network.NewTransport(ncfg, s.Hub, log)
	}

	log.Info().
		Int64("seed", seed).
		Bool("spectator", cfg.Spectator.Enabled).
		Bool("muted", s.muted.Load()).
		Msg("session created")
	return s, nil
}

// Start installs the frame hook, opens the spectator listener and shows the title screen
// draw may be nil when the frontend renders outside the tick
func (s *Session) Start(draw engine.FrameHook) error {
	if !s.started.CompareAndSwap(false, true) {
		return errors.New("session already started")
	}

	var observe engine.FrameHook
	if s.Hub != nil {
		if err := s.transport.Start(); err != nil {
			return fmt.Errorf("start spectator stream: %w", err)
		}
		s.log.Info().Str("addr", s.transport.Addr()).Msg("spectator stream listening")
		observe = s.Hub.Observe(s.Game, func() string { return string(s.App.Current()) })
	}

	s.Game.SetFrameHook(func(delta time.Duration) {
		if observe != nil {
			observe(delta)
		}
		if draw != nil {
			draw(delta)
		}
	})
	return s.App.Change(screen.Title)
}

// SpectatorAddr returns the bound listener address, empty when spectating is off
func (s *Session) SpectatorAddr() string {
	if s.transport == nil {
		return ""
	}
	return s.transport.Addr()
}

// HandleEvent applies a host-level event or forwards it to the active screen
// Runs on the simulation goroutine
func (s *Session) HandleEvent(ev input.Event) {
	switch ev.Intent {
	case input.IntentToggleMute:
		s.ToggleMute()
	case input.IntentResize:
	default:
		s.App.HandleEvent(ev)
	}
}

// ToggleMute flips audio output, persists the choice and reports whether sound is now on
func (s *Session) ToggleMute() bool {
	muted := !s.muted.Load()
	if s.sound != nil {
		muted = s.sound.ToggleMute()
	}
	s.muted.Store(muted)
	s.Store.SetSoundEnabled(!muted)
	s.Status.Bools.Get(status.KeyAudioEnabled).Store(!muted)
	s.log.Info().Bool("muted", muted).Msg("audio toggled")
	return !muted
}

// Muted reports the current mute state
func (s *Session) Muted() bool { return s.muted.Load() }

// HUD returns the overlay for the active screen
func (s *Session) HUD() render.HUD {
	spectators := 0
	if s.Hub != nil {
		spectators = s.Hub.Count()
	}
	return s.App.Overlay(spectators, s.muted.Load())
}

// Close leaves the active screen, stops the spectator stream, silences audio and saves
func (s *Session) Close(ctx context.Context) error {
	s.App.Close()

	var errs []error
	if s.transport != nil && s.started.Load() {
		if err := s.transport.Stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop spectator stream: %w", err))
		}
	}
	if s.sound != nil {
		s.sound.Cleanup()
	}
	if err := s.Store.Save(s.Config.SavePath); err != nil {
		errs = append(errs, err)
	}
	s.log.Info().
		Uint64("ticks", s.Game.Ticks()).
		Uint64("input_dropped", s.Queue.Dropped()).
		Msg("session closed")
	return errors.Join(errs...)
}
