package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	zlog "github.com/rs/zerolog/log"

	"github.com/lixenwraith/hexagon/audio"
	"github.com/lixenwraith/hexagon/config"
	"github.com/lixenwraith/hexagon/core"
	"github.com/lixenwraith/hexagon/engine"
	"github.com/lixenwraith/hexagon/input"
	"github.com/lixenwraith/hexagon/render"
	"github.com/lixenwraith/hexagon/session"
)

var (
	configPath  = flag.String("config", "hexagon.yaml", "configuration file")
	debugFlag   = flag.Bool("debug", false, "log at debug level")
	spectate    = flag.String("spectate", "", "serve spectator snapshots on this address")
	writeConfig = flag.Bool("write-config", false, "write the effective configuration to -config and exit")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *spectate != "" {
		cfg.Spectator.Enabled = true
		cfg.Spectator.Addr = *spectate
	}
	if *writeConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "write config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger, logFile, err := core.SetupLogging(cfg.Log.File, cfg.Log.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	zlog.Logger = logger

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.AudioConfig(), logger)
	sound.InitializeOrMute()

	sess, err := session.New(session.Options{Config: cfg, Log: logger, Sound: sound})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "session: %v\n", err)
		os.Exit(1)
	}

	keys := input.DefaultKeyTable()
	if err := keys.Bind(cfg.Input.Bindings); err != nil {
		logger.Warn().Err(err).Msg("ignoring key bindings")
	}
	dispatcher := input.NewDispatcher(keys, sess.Input, sess.Queue)
	w, _ := screen.Size()
	dispatcher.SetWidth(w)

	term := render.NewTerminal(screen, render.GeometryFrom(cfg.EngineConfig()))

	quit := make(chan struct{})
	var quitOnce sync.Once
	drain := func() {
		for _, ev := range sess.Queue.Consume() {
			switch ev.Intent {
			case input.IntentQuit:
				quitOnce.Do(func() { close(quit) })
				continue
			case input.IntentResize:
				screen.Sync()
			}
			sess.HandleEvent(ev)
		}
	}

	if err := sess.Start(func(delta time.Duration) {
		term.Render(sess.Game.State(), sess.HUD(), delta)
	}); err != nil {
		logger.Error().Err(err).Msg("session start failed")
		return
	}

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			dispatcher.Handle(ev, time.Now())
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := engine.NewClockScheduler(sess.Game, nil, cfg.Engine.TargetTickTime, drain)
	if err := scheduler.Start(ctx); err != nil {
		logger.Error().Err(err).Msg("scheduler start failed")
		return
	}

	select {
	case <-quit:
	case <-ctx.Done():
	case <-scheduler.Done():
	}
	scheduler.Stop()

	shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := sess.Close(shutdown); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}
