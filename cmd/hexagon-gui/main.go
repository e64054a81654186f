package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/lixenwraith/hexagon/audio"
	"github.com/lixenwraith/hexagon/config"
	"github.com/lixenwraith/hexagon/core"
	"github.com/lixenwraith/hexagon/parameter"
	"github.com/lixenwraith/hexagon/render"
	"github.com/lixenwraith/hexagon/render/gui"
	"github.com/lixenwraith/hexagon/session"
)

var (
	configPath = flag.String("config", "hexagon.yaml", "configuration file")
	debugFlag  = flag.Bool("debug", false, "log at debug level")
	spectate   = flag.String("spectate", "", "serve spectator snapshots on this address")
	width      = flag.Int("width", parameter.WindowWidth, "window width")
	height     = flag.Int("height", parameter.WindowHeight, "window height")
)

func main() {
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

	logger, logFile, err := core.SetupLogging(cfg.Log.File, cfg.Log.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	zlog.Logger = logger

	sound := audio.NewSoundManager(cfg.AudioConfig(), logger)
	sound.InitializeOrMute()

	sess, err := session.New(session.Options{Config: cfg, Log: logger, Sound: sound})
	if err != nil {
		fmt.Fprintf(os.Stderr, "session: %v\n", err)
		os.Exit(1)
	}
	if err := sess.Start(nil); err != nil {
		fmt.Fprintf(os.Stderr, "session: %v\n", err)
		os.Exit(1)
	}

	geom := render.GeometryFrom(cfg.EngineConfig())
	geom.ViewRange = parameter.WindowViewRange

	window := gui.NewWindow(gui.Options{
		Game:   sess.Game,
		Input:  sess.Input,
		Queue:  sess.Queue,
		Geom:   geom,
		Log:    logger,
		Width:  *width,
		Height: *height,
		Handle: sess.HandleEvent,
		HUD:    sess.HUD,
	})
	runErr := window.Run()

	shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := sess.Close(shutdown); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	if runErr != nil {
		logger.Error().Err(runErr).Msg("window closed with error")
		fmt.Fprintf(os.Stderr, "window: %v\n", runErr)
		os.Exit(1)
	}
}
