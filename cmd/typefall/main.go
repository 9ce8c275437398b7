package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/typefall/audio"
	"github.com/lixenwraith/typefall/config"
	"github.com/lixenwraith/typefall/systems"
)

func main() {
	cfg, err := config.Load(os.Args[1:], config.DefaultEnvFile)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "typefall: %v\n", err)
		os.Exit(2)
	}

	logger, logFile, err := setupLogging(cfg.Debug, cfg.LogDir, cfg.Level())
	if err != nil {
		fmt.Fprintf(os.Stderr, "typefall: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error().Interface("panic", r).Msg("crashed")
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTYPEFALL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	var player systems.SoundPlayer
	sm := audio.NewSoundManager()
	if !cfg.Mute {
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game runs without sound
			logger.Warn().Err(err).Msg("audio initialization failed")
		} else {
			defer sm.Cleanup()
			sm.SetVolume(cfg.Volume)
			player = sm
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info().
		Int("fps", cfg.FPS).
		Str("words", cfg.WordsPath).
		Uint64("seed", seed).
		Bool("sound", sm.Initialized()).
		Float64("volume", cfg.Volume).
		Msg("typefall starting")

	g := newGame(screen, cfg, seed, logger, player)
	g.run()
	logger.Info().Msg("typefall exiting")
}
