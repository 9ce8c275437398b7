package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/typefall/config"
	"github.com/lixenwraith/typefall/constants"
	"github.com/lixenwraith/typefall/content"
	"github.com/lixenwraith/typefall/engine"
	"github.com/lixenwraith/typefall/render"
	"github.com/lixenwraith/typefall/systems"
)

// game wires the terminal to a session and owns the main loop
// Everything below runs on the loop goroutine except the event poller
type game struct {
	screen   tcell.Screen
	session  *engine.Session
	renderer *render.Renderer
	logger   zerolog.Logger
}

func newGame(screen tcell.Screen, cfg config.Config, seed uint64, logger zerolog.Logger, player systems.SoundPlayer) *game {
	w, h := screen.Size()
	clock := engine.NewMonotonicTimeProvider()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	ctx := engine.NewGameContext(w, max(0, h-constants.HUDHeight), clock, rng, logger)

	var source content.Source = content.EmbeddedSource{}
	if cfg.WordsPath != "" {
		source = content.NewFileSource(cfg.WordsPath)
	}

	words := content.NewCachedSource(source)
	preloadWords(words, logger)

	session := engine.NewSession(ctx, cfg.TickInterval())
	session.AddSystem(systems.NewStageSystem())
	session.AddSystem(systems.NewSpawnSystem(words))
	session.AddSystem(systems.NewMotionSystem())
	session.SetInputHandler(systems.NewTypingSystem())
	session.RegisterEventHandler(systems.NewFlashSystem())

	audioSys := systems.NewAudioSystem(player)
	audioSys.Muted = cfg.Mute
	session.RegisterEventHandler(audioSys)

	return &game{
		screen:   screen,
		session:  session,
		renderer: render.NewRenderer(render.NewScreenSurface(screen)),
		logger:   logger,
	}
}

// preloadWords primes the cache and logs which lengths the list cannot serve
// A failure is only logged; the spawner retries on every attempt
func preloadWords(src content.Source, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	words, err := src.Load(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("word list unavailable at startup")
		return
	}

	hist := content.LengthHistogram(words)
	var missing []int
	for n := constants.MinWordLength; n <= constants.MaxWordLength; n++ {
		if hist[n] == 0 {
			missing = append(missing, n)
		}
	}
	logger.Info().Int("words", len(words)).Ints("missing_lengths", missing).Msg("word list loaded")
}

// run polls terminal events and session ticks until the player quits
func (g *game) run() {
	defer g.session.Stop()

	eventChan := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)

	go func() {
		// Panic recovery for input polling goroutine to ensure terminal cleanup
		defer func() {
			if r := recover(); r != nil {
				g.screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := g.screen.PollEvent()
			// Clean exit on terminal closure
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	g.draw()
	for {
		select {
		case ev := <-eventChan:
			if g.handleEvent(ev) {
				return
			}
			g.draw()

		case <-g.session.Ticks():
			g.session.Update()
			g.draw()
		}
	}
}

// handleEvent applies one terminal event and reports whether the game should exit
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.resize()
		g.screen.Sync()
	case *tcell.EventKey:
		return g.handleKey(ev)
	}
	return false
}

func (g *game) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}

	phase := g.session.Phase()
	switch ev.Key() {
	case tcell.KeyEscape:
		g.session.TogglePause()
	case tcell.KeyEnter:
		switch phase {
		case engine.PhaseIdle:
			g.session.Start()
		case engine.PhaseEnded:
			g.session.Reset()
		}
	case tcell.KeyRune:
		r := ev.Rune()
		if phase == engine.PhasePaused {
			switch r {
			case 'q':
				return true
			case 'r':
				g.session.Reset()
			}
			return false
		}
		g.session.HandleKey(r)
	}
	return false
}

func (g *game) resize() {
	w, h := g.screen.Size()
	field := g.session.Context().Field
	field.Resize(w, max(0, h-constants.HUDHeight))
	g.logger.Debug().Int("width", field.Width).Int("height", field.Height).Msg("field resized")
}

func (g *game) draw() {
	ctx := g.session.Context()
	g.renderer.Render(ctx, ctx.TimeProvider.Now())
}
