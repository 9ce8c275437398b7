package engine

import (
	"time"

	"github.com/kamstrup/intmap"

	"github.com/lixenwraith/typefall/components"
)

// System is updated once per tick while the session is running
type System interface {
	Update(ctx *GameContext, now time.Time)
}

// Resetter is implemented by systems holding per-session state
type Resetter interface {
	Reset(ctx *GameContext, now time.Time)
}

// Resumer is implemented by systems that must react to the end of a pause
type Resumer interface {
	Resume(ctx *GameContext, now time.Time, pauseDuration time.Duration)
}

// InputHandler consumes accepted keystrokes
type InputHandler interface {
	HandleRune(ctx *GameContext, r rune, now time.Time)
}

// Session is the lifecycle controller:
// idle -> running -> paused <-> running -> ended -> (reset) -> running
//
// It owns the frame ticker and stops it on every transition out of running,
// so no tick can reach a paused, ended or reinitialised session
type Session struct {
	ctx     *GameContext
	systems []System
	input   InputHandler
	router  *EventRouter

	tickInterval time.Duration
	ticker       *time.Ticker

	pauseClock *PauseClock
	snapshot   *intmap.Map[uint64, Position]
}

// NewSession creates an idle session ticking at tickInterval once started
func NewSession(ctx *GameContext, tickInterval time.Duration) *Session {
	return &Session{
		ctx:          ctx,
		router:       NewEventRouter(ctx.Events),
		tickInterval: tickInterval,
		pauseClock:   NewPauseClock(ctx.TimeProvider),
	}
}

// AddSystem registers a system; systems update in registration order
func (s *Session) AddSystem(sys System) {
	s.systems = append(s.systems, sys)
}

// SetInputHandler sets the keystroke consumer
func (s *Session) SetInputHandler(h InputHandler) {
	s.input = h
}

// RegisterEventHandler adds an event handler to the router
func (s *Session) RegisterEventHandler(h EventHandler) {
	s.router.Register(h)
}

// Context returns the session's game context
func (s *Session) Context() *GameContext {
	return s.ctx
}

// Phase returns the current lifecycle phase
func (s *Session) Phase() GamePhase {
	return s.ctx.State.Phase
}

// Ticks returns the frame ticker channel, nil while not running
// A nil channel never fires in a select, which parks the tick branch of the main loop
func (s *Session) Ticks() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}

// Start begins a fresh session from idle
func (s *Session) Start() bool {
	if s.ctx.State.Phase != PhaseIdle {
		return false
	}
	s.begin()
	return true
}

// Pause freezes ticking and snapshots word positions
func (s *Session) Pause() bool {
	state := s.ctx.State
	if !state.TransitionPhase(PhasePaused) {
		return false
	}
	s.stopTicker()
	s.pauseClock.Pause()
	s.snapshot = s.ctx.Field.Snapshot()

	s.ctx.Logger.Debug().Int("words", s.ctx.Field.Len()).Msg("session paused")
	s.ctx.PushEvent(EventSessionPaused, GameEvent{})
	s.dispatch()
	return true
}

// Resume shifts every timestamp past the pause so motion continues without a jump
func (s *Session) Resume() bool {
	state := s.ctx.State
	if !state.TransitionPhase(PhaseRunning) {
		return false
	}
	d := s.pauseClock.Resume()
	now := s.ctx.TimeProvider.Now()

	for _, w := range s.ctx.Field.Words() {
		w.SpawnTime = w.SpawnTime.Add(d)
	}
	state.ShiftTimes(d)
	s.ctx.Field.Restore(s.snapshot)
	s.snapshot = nil

	for _, sys := range s.systems {
		if r, ok := sys.(Resumer); ok {
			r.Resume(s.ctx, now, d)
		}
	}

	s.startTicker()
	s.ctx.Logger.Debug().Dur("pause", d).Msg("session resumed")
	s.ctx.PushEvent(EventSessionResumed, GameEvent{})
	s.dispatch()
	return true
}

// TogglePause pauses a running session or resumes a paused one
func (s *Session) TogglePause() bool {
	switch s.ctx.State.Phase {
	case PhaseRunning:
		return s.Pause()
	case PhasePaused:
		return s.Resume()
	default:
		return false
	}
}

// End stops the session and freezes its counters
func (s *Session) End() bool {
	state := s.ctx.State
	if !state.TransitionPhase(PhaseEnded) {
		return false
	}
	s.stopTicker()

	s.ctx.Logger.Info().
		Int("score", state.Score).
		Int("wpm", state.DisplayWPM()).
		Int("words", state.WordsTyped).
		Int("stage", state.Stage).
		Dur("paused", s.pauseClock.TotalPauseDuration()).
		Msg("session ended")
	s.ctx.PushEvent(EventSessionEnded, GameEvent{Points: state.Score, Stage: state.Stage})
	s.dispatch()
	return true
}

// Reset tears the current session down and starts a fresh one
func (s *Session) Reset() bool {
	if s.ctx.State.Phase == PhaseIdle {
		return false
	}
	s.stopTicker()
	s.ctx.Logger.Debug().Str("from", s.ctx.State.Phase.String()).Msg("session reset")
	s.begin()
	return true
}

// Stop releases the ticker without changing phase, used on shutdown
func (s *Session) Stop() {
	s.stopTicker()
}

// Update runs one tick of every system
func (s *Session) Update() {
	if !s.ctx.State.Running() {
		return
	}
	now := s.ctx.TimeProvider.Now()
	for _, sys := range s.systems {
		sys.Update(s.ctx, now)
	}
	s.dispatch()
	s.checkEnd()
}

// HandleKey forwards an ASCII letter to the input handler while running
// Any other rune is ignored
func (s *Session) HandleKey(r rune) bool {
	if !s.ctx.State.Running() || s.input == nil || !components.IsTypingRune(r) {
		return false
	}
	s.input.HandleRune(s.ctx, r, s.ctx.TimeProvider.Now())
	s.dispatch()
	s.checkEnd()
	return true
}

func (s *Session) begin() {
	now := s.ctx.TimeProvider.Now()
	state := s.ctx.State

	s.ctx.Events.Clear()
	s.ctx.Field.Clear()
	s.pauseClock.Reset()
	s.snapshot = nil

	state.Reset(now)
	state.Phase = PhaseRunning
	s.ctx.NewSessionID()

	for _, sys := range s.systems {
		if r, ok := sys.(Resetter); ok {
			r.Reset(s.ctx, now)
		}
	}

	s.startTicker()
	s.ctx.Logger.Info().
		Int("width", s.ctx.Field.Width).
		Int("height", s.ctx.Field.Height).
		Msg("session started")
	s.ctx.PushEvent(EventSessionStarted, GameEvent{})
	s.dispatch()
}

func (s *Session) checkEnd() {
	if s.ctx.State.Running() && s.ctx.State.Depleted() {
		s.End()
	}
}

func (s *Session) dispatch() {
	s.router.DispatchAll(s.ctx)
}

func (s *Session) startTicker() {
	s.stopTicker()
	s.ticker = time.NewTicker(s.tickInterval)
}

func (s *Session) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}
