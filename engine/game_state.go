package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/typefall/constants"
)

// GamePhase is the session lifecycle state
type GamePhase int

const (
	PhaseIdle GamePhase = iota
	PhaseRunning
	PhasePaused
	PhaseEnded
)

// String returns the phase name
func (p GamePhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// validTransitions lists the phases reachable from each phase
// Reset is handled separately by Session and may re-enter running from any non-idle phase
var validTransitions = map[GamePhase][]GamePhase{
	PhaseIdle:    {PhaseRunning},
	PhaseRunning: {PhasePaused, PhaseEnded},
	PhasePaused:  {PhaseRunning},
	PhaseEnded:   {},
}

// GameState holds the counters of a single session
// Mutated only from the session goroutine
type GameState struct {
	Phase GamePhase

	// Player state
	Health     int
	Score      int
	WordsTyped int
	TypingTime time.Duration // Sum of spawn-to-completion time over completed words
	WPM        float64

	// Difficulty
	Stage     int     // 1..constants.StageCount
	SpawnRate float64 // Words per second

	// StartTime is shifted forward by every pause so now-StartTime is active play time
	StartTime time.Time

	// Transient input feedback
	Input           string    // Keys accepted since the last completion, miss or rejection
	InputErrorUntil time.Time // Input buffer drawn in error colour until this time
	FlashUntil      time.Time // Miss flash visible until this time

	nextWordID uint64
}

// NewGameState creates an idle state with initial counters
func NewGameState() *GameState {
	gs := &GameState{}
	gs.Reset(time.Time{})
	gs.Phase = PhaseIdle
	return gs
}

// Reset reinitialises all counters for a session starting at now
// Phase is left to the caller
func (gs *GameState) Reset(now time.Time) {
	gs.Health = constants.MaxHealth
	gs.Score = 0
	gs.WordsTyped = 0
	gs.TypingTime = 0
	gs.WPM = 0
	gs.Stage = 1
	gs.SpawnRate = constants.InitialSpawnRate
	gs.StartTime = now
	gs.Input = ""
	gs.InputErrorUntil = time.Time{}
	gs.FlashUntil = time.Time{}
}

// CanTransition checks if a phase transition is valid
func (gs *GameState) CanTransition(from, to GamePhase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// TransitionPhase moves to a new phase, returns false if the transition is invalid
func (gs *GameState) TransitionPhase(to GamePhase) bool {
	if !gs.CanTransition(gs.Phase, to) {
		return false
	}
	gs.Phase = to
	return true
}

// Running reports whether the session is actively ticking
func (gs *GameState) Running() bool {
	return gs.Phase == PhaseRunning
}

// NextWordID returns a new unique word id
func (gs *GameState) NextWordID() uint64 {
	gs.nextWordID++
	return gs.nextWordID
}

// Elapsed returns active play time at now
func (gs *GameState) Elapsed(now time.Time) time.Duration {
	d := now.Sub(gs.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

// RecordCompletion awards score for a completed word of length runes and updates WPM
// Returns the points awarded
func (gs *GameState) RecordCompletion(length int, typingTime time.Duration) int {
	points := length * gs.Stage
	gs.Score += points
	gs.WordsTyped++
	if typingTime > 0 {
		gs.TypingTime += typingTime
	}
	if gs.TypingTime > 0 {
		gs.WPM = float64(gs.WordsTyped) / gs.TypingTime.Minutes()
	}
	gs.Input = ""
	return points
}

// LoseHealth removes one health point, never going below zero
// Returns true if health is depleted
func (gs *GameState) LoseHealth() bool {
	if gs.Health > 0 {
		gs.Health--
	}
	gs.Input = ""
	return gs.Health == 0
}

// Depleted reports whether health has reached zero
func (gs *GameState) Depleted() bool {
	return gs.Health <= 0
}

// DisplayWPM returns WPM floored for display
func (gs *GameState) DisplayWPM() int {
	return int(math.Floor(gs.WPM))
}

// ShiftTimes moves every session timestamp forward by d
func (gs *GameState) ShiftTimes(d time.Duration) {
	gs.StartTime = gs.StartTime.Add(d)
	if !gs.InputErrorUntil.IsZero() {
		gs.InputErrorUntil = gs.InputErrorUntil.Add(d)
	}
	if !gs.FlashUntil.IsZero() {
		gs.FlashUntil = gs.FlashUntil.Add(d)
	}
}
