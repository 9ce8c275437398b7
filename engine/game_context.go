package engine

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// GameContext bundles everything systems read and mutate during a tick
// Owned by the game goroutine; no field is safe for concurrent access
type GameContext struct {
	State        *GameState
	Field        *Field
	Events       *EventQueue
	TimeProvider TimeProvider
	Rand         *rand.Rand

	// Logger carries the current session id; BaseLogger does not
	Logger     zerolog.Logger
	BaseLogger zerolog.Logger
	SessionID  string
}

// NewGameContext creates a context for a field of the given size
func NewGameContext(fieldWidth, fieldHeight int, tp TimeProvider, rng *rand.Rand, logger zerolog.Logger) *GameContext {
	return &GameContext{
		State:        NewGameState(),
		Field:        NewField(fieldWidth, fieldHeight),
		Events:       NewEventQueue(),
		TimeProvider: tp,
		Rand:         rng,
		Logger:       logger,
		BaseLogger:   logger,
	}
}

// PushEvent stamps the event with the current time and queues it
func (ctx *GameContext) PushEvent(t EventType, ev GameEvent) {
	ev.Type = t
	if ev.Time.IsZero() {
		ev.Time = ctx.TimeProvider.Now()
	}
	ctx.Events.Push(ev)
}

// NewSessionID assigns a fresh session id and rebinds the logger to it
func (ctx *GameContext) NewSessionID() string {
	ctx.SessionID = uuid.NewString()
	ctx.Logger = ctx.BaseLogger.With().Str("session", ctx.SessionID).Logger()
	return ctx.SessionID
}
