package systems

import (
	"github.com/lixenwraith/typefall/constants"
	"github.com/lixenwraith/typefall/engine"
)

// FlashSystem turns miss and rejection events into timed visual feedback
type FlashSystem struct{}

// NewFlashSystem creates a flash system
func NewFlashSystem() *FlashSystem {
	return &FlashSystem{}
}

// EventTypes returns the event types FlashSystem handles
func (s *FlashSystem) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventWordMissed,
		engine.EventInputRejected,
	}
}

// HandleEvent sets the flash deadlines
func (s *FlashSystem) HandleEvent(ctx *engine.GameContext, ev engine.GameEvent) {
	switch ev.Type {
	case engine.EventWordMissed:
		ctx.State.FlashUntil = ev.Time.Add(constants.MissFlashTimeout)
	case engine.EventInputRejected:
		ctx.State.InputErrorUntil = ev.Time.Add(constants.InputErrorTimeout)
	}
}
