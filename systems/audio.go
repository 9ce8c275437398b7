package systems

import (
	"github.com/lixenwraith/typefall/engine"
)

// SoundPlayer plays the game's sound cues
type SoundPlayer interface {
	PlayComplete()
	PlayMiss()
	PlayError()
	PlayStage()
}

// AudioSystem maps game events to sound cues
// Decouples game systems from direct audio access
type AudioSystem struct {
	player SoundPlayer
	Muted  bool
}

// NewAudioSystem creates an audio system; player may be nil when audio is unavailable
func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventWordCompleted,
		engine.EventWordMissed,
		engine.EventInputRejected,
		engine.EventStageAdvanced,
	}
}

// HandleEvent plays the cue for an event
func (s *AudioSystem) HandleEvent(ctx *engine.GameContext, ev engine.GameEvent) {
	if s.player == nil || s.Muted {
		return
	}
	switch ev.Type {
	case engine.EventWordCompleted:
		s.player.PlayComplete()
	case engine.EventWordMissed:
		s.player.PlayMiss()
	case engine.EventInputRejected:
		s.player.PlayError()
	case engine.EventStageAdvanced:
		s.player.PlayStage()
	}
}
