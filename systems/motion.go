package systems

import (
	"time"

	"github.com/lixenwraith/typefall/engine"
)

// MotionSystem moves every word from its spawn time and speed and handles misses
type MotionSystem struct{}

// NewMotionSystem creates a motion system
func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

// Update recomputes positions and removes words whose leading edge left the field
// Each miss costs exactly one health point; once health is gone the frame stops
func (s *MotionSystem) Update(ctx *engine.GameContext, now time.Time) {
	field := ctx.Field
	for _, w := range field.Words() {
		w.Advance(now, field.Width, field.Height)
		if !w.Escaped(field.Width, field.Height) {
			continue
		}

		field.Remove(w.ID)
		depleted := ctx.State.LoseHealth()
		ctx.PushEvent(engine.EventWordMissed, engine.GameEvent{WordID: w.ID, Text: w.Text, Time: now})
		ctx.Logger.Debug().
			Uint64("id", w.ID).
			Str("text", w.Text).
			Int("health", ctx.State.Health).
			Msg("word missed")

		if depleted {
			return
		}
	}
}
