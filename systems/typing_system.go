package systems

import (
	"time"

	"github.com/samber/lo"

	"github.com/lixenwraith/typefall/components"
	"github.com/lixenwraith/typefall/engine"
)

// TypingSystem matches keystrokes against every active word
type TypingSystem struct{}

// NewTypingSystem creates a typing system
func NewTypingSystem() *TypingSystem {
	return &TypingSystem{}
}

// HandleRune advances every word expecting r next
//
// If at least one word accepts r, those words extend their typed prefix and all
// other words abandon their partial match. If none accepts r, every word keeps
// its prefix but stops being typed, and the input buffer is reset.
func (s *TypingSystem) HandleRune(ctx *engine.GameContext, r rune, now time.Time) {
	state := ctx.State
	matched, rest := lo.FilterReject(ctx.Field.Words(), func(w *components.Word, _ int) bool {
		return w.Accepts(r)
	})

	if len(matched) == 0 {
		for _, w := range rest {
			w.BeingTyped = false
		}
		state.Input = ""
		ctx.PushEvent(engine.EventInputRejected, engine.GameEvent{Text: string(r), Time: now})
		return
	}

	for _, w := range rest {
		w.Abandon()
	}
	for _, w := range matched {
		w.Typed += string(r)
		w.BeingTyped = true
	}
	state.Input += string(r)

	for _, w := range matched {
		if w.Complete() {
			s.complete(ctx, w, now)
		}
	}
}

func (s *TypingSystem) complete(ctx *engine.GameContext, w *components.Word, now time.Time) {
	points := ctx.State.RecordCompletion(w.Len(), now.Sub(w.SpawnTime))
	ctx.Field.Remove(w.ID)
	ctx.PushEvent(engine.EventWordCompleted, engine.GameEvent{
		WordID: w.ID,
		Text:   w.Text,
		Points: points,
		Stage:  ctx.State.Stage,
		Time:   now,
	})
	ctx.Logger.Debug().
		Str("text", w.Text).
		Int("points", points).
		Int("score", ctx.State.Score).
		Float64("wpm", ctx.State.WPM).
		Msg("word completed")
}
