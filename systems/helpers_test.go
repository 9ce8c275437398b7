package systems

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/typefall/components"
	"github.com/lixenwraith/typefall/engine"
)

// testStart is the fixed epoch used by deterministic system tests
var testStart = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// stageOneWords covers every stage 1 length so no spawn is skipped
var stageOneWords = []string{"at", "cat", "bird"}

// staticSource serves a fixed word list, or an error when failing is set
type staticSource struct {
	words   []string
	failing bool
	calls   int
}

func (s *staticSource) Load(ctx context.Context) ([]string, error) {
	s.calls++
	if s.failing {
		return nil, errors.New("word list unreachable")
	}
	return s.words, nil
}

// recordingPlayer counts sound cues
type recordingPlayer struct {
	complete, miss, errors, stage int
}

func (p *recordingPlayer) PlayComplete() { p.complete++ }
func (p *recordingPlayer) PlayMiss()     { p.miss++ }
func (p *recordingPlayer) PlayError()    { p.errors++ }
func (p *recordingPlayer) PlayStage()    { p.stage++ }

// newTestContext creates a running context on a mock clock with a seeded rng
func newTestContext(width, height int) (*engine.GameContext, *engine.MockTimeProvider) {
	clock := engine.NewMockTimeProvider(testStart)
	ctx := engine.NewGameContext(width, height, clock, rand.New(rand.NewPCG(1, 2)), zerolog.Nop())
	ctx.State.Reset(testStart)
	ctx.State.Phase = engine.PhaseRunning
	return ctx, clock
}

// addWord places a word on the field without going through the spawner
func addWord(ctx *engine.GameContext, text string, dir components.Direction, spawn time.Time) *components.Word {
	w := &components.Word{
		ID:        ctx.State.NextWordID(),
		Text:      text,
		Direction: dir,
		Speed:     components.SpeedFor(dir, ctx.Field.Width, ctx.Field.Height),
		SpawnTime: spawn,
	}
	w.Advance(spawn, ctx.Field.Width, ctx.Field.Height)
	ctx.Field.Add(w)
	return w
}

// eventTypes drains the queue and returns the event types in order
func eventTypes(ctx *engine.GameContext) []engine.EventType {
	var out []engine.EventType
	for _, ev := range ctx.Events.Consume() {
		out = append(out, ev.Type)
	}
	return out
}
