package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/typefall/components"
	"github.com/lixenwraith/typefall/engine"
)

func TestMotionMovesFromElapsedTime(t *testing.T) {
	ctx, clock := newTestContext(100, 20)
	w := addWord(ctx, "cat", components.DirRight, clock.Now())
	w.Y = 4
	motion := NewMotionSystem()

	motion.Update(ctx, clock.Advance(2*time.Second))
	assert.InDelta(t, 60.0, w.X, 1e-9)
	assert.Equal(t, 4.0, w.Y)
	assert.Equal(t, 1, ctx.Field.Len())
}

func TestMotionMissCostsOneHealth(t *testing.T) {
	ctx, clock := newTestContext(100, 20)
	w := addWord(ctx, "cat", components.DirRight, clock.Now())
	ctx.State.Input = "ca"
	motion := NewMotionSystem()

	// Crossing takes exactly 5s; leading edge is still on the boundary
	motion.Update(ctx, clock.Advance(5*time.Second))
	require.Equal(t, 1, ctx.Field.Len())
	assert.Equal(t, 3, ctx.State.Health)

	motion.Update(ctx, clock.Advance(50*time.Millisecond))
	assert.Zero(t, ctx.Field.Len())
	assert.Equal(t, 2, ctx.State.Health)
	assert.Empty(t, ctx.State.Input, "a miss resets the input buffer")

	evs := ctx.Events.Consume()
	require.Len(t, evs, 1)
	assert.Equal(t, engine.EventWordMissed, evs[0].Type)
	assert.Equal(t, w.ID, evs[0].WordID)
}

func TestMotionEveryDirectionMissesAfterCrossTime(t *testing.T) {
	for _, dir := range []components.Direction{components.DirLeft, components.DirRight, components.DirTop, components.DirBottom} {
		t.Run(dir.String(), func(t *testing.T) {
			ctx, clock := newTestContext(60, 15)
			addWord(ctx, "word", dir, clock.Now())
			motion := NewMotionSystem()

			motion.Update(ctx, clock.Advance(4900*time.Millisecond))
			assert.Equal(t, 1, ctx.Field.Len())

			motion.Update(ctx, clock.Advance(200*time.Millisecond))
			assert.Zero(t, ctx.Field.Len())
			assert.Equal(t, 2, ctx.State.Health)
		})
	}
}

func TestMotionStopsAtZeroHealth(t *testing.T) {
	ctx, clock := newTestContext(100, 20)
	ctx.State.Health = 1
	spawn := clock.Now()
	addWord(ctx, "one", components.DirRight, spawn)
	addWord(ctx, "two", components.DirRight, spawn)

	NewMotionSystem().Update(ctx, clock.Advance(6*time.Second))

	assert.Equal(t, 0, ctx.State.Health)
	assert.Equal(t, 1, ctx.Field.Len(), "remaining words freeze once health is gone")
	assert.Equal(t, []engine.EventType{engine.EventWordMissed}, eventTypes(ctx))
}
