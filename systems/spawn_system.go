package systems

import (
	"context"
	"math/rand/v2"
	"time"

	"golang.org/x/time/rate"

	"github.com/lixenwraith/typefall/components"
	"github.com/lixenwraith/typefall/constants"
	"github.com/lixenwraith/typefall/content"
	"github.com/lixenwraith/typefall/engine"
)

// defaultLoadTimeout bounds a single word list load
const defaultLoadTimeout = 500 * time.Millisecond

// SpawnSystem paces word spawns at the session spawn rate and places new words on the field
type SpawnSystem struct {
	source      content.Source
	limiter     *rate.Limiter
	LoadTimeout time.Duration
}

type invalidator interface {
	Invalidate()
}

// NewSpawnSystem creates a spawner drawing words from source
func NewSpawnSystem(source content.Source) *SpawnSystem {
	return &SpawnSystem{
		source:      source,
		LoadTimeout: defaultLoadTimeout,
	}
}

// Reset rebuilds the pacing limiter; the first tick of a session spawns immediately
// A cached source is dropped so a restart rereads the word list
func (s *SpawnSystem) Reset(ctx *engine.GameContext, now time.Time) {
	s.limiter = rate.NewLimiter(rate.Limit(ctx.State.SpawnRate), 1)
	if c, ok := s.source.(invalidator); ok {
		c.Invalidate()
	}
}

// Resume restarts pacing so the next spawn comes one interval after the pause ends
func (s *SpawnSystem) Resume(ctx *engine.GameContext, now time.Time, pauseDuration time.Duration) {
	s.limiter = rate.NewLimiter(rate.Limit(ctx.State.SpawnRate), 1)
	s.limiter.AllowN(now, 1)
}

// Update spawns a word when the limiter grants a token
func (s *SpawnSystem) Update(ctx *engine.GameContext, now time.Time) {
	if s.limiter == nil {
		s.Reset(ctx, now)
	}
	if limit := rate.Limit(ctx.State.SpawnRate); s.limiter.Limit() != limit {
		s.limiter.SetLimitAt(now, limit)
	}
	if !s.limiter.AllowN(now, 1) {
		return
	}
	s.Spawn(ctx, now)
}

// Spawn loads the word list and adds one word for the current stage
// A load failure or an empty length bucket skips the spawn
func (s *SpawnSystem) Spawn(ctx *engine.GameContext, now time.Time) (*components.Word, bool) {
	loadCtx, cancel := context.WithTimeout(context.Background(), s.LoadTimeout)
	defer cancel()

	words, err := s.source.Load(loadCtx)
	if err != nil {
		ctx.Logger.Warn().Err(err).Msg("word list unavailable, spawn skipped")
		return nil, false
	}

	stage := ctx.State.Stage
	length := PickLength(ctx.Rand, stage)
	candidates := content.WithLength(words, length)
	if len(candidates) == 0 {
		ctx.Logger.Warn().Int("length", length).Int("stage", stage).Msg("no words with required length, spawn skipped")
		return nil, false
	}

	field := ctx.Field
	dir := PickDirection(ctx.Rand, stage)
	w := &components.Word{
		ID:        ctx.State.NextWordID(),
		Text:      candidates[ctx.Rand.IntN(len(candidates))],
		Speed:     components.SpeedFor(dir, field.Width, field.Height),
		SpawnTime: now,
		Direction: dir,
		Color:     constants.ColorWordDefault,
	}

	if dir.Horizontal() {
		w.Y = float64(ctx.Rand.IntN(max(field.Height, 1)))
	} else {
		w.X = float64(ctx.Rand.IntN(max(field.Width-w.Width()+1, 1)))
	}
	w.Advance(now, field.Width, field.Height)

	field.Add(w)
	ctx.PushEvent(engine.EventWordSpawned, engine.GameEvent{WordID: w.ID, Text: w.Text, Time: now})
	ctx.Logger.Debug().
		Uint64("id", w.ID).
		Str("text", w.Text).
		Str("direction", dir.String()).
		Int("stage", stage).
		Msg("word spawned")
	return w, true
}

// PickLength returns a target word length drawn uniformly from the stage's range
func PickLength(rng *rand.Rand, stage int) int {
	r := constants.StageLengthRange[clampStage(stage)-1]
	return r[0] + rng.IntN(r[1]-r[0]+1)
}

// PickDirection returns the spawn edge for a stage
// Stage 1 always spawns on the right, stages 2-3 pick left or right, stages 4-5 pick any edge
func PickDirection(rng *rand.Rand, stage int) components.Direction {
	switch clampStage(stage) {
	case 1:
		return components.DirRight
	case 2, 3:
		return []components.Direction{components.DirLeft, components.DirRight}[rng.IntN(2)]
	default:
		return components.Direction(rng.IntN(4))
	}
}

func clampStage(stage int) int {
	return min(max(stage, 1), constants.StageCount)
}
