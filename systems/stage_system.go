package systems

import (
	"time"

	"github.com/lixenwraith/typefall/constants"
	"github.com/lixenwraith/typefall/engine"
)

// StageSystem derives stage and spawn rate from active play time once per tick
type StageSystem struct{}

// NewStageSystem creates a stage system
func NewStageSystem() *StageSystem {
	return &StageSystem{}
}

// StageAt returns the stage for an amount of active play time
func StageAt(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	return min(1+int(elapsed/constants.StageDuration), constants.StageCount)
}

// SpawnRateAt returns the spawn rate in words per second for an amount of active play time
func SpawnRateAt(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	steps := int(elapsed / constants.SpawnRateRampInterval)
	return constants.InitialSpawnRate + constants.SpawnRateIncrement*float64(steps)
}

// Update raises stage and spawn rate when due; neither ever decreases
func (s *StageSystem) Update(ctx *engine.GameContext, now time.Time) {
	state := ctx.State
	elapsed := state.Elapsed(now)

	if stage := StageAt(elapsed); stage > state.Stage {
		state.Stage = stage
		ctx.PushEvent(engine.EventStageAdvanced, engine.GameEvent{Stage: stage, Time: now})
		ctx.Logger.Info().Int("stage", stage).Dur("elapsed", elapsed).Msg("stage advanced")
	}

	if spawnRate := SpawnRateAt(elapsed); spawnRate > state.SpawnRate {
		state.SpawnRate = spawnRate
		ctx.Logger.Debug().Float64("rate", spawnRate).Msg("spawn rate increased")
	}
}
