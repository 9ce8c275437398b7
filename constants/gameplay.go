package constants

import "time"

// Health
const (
	// MaxHealth is the health a session starts with
	MaxHealth = 3
)

// Stage Schedule
const (
	// StageCount is the number of difficulty stages; the last one is terminal
	StageCount = 5

	// StageDuration is the active play time spent in each stage before advancing
	StageDuration = 15 * time.Second
)

// Word length bounds
const (
	MinWordLength = 2
	MaxWordLength = 20
)

// StageLengthRange holds the inclusive target word length range per stage, indexed by stage-1
var StageLengthRange = [StageCount][2]int{
	{MinWordLength, 4},
	{4, 6},
	{6, 8},
	{8, MaxWordLength},
	{MinWordLength, MaxWordLength},
}

// Spawn Rate
const (
	// InitialSpawnRate is words per second at session start
	InitialSpawnRate = 0.5

	// SpawnRateIncrement is added to the spawn rate every SpawnRateRampInterval
	SpawnRateIncrement = 0.05

	// SpawnRateRampInterval is the active play time between spawn rate increases
	SpawnRateRampInterval = 10 * time.Second
)

// Word Motion
const (
	// WordCrossTime is how long a word takes to travel the length of its axis
	// Speed is derived from the field size, never from word length
	WordCrossTime = 5 * time.Second

	// WordHeight is the number of rows a word occupies
	WordHeight = 1
)

// Frame timing
const (
	// DefaultFPS is the target tick rate of the motion loop
	DefaultFPS = 60

	// MinFPS and MaxFPS bound the configurable tick rate
	MinFPS = 10
	MaxFPS = 240
)
