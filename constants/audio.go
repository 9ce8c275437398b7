package constants

import "time"

// Sound Timing
const (
	// CompleteSoundDuration is the length of the word completion chirp
	CompleteSoundDuration = 90 * time.Millisecond

	// MissSoundDuration is the length of the missed word rumble
	MissSoundDuration = 300 * time.Millisecond

	// ErrorSoundDuration is the length of the rejected keystroke buzz
	ErrorSoundDuration = 80 * time.Millisecond
)

// Sound Pitch
const (
	CompleteSoundFreq = 880.0
	StageSoundFreq    = 660.0
	ErrorSoundFreq    = 120.0
	MissSoundFreq     = 80.0
)
