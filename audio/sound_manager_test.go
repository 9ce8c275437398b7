package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/typefall/constants"
)

// TestSoundManagerGracefulDegradation verifies cues are safe without an open speaker
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	assert.NotPanics(t, func() {
		sm.PlayComplete()
		sm.PlayMiss()
		sm.PlayError()
		sm.PlayStage()
		sm.Cleanup()
	})
	assert.False(t, sm.Initialized())
}

// TestSoundManagerInitialization may fail without an audio device, which the game tolerates
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	require.True(t, sm.Initialized())
	require.NoError(t, sm.Initialize(), "second initialization is a no-op")

	sm.PlayComplete()
	sm.Cleanup()
	assert.False(t, sm.Initialized())

	assert.NotPanics(t, sm.PlayMiss)
}

func TestSetVolumeClamps(t *testing.T) {
	sm := NewSoundManager()
	sm.SetVolume(3)
	assert.Equal(t, 1.0, sm.volume)
	sm.SetVolume(-1)
	assert.Equal(t, 0.0, sm.volume)
}

// drain streams s to completion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestCueLengths(t *testing.T) {
	sr := beep.SampleRate(48000)
	tests := []struct {
		name string
		cue  func(beep.SampleRate, float64) beep.Streamer
		want time.Duration
	}{
		{"complete", CompleteCue, constants.CompleteSoundDuration},
		{"stage", StageCue, 3 * constants.CompleteSoundDuration},
		{"error", ErrorCue, constants.ErrorSoundDuration},
		{"miss", MissCue, constants.MissSoundDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, peak := drain(tt.cue(sr, 1))
			assert.InDelta(t, sr.N(tt.want), n, 2)
			assert.Positive(t, peak)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}
}

func TestCueSilentAtZeroVolume(t *testing.T) {
	_, peak := drain(ErrorCue(beep.SampleRate(48000), 0))
	assert.Zero(t, peak)
}
