package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPauseClockDurations(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPauseClock(mock)

	assert.Zero(t, pc.Resume(), "resume without pause is a no-op")
	assert.Zero(t, pc.CurrentPauseDuration())

	assert.True(t, pc.Pause())
	assert.False(t, pc.Pause(), "double pause is rejected")
	mock.Advance(3 * time.Second)
	assert.Equal(t, 3*time.Second, pc.CurrentPauseDuration())
	assert.Equal(t, 3*time.Second, pc.TotalPauseDuration())

	assert.Equal(t, 3*time.Second, pc.Resume())
	assert.Zero(t, pc.CurrentPauseDuration())

	mock.Advance(time.Second)
	pc.Pause()
	mock.Advance(2 * time.Second)
	assert.Equal(t, 5*time.Second, pc.TotalPauseDuration())
	assert.Equal(t, 2*time.Second, pc.Resume())

	pc.Reset()
	assert.Zero(t, pc.TotalPauseDuration())
}
