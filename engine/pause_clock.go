package engine

import "time"

// PauseClock tracks pause intervals so time-based state can be shifted past them
// Owned by the session goroutine; not safe for concurrent use
type PauseClock struct {
	provider TimeProvider

	paused          bool
	pauseStartTime  time.Time     // When current pause started
	totalPausedTime time.Duration // Cumulative pause duration for the session
}

// NewPauseClock creates a pause clock reading time from provider
func NewPauseClock(provider TimeProvider) *PauseClock {
	return &PauseClock{provider: provider}
}

// Pause marks the start of a pause, returns false if already paused
func (pc *PauseClock) Pause() bool {
	if pc.paused {
		return false
	}
	pc.paused = true
	pc.pauseStartTime = pc.provider.Now()
	return true
}

// Resume ends the current pause and returns its duration (0 if not paused)
func (pc *PauseClock) Resume() time.Duration {
	if !pc.paused {
		return 0
	}
	d := pc.provider.Now().Sub(pc.pauseStartTime)
	if d < 0 {
		d = 0
	}
	pc.totalPausedTime += d
	pc.paused = false
	pc.pauseStartTime = time.Time{}
	return d
}

// CurrentPauseDuration returns duration of current pause (0 if not paused)
func (pc *PauseClock) CurrentPauseDuration() time.Duration {
	if !pc.paused {
		return 0
	}
	return pc.provider.Now().Sub(pc.pauseStartTime)
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PauseClock) TotalPauseDuration() time.Duration {
	return pc.totalPausedTime + pc.CurrentPauseDuration()
}

// Reset clears all pause bookkeeping
func (pc *PauseClock) Reset() {
	pc.paused = false
	pc.pauseStartTime = time.Time{}
	pc.totalPausedTime = 0
}
