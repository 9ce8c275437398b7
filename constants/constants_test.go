package constants

import (
	"testing"
	"time"
)

// TestStageLengthRangesWithinBounds verifies every stage range is ordered and inside the global word bounds
func TestStageLengthRangesWithinBounds(t *testing.T) {
	for i, r := range StageLengthRange {
		if r[0] > r[1] {
			t.Errorf("stage %d: min %d greater than max %d", i+1, r[0], r[1])
		}
		if r[0] < MinWordLength || r[1] > MaxWordLength {
			t.Errorf("stage %d: range %v outside [%d,%d]", i+1, r, MinWordLength, MaxWordLength)
		}
	}
}

// TestStageScheduleCoversOneMinute verifies the last stage begins at 60s
func TestStageScheduleCoversOneMinute(t *testing.T) {
	lastStageStart := time.Duration(StageCount-1) * StageDuration
	if lastStageStart != 60*time.Second {
		t.Errorf("Expected final stage to start at 60s, got %v", lastStageStart)
	}
}

// TestFlashTimeouts verifies feedback flashes stay short enough not to hide the field
func TestFlashTimeouts(t *testing.T) {
	if MissFlashTimeout <= 0 || MissFlashTimeout > time.Second {
		t.Errorf("Unexpected miss flash timeout %v", MissFlashTimeout)
	}
	if InputErrorTimeout <= 0 || InputErrorTimeout > time.Second {
		t.Errorf("Unexpected input error timeout %v", InputErrorTimeout)
	}
}
