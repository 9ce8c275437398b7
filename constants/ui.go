package constants

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// UI Layout
const (
	// HUDHeight is the number of rows reserved below the play field
	HUDHeight = 1

	// HealthGlyph is drawn once per remaining health point
	HealthGlyph = '♥'
)

// UI Timing
const (
	// MissFlashTimeout is how long the screen flashes red after a missed word
	MissFlashTimeout = 200 * time.Millisecond

	// InputErrorTimeout is how long the input buffer is shown in error colour
	InputErrorTimeout = 200 * time.Millisecond
)

// Word colours
var (
	ColorWordDefault = tcell.ColorLightGray
	ColorWordMatched = tcell.NewHexColor(0x00FF00)
	ColorWordPending = tcell.ColorLightSkyBlue
)

// HUD and dialog colours
var (
	ColorBackground  = tcell.NewHexColor(0x101014)
	ColorMissFlash   = tcell.NewHexColor(0xFF0000)
	ColorHealth      = tcell.NewHexColor(0xE0404A)
	ColorHUDText     = tcell.ColorWhite
	ColorHUDLabel    = tcell.ColorGray
	ColorInputError  = tcell.ColorRed
	ColorDialogFrame = tcell.ColorLightSkyBlue
	ColorDialogTitle = tcell.ColorYellow
)

// MissFlashStrength is the peak blend factor of the miss flash over the background
const MissFlashStrength = 0.3
