package components

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/typefall/constants"
)

// Direction is the field edge a word spawns from
type Direction int

const (
	DirRight  Direction = iota // Spawns on right edge, moves left
	DirLeft                    // Spawns on left edge, moves right
	DirTop                     // Spawns above the field, moves down
	DirBottom                  // Spawns below the field, moves up
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirTop:
		return "top"
	case DirBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the direction animates the X axis
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Word is a moving word entity
type Word struct {
	ID         uint64
	Text       string
	X, Y       float64 // Field cells; only the direction's axis is animated
	Speed      float64 // Cells per second along the moving axis
	SpawnTime  time.Time
	Typed      string // Always a prefix of Text
	BeingTyped bool
	Direction  Direction
	Color      tcell.Color
}

// Len returns the word length in runes, the unit used for scoring and length filters
func (w *Word) Len() int {
	return utf8.RuneCountInString(w.Text)
}

// Width returns the display width of the word in terminal cells
func (w *Word) Width() int {
	return runewidth.StringWidth(w.Text)
}

// Remaining returns the untyped suffix
func (w *Word) Remaining() string {
	return w.Text[len(w.Typed):]
}

// Accepts reports whether r is the next expected rune
func (w *Word) Accepts(r rune) bool {
	return strings.HasPrefix(w.Text, w.Typed+string(r))
}

// Complete reports whether the whole word has been typed
func (w *Word) Complete() bool {
	return w.Typed == w.Text
}

// Abandon drops any partial match
func (w *Word) Abandon() {
	w.Typed = ""
	w.BeingTyped = false
}

// Advance recomputes the moving coordinate from time elapsed since spawn
// The cross axis is left untouched
func (w *Word) Advance(now time.Time, fieldWidth, fieldHeight int) {
	elapsed := now.Sub(w.SpawnTime).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	travel := elapsed * w.Speed

	switch w.Direction {
	case DirLeft:
		w.X = -float64(w.Width()) + travel
	case DirRight:
		w.X = float64(fieldWidth) - travel
	case DirTop:
		w.Y = -float64(constants.WordHeight) + travel
	case DirBottom:
		w.Y = float64(fieldHeight) - travel
	}
}

// Escaped reports whether the leading edge has passed the boundary opposite the spawn edge
func (w *Word) Escaped(fieldWidth, fieldHeight int) bool {
	switch w.Direction {
	case DirLeft:
		return w.X+float64(w.Width()) > float64(fieldWidth)
	case DirRight:
		return w.X < 0
	case DirTop:
		return w.Y+float64(constants.WordHeight) > float64(fieldHeight)
	case DirBottom:
		return w.Y < 0
	}
	return false
}

// SpeedFor returns the length-independent speed for a direction on the given field
func SpeedFor(d Direction, fieldWidth, fieldHeight int) float64 {
	axis := fieldWidth
	if !d.Horizontal() {
		axis = fieldHeight
	}
	return float64(axis) / constants.WordCrossTime.Seconds()
}

// IsTypingRune reports whether r can be entered as part of a word
func IsTypingRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Typeable reports whether every rune of text is a typing rune
func Typeable(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !IsTypingRune(r) {
			return false
		}
	}
	return true
}
