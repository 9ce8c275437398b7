// Package render draws the play field, HUD and dialogs onto a terminal surface.
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/typefall/components"
	"github.com/lixenwraith/typefall/constants"
	"github.com/lixenwraith/typefall/engine"
)

// Renderer draws one frame of the game state
type Renderer struct {
	surface Surface
}

// NewRenderer creates a renderer drawing onto surface
func NewRenderer(surface Surface) *Renderer {
	return &Renderer{surface: surface}
}

// Render draws the full frame at now and presents it
func (r *Renderer) Render(ctx *engine.GameContext, now time.Time) {
	state := ctx.State
	s := r.surface

	bg := constants.ColorBackground
	if state.Phase == engine.PhaseRunning {
		if f := FlashIntensity(now, state.FlashUntil); f > 0 {
			bg = Blend(bg, constants.ColorMissFlash, f)
		}
	}

	s.Clear()
	s.Fill(tcell.StyleDefault.Background(bg))

	fieldW, fieldH := ctx.Field.Width, ctx.Field.Height
	if state.Phase != engine.PhaseIdle {
		for _, w := range ctx.Field.Words() {
			r.drawWord(w, fieldW, fieldH, bg)
		}
		r.drawHUD(ctx, now, fieldH, bg)
	}

	switch state.Phase {
	case engine.PhaseIdle:
		dialog{
			title: " typefall ",
			lines: []string{
				"Type the words before they cross the screen",
				"",
				"Enter  start",
				"Ctrl-C  quit",
			},
		}.draw(s, bg)
	case engine.PhasePaused:
		dialog{
			title: " Paused ",
			lines: []string{"Esc  resume", "r  reset", "q  quit"},
		}.draw(s, bg)
	case engine.PhaseEnded:
		dialog{
			title: " Game Over ",
			lines: []string{
				fmt.Sprintf("Score  %d", state.Score),
				fmt.Sprintf("WPM  %d", state.DisplayWPM()),
				"",
				"Enter  restart",
			},
		}.draw(s, bg)
	}

	s.Show()
}

// drawWord draws a word clipped to the field
// While being typed the prefix is green and the rest sky blue; otherwise the whole word uses its colour
func (r *Renderer) drawWord(w *components.Word, fieldW, fieldH int, bg tcell.Color) {
	x := int(math.Floor(w.X))
	y := int(math.Floor(w.Y))
	if y < 0 || y >= fieldH {
		return
	}

	rest := w.Color
	if rest == tcell.ColorDefault {
		rest = constants.ColorWordDefault
	}
	typed := 0
	if w.BeingTyped {
		rest = constants.ColorWordPending
		typed = len([]rune(w.Typed))
	}

	for i, ch := range []rune(w.Text) {
		cx := x + i
		if cx < 0 || cx >= fieldW {
			continue
		}
		fg := rest
		if i < typed {
			fg = constants.ColorWordMatched
		}
		r.surface.DrawText(cx, y, string(ch), tcell.StyleDefault.Foreground(fg).Background(bg))
	}
}

// drawHUD draws hearts, score, WPM, stage and the input buffer on the row below the field
func (r *Renderer) drawHUD(ctx *engine.GameContext, now time.Time, row int, bg tcell.Color) {
	state := ctx.State
	s := r.surface

	label := tcell.StyleDefault.Foreground(constants.ColorHUDLabel).Background(bg)
	value := tcell.StyleDefault.Foreground(constants.ColorHUDText).Background(bg)

	x := 1
	heart := string(constants.HealthGlyph)
	for i := range constants.MaxHealth {
		fg := constants.ColorHealth
		if i >= state.Health {
			fg = constants.ColorHUDLabel
		}
		x += s.DrawText(x, row, heart, tcell.StyleDefault.Foreground(fg).Background(bg))
	}

	for _, f := range [][2]string{
		{"Score", fmt.Sprint(state.Score)},
		{"WPM", fmt.Sprint(state.DisplayWPM())},
		{"Stage", fmt.Sprint(state.Stage)},
	} {
		x += 2
		x += s.DrawText(x, row, f[0]+" ", label)
		x += s.DrawText(x, row, f[1], value)
	}

	x += 2
	x += s.DrawText(x, row, "> ", label)
	input := value
	shown := state.Input
	if now.Before(state.InputErrorUntil) {
		input = tcell.StyleDefault.Foreground(constants.ColorInputError).Background(bg)
		if shown == "" {
			shown = "·"
		}
	}
	s.DrawText(x, row, shown, input)
}
