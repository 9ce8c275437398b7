package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/typefall/constants"
)

const (
	dialogPaddingX = 2
	dialogPaddingY = 1
)

// dialog is a centred framed box with a title and content lines
type dialog struct {
	title string
	lines []string
}

func (d dialog) draw(s Surface, bg tcell.Color) {
	sw, sh := s.Size()

	inner := runewidth.StringWidth(d.title)
	for _, l := range d.lines {
		inner = max(inner, runewidth.StringWidth(l))
	}
	width := inner + 2 + 2*dialogPaddingX
	height := len(d.lines) + 2 + 2*dialogPaddingY

	x0 := (sw - width) / 2
	y0 := (sh - height) / 2

	frame := tcell.StyleDefault.Foreground(constants.ColorDialogFrame).Background(bg)
	text := tcell.StyleDefault.Foreground(constants.ColorHUDText).Background(bg)
	title := tcell.StyleDefault.Foreground(constants.ColorDialogTitle).Background(bg).Bold(true)

	blank := runewidth.FillRight("", width-2)
	for y := 1; y < height-1; y++ {
		s.DrawText(x0, y0+y, "│", frame)
		s.DrawText(x0+1, y0+y, blank, text)
		s.DrawText(x0+width-1, y0+y, "│", frame)
	}

	bar := strings.Repeat("─", width-2)
	s.DrawText(x0, y0, "┌"+bar+"┐", frame)
	s.DrawText(x0, y0+height-1, "└"+bar+"┘", frame)

	// Title sits on the top border
	tx := x0 + (width-runewidth.StringWidth(d.title))/2
	s.DrawText(tx, y0, d.title, title)

	for i, l := range d.lines {
		lx := x0 + (width-runewidth.StringWidth(l))/2
		s.DrawText(lx, y0+1+dialogPaddingY+i, l, text)
	}
}
