package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface is the drawing target of the renderer
type Surface interface {
	Clear()
	// DrawText writes text at (x, y) and returns the cells it advanced; cells off the surface are clipped
	DrawText(x, y int, text string, style tcell.Style) int
	Fill(style tcell.Style)
	Size() (width, height int)
	Show()
}

// ScreenSurface draws onto a tcell screen
type ScreenSurface struct {
	screen tcell.Screen
}

// NewScreenSurface wraps screen
func NewScreenSurface(screen tcell.Screen) *ScreenSurface {
	return &ScreenSurface{screen: screen}
}

func (s *ScreenSurface) Clear() {
	s.screen.Clear()
}

func (s *ScreenSurface) DrawText(x, y int, text string, style tcell.Style) int {
	w, h := s.screen.Size()
	start := x
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if y >= 0 && y < h && x >= 0 && x+rw <= w {
			s.screen.SetContent(x, y, r, nil, style)
		}
		x += rw
	}
	return x - start
}

func (s *ScreenSurface) Fill(style tcell.Style) {
	s.screen.Fill(' ', style)
}

func (s *ScreenSurface) Size() (int, int) {
	return s.screen.Size()
}

func (s *ScreenSurface) Show() {
	s.screen.Show()
}
