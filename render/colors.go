package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/typefall/constants"
)

// toColorful converts a tcell colour, palette entries included, to RGB
func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Blend mixes over into base by t in [0, 1]
func Blend(base, over tcell.Color, t float64) tcell.Color {
	t = max(0, min(1, t))
	return fromColorful(toColorful(base).BlendRgb(toColorful(over), t))
}

// FlashIntensity is the miss flash blend factor at now, fading linearly to zero at until
func FlashIntensity(now, until time.Time) float64 {
	remaining := until.Sub(now)
	if remaining <= 0 {
		return 0
	}
	fade := float64(remaining) / float64(constants.MissFlashTimeout)
	return constants.MissFlashStrength * min(1, fade)
}
