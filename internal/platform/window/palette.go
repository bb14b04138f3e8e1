package window

import (
	"image/color"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// palette maps core colors to RGBA for the window renderer.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 255, G: 255, B: 255, A: 255},
	core.ColorRed:          {R: 255, G: 0, B: 0, A: 255},
	core.ColorGreen:        {R: 0, G: 255, B: 0, A: 255},
	core.ColorYellow:       {R: 230, G: 200, B: 0, A: 255},
	core.ColorMagenta:      {R: 200, G: 0, B: 200, A: 255},
	core.ColorCyan:         {R: 0, G: 220, B: 255, A: 255},
	core.ColorWhite:        {R: 255, G: 255, B: 255, A: 255},
	core.ColorBrightRed:    {R: 255, G: 60, B: 60, A: 255},
	core.ColorBrightYellow: {R: 255, G: 255, B: 80, A: 255},
	core.ColorBrightWhite:  {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:       {R: 255, G: 140, B: 0, A: 255},
	core.ColorGray:         {R: 110, G: 110, B: 130, A: 255},
}

var (
	backgroundColor = color.RGBA{A: 255}
	overlayColor    = color.RGBA{A: 200}
)

// rgba returns the RGBA value of c, white for unknown colors.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// fade scales the alpha of c by f in [0, 1]. Channels stay premultiplied.
func fade(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
