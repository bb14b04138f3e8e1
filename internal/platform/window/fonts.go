package window

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Font sizes in pixels
const (
	hudFontSize   = 22
	titleFontSize = 64
)

// fonts holds the faces used by the window renderer.
type fonts struct {
	hud   font.Face
	title font.Face
}

// loadFonts parses the bundled Go fonts. Any failure is a ResourceLoadError.
func loadFonts() (fonts, error) {
	hud, err := newFace("goregular", goregular.TTF, hudFontSize)
	if err != nil {
		return fonts{}, err
	}
	title, err := newFace("gobold", gobold.TTF, titleFontSize)
	if err != nil {
		return fonts{}, err
	}
	return fonts{hud: hud, title: title}, nil
}

func newFace(name string, data []byte, size float64) (font.Face, error) {
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, &core.ResourceLoadError{Resource: "font " + name, Err: err}
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, &core.ResourceLoadError{Resource: "font " + name, Err: err}
	}
	return face, nil
}
