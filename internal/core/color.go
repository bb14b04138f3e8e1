package core

// Color represents a foreground color for a screen cell.
// The tui layer maps each value to an ANSI 256-color code, the window layer to RGBA.
type Color uint8

// Palette shared by the terminal renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Entity colors used by the shooter renderer.
const (
	ColorPlayer    = ColorBrightWhite
	ColorBullet    = ColorCyan
	ColorEnemy     = ColorGreen
	ColorExplosion = ColorOrange
	ColorHealth    = ColorRed
	ColorHUD       = ColorWhite
	ColorStar      = ColorGray
)
