package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

// HUD layout in playfield pixels
const (
	hudMargin       = 10
	healthBarY      = 40
	healthBarHeight = 20
	livesY          = 70
	timeRightOffset = 120
	overlayWidth    = 600
	overlayHeight   = 300
)

// Draw renders the current state. It never mutates the game.
func (w *Window) Draw(screen *ebiten.Image) {
	s := w.game.World()
	screen.Fill(backgroundColor)

	star := rgba(core.ColorStar)
	for _, p := range w.stars {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), 2, 2, star, false)
	}

	for _, e := range s.Enemies {
		drawEnemy(screen, e)
	}
	for _, b := range s.Bullets {
		fillBox(screen, b, rgba(core.ColorBullet))
	}
	drawPlayer(screen, s.Player)

	for _, ex := range s.Explosions {
		w.drawExplosion(screen, ex)
	}

	w.drawHUD(screen, s)

	if s.GameOver {
		w.drawGameOver(screen, s)
	}
}

func fillBox(dst *ebiten.Image, b core.Box, c color.Color) {
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, true)
}

func drawEnemy(dst *ebiten.Image, e core.Box) {
	fillBox(dst, e, fade(rgba(core.ColorEnemy), 0.6))
	vector.StrokeRect(dst, float32(e.X), float32(e.Y), float32(e.W), float32(e.H), 2, rgba(core.ColorEnemy), true)
}

// drawPlayer draws the craft as a hull with a nose on top.
func drawPlayer(dst *ebiten.Image, p core.Box) {
	c := rgba(core.ColorPlayer)
	hull := core.NewBox(p.X, p.Y+p.H/3, p.W, p.H*2/3)
	nose := core.NewBox(p.X+p.W*3/8, p.Y, p.W/4, p.H/3)
	fillBox(dst, hull, c)
	fillBox(dst, nose, c)
}

// drawExplosion draws a circle that shrinks and fades with its remaining TTL.
func (w *Window) drawExplosion(dst *ebiten.Image, ex shooter.Explosion) {
	life := 1.0
	if w.cfg.Explosion.TTL > 0 {
		life = float64(ex.TTL) / float64(w.cfg.Explosion.TTL)
	}
	r := float32(w.cfg.Explosion.Size / 2 * (0.4 + 0.6*life))
	vector.DrawFilledCircle(dst, float32(ex.Center.X), float32(ex.Center.Y), r, fade(rgba(core.ColorExplosion), life), true)
}

// drawHUD draws score, health bar, lives and elapsed time at fixed positions.
func (w *Window) drawHUD(dst *ebiten.Image, s *shooter.State) {
	white := rgba(core.ColorHUD)

	drawTextTop(dst, fmt.Sprintf("Score: %d", s.Score), w.fonts.hud, hudMargin, hudMargin, white)

	if s.PlayerHealth > 0 {
		vector.DrawFilledRect(dst, hudMargin, healthBarY, float32(s.PlayerHealth), healthBarHeight, rgba(core.ColorHealth), false)
	}
	vector.StrokeRect(dst, hudMargin, healthBarY, float32(s.MaxHealth), healthBarHeight, 2, white, false)

	drawTextTop(dst, fmt.Sprintf("Lives: %d", s.Lives), w.fonts.hud, hudMargin, livesY, white)

	timeX := int(w.cfg.Playfield.Width) - timeRightOffset
	drawTextTop(dst, fmt.Sprintf("Time: %ds", s.ElapsedSeconds()), w.fonts.hud, timeX, hudMargin, white)
}

// drawGameOver draws the translucent overlay with the game-over text.
func (w *Window) drawGameOver(dst *ebiten.Image, s *shooter.State) {
	cx := int(w.cfg.Playfield.Width) / 2
	cy := int(w.cfg.Playfield.Height) / 2

	vector.DrawFilledRect(dst,
		float32(cx-overlayWidth/2), float32(cy-overlayHeight/2),
		overlayWidth, overlayHeight, overlayColor, false)

	lines := shooter.GameOverLines(s)
	drawTextCentered(dst, lines[0], w.fonts.title, cx, cy-100, rgba(core.ColorRed))
	drawTextCentered(dst, lines[1], w.fonts.hud, cx, cy-20, rgba(core.ColorHUD))
	drawTextCentered(dst, lines[2], w.fonts.hud, cx, cy+20, rgba(core.ColorHUD))
	drawTextCentered(dst, lines[3], w.fonts.hud, cx, cy+70, rgba(core.ColorGreen))
}

// drawTextTop draws str with its top-left corner at (x, y).
func drawTextTop(dst *ebiten.Image, str string, face font.Face, x, y int, c color.Color) {
	text.Draw(dst, str, face, x, y+face.Metrics().Ascent.Ceil(), c)
}

// drawTextCentered draws str horizontally centred on cx with its top at y.
func drawTextCentered(dst *ebiten.Image, str string, face font.Face, cx, y int, c color.Color) {
	width := text.BoundString(face, str).Dx()
	drawTextTop(dst, str, face, cx-width/2, y, c)
}
