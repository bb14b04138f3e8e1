package shooter

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Visual characters for terminal rendering
const (
	PlayerChar    = '█'
	PlayerTipChar = '▲'
	BulletChar    = '│'
	EnemyChar     = '▓'
	ExplosionChar = '*'
	ExplosionFade = '·'
	StarChar      = '.'
	HealthFull    = '■'
	HealthEmpty   = '□'
)

// Layout limits for the terminal renderer
const (
	hudRows        = 1
	healthBarCells = 10
	minRenderW     = 32
	minRenderH     = 8
)

// viewport maps playfield pixels onto the character cells below the HUD row.
// Resizing the terminal only changes the mapping, never the simulation.
type viewport struct {
	sx, sy float64
	rows   int
}

func newViewport(dst *core.Screen, fieldW, fieldH float64) viewport {
	rows := dst.Height() - hudRows
	return viewport{
		sx:   float64(dst.Width()) / fieldW,
		sy:   float64(rows) / fieldH,
		rows: rows,
	}
}

// cells converts a box to the cell rectangle covering it, at least one cell in
// each direction, clipped so nothing is drawn over the HUD.
func (v viewport) cells(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	y0 = core.Max(y0, 0)
	y1 = core.Min(y1, v.rows)
	if y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, y0+hudRows, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minRenderW || dst.Height() < minRenderH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorHUD)
		return
	}

	s := g.state
	v := newViewport(dst, s.Width(), s.Height())

	drawStars(dst)

	for _, e := range s.Enemies {
		dst.DrawRect(v.cells(e), EnemyChar, core.ColorEnemy)
	}

	for _, b := range s.Bullets {
		dst.DrawRect(v.cells(b), BulletChar, core.ColorBullet)
	}

	g.drawPlayer(dst, v)

	size := g.cfg.Explosion.Size
	for _, ex := range s.Explosions {
		ch := ExplosionChar
		if ex.TTL < g.cfg.Explosion.TTL/3 {
			ch = ExplosionFade
		}
		dst.DrawRect(v.cells(core.BoxAt(ex.Center, size, size)), ch, core.ColorExplosion)
	}

	g.drawHUD(dst)

	if s.GameOver {
		g.drawGameOver(dst)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	r := v.cells(g.state.Player)
	if r.W == 0 {
		return
	}
	dst.DrawRect(r, PlayerChar, core.ColorPlayer)
	dst.SetColored(r.X+r.W/2, r.Y, PlayerTipChar, core.ColorPlayer)
	if r.W > 2 {
		dst.SetColored(r.X, r.Y, ' ', core.ColorDefault)
		dst.SetColored(r.Right()-1, r.Y, ' ', core.ColorDefault)
	}
}

// drawStars scatters a fixed field of background stars.
func drawStars(dst *core.Screen) {
	for y := hudRows; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x*7+y*13)%47 == 0 {
				dst.SetColored(x, y, StarChar, core.ColorStar)
			}
		}
	}
}

// drawHUD renders score, health bar and lives on the left and survival time on the right.
func (g *Game) drawHUD(dst *core.Screen) {
	s := g.state

	x := 1
	score := fmt.Sprintf("Score: %d", s.Score)
	dst.DrawTextColored(x, 0, score, core.ColorHUD)
	x += len(score) + 2

	dst.DrawTextColored(x, 0, "HP ", core.ColorHUD)
	x += 3
	dst.DrawTextColored(x, 0, HealthBar(s.PlayerHealth, s.MaxHealth, healthBarCells), core.ColorHealth)
	x += healthBarCells + 2

	dst.DrawTextColored(x, 0, fmt.Sprintf("Lives: %d", s.Lives), core.ColorHUD)

	elapsed := fmt.Sprintf("Time: %ds", s.ElapsedSeconds())
	dst.DrawTextColored(dst.Width()-len(elapsed)-1, 0, elapsed, core.ColorHUD)
}

// HealthBar returns a fixed-width bar whose filled share is health/max.
// Any positive health shows at least one filled cell.
func HealthBar(health, max, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	filled := core.Clamp(health*width/max, 0, width)
	if filled == 0 && health > 0 {
		filled = 1
	}
	return strings.Repeat(string(HealthFull), filled) + strings.Repeat(string(HealthEmpty), width-filled)
}

// drawGameOver draws the centered game-over box over the playfield.
func (g *Game) drawGameOver(dst *core.Screen) {
	lines := GameOverLines(g.state)

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightRed)

	dst.DrawTextCentered(boxY+1, lines[0], core.ColorBrightRed)
	dst.DrawHLine(boxX+1, boxY+2, boxW-2, '─', core.ColorBrightRed)
	for i, l := range lines[1:] {
		c := core.ColorHUD
		if i == len(lines)-2 {
			c = core.ColorGreen
		}
		dst.DrawTextCentered(boxY+3+i, l, c)
	}
}

// GameOverLines returns the text of the game-over screen: title, survival
// time, final score and the retry prompt.
func GameOverLines(s *State) []string {
	return []string{
		"GAME OVER",
		fmt.Sprintf("Time Survived: %d seconds", s.ElapsedSeconds()),
		fmt.Sprintf("Final Score: %d", s.Score),
		"Press R to Retry or ESC to Quit",
	}
}
