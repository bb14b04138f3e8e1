package shooter

import (
	"slices"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Step advances the simulation by exactly one tick. Phase order is fixed:
// fire, player movement, bullets, spawn timer, enemies, explosions, health.
// Once the game is over Step is a no-op until Reset.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	if g.state.GameOver {
		return g.result()
	}

	g.tickCount++

	// Explosions created this tick start ageing on the next one.
	aging := len(g.state.Explosions)

	if in.Has(core.ActionFire) {
		g.fire()
	}
	g.movePlayer(in)
	g.advanceBullets()
	g.advanceSpawnTimer()
	g.advanceEnemies()
	g.ageExplosions(aging)
	g.checkHealth()

	return g.result()
}

func (g *Game) fire() {
	s := g.state
	top := core.Point{X: s.Player.Center().X, Y: s.Player.Top()}
	s.Bullets = append(s.Bullets, core.BoxAt(top, g.cfg.Bullet.Width, g.cfg.Bullet.Height))
	g.emit(core.EventShot)
}

func (g *Game) movePlayer(in core.InputFrame) {
	s := g.state
	dx := 0.0
	if in.Has(core.ActionLeft) {
		dx -= g.cfg.Player.Speed
	}
	if in.Has(core.ActionRight) {
		dx += g.cfg.Player.Speed
	}
	s.Player.X = core.ClampF(s.Player.X+dx, 0, s.Width()-s.Player.W)
}

func (g *Game) advanceBullets() {
	s := g.state
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		b.Y -= g.cfg.Bullet.Speed
		if b.Bottom() < 0 {
			continue
		}
		kept = append(kept, b)
	}
	s.Bullets = kept
}

func (g *Game) advanceSpawnTimer() {
	s := g.state
	s.EnemySpawnTimer++
	if s.EnemySpawnTimer > g.ramp.SpawnInterval(s.Difficulty) {
		g.spawner.SpawnEnemy(s)
		s.EnemySpawnTimer = 0
		s.Difficulty = g.ramp.Next(s.Difficulty)
	}
}

// advanceEnemies moves every enemy and resolves at most one outcome per enemy:
// escape, bullet hit or player collision, checked in that order.
func (g *Game) advanceEnemies() {
	s := g.state
	speed := g.ramp.FallSpeed(s.Difficulty)

	kept := s.Enemies[:0]
	for _, e := range s.Enemies {
		e.Y += speed

		if e.Top() > s.Height() {
			s.PlayerHealth -= g.cfg.Health.EscapePenalty
			continue
		}

		if j := firstHit(e, s.Bullets); j >= 0 {
			s.Bullets = slices.Delete(s.Bullets, j, j+1)
			g.explode(e)
			s.Score += g.cfg.Scoring.EnemyKill
			continue
		}

		if e.Overlaps(s.Player) {
			g.explode(e)
			s.PlayerHealth -= g.cfg.Health.CollisionPenalty
			continue
		}

		kept = append(kept, e)
	}
	s.Enemies = kept
}

// firstHit returns the index of the first bullet overlapping e, or -1.
func firstHit(e core.Box, bullets []core.Box) int {
	for i, b := range bullets {
		if core.Overlaps(e, b) {
			return i
		}
	}
	return -1
}

func (g *Game) explode(e core.Box) {
	g.state.Explosions = append(g.state.Explosions, Explosion{
		Center: e.Center(),
		TTL:    g.cfg.Explosion.TTL,
	})
	g.emit(core.EventExplosion)
}

// ageExplosions decrements the first n explosions and drops the expired ones.
func (g *Game) ageExplosions(n int) {
	s := g.state
	kept := s.Explosions[:0]
	for i, ex := range s.Explosions {
		if i < n {
			ex.TTL--
			if ex.TTL <= 0 {
				continue
			}
		}
		kept = append(kept, ex)
	}
	s.Explosions = kept
}

func (g *Game) checkHealth() {
	s := g.state
	if s.PlayerHealth > 0 {
		return
	}

	s.Lives--
	g.emit(core.EventLifeLost)
	if s.Lives <= 0 {
		s.finish()
		g.emit(core.EventGameOver)
		return
	}
	s.PlayerHealth = s.MaxHealth
}
