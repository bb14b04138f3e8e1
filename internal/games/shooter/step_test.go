package shooter

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// fakeClock is a manually advanced time source for survival-time tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestGame(t *testing.T) (*Game, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	g := New(config.DefaultShooterConfig(), 1)
	g.state.now = clock.now
	g.Reset()
	return g, clock
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestEnemyDescendsUntilItLeavesTheField(t *testing.T) {
	g, _ := newTestGame(t)
	g.state.Enemies = append(g.state.Enemies, core.NewBox(0, -50, 50, 50))

	for i := 0; i < 17; i++ {
		g.Step(idle())
	}

	if len(g.state.Enemies) != 1 {
		t.Fatalf("len(Enemies) = %d, expected 1", len(g.state.Enemies))
	}
	if got := g.state.Enemies[0].Top(); got != 1 {
		t.Errorf("enemy top after 17 ticks = %v, expected 1", got)
	}
}

func TestBulletDestroysEnemy(t *testing.T) {
	g, _ := newTestGame(t)
	// Both boxes land on (100, 100) after this tick's motion.
	g.state.Bullets = append(g.state.Bullets, core.NewBox(100, 110, 10, 30))
	g.state.Enemies = append(g.state.Enemies, core.NewBox(100, 97, 50, 50))

	res := g.Step(idle())

	if len(g.state.Enemies) != 0 {
		t.Errorf("len(Enemies) = %d, expected 0", len(g.state.Enemies))
	}
	if len(g.state.Bullets) != 0 {
		t.Errorf("len(Bullets) = %d, expected 0", len(g.state.Bullets))
	}
	if len(g.state.Explosions) != 1 {
		t.Fatalf("len(Explosions) = %d, expected 1", len(g.state.Explosions))
	}
	if g.state.Explosions[0].TTL != 30 {
		t.Errorf("explosion TTL = %d, expected 30", g.state.Explosions[0].TTL)
	}
	if want := (core.Point{X: 125, Y: 125}); g.state.Explosions[0].Center != want {
		t.Errorf("explosion center = %v, expected %v", g.state.Explosions[0].Center, want)
	}
	if g.state.Score != 10 {
		t.Errorf("Score = %d, expected 10", g.state.Score)
	}
	if g.state.PlayerHealth != 200 {
		t.Errorf("PlayerHealth = %d, expected 200", g.state.PlayerHealth)
	}
	if !res.Has(core.EventExplosion) {
		t.Error("expected an explosion event")
	}
}

func TestEnemyEscapeCostsHealth(t *testing.T) {
	tests := []struct {
		name        string
		top         float64
		wantEnemies int
		wantHealth  int
	}{
		{"passes bottom edge", 598, 0, 195},
		{"exactly on bottom edge stays", 597, 1, 200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			g.state.Enemies = append(g.state.Enemies, core.NewBox(0, tc.top, 50, 50))

			g.Step(idle())

			if len(g.state.Enemies) != tc.wantEnemies {
				t.Errorf("len(Enemies) = %d, expected %d", len(g.state.Enemies), tc.wantEnemies)
			}
			if g.state.PlayerHealth != tc.wantHealth {
				t.Errorf("PlayerHealth = %d, expected %d", g.state.PlayerHealth, tc.wantHealth)
			}
			if len(g.state.Explosions) != 0 {
				t.Errorf("escape should not explode, got %d explosions", len(g.state.Explosions))
			}
		})
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	g, clock := newTestGame(t)
	g.state.PlayerHealth = 15
	g.state.Lives = 1
	// Lands on (380, 500), overlapping the player at (368, 508).
	g.state.Enemies = append(g.state.Enemies, core.NewBox(380, 497, 50, 50))

	clock.advance(12 * time.Second)
	res := g.Step(idle())

	if g.state.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", g.state.Lives)
	}
	if !g.state.GameOver {
		t.Error("GameOver should be true")
	}
	if g.state.PlayerHealth > 0 {
		t.Errorf("PlayerHealth = %d, expected <= 0", g.state.PlayerHealth)
	}
	if !res.Has(core.EventGameOver) || !res.Has(core.EventLifeLost) {
		t.Errorf("events = %v, expected life_lost and game_over", res.Events)
	}
	if !res.State.GameOver {
		t.Error("StepResult.State.GameOver should be true")
	}

	clock.advance(time.Minute)
	if got := g.state.ElapsedSeconds(); got != 12 {
		t.Errorf("ElapsedSeconds() = %d, expected frozen at 12", got)
	}
}

func TestLifeLostRefillsHealth(t *testing.T) {
	g, _ := newTestGame(t)
	g.state.PlayerHealth = 15
	g.state.Lives = 2
	g.state.Enemies = append(g.state.Enemies, core.NewBox(380, 497, 50, 50))

	res := g.Step(idle())

	if g.state.Lives != 1 {
		t.Errorf("Lives = %d, expected 1", g.state.Lives)
	}
	if g.state.PlayerHealth != 200 {
		t.Errorf("PlayerHealth = %d, expected 200", g.state.PlayerHealth)
	}
	if g.state.GameOver {
		t.Error("GameOver should be false")
	}
	if !res.Has(core.EventLifeLost) || res.Has(core.EventGameOver) {
		t.Errorf("events = %v, expected only life_lost", res.Events)
	}
}

func TestEnemyResolvesExactlyOneOutcome(t *testing.T) {
	t.Run("bullet beats player collision", func(t *testing.T) {
		g, _ := newTestGame(t)
		g.state.Enemies = append(g.state.Enemies, core.NewBox(380, 497, 50, 50))
		g.state.Bullets = append(g.state.Bullets, core.NewBox(390, 520, 10, 30))

		g.Step(idle())

		if g.state.Score != 10 {
			t.Errorf("Score = %d, expected 10", g.state.Score)
		}
		if g.state.PlayerHealth != 200 {
			t.Errorf("PlayerHealth = %d, expected 200", g.state.PlayerHealth)
		}
		if len(g.state.Explosions) != 1 {
			t.Errorf("len(Explosions) = %d, expected 1", len(g.state.Explosions))
		}
	})

	t.Run("escape beats bullet", func(t *testing.T) {
		g, _ := newTestGame(t)
		g.state.Enemies = append(g.state.Enemies, core.NewBox(0, 598, 50, 50))
		g.state.Bullets = append(g.state.Bullets, core.NewBox(10, 621, 10, 30))

		g.Step(idle())

		if g.state.PlayerHealth != 195 {
			t.Errorf("PlayerHealth = %d, expected 195", g.state.PlayerHealth)
		}
		if g.state.Score != 0 {
			t.Errorf("Score = %d, expected 0", g.state.Score)
		}
		if len(g.state.Bullets) != 1 {
			t.Errorf("len(Bullets) = %d, expected bullet to survive", len(g.state.Bullets))
		}
	})

	t.Run("one bullet consumed per enemy", func(t *testing.T) {
		g, _ := newTestGame(t)
		g.state.Enemies = append(g.state.Enemies, core.NewBox(100, 97, 50, 50))
		g.state.Bullets = append(g.state.Bullets,
			core.NewBox(100, 110, 10, 30),
			core.NewBox(120, 110, 10, 30),
		)

		g.Step(idle())

		if len(g.state.Bullets) != 1 {
			t.Fatalf("len(Bullets) = %d, expected 1", len(g.state.Bullets))
		}
		if g.state.Bullets[0].X != 120 {
			t.Errorf("remaining bullet X = %v, expected the second bullet", g.state.Bullets[0].X)
		}
	})
}

func TestFireSpawnsBulletAtPlayerTip(t *testing.T) {
	g, _ := newTestGame(t)

	res := g.Step(press(core.ActionFire))

	if len(g.state.Bullets) != 1 {
		t.Fatalf("len(Bullets) = %d, expected 1", len(g.state.Bullets))
	}
	// Created centred on (400, 508), then moved up by one tick.
	want := core.NewBox(395, 483, 10, 30)
	if g.state.Bullets[0] != want {
		t.Errorf("bullet = %+v, expected %+v", g.state.Bullets[0], want)
	}
	if !res.Has(core.EventShot) {
		t.Error("expected a shot event")
	}
}

func TestPlayerMovementIsClamped(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		in    core.InputFrame
		want  float64
	}{
		{"left", 368, press(core.ActionLeft), 361},
		{"right", 368, press(core.ActionRight), 375},
		{"both cancel", 368, press(core.ActionLeft, core.ActionRight), 368},
		{"clamp left edge", 3, press(core.ActionLeft), 0},
		{"clamp right edge", 733, press(core.ActionRight), 736},
		{"idle", 100, idle(), 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			g.state.Player.X = tc.start

			g.Step(tc.in)

			if g.state.Player.X != tc.want {
				t.Errorf("Player.X = %v, expected %v", g.state.Player.X, tc.want)
			}
		})
	}
}

func TestBulletsLeaveAtTopEdge(t *testing.T) {
	g, _ := newTestGame(t)
	g.state.Bullets = append(g.state.Bullets,
		core.NewBox(0, -25, 10, 30), // bottom 5 -> -5
		core.NewBox(20, -20, 10, 30), // bottom 10 -> 0
	)

	g.Step(idle())

	if len(g.state.Bullets) != 1 {
		t.Fatalf("len(Bullets) = %d, expected 1", len(g.state.Bullets))
	}
	if g.state.Bullets[0].X != 20 {
		t.Errorf("wrong bullet kept: %+v", g.state.Bullets[0])
	}
}

func TestSpawnRaisesDifficulty(t *testing.T) {
	g, _ := newTestGame(t)

	g.state.EnemySpawnTimer = 44
	g.Step(idle())
	if len(g.state.Enemies) != 0 || g.state.EnemySpawnTimer != 45 {
		t.Fatalf("timer 45 should not spawn: enemies=%d timer=%d", len(g.state.Enemies), g.state.EnemySpawnTimer)
	}

	g.Step(idle())

	if len(g.state.Enemies) != 1 {
		t.Fatalf("len(Enemies) = %d, expected 1", len(g.state.Enemies))
	}
	if g.state.EnemySpawnTimer != 0 {
		t.Errorf("EnemySpawnTimer = %d, expected 0", g.state.EnemySpawnTimer)
	}
	if math.Abs(g.state.Difficulty-1.01) > 1e-9 {
		t.Errorf("Difficulty = %v, expected 1.01", g.state.Difficulty)
	}
	// Spawned at -50 and moved at the raised speed in the same tick.
	if got := g.state.Enemies[0].Top(); math.Abs(got-(-50+3.03)) > 1e-9 {
		t.Errorf("spawned enemy top = %v, expected %v", got, -50+3.03)
	}
}

func TestExplosionsAgeAndExpire(t *testing.T) {
	g, _ := newTestGame(t)
	g.state.Explosions = append(g.state.Explosions,
		Explosion{Center: core.Point{X: 10, Y: 10}, TTL: 1},
		Explosion{Center: core.Point{X: 20, Y: 20}, TTL: 5},
	)

	g.Step(idle())

	if len(g.state.Explosions) != 1 {
		t.Fatalf("len(Explosions) = %d, expected 1", len(g.state.Explosions))
	}
	if g.state.Explosions[0].TTL != 4 {
		t.Errorf("TTL = %d, expected 4", g.state.Explosions[0].TTL)
	}
}

func TestExplosionLifetime(t *testing.T) {
	g, _ := newTestGame(t)
	g.state.Bullets = append(g.state.Bullets, core.NewBox(100, 110, 10, 30))
	g.state.Enemies = append(g.state.Enemies, core.NewBox(100, 97, 50, 50))

	g.Step(idle())
	for i := 0; i < 29; i++ {
		g.Step(idle())
	}
	if len(g.state.Explosions) != 1 || g.state.Explosions[0].TTL != 1 {
		t.Fatalf("explosion should still be alive with TTL 1: %+v", g.state.Explosions)
	}

	g.Step(idle())
	if len(g.state.Explosions) != 0 {
		t.Errorf("explosion should expire after 30 ageing ticks: %+v", g.state.Explosions)
	}
}

func TestStepIsNoOpAfterGameOver(t *testing.T) {
	g, _ := newTestGame(t)
	g.state.finish()
	g.state.Enemies = append(g.state.Enemies, core.NewBox(0, 0, 50, 50))
	ticks := g.Ticks()

	res := g.Step(press(core.ActionFire, core.ActionLeft))

	if len(g.state.Bullets) != 0 {
		t.Error("no bullet should be fired after game over")
	}
	if g.state.Enemies[0].Y != 0 {
		t.Error("enemies should not move after game over")
	}
	if g.Ticks() != ticks {
		t.Errorf("Ticks() = %d, expected %d", g.Ticks(), ticks)
	}
	if len(res.Events) != 0 {
		t.Errorf("events = %v, expected none", res.Events)
	}
}

// randomInput returns a pseudo-random input frame drawn from rng.
func randomInput(rng *rand.Rand) core.InputFrame {
	in := core.NewInputFrame()
	switch rng.Intn(3) {
	case 0:
		in.Set(core.ActionLeft)
	case 1:
		in.Set(core.ActionRight)
	}
	if rng.Intn(4) == 0 {
		in.Set(core.ActionFire)
	}
	return in
}

func TestInvariantsHoldOverLongRun(t *testing.T) {
	g, _ := newTestGame(t)
	rng := rand.New(rand.NewSource(99))
	cfg := g.Config()
	maxX := cfg.Playfield.Width - cfg.Enemy.Width

	for tick := 0; tick < 20000 && !g.state.GameOver; tick++ {
		prevDifficulty := g.state.Difficulty
		prevScore := g.state.Score

		g.Step(randomInput(rng))
		s := g.state

		if !s.GameOver && (s.PlayerHealth <= 0 || s.PlayerHealth > s.MaxHealth) {
			t.Fatalf("tick %d: PlayerHealth = %d outside (0, %d]", tick, s.PlayerHealth, s.MaxHealth)
		}
		if s.Lives < 0 {
			t.Fatalf("tick %d: Lives = %d", tick, s.Lives)
		}
		if s.Score < prevScore || s.Score%cfg.Scoring.EnemyKill != 0 {
			t.Fatalf("tick %d: Score %d -> %d", tick, prevScore, s.Score)
		}

		delta := s.Difficulty - prevDifficulty
		switch {
		case delta == 0:
		case math.Abs(delta-cfg.Difficulty.Increment) < 1e-9:
			if s.EnemySpawnTimer != 0 {
				t.Fatalf("tick %d: difficulty rose without a spawn", tick)
			}
		default:
			t.Fatalf("tick %d: difficulty %v -> %v", tick, prevDifficulty, s.Difficulty)
		}

		if s.Player.X < 0 || s.Player.Right() > cfg.Playfield.Width {
			t.Fatalf("tick %d: player out of bounds: %+v", tick, s.Player)
		}
		for _, b := range s.Bullets {
			if b.Bottom() < 0 {
				t.Fatalf("tick %d: bullet above field kept: %+v", tick, b)
			}
		}
		for _, e := range s.Enemies {
			if e.X < 0 || e.X > maxX || e.X != math.Trunc(e.X) {
				t.Fatalf("tick %d: enemy x = %v", tick, e.X)
			}
			if e.Top() > cfg.Playfield.Height {
				t.Fatalf("tick %d: escaped enemy kept: %+v", tick, e)
			}
		}
		for _, ex := range s.Explosions {
			if ex.TTL <= 0 || ex.TTL > cfg.Explosion.TTL {
				t.Fatalf("tick %d: explosion TTL = %d", tick, ex.TTL)
			}
		}
	}
}
