package shooter

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState(config.DefaultShooterConfig())

	if s.Score != 0 || s.GameOver {
		t.Errorf("fresh state should have zero score and not be over: %+v", s)
	}
	if s.PlayerHealth != 200 || s.MaxHealth != 200 {
		t.Errorf("health = %d/%d, expected 200/200", s.PlayerHealth, s.MaxHealth)
	}
	if s.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", s.Lives)
	}
	if s.Difficulty != 1.0 {
		t.Errorf("Difficulty = %v, expected 1.0", s.Difficulty)
	}
	if want := core.NewBox(368, 508, 64, 64); s.Player != want {
		t.Errorf("Player = %+v, expected %+v", s.Player, want)
	}
}

func TestNewStateInitialDifficulty(t *testing.T) {
	tests := []struct {
		initial  float64
		expected float64
	}{
		{1.0, 1.0},
		{1.5, 1.5},
		{0.5, 1.0},
	}

	for _, tc := range tests {
		cfg := config.DefaultShooterConfig()
		cfg.Difficulty.Initial = tc.initial

		s := NewState(cfg)
		if s.Difficulty != tc.expected {
			t.Errorf("NewState(initial=%v).Difficulty = %v, expected %v", tc.initial, s.Difficulty, tc.expected)
		}
		s.Difficulty = 3
		s.Reset()
		if s.Difficulty != tc.expected {
			t.Errorf("Reset() with initial=%v: Difficulty = %v, expected %v", tc.initial, s.Difficulty, tc.expected)
		}
	}
}

func TestResetRestoresStartOfLife(t *testing.T) {
	g, clock := newTestGame(t)
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 900 && !g.state.GameOver; i++ {
		g.Step(randomInput(rng))
	}
	clock.advance(15 * time.Second)

	for round := 0; round < 2; round++ {
		g.Reset()
		s := g.state

		if s.Score != 0 || s.PlayerHealth != s.MaxHealth || s.Lives != 3 || s.GameOver {
			t.Errorf("round %d: counters not reset: %+v", round, s)
		}
		if s.Difficulty != 1.0 || s.EnemySpawnTimer != 0 {
			t.Errorf("round %d: difficulty=%v timer=%d", round, s.Difficulty, s.EnemySpawnTimer)
		}
		if len(s.Bullets) != 0 || len(s.Enemies) != 0 || len(s.Explosions) != 0 {
			t.Errorf("round %d: collections not emptied", round)
		}
		if want := core.NewBox(368, 508, 64, 64); s.Player != want {
			t.Errorf("round %d: Player = %+v, expected %+v", round, s.Player, want)
		}
		if s.Elapsed() != 0 {
			t.Errorf("round %d: Elapsed() = %v, expected 0", round, s.Elapsed())
		}
		if g.Ticks() != 0 {
			t.Errorf("round %d: Ticks() = %d, expected 0", round, g.Ticks())
		}
	}
}

func TestResetKeepsBackingArrays(t *testing.T) {
	g, _ := newTestGame(t)
	g.state.Enemies = append(g.state.Enemies, make([]core.Box, 8)...)
	before := cap(g.state.Enemies)

	g.Reset()

	if cap(g.state.Enemies) != before {
		t.Errorf("cap(Enemies) = %d, expected %d", cap(g.state.Enemies), before)
	}
}

func TestElapsedSeconds(t *testing.T) {
	g, clock := newTestGame(t)

	clock.advance(5500 * time.Millisecond)
	if got := g.state.ElapsedSeconds(); got != 5 {
		t.Errorf("ElapsedSeconds() = %d, expected 5", got)
	}

	g.state.finish()
	clock.advance(time.Hour)
	if got := g.state.ElapsedSeconds(); got != 5 {
		t.Errorf("ElapsedSeconds() after game over = %d, expected 5", got)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() *Game {
		g, _ := newTestGame(t)
		g.spawner = NewSpawner(12345, g.cfg)
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 3000 && !g.state.GameOver; i++ {
			g.Step(randomInput(rng))
		}
		return g
	}

	g1, g2 := run(), run()

	if g1.state.Score != g2.state.Score {
		t.Errorf("scores differ: %d vs %d", g1.state.Score, g2.state.Score)
	}
	if g1.Ticks() != g2.Ticks() {
		t.Errorf("tick counts differ: %d vs %d", g1.Ticks(), g2.Ticks())
	}
	if !reflect.DeepEqual(g1.state.Enemies, g2.state.Enemies) {
		t.Error("enemy positions differ")
	}
	if !reflect.DeepEqual(g1.state.Bullets, g2.state.Bullets) {
		t.Error("bullet positions differ")
	}
	if g1.State() != g2.State() {
		t.Errorf("State() differs: %+v vs %+v", g1.State(), g2.State())
	}
}

func TestGameIdentity(t *testing.T) {
	g := New(config.DefaultShooterConfig(), 7)

	if g.ID() != "shooter" {
		t.Errorf("ID() = %q, expected shooter", g.ID())
	}
	if g.Title() != "Space Shooter" {
		t.Errorf("Title() = %q, expected Space Shooter", g.Title())
	}
	if got := g.State(); got != (core.GameState{Score: 0, Lives: 3, Health: 200}) {
		t.Errorf("State() = %+v", got)
	}
}

func TestSpawnerPlacement(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	sp := NewSpawner(42, cfg)
	s := NewState(cfg)

	for i := 0; i < 2000; i++ {
		sp.SpawnEnemy(s)
	}

	seenLeft, seenRight := false, false
	for _, e := range s.Enemies {
		if e.X < 0 || e.Right() > cfg.Playfield.Width {
			t.Fatalf("enemy outside playfield width: %+v", e)
		}
		if e.X != float64(int(e.X)) {
			t.Fatalf("enemy x = %v, expected a whole pixel", e.X)
		}
		if e.Y != -50 || e.W != 50 || e.H != 50 {
			t.Fatalf("enemy = %+v, expected 50x50 at y=-50", e)
		}
		seenLeft = seenLeft || e.X < 100
		seenRight = seenRight || e.X > 650
	}
	if !seenLeft || !seenRight {
		t.Error("spawn positions should cover the whole width")
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	s1, s2 := NewState(cfg), NewState(cfg)
	sp1, sp2 := NewSpawner(9, cfg), NewSpawner(9, cfg)

	for i := 0; i < 50; i++ {
		sp1.SpawnEnemy(s1)
		sp2.SpawnEnemy(s2)
	}

	if !reflect.DeepEqual(s1.Enemies, s2.Enemies) {
		t.Error("same seed should produce the same spawn sequence")
	}
}

func TestSpawnerEnemyExactlyFieldWidth(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Enemy.Width = cfg.Playfield.Width
	sp := NewSpawner(1, cfg)
	s := NewState(cfg)

	sp.SpawnEnemy(s)

	if s.Enemies[0].X != 0 {
		t.Errorf("enemy X = %v, expected 0", s.Enemies[0].X)
	}
}

func TestSpawnerRejectsOversizedEnemy(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Enemy.Width = cfg.Playfield.Width + 1

	defer func() {
		if recover() == nil {
			t.Error("NewSpawner should panic when enemies cannot fit")
		}
	}()
	NewSpawner(1, cfg)
}

func TestRenderHUD(t *testing.T) {
	g, clock := newTestGame(t)
	g.state.Score = 40
	clock.advance(7 * time.Second)
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	hud := strings.Split(dst.String(), "\n")[0]
	for _, want := range []string{"Score: 40", "Lives: 3", "Time: 7", "HP "} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q should contain %q", hud, want)
		}
	}
	if !strings.ContainsRune(dst.String(), PlayerTipChar) {
		t.Error("player should be drawn")
	}
	if strings.Contains(dst.String(), "GAME OVER") {
		t.Error("game-over box should not be drawn during play")
	}
}

func TestRenderEntities(t *testing.T) {
	g, _ := newTestGame(t)
	g.state.Enemies = append(g.state.Enemies, core.NewBox(0, 0, 50, 50))
	g.state.Bullets = append(g.state.Bullets, core.NewBox(700, 300, 10, 30))
	g.state.Explosions = append(g.state.Explosions, Explosion{Center: core.Point{X: 400, Y: 300}, TTL: 30})
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	if got := dst.GetCell(0, 1); got.Rune != EnemyChar || got.Color != core.ColorEnemy {
		t.Errorf("cell(0,1) = %+v, expected enemy", got)
	}
	out := dst.String()
	if !strings.ContainsRune(out, BulletChar) {
		t.Error("bullet should be drawn")
	}
	if !strings.ContainsRune(out, ExplosionChar) {
		t.Error("explosion should be drawn")
	}
}

func TestRenderGameOver(t *testing.T) {
	g, clock := newTestGame(t)
	g.state.Score = 120
	clock.advance(42 * time.Second)
	g.state.finish()
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	out := dst.String()
	for _, want := range []string{
		"GAME OVER",
		"Time Survived: 42 seconds",
		"Final Score: 120",
		"Press R to Retry or ESC to Quit",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("game-over screen should contain %q", want)
		}
	}

	// 35x8 box at (22, 8); the title rule spans its inner width on row 10
	for _, x := range []int{23, 39, 55} {
		if got := dst.GetCell(x, 10); got.Rune != '─' || got.Color != core.ColorBrightRed {
			t.Errorf("cell(%d,10) = %+v, expected the title rule", x, got)
		}
	}
	if got := dst.GetCell(56, 10).Rune; got != '│' {
		t.Errorf("cell(56,10) = %q, expected the box edge", got)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(t)
	dst := core.NewScreen(20, 5)

	g.Render(dst)

	if !strings.Contains(dst.String(), "Terminal too small") {
		t.Error("expected a too-small notice")
	}
}

func TestViewportClipsAboveField(t *testing.T) {
	dst := core.NewScreen(80, 24)
	v := newViewport(dst, 800, 600)

	if r := v.cells(core.NewBox(0, -50, 50, 50)); r.W*r.H != 0 {
		t.Errorf("cells() above field = %+v, expected empty", r)
	}
	if r := v.cells(core.NewBox(0, 0, 800, 600)); r != core.NewRect(0, 1, 80, 23) {
		t.Errorf("cells(full field) = %+v, expected {0 1 80 23}", r)
	}
}

func TestHealthBar(t *testing.T) {
	tests := []struct {
		health, max, width int
		expected           string
	}{
		{200, 200, 4, "■■■■"},
		{100, 200, 4, "■■□□"},
		{1, 200, 4, "■□□□"},
		{0, 200, 4, "□□□□"},
		{-10, 200, 4, "□□□□"},
		{10, 0, 4, ""},
	}

	for _, tc := range tests {
		if got := HealthBar(tc.health, tc.max, tc.width); got != tc.expected {
			t.Errorf("HealthBar(%d, %d, %d) = %q, expected %q", tc.health, tc.max, tc.width, got, tc.expected)
		}
	}
}
