package shooter

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Explosion is a short-lived visual effect left behind by a destroyed enemy.
type Explosion struct {
	Center core.Point
	TTL    int // Ticks left before removal
}

// State is the single mutable aggregate of a session. It is owned by the
// driver for its lifetime and reset in place on retry; only the simulation
// step and the spawner mutate it.
type State struct {
	Score           int
	PlayerHealth    int
	MaxHealth       int
	Lives           int
	GameOver        bool
	Difficulty      float64
	Bullets         []core.Box
	Enemies         []core.Box
	Explosions      []Explosion
	EnemySpawnTimer int
	Player          core.Box

	startedAt time.Time
	endedAt   time.Time // Zero until game over; freezes Elapsed
	now       func() time.Time

	field             config.PlayfieldConfig
	player            config.PlayerConfig
	lives             int
	initialDifficulty float64
}

// NewState creates a state initialised for a fresh life-cycle.
func NewState(cfg config.ShooterConfig) *State {
	s := &State{
		MaxHealth:         cfg.Health.Max,
		now:               time.Now,
		field:             cfg.Playfield,
		player:            cfg.Player,
		lives:             cfg.Health.Lives,
		initialDifficulty: config.NewRamp(cfg.Difficulty, cfg.Enemy.BaseSpeed).Initial(),
	}
	s.Reset()
	return s
}

// Reset reinitialises every field to its start-of-life value.
// Collections are truncated rather than reallocated.
func (s *State) Reset() {
	s.Score = 0
	s.PlayerHealth = s.MaxHealth
	s.Lives = s.lives
	s.GameOver = false
	s.Difficulty = s.initialDifficulty
	s.Bullets = s.Bullets[:0]
	s.Enemies = s.Enemies[:0]
	s.Explosions = s.Explosions[:0]
	s.EnemySpawnTimer = 0
	s.Player = core.BoxAt(core.Point{
		X: s.field.Width / 2,
		Y: s.field.Height - s.player.BottomOffset,
	}, s.player.Width, s.player.Height)
	s.startedAt = s.now()
	s.endedAt = time.Time{}
}

// Elapsed returns the survival time of the current life-cycle.
// It stops advancing once the game is over.
func (s *State) Elapsed() time.Duration {
	end := s.endedAt
	if end.IsZero() {
		end = s.now()
	}
	return end.Sub(s.startedAt)
}

// ElapsedSeconds returns Elapsed truncated to whole seconds, as shown on the HUD.
func (s *State) ElapsedSeconds() int {
	return int(s.Elapsed() / time.Second)
}

// Width returns the playfield width.
func (s *State) Width() float64 { return s.field.Width }

// Height returns the playfield height.
func (s *State) Height() float64 { return s.field.Height }

// finish marks the terminal game-over transition.
func (s *State) finish() {
	s.GameOver = true
	s.endedAt = s.now()
}
