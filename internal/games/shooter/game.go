// Package shooter implements a vertical arcade space shooter.
// The player steers a craft along the bottom of the playfield and shoots down
// enemies that fall from the top at a steadily increasing rate.
package shooter

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Game owns one session: its state, spawner and difficulty curve.
// It contains pure logic; the platform handles input, timing and output.
type Game struct {
	cfg       config.ShooterConfig
	ramp      *config.Ramp
	state     *State
	spawner   *Spawner
	events    []core.EventKind // Events of the current tick
	tickCount int              // Ticks stepped in the current life-cycle
}

// New creates a game ready to play. A zero seed picks a time-based one.
// cfg must already be validated.
func New(cfg config.ShooterConfig, seed int64) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		cfg:     cfg,
		ramp:    config.NewRamp(cfg.Difficulty, cfg.Enemy.BaseSpeed),
		state:   NewState(cfg),
		spawner: NewSpawner(seed, cfg),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Shooter"
}

// Reset starts a new life-cycle in place. The spawner keeps its RNG stream,
// so a retry sees a different enemy sequence.
func (g *Game) Reset() {
	g.state.Reset()
	g.events = nil
	g.tickCount = 0
}

// State returns the summary the platform layer needs.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Lives:    g.state.Lives,
		Health:   g.state.PlayerHealth,
		GameOver: g.state.GameOver,
	}
}

// World exposes the full state for renderers. Callers must not mutate it.
func (g *Game) World() *State {
	return g.state
}

// Config returns the settings the game was built with.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}

// Elapsed returns the survival time of the current life-cycle.
func (g *Game) Elapsed() time.Duration {
	return g.state.Elapsed()
}

// Ticks returns the number of ticks stepped since the last reset.
func (g *Game) Ticks() int {
	return g.tickCount
}

func (g *Game) emit(k core.EventKind) {
	g.events = append(g.events, k)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}
