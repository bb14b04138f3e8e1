package shooter

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Spawner creates enemies just above the visible playfield.
type Spawner struct {
	rng    *rand.Rand
	fieldW float64
	width  float64
	height float64
}

// NewSpawner creates a spawner with the given RNG seed.
// Panics if an enemy cannot fit inside the playfield; Validate rejects such
// configurations before a game is built.
func NewSpawner(seed int64, cfg config.ShooterConfig) *Spawner {
	if cfg.Enemy.Width > cfg.Playfield.Width {
		panic(fmt.Sprintf("shooter: enemy width %v exceeds playfield width %v", cfg.Enemy.Width, cfg.Playfield.Width))
	}
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		fieldW: cfg.Playfield.Width,
		width:  cfg.Enemy.Width,
		height: cfg.Enemy.Height,
	}
}

// SpawnEnemy appends an enemy at a uniformly random whole-pixel x such that it lies
// fully within the playfield width, with its bottom edge on the top of the playfield.
func (sp *Spawner) SpawnEnemy(s *State) {
	span := int(sp.fieldW - sp.width)
	x := float64(sp.rng.Intn(span + 1))
	s.Enemies = append(s.Enemies, core.NewBox(x, -sp.height, sp.width, sp.height))
}
