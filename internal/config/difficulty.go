package config

import "math"

// Ramp is the single linear difficulty curve: every spawn event raises the
// difficulty by a fixed increment, enemies fall proportionally faster and the
// spawn interval shrinks as base/difficulty.
type Ramp struct {
	cfg       DifficultyConfig
	baseSpeed float64
}

// NewRamp creates a ramp from the difficulty settings and the enemy base speed.
func NewRamp(cfg DifficultyConfig, enemyBaseSpeed float64) *Ramp {
	return &Ramp{
		cfg:       cfg,
		baseSpeed: enemyBaseSpeed,
	}
}

// Initial returns the difficulty at the start of a life-cycle.
func (r *Ramp) Initial() float64 {
	return math.Max(1.0, r.cfg.Initial)
}

// Next returns the difficulty after one more spawn event.
func (r *Ramp) Next(level float64) float64 {
	return level + r.cfg.Increment
}

// SpawnInterval returns how many ticks must pass before the next spawn:
// floor(base / level), never less than the configured minimum.
func (r *Ramp) SpawnInterval(level float64) int {
	if level <= 0 {
		level = 1.0
	}
	interval := int(r.cfg.BaseSpawnInterval / level)
	minInterval := r.cfg.MinSpawnInterval
	if minInterval < 1 {
		minInterval = 1
	}
	if interval < minInterval {
		return minInterval
	}
	return interval
}

// FallSpeed returns how many pixels an enemy descends per tick at the given level.
func (r *Ramp) FallSpeed(level float64) float64 {
	return r.baseSpeed * level
}
