// Package config provides YAML-based game configuration loading and the
// difficulty ramp for the shooter.
package config

import (
	"errors"
	"fmt"
)

// ShooterConfig contains all tunable parameters of the shooter.
// Every value is fixed for the lifetime of a session.
type ShooterConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Health     HealthConfig     `yaml:"health"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
	TickRate   int              `yaml:"tick_rate"`
}

// PlayfieldConfig defines the logical playfield in pixels.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player craft.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the bottom edge to the craft's centre
	Speed        float64 `yaml:"speed"`         // Pixels per tick while a direction is held
}

// BulletConfig defines projectiles fired by the player.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Pixels per tick, upwards
}

// EnemyConfig defines descending enemies.
type EnemyConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	BaseSpeed float64 `yaml:"base_speed"` // Pixels per tick at difficulty 1.0
}

// DifficultyConfig defines the single linear difficulty ramp.
type DifficultyConfig struct {
	Initial           float64 `yaml:"initial"`             // Difficulty after reset, >= 1.0
	Increment         float64 `yaml:"increment"`           // Added on every spawn event
	BaseSpawnInterval float64 `yaml:"base_spawn_interval"` // Ticks between spawns at difficulty 1.0
	MinSpawnInterval  int     `yaml:"min_spawn_interval"`  // Lower clamp for the spawn interval
}

// HealthConfig defines health, lives and damage.
type HealthConfig struct {
	Max              int `yaml:"max"`
	Lives            int `yaml:"lives"`
	EscapePenalty    int `yaml:"escape_penalty"`    // Enemy leaves through the bottom edge
	CollisionPenalty int `yaml:"collision_penalty"` // Enemy rams the player
}

// ScoringConfig defines points awarded.
type ScoringConfig struct {
	EnemyKill int `yaml:"enemy_kill"`
}

// ExplosionConfig defines the explosion effect.
type ExplosionConfig struct {
	TTL  int     `yaml:"ttl"`  // Ticks an explosion stays alive
	Size float64 `yaml:"size"` // Visual size in pixels
}

// InputConfig defines input handling for terminals, which never report key releases.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a direction stays held after its last key event
}

// AudioConfig defines sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 (silent) to 1.0
}

// Validate checks the configuration and returns the first problem found.
func (c ShooterConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"playfield.width", c.Playfield.Width},
		{"playfield.height", c.Playfield.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"bullet.width", c.Bullet.Width},
		{"bullet.height", c.Bullet.Height},
		{"bullet.speed", c.Bullet.Speed},
		{"enemy.width", c.Enemy.Width},
		{"enemy.height", c.Enemy.Height},
		{"enemy.base_speed", c.Enemy.BaseSpeed},
		{"difficulty.increment", c.Difficulty.Increment},
		{"difficulty.base_spawn_interval", c.Difficulty.BaseSpawnInterval},
		{"explosion.size", c.Explosion.Size},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v", p.name, p.val)
		}
	}

	if c.Enemy.Width > c.Playfield.Width {
		return fmt.Errorf("config: enemy.width %v exceeds playfield.width %v", c.Enemy.Width, c.Playfield.Width)
	}
	if c.Player.Width > c.Playfield.Width {
		return fmt.Errorf("config: player.width %v exceeds playfield.width %v", c.Player.Width, c.Playfield.Width)
	}
	if c.Difficulty.Initial < 1.0 {
		return fmt.Errorf("config: difficulty.initial must be at least 1.0, got %v", c.Difficulty.Initial)
	}
	if c.Difficulty.MinSpawnInterval < 1 {
		return fmt.Errorf("config: difficulty.min_spawn_interval must be at least 1, got %d", c.Difficulty.MinSpawnInterval)
	}
	if c.Health.Max < 1 {
		return fmt.Errorf("config: health.max must be at least 1, got %d", c.Health.Max)
	}
	if c.Health.Lives < 1 {
		return fmt.Errorf("config: health.lives must be at least 1, got %d", c.Health.Lives)
	}
	if c.Health.EscapePenalty < 0 || c.Health.CollisionPenalty < 0 || c.Scoring.EnemyKill < 0 {
		return errors.New("config: penalties and scores must not be negative")
	}
	if c.Explosion.TTL < 1 {
		return fmt.Errorf("config: explosion.ttl must be at least 1, got %d", c.Explosion.TTL)
	}
	if c.Input.HoldTicks < 1 {
		return fmt.Errorf("config: input.hold_ticks must be at least 1, got %d", c.Input.HoldTicks)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio.volume must be within [0, 1], got %v", c.Audio.Volume)
	}
	if c.TickRate < 1 {
		return fmt.Errorf("config: tick_rate must be at least 1, got %d", c.TickRate)
	}
	return nil
}
