package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default configuration.
// It mirrors defaults/shooter.yaml.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        64,
			Height:       64,
			BottomOffset: 60,
			Speed:        7,
		},
		Bullet: BulletConfig{
			Width:  10,
			Height: 30,
			Speed:  10,
		},
		Enemy: EnemyConfig{
			Width:     50,
			Height:    50,
			BaseSpeed: 3,
		},
		Difficulty: DifficultyConfig{
			Initial:           1.0,
			Increment:         0.01,
			BaseSpawnInterval: 45,
			MinSpawnInterval:  1,
		},
		Health: HealthConfig{
			Max:              200,
			Lives:            3,
			EscapePenalty:    5,
			CollisionPenalty: 15,
		},
		Scoring: ScoringConfig{
			EnemyKill: 10,
		},
		Explosion: ExplosionConfig{
			TTL:  30,
			Size: 60,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		TickRate: 60,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
