package core

// RuntimeConfig contains per-session settings passed to the presentation layer.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState summarises the current session for the platform layer.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	Health   int  // Current player health
	GameOver bool // Whether the game has ended
}

// EventKind identifies something that happened during a tick which the
// presentation layer may react to (sounds, logs).
type EventKind int

const (
	EventShot      EventKind = iota // A bullet was fired
	EventExplosion                  // An enemy exploded
	EventLifeLost                   // Health ran out and a life was consumed
	EventGameOver                   // The last life was lost
)

// String returns a human-readable name for the event.
func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventExplosion:
		return "explosion"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []EventKind
}

// Has reports whether the tick produced at least one event of kind k.
func (r StepResult) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e == k {
			return true
		}
	}
	return false
}
