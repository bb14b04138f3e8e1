// Package audio plays short synthesized effects for gameplay events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Sink receives gameplay events that may produce a sound.
type Sink interface {
	Play(k core.EventKind)
}

// Nop is a Sink that stays silent. Used when audio is disabled or the
// session has no local speaker (SSH).
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.EventKind) {}

// Player mixes effects onto the system speaker.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// Open initialises the speaker and starts the effect mixer.
// A device failure is reported as a ResourceLoadError.
func Open(cfg config.AudioConfig) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, &core.ResourceLoadError{Resource: "audio device", Err: err}
	}

	p := &Player{
		mixer:  &beep.Mixer{},
		volume: cfg.Volume,
	}
	speaker.Play(p.mixer)
	return p, nil
}

// NewSink returns a speaker-backed sink when audio is enabled, otherwise Nop.
// The returned close function is always safe to call.
func NewSink(cfg config.AudioConfig) (Sink, func(), error) {
	if !cfg.Enabled {
		return Nop{}, func() {}, nil
	}
	p, err := Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return p, p.Close, nil
}

// Play queues the effect for k. Events without a sound are ignored.
func (p *Player) Play(k core.EventKind) {
	s := Effect(k, SampleRate, p.volume)
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all effects and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
