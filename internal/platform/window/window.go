// Package window runs the shooter in a desktop window using Ebitengine.
package window

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

// starCount is the number of background stars.
const starCount = 80

// Game is the simulation driven by the window loop.
type Game interface {
	Title() string
	Reset()
	Step(in core.InputFrame) core.StepResult
	State() core.GameState
	World() *shooter.State
	Config() config.ShooterConfig
	Ticks() int
}

// Options configures a window session.
type Options struct {
	Sound  audio.Sink  // Effect sink, nil for silence
	Logger *log.Logger // Session logger, nil to discard
}

// Window implements ebiten.Game on top of a shooter game.
// Ebitengine calls Update at a fixed TPS, so each Update is one simulation tick.
type Window struct {
	game   Game
	cfg    config.ShooterConfig
	keys   keyState
	fonts  fonts
	sound  audio.Sink
	logger *log.Logger
	stars  []core.Point
}

// New creates a window for g and loads its fonts.
func New(g Game, opts Options) (*Window, error) {
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}
	return newWindow(g, f, ebitenKeys{}, opts), nil
}

func newWindow(g Game, f fonts, ks keyState, opts Options) *Window {
	if opts.Sound == nil {
		opts.Sound = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	cfg := g.Config()
	rng := rand.New(rand.NewSource(1))
	stars := make([]core.Point, starCount)
	for i := range stars {
		stars[i] = core.Point{
			X: rng.Float64() * cfg.Playfield.Width,
			Y: rng.Float64() * cfg.Playfield.Height,
		}
	}

	return &Window{
		game:   g,
		cfg:    cfg,
		keys:   ks,
		fonts:  f,
		sound:  opts.Sound,
		logger: opts.Logger,
		stars:  stars,
	}
}

// Update polls input and advances the game by one tick.
// Returning ebiten.Termination ends RunGame cleanly.
func (w *Window) Update() error {
	in := pollInput(w.keys)
	if in.Has(core.ActionQuit) {
		w.logger.Debug("quit requested")
		return ebiten.Termination
	}

	if w.game.State().GameOver {
		if in.Has(core.ActionRestart) {
			w.game.Reset()
			w.logger.Info("retry")
		}
		return nil
	}

	result := w.game.Step(in)
	for _, e := range result.Events {
		w.sound.Play(e)
		switch e {
		case core.EventLifeLost:
			w.logger.Info("life lost", "lives", result.State.Lives, "score", result.State.Score)
		case core.EventGameOver:
			w.logger.Info("game over",
				"score", result.State.Score,
				"seconds", w.game.World().ElapsedSeconds(),
				"ticks", w.game.Ticks(),
			)
		}
	}
	return nil
}

// Layout fixes the logical screen to the playfield size; Ebitengine scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.cfg.Playfield.Width), int(w.cfg.Playfield.Height)
}

// Run opens the window and blocks until the player quits or closes it.
func Run(g Game, opts Options) error {
	w, err := New(g, opts)
	if err != nil {
		return err
	}

	cfg := g.Config()
	ebiten.SetWindowSize(int(cfg.Playfield.Width), int(cfg.Playfield.Height))
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetTPS(cfg.TickRate)

	start := time.Now()
	err = ebiten.RunGame(w)
	w.logger.Debug("window closed", "uptime", time.Since(start).Round(time.Second))
	return err
}
