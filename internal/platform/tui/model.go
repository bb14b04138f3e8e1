// Package tui provides the Bubble Tea integration for the shooter.
// It handles the terminal UI loop, input mapping and the SSH server.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Game is the simulation driven by the terminal loop.
// It contains pure logic with no Bubble Tea dependency.
type Game interface {
	ID() string
	Reset()
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Elapsed() time.Duration
	Ticks() int
}

// Options configures a terminal session.
type Options struct {
	Width     int         // Initial terminal width in cells
	Height    int         // Initial terminal height in cells
	TickRate  int         // Simulation ticks per second
	HoldTicks int         // Ticks a direction stays held after its last key event
	Sound     audio.Sink  // Effect sink, nil for silence
	Logger    *log.Logger // Session logger, nil to discard
}

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model for a shooter session.
type Model struct {
	game     Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	frame    core.InputFrame
	hold     holdTracker
	sound    audio.Sink
	logger   *log.Logger
	tickRate int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	if opts.TickRate < 1 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Sound == nil {
		opts.Sound = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = opts.Width

	return Model{
		game:     game,
		screen:   core.NewScreen(opts.Width, playRows(opts.Height)),
		keys:     DefaultKeyMap(),
		help:     h,
		frame:    core.NewInputFrame(),
		hold:     newHoldTracker(opts.HoldTicks),
		sound:    opts.Sound,
		logger:   opts.Logger,
		tickRate: opts.TickRate,
	}
}

// playRows returns the rows left for the game once the help line is reserved.
func playRows(height int) int {
	return core.Max(height-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records key events for the next tick. Quit is handled immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a := m.keys.MapKey(msg); a {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Debug("quit requested", "game", m.game.ID())
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.hold.press(a)
	case core.ActionFire, core.ActionRestart:
		m.frame.Set(a)
	}

	return m, nil
}

// handleResize only changes the cell mapping; the playfield keeps its logical size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step, or waits for retry once the game is over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.State().GameOver {
		if m.frame.Has(core.ActionRestart) {
			m.game.Reset()
			m.hold.release()
			m.logger.Info("retry", "game", m.game.ID())
		}
		m.frame.Clear()
		return m, tickCmd(m.tickRate)
	}

	m.hold.apply(&m.frame)
	result := m.game.Step(m.frame)
	for _, e := range result.Events {
		m.sound.Play(e)
		m.logEvent(e, result.State)
	}

	m.frame.Clear()
	m.hold.tick()

	return m, tickCmd(m.tickRate)
}

func (m Model) logEvent(e core.EventKind, st core.GameState) {
	switch e {
	case core.EventLifeLost:
		m.logger.Info("life lost", "lives", st.Lives, "score", st.Score)
	case core.EventGameOver:
		m.logger.Info("game over",
			"score", st.Score,
			"seconds", int(m.game.Elapsed()/time.Second),
			"ticks", m.game.Ticks(),
		)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(game Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
