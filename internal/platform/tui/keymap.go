package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// KeyMap defines key bindings for the shooter.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
	Retry key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings for the footer help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Retry, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Retry, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "fire"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Retry):
		return core.ActionRestart
	}
	return core.ActionNone
}

// holdTracker emulates held direction keys. Terminals report presses (and
// auto-repeats) but never releases, so a direction stays held for a fixed
// number of ticks after its last key event.
type holdTracker struct {
	window int
	left   int
	right  int
}

func newHoldTracker(window int) holdTracker {
	if window < 1 {
		window = 1
	}
	return holdTracker{window: window}
}

// press records a direction key event. The opposite direction is released.
func (h *holdTracker) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.window
		h.right = 0
	case core.ActionRight:
		h.right = h.window
		h.left = 0
	}
}

// apply marks the currently held directions in the frame.
func (h *holdTracker) apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
	}
}

// tick ages both directions by one simulation tick.
func (h *holdTracker) tick() {
	if h.left > 0 {
		h.left--
	}
	if h.right > 0 {
		h.right--
	}
}

func (h *holdTracker) release() {
	h.left = 0
	h.right = 0
}
