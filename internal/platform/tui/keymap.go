package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// holdWindow is how long a key press keeps its action held. Terminals
// report presses but not releases, so auto-repeat refreshes the latch.
const holdWindow = 200 * time.Millisecond

// KeyMap defines the key bindings for a running arena.
type KeyMap struct {
	MoveUp    key.Binding
	MoveDown  key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding

	FireUp    key.Binding
	FireDown  key.Binding
	FireLeft  key.Binding
	FireRight key.Binding

	Fast       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding

	// Help-only groupings of the directional bindings.
	Move key.Binding
	Fire key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Fire, k.Fast, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoveUp, k.MoveDown, k.MoveLeft, k.MoveRight},
		{k.FireUp, k.FireDown, k.FireLeft, k.FireRight},
		{k.Fast, k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		MoveUp:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "move up")),
		MoveDown:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "move down")),
		MoveLeft:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "move left")),
		MoveRight: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "move right")),

		FireUp:    key.NewBinding(key.WithKeys("up", "i"), key.WithHelp("↑/i", "fire up")),
		FireDown:  key.NewBinding(key.WithKeys("down", "k"), key.WithHelp("↓/k", "fire down")),
		FireLeft:  key.NewBinding(key.WithKeys("left", "j"), key.WithHelp("←/j", "fire left")),
		FireRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "fire right")),

		Fast: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fast"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),

		Move: key.NewBinding(
			key.WithKeys("w", "a", "s", "d"),
			key.WithHelp("wasd", "move"),
		),
		Fire: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("arrows/ijkl", "fire"),
		),
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for keys without a game meaning.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.MoveUp):
		return core.ActionMoveUp
	case key.Matches(msg, k.MoveDown):
		return core.ActionMoveDown
	case key.Matches(msg, k.MoveLeft):
		return core.ActionMoveLeft
	case key.Matches(msg, k.MoveRight):
		return core.ActionMoveRight
	case key.Matches(msg, k.FireUp):
		return core.ActionFireUp
	case key.Matches(msg, k.FireDown):
		return core.ActionFireDown
	case key.Matches(msg, k.FireLeft):
		return core.ActionFireLeft
	case key.Matches(msg, k.FireRight):
		return core.ActionFireRight
	case key.Matches(msg, k.Fast):
		return core.ActionFast
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// isHeld reports whether the action is a held control rather than a
// one-shot command.
func isHeld(a core.Action) bool {
	switch a {
	case core.ActionMoveUp, core.ActionMoveDown, core.ActionMoveLeft, core.ActionMoveRight,
		core.ActionFireUp, core.ActionFireDown, core.ActionFireLeft, core.ActionFireRight,
		core.ActionFast:
		return true
	}
	return false
}

var opposite = map[core.Action]core.Action{
	core.ActionMoveUp:    core.ActionMoveDown,
	core.ActionMoveDown:  core.ActionMoveUp,
	core.ActionMoveLeft:  core.ActionMoveRight,
	core.ActionMoveRight: core.ActionMoveLeft,
	core.ActionFireUp:    core.ActionFireDown,
	core.ActionFireDown:  core.ActionFireUp,
	core.ActionFireLeft:  core.ActionFireRight,
	core.ActionFireRight: core.ActionFireLeft,
}

// HeldKeys latches held actions for a number of ticks after each press.
type HeldKeys struct {
	window int
	held   map[core.Action]int
}

// NewHeldKeys creates a latch whose presses last window ticks.
func NewHeldKeys(window int) *HeldKeys {
	if window < 1 {
		window = 1
	}
	return &HeldKeys{
		window: window,
		held:   make(map[core.Action]int),
	}
}

// holdTicks converts the hold window to ticks at the given rate.
func holdTicks(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return int(time.Duration(tickRate) * holdWindow / time.Second)
}

// Press latches a for the full window and releases its opposite.
func (h *HeldKeys) Press(a core.Action) {
	if o, ok := opposite[a]; ok {
		delete(h.held, o)
	}
	h.held[a] = h.window
}

// Release drops a immediately.
func (h *HeldKeys) Release(a core.Action) {
	delete(h.held, a)
}

// Frame returns the currently held actions.
func (h *HeldKeys) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for a := range h.held {
		f.Set(a)
	}
	return f
}

// Advance counts down one tick, expiring latches that ran out.
func (h *HeldKeys) Advance() {
	for a, n := range h.held {
		if n <= 1 {
			delete(h.held, a)
			continue
		}
		h.held[a] = n - 1
	}
}

// Reset drops every latch.
func (h *HeldKeys) Reset() {
	clear(h.held)
}
