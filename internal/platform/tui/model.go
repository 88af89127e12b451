package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/registry"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

// helpRows is the number of rows below the playfield reserved for key help.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// frameCounter is implemented by games that report how many ticks they ran.
type frameCounter interface {
	Frames() uint64
}

// Model is the Bubble Tea model for running an arena game.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	store   *storage.Store
	config  core.RuntimeConfig
	logger  *log.Logger
	keys    KeyMap
	help    help.Model
	held    *HeldKeys
	pending core.InputFrame

	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the current run has been recorded
	err        error
}

// NewModel creates a Bubble Tea model for the given game and resets it.
// A nil logger discards log records.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := game.Reset(cfg); err != nil {
		return Model{}, err
	}
	logger.Info("game started", "game", game.ID(), "seed", cfg.Seed, "tick_rate", cfg.TickRate)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-helpRows, 1)),
		store:     store,
		config:    cfg,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		held:      NewHeldKeys(holdTicks(cfg.TickRate)),
		pending:   core.NewInputFrame(),
		gameState: game.State(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
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

// handleKey latches held controls and queues one-shot commands.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionNone:
	case isHeld(action):
		m.held.Press(action)
	default:
		m.pending.Set(action)
	}
	return m, nil
}

// handleResize resizes the screen buffer. The world keeps its own units
// so the game is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick merges the held and queued input and steps the game once.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.pending.Has(core.ActionRestart) {
		m.pending.Clear()
		return m.restart()
	}

	in := m.held.Frame()
	for a := range m.pending.Actions {
		in.Set(a)
	}
	m.pending.Clear()
	m.held.Advance()

	result := m.game.Step(in)
	m.gameState = result.State

	if result.Err != nil {
		m.logger.Error("simulation stopped", "game", m.game.ID(), "err", result.Err)
		m.err = result.Err
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameState.GameOver {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// restart records the current run and starts a new one with a fresh seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.saveRun()

	m.config.Seed = time.Now().UnixNano()
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Error("restart failed", "game", m.game.ID(), "err", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	m.logger.Info("game restarted", "game", m.game.ID(), "seed", m.config.Seed)

	m.held.Reset()
	m.gameState = m.game.State()
	m.scoreSaved = false
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current run once. Runs without kills are not kept.
func (m *Model) saveRun() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	state := m.game.State()

	var frames uint64
	if fc, ok := m.game.(frameCounter); ok {
		frames = fc.Frames()
	}

	if m.store == nil || state.Score <= 0 {
		m.logger.Debug("run not recorded", "game", m.game.ID(), "kills", state.Score, "frames", frames)
		return
	}

	run, err := m.store.SaveRun(storage.Run{
		GameID: m.game.ID(),
		Score:  state.Score,
		Frames: frames,
		Seed:   m.config.Seed,
	})
	if err != nil {
		m.logger.Warn("could not record run", "game", m.game.ID(), "err", err)
		return
	}
	m.logger.Info("run recorded", "game", run.GameID, "run_id", run.RunID, "kills", run.Score, "frames", run.Frames)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	dir := filepath.Join(home, ".arena", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, store, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := finalModel.(Model); ok {
		return fm.Err()
	}
	return nil
}
