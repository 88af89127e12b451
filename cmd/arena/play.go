package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/games/arena"
	"github.com/vovakirdan/tui-arena/internal/platform/tui"
	"github.com/vovakirdan/tui-arena/internal/registry"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  W/A/S/D         - Move
  Arrows, I/J/K/L - Fire
  Space           - Move faster
  P               - Pause
  R               - Restart
  Q/Esc           - Quit (records the run)
  Ctrl+C          - Quit immediately

Difficulty options:
  easy   - Slow spawns and slow enemies
  normal - Start at 30% difficulty, progresses to max
  hard   - Fast spawns and fast enemies
  fixed  - No progression

Examples:
  arena play arena
  arena play arena_classic --difficulty easy
  arena play arena --config ./my-arena.yaml`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'arena list' to see available modes", gameID)
	}

	store, logger, closeSession := openSession()
	defer closeSession()

	return playGame(gameID, runtimeConfig(), store, logger)
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openSession opens the score database and the session log. Both are
// optional: the game runs without storage and logs to nowhere when they
// cannot be opened.
func openSession() (*storage.Store, *log.Logger, func()) {
	logger, logCloser, err := tui.OpenLog(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = log.New(io.Discard)
		logCloser = io.NopCloser(nil)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		store = nil
	}

	return store, logger, func() {
		if store != nil {
			if err := store.Close(); err != nil {
				logger.Warn("closing scores database", "err", err)
			}
		}
		logCloser.Close()
	}
}

// playGame configures the arena from the command-line flags and runs one
// interactive session of gameID.
func playGame(gameID string, cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	arena.SetConfigPath(flagConfig)
	arena.SetDifficultyPreset(flagDifficulty)
	arena.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
