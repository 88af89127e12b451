// arena is a terminal arena shooter: move, fire in four directions and
// destroy the enemies that keep spawning around you.
//
// Usage:
//
//	arena                    - Start the mode picker menu
//	arena list               - List available modes
//	arena play <mode>        - Play a mode directly
//	arena scores <mode>      - Show high scores for a mode
//	arena sim                - Run the simulation headless and log a summary
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.arena/scores.db)
//	--log-level <level>  - Set log verbosity (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/platform/tui"

	// Import games to register them
	_ "github.com/vovakirdan/tui-arena/internal/games/arena"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Arena - a top-down shooter in your terminal",
	Long: `Arena is a top-down shooter played in the terminal. Move with WASD,
fire with the arrow keys and survive the enemies homing in on you.

Running arena without a command opens the mode picker menu.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  scores   - View high scores
  sim      - Run the simulation without a terminal UI

Examples:
  arena
  arena play arena --difficulty hard
  arena scores arena_classic
  arena sim --ticks 3600 --input d,right --seed 42`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arena/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", tui.DefaultLogPath, "Log file for interactive sessions")

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}
