package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/games/arena"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

var (
	flagSimTicks   int
	flagSimInput   string
	flagSimClassic bool
	flagSimRecord  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Step a fresh arena without a terminal UI, holding the same input on
every tick, then log a summary of the final world.

Input is a comma-separated list of held controls:
  w, a, s, d              - Move
  up, down, left, right   - Fire
  fast                    - Fast-move modifier

Examples:
  arena sim --ticks 600
  arena sim --ticks 3600 --input d,right --seed 42
  arena sim --classic --difficulty hard --record`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 600, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimInput, "input", "", "Held input, e.g. d,right,fast")
	simCmd.Flags().BoolVar(&flagSimClassic, "classic", false, "Move enemies one unit per tick")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Record the run in the scores database")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "arena-sim",
	})

	in, err := arena.ParseInput(flagSimInput)
	if err != nil {
		return err
	}

	cfg, err := config.LoadArena(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyArenaPreset(&cfg, config.ParsePreset(flagDifficulty))
	gameID := "arena"
	if flagSimClassic {
		cfg.Enemy.Homing = config.HomingPerTick
		gameID = "arena_classic"
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.RuntimeConfig{TickRate: flagFPS, Seed: seed}

	logger.Info("simulating", "game", gameID, "ticks", flagSimTicks, "seed", seed, "input", flagSimInput)
	start := time.Now()
	sum, err := arena.RunHeadless(cfg, seed, flagSimTicks, rt.Delta(), in, logger)
	if err != nil {
		return err
	}

	logger.Info("simulation finished",
		"frames", sum.Frames,
		"kills", sum.Kills,
		"enemies", sum.Enemies,
		"bullets", sum.Bullets,
		"spawned", sum.Spawned,
		"culled", sum.Culled,
		"exhausted", sum.Exhausted,
		"game_time", fmt.Sprintf("%.2fs", sum.Elapsed),
		"wall_time", time.Since(start).Round(time.Millisecond),
		"hash", fmt.Sprintf("%016x", sum.Hash),
	)

	if !flagSimRecord {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.SaveRun(storage.Run{
		GameID: gameID,
		Score:  sum.Kills,
		Frames: sum.Frames,
		Seed:   seed,
	})
	if err != nil {
		return err
	}
	logger.Info("run recorded", "run_id", run.RunID)
	fmt.Fprintln(cmd.OutOrStdout(), run.RunID)
	return nil
}
