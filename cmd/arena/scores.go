package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/registry"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresRun   string
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the best recorded runs for the specified mode.

Examples:
  arena scores arena
  arena scores arena_classic --limit 25
  arena scores --run 6ba7b810-9dad-11d1-80b4-00c04fd430c8
  arena scores arena --clear`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by its ID")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run for the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	if flagScoresRun != "" {
		if flagScoresClear {
			return errors.New("--run and --clear cannot be combined")
		}
		return runShowRun(cmd, flagScoresRun)
	}
	if len(args) == 0 {
		return errors.New("a mode is required, run 'arena list' to see available modes")
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'arena list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		n, err := store.ClearScores(gameID)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d runs for %s\n", n, game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}

	printScores(cmd, game.Title(), gameID, scores, stats)
	return nil
}

func printScores(cmd *cobra.Command, title, gameID string, scores []storage.ScoreEntry, stats *storage.GameStats) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "High Scores - %s\n", title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'arena play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %-8s  %s\n", "Rank", "Kills", "Frames", "Run", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %-8s  %s\n", "----", "-----", "------", "---", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-6d  %-8d  %-8s  %s\n",
			i+1, entry.Score, entry.Frames, entry.RunID.String()[:8], entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
}

// runShowRun prints one recorded run, including the seed needed to replay it.
func runShowRun(cmd *cobra.Command, raw string) error {
	id, err := uuid.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", raw, err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no run with id %s", id)
	}

	printRun(cmd, run)
	return nil
}

func printRun(cmd *cobra.Command, run *storage.Run) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run:    %s\n", run.RunID)
	fmt.Fprintf(out, "Mode:   %s\n", run.GameID)
	fmt.Fprintf(out, "Kills:  %d\n", run.Score)
	fmt.Fprintf(out, "Frames: %d\n", run.Frames)
	fmt.Fprintf(out, "Seed:   %d\n", run.Seed)
	fmt.Fprintf(out, "Date:   %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
}
