package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/platform/tui"
)

// runMenu shows the mode picker and plays the chosen mode, returning to
// the menu after each session.
func runMenu(_ *cobra.Command, _ []string) error {
	store, logger, closeSession := openSession()
	defer closeSession()

	cfg := runtimeConfig()
	preset := config.ParsePreset(flagDifficulty)

	for {
		menuResult, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		preset = menuResult.Difficulty

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		flagDifficulty = string(preset)
		if err := playGame(menuResult.GameID, cfg, store, logger); err != nil {
			logger.Error("session failed", "game", menuResult.GameID, "err", err)
			return err
		}
	}
}
