package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orb-sort/internal/core"
	"github.com/vovakirdan/orb-sort/internal/games/orbsort"
	"github.com/vovakirdan/orb-sort/internal/platform/tui"
	"github.com/vovakirdan/orb-sort/internal/registry"
	"github.com/vovakirdan/orb-sort/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start in interactive menu mode.

Pick a variant, then a level. Esc in a game returns to the level picker,
Esc in the picker returns to the menu. Tab opens the scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  orbsort menu
  orbsort menu --fps 30
  orbsort menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.close()

	store := openStore(e.logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		if quit := playVariant(e, store, menuResult.GameID, "", &cfg); quit {
			return nil
		}
	}
}

// playVariant loops level picker and game until the player backs out of
// the picker. A non-empty level skips the picker and plays once.
// It returns true when the player quit.
func playVariant(e *env, store *storage.Store, gameID, level string, cfg *core.RuntimeConfig) bool {
	for {
		levelID := level
		if levelID == "" {
			picked, err := tui.RunLevelPicker(e.settings.Levels, store, gameID, *cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return true
			}
			if picked.Quit {
				return true
			}
			if picked.Back {
				return false
			}
			levelID = picked.LevelID
		}
		orbsort.SetLevel(levelID)

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			return false
		}

		cfg.Seed = newSeed()
		e.logger.Info("starting game", "game", gameID, "level", levelID, "seed", cfg.Seed)

		back, err := tui.Run(game, store, e.logger, *cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return false
		}
		// Esc returns to the picker; a fixed level has none
		if !back || level != "" {
			return !back
		}
	}
}
