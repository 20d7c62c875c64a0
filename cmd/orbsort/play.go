package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orb-sort/internal/games/orbsort"
	"github.com/vovakirdan/orb-sort/internal/registry"
)

var flagLevel string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing. Without --level a level picker is shown first.

Variants:
  orbsort          - Pour whole same-color runs; sorted tubes win (default)
  orbsort_classic  - One orb per move; every tube must be full and sorted

Controls:
  ←/→ H/L     - Move the tube cursor
  Space/Enter - Pick up / drop on the cursor tube
  1-9         - Pick a tube directly
  X           - Hint
  R           - Restart the board
  P           - Pause
  F2          - Write the board to the log
  Esc         - Back to the level picker
  Q/Ctrl+C    - Quit

Examples:
  orbsort play
  orbsort play orbsort_classic
  orbsort play --level 03_five_colors
  orbsort play --level random --seed 42
  orbsort play --config ./my-orbsort.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID, or \"random\" for a board dealt from the config")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := string(orbsort.VariantBatch)
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q\nRun 'orbsort list' to see available variants", gameID)
	}

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
	playVariant(e, store, gameID, flagLevel, &cfg)
	return nil
}
