// orbsort is a terminal ball sort puzzle: pour colored orbs between
// tubes until every tube holds a single color.
//
// Usage:
//
//	orbsort list                 - List variants and levels
//	orbsort play [variant]       - Play a variant (level picker unless --level)
//	orbsort menu                 - Interactive menu with scoreboard
//	orbsort scores [variant]     - Show high scores and best runs
//	orbsort solve                - Print an optimal solution for a level
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.orbsort/scores.db)
//	--config <path>      - Custom orbsort.yaml
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Log file for interactive commands
//	--theme <name>       - Color theme
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/orb-sort/internal/games/orbsort"
	"github.com/vovakirdan/orb-sort/internal/platform/tui"
	"github.com/vovakirdan/orb-sort/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagTheme    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "orbsort",
	Short: "Orb Sort - a ball sort puzzle for your terminal",
	Long: `Orb Sort is a terminal puzzle: colored orbs sit in tubes and you
pour them from tube to tube until every tube holds a single color.

Available commands:
  list     - Show variants and levels
  play     - Play a variant directly
  menu     - Interactive menu with scoreboard
  scores   - View high scores
  solve    - Print an optimal solution

Examples:
  orbsort list
  orbsort play
  orbsort play orbsort_classic --level 02_three_colors
  orbsort menu --theme pastel
  orbsort solve --level classic --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return tui.SetThemeByName(flagTheme)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom orbsort.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, "Log file for interactive commands")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Color theme: default, pastel, contrast")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(solveCmd)
}
