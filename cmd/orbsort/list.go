package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orb-sort/internal/games/orbsort"
	"github.com/vovakirdan/orb-sort/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List variants and levels",
	Long:  `Shows the registered rule variants and every level, embedded and user.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	defer e.close()

	games := registry.List()

	fmt.Println("Variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Rules")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Description)
	}

	fmt.Println()
	fmt.Println("Levels:")
	fmt.Println()

	lvls := e.settings.Levels
	maxIDLen = len(orbsort.RandomLevelID)
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-20s  %6s  %5s  %s\n", maxIDLen, "ID", "Name", "Colors", "Tubes", "Source")
	fmt.Printf("  %-*s  %-20s  %6s  %5s  %s\n", maxIDLen, "--", "----", "------", "-----", "------")
	for _, l := range lvls {
		source := "embedded"
		if l.FilePath != "" {
			source = l.FilePath
		}
		fmt.Printf("  %-*s  %-20s  %6d  %5d  %s\n", maxIDLen, l.ID, l.Name, l.ColorCount(), l.TubeCount(), source)
	}
	board := e.settings.Config.Board
	fmt.Printf("  %-*s  %-20s  %6d  %5d  %s\n", maxIDLen, orbsort.RandomLevelID, "Random",
		board.Colors, board.Colors+board.EmptyTubes, "config")

	fmt.Println()
	fmt.Println("Run 'orbsort play <variant> --level <id>' to play.")
	return nil
}
