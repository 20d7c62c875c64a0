package tui

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/orb-sort/internal/core"
)

// Theme contains the visual styles for the board and menus.
type Theme struct {
	Name string

	// Palette maps screen colors to terminal styles
	Palette map[core.Color]lipgloss.Style

	// Menu and picker styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	Controls        lipgloss.Style
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// DefaultTheme returns the ANSI 16-color theme with 256-color extras.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault:       lipgloss.NewStyle(),
			core.ColorRed:           fg("1"),
			core.ColorGreen:         fg("2"),
			core.ColorYellow:        fg("3"),
			core.ColorBlue:          fg("4"),
			core.ColorMagenta:       fg("5"),
			core.ColorCyan:          fg("6"),
			core.ColorWhite:         fg("7"),
			core.ColorBrightRed:     fg("9"),
			core.ColorBrightGreen:   fg("10"),
			core.ColorBrightYellow:  fg("11"),
			core.ColorBrightBlue:    fg("12"),
			core.ColorBrightMagenta: fg("13"),
			core.ColorBrightCyan:    fg("14"),
			core.ColorBrightWhite:   fg("15"),
			core.ColorOrange:        fg("208"),
			core.ColorPink:          fg("205"),
			core.ColorGray:          fg("245"),
		},
		MenuTitle:       fg("51").Bold(true),
		MenuItemNormal:  fg("252"),
		MenuItemActive:  fg("226").Bold(true),
		MenuDescription: fg("245"),
		Controls:        fg("241"),
	}
}

// PastelTheme returns a softer theme.
func PastelTheme() Theme {
	t := DefaultTheme()
	t.Name = "pastel"
	t.Palette[core.ColorRed] = fg("210")
	t.Palette[core.ColorGreen] = fg("157")
	t.Palette[core.ColorYellow] = fg("229")
	t.Palette[core.ColorBrightBlue] = fg("153")
	t.Palette[core.ColorMagenta] = fg("183")
	t.Palette[core.ColorOrange] = fg("216")
	t.Palette[core.ColorCyan] = fg("123")
	t.Palette[core.ColorPink] = fg("218")
	t.MenuTitle = fg("183").Bold(true)
	t.MenuItemActive = fg("229").Bold(true)
	return t
}

// HighContrastTheme returns bold bright colors for low-contrast terminals.
func HighContrastTheme() Theme {
	t := DefaultTheme()
	t.Name = "contrast"
	for c, style := range t.Palette {
		t.Palette[c] = style.Bold(true)
	}
	t.Palette[core.ColorRed] = fg("196").Bold(true)
	t.Palette[core.ColorGreen] = fg("46").Bold(true)
	t.Palette[core.ColorYellow] = fg("226").Bold(true)
	t.Palette[core.ColorBrightBlue] = fg("33").Bold(true)
	t.Palette[core.ColorGray] = fg("250")
	return t
}

var themes = map[string]func() Theme{
	"default":  DefaultTheme,
	"pastel":   PastelTheme,
	"contrast": HighContrastTheme,
}

// ThemeNames returns the names accepted by SetThemeByName.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global theme variable (can be changed at runtime)
var (
	themeMu      sync.RWMutex
	currentTheme = DefaultTheme()
)

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = t
}

// SetThemeByName selects one of the built-in themes.
func SetThemeByName(name string) error {
	f, ok := themes[name]
	if !ok {
		return fmt.Errorf("tui: unknown theme %q (have %v)", name, ThemeNames())
	}
	SetTheme(f())
	return nil
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}
