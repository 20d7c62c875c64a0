package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/orb-sort/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "orbs", core.ColorRed)
	s.DrawText(5, 0, "tubes")
	s.SetColored(0, 1, '●', core.ColorPink)

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rendered %d line breaks, want 1", got)
	}
	for _, want := range []string{"orbs", "tubes", "●"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
	if w := lipgloss.Width(strings.Split(out, "\n")[0]); w != 12 {
		t.Errorf("first row width = %d, want 12", w)
	}
}

func TestThemes(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultTheme()) })

	for _, name := range ThemeNames() {
		if err := SetThemeByName(name); err != nil {
			t.Fatalf("SetThemeByName(%q) failed: %v", name, err)
		}
		theme := GetTheme()
		if theme.Name != name {
			t.Errorf("theme name = %q, want %q", theme.Name, name)
		}
		for c := core.ColorDefault; c <= core.ColorGray; c++ {
			if _, ok := theme.Palette[c]; !ok {
				t.Errorf("theme %s has no style for color %d", name, c)
			}
		}
	}

	if err := SetThemeByName("neon"); err == nil {
		t.Error("expected an error for an unknown theme")
	}
}
