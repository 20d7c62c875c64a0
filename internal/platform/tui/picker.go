package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/orb-sort/internal/core"
	"github.com/vovakirdan/orb-sort/internal/games/orbsort"
	"github.com/vovakirdan/orb-sort/internal/games/orbsort/levels"
	"github.com/vovakirdan/orb-sort/internal/storage"
)

// pickerItem is one row of the level picker.
type pickerItem struct {
	ID     string
	Title  string
	Detail string
	Best   int // Best score, 0 if never solved
}

// LevelPickerModel is the level picker shown before a game starts.
type LevelPickerModel struct {
	items        []pickerItem
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	selected     string
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
	theme        Theme
}

// NewLevelPickerModel lists lvls after a "Random board" entry.
// store may be nil; it only supplies best scores for gameID.
func NewLevelPickerModel(lvls []levels.Level, store *storage.Store, gameID string, width, height int) LevelPickerModel {
	items := make([]pickerItem, 0, len(lvls)+1)
	items = append(items, pickerItem{
		ID:     orbsort.RandomLevelID,
		Title:  "Random board",
		Detail: "dealt from your config",
	})
	for _, l := range lvls {
		item := pickerItem{
			ID:     l.ID,
			Title:  l.Name,
			Detail: levelDetail(l),
		}
		items = append(items, item)
	}

	if store != nil {
		for i := range items {
			//nolint:errcheck // Best score is decoration only
			items[i].Best, _ = store.HighScore(gameID, items[i].ID)
		}
	}

	return LevelPickerModel{
		items:     items,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
		theme:     GetTheme(),
	}
}

// levelDetail summarizes a level's board.
func levelDetail(l levels.Level) string {
	kind := "fixed"
	if l.Shuffled() {
		kind = "shuffled"
	}
	return fmt.Sprintf("%d colors, %d tubes of %d, %s", l.ColorCount(), l.TubeCount(), l.Capacity, kind)
}

// Init initializes the model.
func (m LevelPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelPickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		m.choosing = false
		m.selected = m.items[m.cursor].ID
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// visibleItems returns how many rows fit between header and footer.
func (m LevelPickerModel) visibleItems() int {
	return max(3, m.height-10)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LevelPickerModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level selection.
func (m LevelPickerModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("O R B   S O R T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	end := min(m.scrollOffset+m.visibleItems(), len(m.items))
	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	for i := m.scrollOffset; i < end; i++ {
		item := m.items[i]
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		line := style.Render(fmt.Sprintf("%s%-20s", cursor, item.Title))
		detail := item.Detail
		if item.Best > 0 {
			detail += fmt.Sprintf(" · best %d", item.Best)
		}
		line += "  " + m.theme.MenuDescription.Render(detail)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	if end < len(m.items) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.Controls.Render("Up/Down: Navigate  |  Enter: Play  |  Esc: Back  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen level ID, or "" if still choosing.
func (m LevelPickerModel) Selected() string {
	if m.choosing {
		return ""
	}
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelPickerModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelPickerModel) WantsBack() bool {
	return m.back
}

// PickerResult holds the outcome of the level picker.
type PickerResult struct {
	LevelID string
	Back    bool
	Quit    bool
}

// RunLevelPicker runs the level selection screen.
func RunLevelPicker(lvls []levels.Level, store *storage.Store, gameID string, cfg core.RuntimeConfig) (PickerResult, error) {
	model := NewLevelPickerModel(lvls, store, gameID, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	m, ok := finalModel.(LevelPickerModel)
	if !ok || m.IsQuitting() {
		return PickerResult{Quit: true}, nil
	}
	if m.WantsBack() {
		return PickerResult{Back: true}, nil
	}
	return PickerResult{LevelID: m.Selected()}, nil
}
