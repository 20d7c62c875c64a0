package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/orb-sort/internal/config"
	"github.com/vovakirdan/orb-sort/internal/core"
	"github.com/vovakirdan/orb-sort/internal/logging"
	"github.com/vovakirdan/orb-sort/internal/registry"
	"github.com/vovakirdan/orb-sort/internal/storage"
)

// levelReporter is implemented by games that play named levels.
type levelReporter interface {
	LevelID() string
}

// resizer is implemented by games that adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// helpRows is the space kept below the game screen for key help.
const helpRows = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	back       bool // Esc pressed: return to the menu
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = logging.Discard()
	}

	cfg.ScreenH = gameHeight(cfg.ScreenH)
	game.Reset(cfg)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, &m.inputFrame)

	switch {
	case m.inputFrame.Has(core.ActionQuit):
		m.quitting = true
		m.recordAbandoned()
		return m, tea.Quit
	case m.inputFrame.Has(core.ActionBack):
		m.back = true
		m.recordAbandoned()
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = gameHeight(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	// Keep the round going when the game can adapt in place
	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Finished {
		m.record(result.State)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// levelID returns the level of the running game, if it has one.
func (m Model) levelID() string {
	if lr, ok := m.game.(levelReporter); ok {
		return lr.LevelID()
	}
	return ""
}

// record stores a finished round: a score when solved, and a run either way.
func (m Model) record(state core.GameState) {
	if m.store == nil {
		return
	}
	levelID := m.levelID()

	if state.Won && state.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), levelID, state.Score); err != nil {
			m.logger.Warn("cannot save score", "error", err)
		}
	}

	runID, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		LevelID:  levelID,
		Seed:     m.config.Seed,
		Moves:    state.Moves,
		Duration: state.Ticks / m.config.TickRate,
		Solved:   state.Won,
	})
	if err != nil {
		m.logger.Warn("cannot save run", "error", err)
		return
	}
	m.logger.Debug("run recorded", "run", runID, "level", levelID, "solved", state.Won, "moves", state.Moves)
}

// recordAbandoned stores the current round when the player leaves mid-game.
func (m Model) recordAbandoned() {
	if m.gameState.GameOver || m.gameState.Moves == 0 {
		return
	}
	m.record(m.gameState)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(config.UserDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys))
}

// gameHeight is the terminal height left for the game screen.
func gameHeight(termH int) int {
	return max(termH-helpRows, 1)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// WantsBack returns true if the player left for the menu.
func (m Model) WantsBack() bool {
	return m.back
}

// Run starts the Bubble Tea program with the given game.
// It returns true when the player pressed Esc to go back to the menu.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (back bool, err error) {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.WantsBack(), nil
	}
	return false, nil
}
