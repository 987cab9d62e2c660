package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/frame-arcade/internal/core"
	"github.com/vovakirdan/frame-arcade/internal/registry"
	"github.com/vovakirdan/frame-arcade/internal/storage"
)

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	best       int // Persisted best score, read once per session
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger.With("game", game.ID()),
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	m.best = m.loadBest()
	return m
}

// loadBest reads the stored best score; storage failures count as zero.
func (m Model) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.BestScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read best score", "error", err)
		return 0
	}
	return best
}

// resetGame restarts the game and hands it the persisted best score.
func (m *Model) resetGame() {
	m.game.Reset(m.config)
	if aware, ok := m.game.(registry.BestScoreAware); ok {
		aware.SetBestScore(m.best)
	}
	m.gameState = m.game.State()
	m.scoreSaved = false
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.resetGame()
	m.logger.Info("session started", "seed", m.config.Seed, "fps", m.config.TickRate, "best", m.best)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("session ended", "score", m.gameState.Score)
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Update screen size
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Viewports depend on the terminal size, so an unfinished round restarts
	if !m.gameState.GameOver {
		m.resetGame()
	}
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.resetGame()
		m.logger.Info("round restarted")
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, ev := range result.Events {
		m.logger.Debug("event", "type", ev.Type, "value", ev.Value)
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.recordResult()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordResult persists the finished round. Storage failures are logged and
// never interrupt play.
func (m *Model) recordResult() {
	id := m.game.ID()
	score := m.gameState.Score
	m.logger.Info("game over", "score", score, "won", m.gameState.Won)

	if m.store == nil {
		return
	}
	if score > 0 {
		if _, err := m.store.SaveScore(id, score, m.gameState.Won); err != nil {
			m.logger.Error("could not save score", "error", err)
		}
	}

	improved, err := m.store.SaveBestScore(id, score)
	if err != nil {
		m.logger.Error("could not save best score", "error", err)
		return
	}
	if improved {
		m.logger.Info("new best score", "score", score, "previous", m.best)
		m.best = score
		if aware, ok := m.game.(registry.BestScoreAware); ok {
			aware.SetBestScore(m.best)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot dir", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Best returns the best score known to the session.
func (m Model) Best() int {
	return m.best
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer motion drives the paddle and cursor
	)

	_, err := p.Run()
	return err
}
