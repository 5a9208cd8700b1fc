// Package tui provides the Bubble Tea front end for the 2048 engine.
// It maps keys to engine commands, draws the board and records finished
// games.
package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Model is the Bubble Tea model for a 2048 session.
type Model struct {
	game      *t2048.Game
	store     *storage.Store // optional
	logger    *log.Logger
	keys      KeyMap
	theme     Theme
	help      help.Model
	sessionID string
	best      int
	last      t2048.MoveResult
	width     int
	height    int
	saved     bool // result of the current game recorded
	quitting  bool
}

// NewModel creates a model driving game. store may be nil, in which case
// nothing is recorded.
func NewModel(game *t2048.Game, store *storage.Store, cfg config.Config, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:      game,
		store:     store,
		logger:    logger,
		keys:      NewKeyMap(cfg.Keys),
		theme:     NewTheme(cfg.Theme),
		help:      help.New(),
		sessionID: newSessionID(),
	}

	if store != nil {
		best, err := store.HighScore()
		if err != nil {
			logger.Warn("cannot load high score", "err", err)
		}
		m.best = best
	}
	m.best = max(m.best, game.Score())

	return m
}

func newSessionID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keys.IsQuit(msg):
		m.quitting = true
		return m, tea.Quit
	case m.keys.IsHelp(msg):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	cmd := m.keys.Command(msg)
	if cmd == core.CommandNone {
		return m, nil
	}

	// The board is frozen once no move is possible.
	if cmd.IsMove() && m.game.IsGameOver() {
		return m, nil
	}

	m.last = m.game.Execute(cmd)

	switch cmd {
	case core.CommandRestart:
		m.sessionID = newSessionID()
		m.saved = false
		m.logger.Debug("new session", "session", m.sessionID)
	case core.CommandUndo:
		// Leaving the terminal state lets the continued game be recorded again.
		if m.last.Changed && !m.last.GameOver {
			m.saved = false
		}
	}

	m.best = max(m.best, m.game.Score())

	if m.last.GameOver && !m.saved {
		m.saveResult()
	}

	return m, nil
}

// saveResult records the finished game. Failures are logged; play goes on.
func (m *Model) saveResult() {
	m.saved = true
	if m.store == nil {
		return
	}

	entry := storage.ScoreEntry{
		SessionID: m.sessionID,
		Score:     m.game.Score(),
		MaxTile:   m.game.MaxTile(),
		Moves:     m.game.Moves(),
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Warn("cannot save score", "session", m.sessionID, "err", err)
		return
	}
	m.logger.Info("score saved", "session", m.sessionID, "score", entry.Score, "max_tile", entry.MaxTile)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{
		renderHUD(m.game.Score(), m.best, m.game.Moves()),
		RenderBoard(m.game.Board(), m.theme),
	}
	if m.game.IsGameOver() {
		parts = append(parts, renderGameOver(m.keys))
	}
	parts = append(parts, m.help.View(m.keys))

	view := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Game returns the engine driven by the model.
func (m Model) Game() *t2048.Game {
	return m.game
}

// SessionID returns the identifier of the current game.
func (m Model) SessionID() string {
	return m.sessionID
}

// Best returns the best score known to the model.
func (m Model) Best() int {
	return m.best
}

// Saved reports whether the current game has been recorded.
func (m Model) Saved() bool {
	return m.saved
}

// Run starts the Bubble Tea program for game.
func Run(game *t2048.Game, store *storage.Store, cfg config.Config, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
