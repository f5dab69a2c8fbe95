package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickfield/internal/core"
	"github.com/vovakirdan/brickfield/internal/registry"
)

// SessionModel is the top-level model of a play session: the game, with
// the scoreboard on top of it when asked for. Used locally and over SSH.
type SessionModel struct {
	game     GameModel
	scores   *ScoreboardModel
	width    int
	height   int
	quitting bool
}

// NewSessionModel creates a session for game.
func NewSessionModel(game registry.Game, cfg core.RuntimeConfig, opts Options) SessionModel {
	return SessionModel{
		game:   NewGameModel(game, cfg, opts),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init starts the game.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update routes messages to the game or the scoreboard. Ticks always go to
// the game so its loop keeps running behind the scoreboard.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		if m.scores != nil {
			m.updateScores(msg)
		}
		return m.updateGame(msg)
	}

	if _, ok := msg.(TickMsg); ok || m.scores == nil {
		return m.updateGame(msg)
	}

	cmd := m.updateScores(msg)
	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.scores = nil
	}
	return m, cmd
}

func (m *SessionModel) updateScores(msg tea.Msg) tea.Cmd {
	next, cmd := m.scores.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scores = &sb
	}
	return cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.WantsScores() {
		m.game.wantScores = false
		sb := NewScoreboardModel(m.game.opts.Store, m.game.game.ID(), m.game.game.Title(), m.width, m.height)
		m.scores = &sb
	}

	return m, cmd
}

// View renders the scoreboard if open, the game otherwise.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}
	return m.game.View()
}
