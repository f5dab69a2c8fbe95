package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickfield/internal/audio"
	"github.com/vovakirdan/brickfield/internal/core"
	"github.com/vovakirdan/brickfield/internal/registry"
	"github.com/vovakirdan/brickfield/internal/storage"
)

// Options configures a game session.
type Options struct {
	Store  *storage.Store // nil disables run recording
	Player string         // recorded with each run
	Sound  bool
	Logger *log.Logger // nil uses the default logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

// GameModel is the Bubble Tea model for a running game. The last terminal
// row holds the help bar; the game gets the rest.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	quitting   bool
	wantScores bool
	runSaved   bool // Whether the current run has been recorded
}

// NewGameModel creates a model for game. cfg holds the full terminal size.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = fieldHeight(cfg.ScreenH)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
	}
}

func fieldHeight(termH int) int {
	if termH > 1 {
		return termH - 1
	}
	return termH
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.logger().Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Scores):
		if m.opts.Store != nil && (m.gameState.GameOver || m.gameState.Paused) {
			m.wantScores = true
		}
		return m, nil
	}

	if action := m.keys.ActionFor(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse centers the paddle under the pointer; a left click launches.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.PointAt(msg.X)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Set(core.ActionLaunch)
	}
	return m, nil
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = fieldHeight(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	// The scene is mapped to the terminal size, so a resize starts over.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	logger := m.opts.logger()

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		logger.Debug("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, e := range result.Events {
		logger.Debug("event", "game", m.game.ID(), "event", e, "score", result.State.Score, "lives", result.State.Lives)
	}
	if m.opts.Sound {
		audio.Play(result.Events)
	}

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Empty runs are not kept.
func (m GameModel) saveRun() {
	logger := m.opts.logger()
	logger.Info("game over",
		"game", m.game.ID(),
		"player", m.opts.Player,
		"score", m.gameState.Score,
		"won", m.gameState.Won,
		"bricks", m.gameState.Bricks,
	)

	if m.opts.Store == nil || m.gameState.Score == 0 {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  m.gameState.Score,
		Won:    m.gameState.Won,
		Bricks: m.gameState.Bricks,
		Ticks:  m.gameState.Ticks,
		Seed:   m.config.Seed,
	})
	if err != nil {
		logger.Warn("could not save run", "error", err)
	}
}

// View renders the game and the help bar.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if the user asked to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// WantsScores returns true if the user asked for the scoreboard.
func (m GameModel) WantsScores() bool {
	return m.wantScores
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run plays game in the local terminal until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
