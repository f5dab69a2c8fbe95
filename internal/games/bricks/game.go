package bricks

import (
	"fmt"

	"github.com/vovakirdan/brickfield/internal/config"
	"github.com/vovakirdan/brickfield/internal/core"
	"github.com/vovakirdan/brickfield/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

// Brick colors by grid row, cycling.
var brickColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
}

// Game states
const (
	StateServe    = "serve"    // Ball resting on the paddle
	StatePlaying  = "playing"  // Ball in play
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // Field cleared
)

// Minimum terminal size the field is drawn at.
const (
	minScreenW = 30
	minScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game runs the brick field model as an arcade game: lives, score, serve
// and pause states, and a terminal rendering of the scene.
type Game struct {
	model *Model
	boost *UniformBoost

	state     string
	score     int
	lives     int
	tickCount int

	runtime    core.RuntimeConfig
	cfg        config.BrickfieldConfig
	difficulty *config.DifficultyManager

	screenTooSmall bool
}

// New creates a new game instance. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bricks"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Brickfield"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBrickfield(configPath)
	if err != nil {
		cfg = config.DefaultBrickfieldConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBrickfieldPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.boost = NewUniformBoost(cfg.Ball.MaxBoost, runtime.Seed)
	g.model = NewModel(cfg, g.boost)

	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.tickCount = 0
	g.state = StateServe
}

// Model returns the underlying simulation.
func (g *Game) Model() *Model {
	return g.model
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := g.runtime.FrameTime() * g.difficulty.Speed(1, g.score, g.tickCount)

	g.movePaddle(in, dt)

	if g.state == StateServe {
		if !in.Has(core.ActionLaunch) {
			return core.StepResult{State: g.State()}
		}
		g.model.Launch()
		g.state = StatePlaying
	}

	report := g.model.OnFrame(dt)
	events := g.applyReport(report)

	return core.StepResult{State: g.State(), Events: events}
}

// movePaddle applies keyboard and pointer input to the paddle.
func (g *Game) movePaddle(in core.InputFrame, dt float64) {
	paddle := g.model.Paddle()
	x := paddle.X

	step := g.cfg.Paddle.Speed * dt
	if in.Has(core.ActionLeft) {
		x -= step
	}
	if in.Has(core.ActionRight) {
		x += step
	}

	// The pointer wins over keys: the paddle centers under it.
	if in.HasPointer {
		x = g.sceneX(in.Pointer) - paddle.Width/2
	}

	x = core.ClampF(x, 0, g.cfg.Scene.Width-paddle.Width)
	if x != paddle.X {
		g.model.PaddleTo(x)
	}
}

// applyReport turns a frame report into score, lives and events.
func (g *Game) applyReport(report FrameReport) []core.Event {
	var events []core.Event

	if report.BallLost {
		events = append(events, core.EventMiss)
		g.lives--
		if g.lives <= 0 {
			g.lives = 0
			g.state = StateGameOver
		} else {
			g.state = StateServe
		}
		return events
	}

	if report.Top || report.Side {
		events = append(events, core.EventWall)
	}
	if report.Paddle {
		events = append(events, core.EventPaddle)
	}
	if report.BricksDestroyed > 0 {
		events = append(events, core.EventBrick)
		g.score += report.BricksDestroyed * g.cfg.Gameplay.BrickPoints

		if len(g.model.Bricks()) == 0 {
			events = append(events, core.EventWin)
			g.state = StateWin
		}
	}

	return events
}

// Field layout: row 0 is the HUD, the scene fills the rows below it.

func (g *Game) fieldRows() int {
	return g.runtime.ScreenH - 1
}

func (g *Game) col(x float64) int {
	return int(x / g.cfg.Scene.Width * float64(g.runtime.ScreenW))
}

func (g *Game) row(y float64) int {
	return 1 + int(y/g.cfg.Scene.Height*float64(g.fieldRows()))
}

// sceneX maps a terminal column to the scene x at the column's center.
func (g *Game) sceneX(col int) float64 {
	return (float64(col) + 0.5) * g.cfg.Scene.Width / float64(g.runtime.ScreenW)
}

// blockRect maps a scene block to the cells it covers, at least one cell.
func (g *Game) blockRect(b core.Block) core.Rect {
	x0, x1 := g.col(b.X), g.col(b.Right())
	y0, y1 := g.row(b.Y), g.row(b.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// brickRow returns the grid row a brick was built in.
func (g *Game) brickRow(b core.Block) int {
	pitch := g.cfg.BrickDims().Height + g.cfg.Bricks.Spacing.Height
	if pitch <= 0 {
		return 0
	}
	return int((b.Y - g.cfg.Bricks.TopMargin) / pitch)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderHUD(dst)
	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))

	left := fmt.Sprintf("Bricks: %d", len(g.model.Bricks()))
	dst.DrawText(dst.Width()-len(left)-1, 0, left)
}

func (g *Game) renderBricks(dst *core.Screen) {
	for _, b := range g.model.Bricks() {
		c := brickColors[g.brickRow(b)%len(brickColors)]
		dst.DrawRect(g.blockRect(b), BrickChar, c)
	}
}

func (g *Game) renderPaddle(dst *core.Screen) {
	r := g.blockRect(g.model.Paddle())
	r.H = 1
	dst.DrawRect(r, PaddleChar, core.ColorWhite)
}

func (g *Game) renderBall(dst *core.Screen) {
	ball := g.model.Ball()
	x := core.Clamp(g.col(ball.Center.X), 0, g.runtime.ScreenW-1)
	y := core.Clamp(g.row(ball.Center.Y), 1, g.runtime.ScreenH-1)
	dst.SetColored(x, y, BallChar, core.ColorWhite)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))

	case StateWin:
		g.drawCenteredBox(dst, "FIELD CLEARED!", fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score))
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
		Bricks:   g.cfg.Bricks.Columns*g.cfg.Bricks.Rows - len(g.model.Bricks()),
		Ticks:    g.tickCount,
	}
}

// Phase returns the game's state name (serve, playing, paused, gameover, win).
func (g *Game) Phase() string {
	return g.state
}

func init() {
	registry.Register("bricks", func() registry.Game {
		return New()
	})
}
