package bricks

import (
	"github.com/vovakirdan/brickfield/internal/config"
	"github.com/vovakirdan/brickfield/internal/core"
)

// Model is the brick field simulation: one paddle, one ball and the
// remaining bricks. It is driven by OnFrame and PaddleTo and is not safe for
// concurrent use.
type Model struct {
	config config.BrickfieldConfig
	paddle core.Block
	ball   Ball
	bricks Bricks
	boost  BoostSource
}

// FrameReport describes the collision responses of one OnFrame call.
type FrameReport struct {
	Top, Side, Paddle bool
	BricksDestroyed   int // 0, 1 or 2
	BallLost          bool
}

// NewModel builds the starting field for cfg: the paddle at its start
// position, the ball resting on it and the full brick grid. A nil boost
// uses a uniform source over [-max_boost, +max_boost].
func NewModel(cfg config.BrickfieldConfig, boost BoostSource) *Model {
	if boost == nil {
		boost = NewUniformBoost(cfg.Ball.MaxBoost, 0)
	}

	paddle := core.BlockFromTopLeft(cfg.PaddleTopLeft(), cfg.Paddle.Dims())

	m := &Model{
		config: cfg,
		paddle: paddle,
		ball:   NewBall(paddle, cfg),
		bricks: make(Bricks, 0, cfg.Bricks.Columns*cfg.Bricks.Rows),
		boost:  boost,
	}

	dims := cfg.BrickDims()
	stepX := dims.Width + cfg.Bricks.Spacing.Width
	stepY := dims.Height + cfg.Bricks.Spacing.Height
	for col := 0; col < cfg.Bricks.Columns; col++ {
		for row := 0; row < cfg.Bricks.Rows; row++ {
			topLeft := core.Position{
				X: cfg.Bricks.SideMargin + float64(col)*stepX,
				Y: cfg.Bricks.TopMargin + float64(row)*stepY,
			}
			m.bricks = append(m.bricks, core.BlockFromTopLeft(topLeft, dims))
		}
	}

	return m
}

// Config returns the model's copy of the configuration.
func (m *Model) Config() config.BrickfieldConfig {
	return m.config
}

// Paddle returns the paddle.
func (m *Model) Paddle() core.Block {
	return m.paddle
}

// Ball returns the ball.
func (m *Model) Ball() Ball {
	return m.ball
}

// Bricks returns the remaining bricks. The slice is owned by the model and
// must not be modified.
func (m *Model) Bricks() Bricks {
	return m.bricks
}

// StubBoostWith makes every later boost equal v.
func (m *Model) StubBoostWith(v float64) {
	m.boost = FixedBoost(v)
}

// Launch sets the ball in motion.
func (m *Model) Launch() {
	m.ball.Live = true
}

// PaddleTo moves the paddle's left edge to x. The caller clamps x to the
// scene if it wants to. A resting ball follows the paddle and gets its
// initial velocity back.
func (m *Model) PaddleTo(x float64) {
	m.paddle.X = x
	if !m.ball.Live {
		m.ball = NewBall(m.paddle, m.config)
	}
}

// OnFrame advances the simulation by dt seconds. Collisions are detected on
// where the ball would be after dt; the responses change the ball's velocity
// and the ball then moves dt from where it was. A ball that would fall past
// the bottom is put back on the paddle and nothing else happens that frame.
func (m *Model) OnFrame(dt float64) FrameReport {
	var report FrameReport
	if !m.ball.Live {
		return report
	}

	holder := m.ball.Next(dt)

	if holder.HitsBottom(m.config) {
		m.ball = NewBall(m.paddle, m.config)
		report.BallLost = true
		return report
	}

	if holder.HitsTop(m.config) {
		m.ball.ReflectVertical()
		report.Top = true
	}

	if holder.HitsSide(m.config) {
		m.ball.ReflectHorizontal()
		report.Side = true
	}

	if holder.HitsBlock(m.paddle) {
		m.ball.ReflectVertical()
		report.Paddle = true
	}

	if holder.DestroyBrick(&m.bricks) {
		m.ball.ReflectVertical()
		m.ball.Velocity.DX += m.boost.Next()
		report.BricksDestroyed++

		// A ball between two bricks clears both, but bounces once.
		if holder.DestroyBrick(&m.bricks) {
			report.BricksDestroyed++
		}
	}

	m.ball = m.ball.Next(dt)
	return report
}
