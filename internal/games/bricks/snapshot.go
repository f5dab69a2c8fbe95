package bricks

import (
	"math"

	"github.com/vovakirdan/brickfield/internal/core"
)

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick  uint64
	Score int
	Lives int
	State string

	PaddleX float64

	BallX, BallY   float64
	BallDX, BallDY float64
	BallLive       bool

	// Remaining bricks, 2 floats each (X, Y). All bricks share one size.
	BricksRemaining int
	BrickData       []float64

	// Boost generator state
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := g.model.Bricks()
	brickData := make([]float64, 0, len(bricks)*2)
	for _, b := range bricks {
		brickData = append(brickData, b.X, b.Y)
	}

	ball := g.model.Ball()
	return Snapshot{
		Tick:  uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score: g.score,
		Lives: g.lives,
		State: g.state,

		PaddleX: g.model.Paddle().X,

		BallX:    ball.Center.X,
		BallY:    ball.Center.Y,
		BallDX:   ball.Velocity.DX,
		BallDY:   ball.Velocity.DY,
		BallLive: ball.Live,

		BricksRemaining: len(bricks),
		BrickData:       brickData,

		RNGState: g.boost.rng.State(),
	}
}

// ApplySnapshot restores game state from a snapshot taken from a game with
// the same configuration.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.score = snap.Score
	g.lives = snap.Lives
	g.state = snap.State

	m := g.model
	m.paddle.X = snap.PaddleX
	m.ball = Ball{
		Center:   core.Position{X: snap.BallX, Y: snap.BallY},
		Radius:   m.config.Ball.Radius,
		Velocity: core.Velocity{DX: snap.BallDX, DY: snap.BallDY},
		Live:     snap.BallLive,
	}

	dims := m.config.BrickDims()
	m.bricks = m.bricks[:0]
	for i := 0; i+1 < len(snap.BrickData); i += 2 {
		topLeft := core.Position{X: snap.BrickData[i], Y: snap.BrickData[i+1]}
		m.bricks = append(m.bricks, core.BlockFromTopLeft(topLeft, dims))
	}

	g.boost.rng.SetState(snap.RNGState)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}

	for _, v := range []float64{snap.PaddleX, snap.BallX, snap.BallY, snap.BallDX, snap.BallDY} {
		h = h*31 + math.Float64bits(v)
	}
	if snap.BallLive {
		h = h*31 + 1
	}

	for _, v := range snap.BrickData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + snap.RNGState

	return h
}
